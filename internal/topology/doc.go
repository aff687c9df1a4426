// Package topology derives a machine's neighbors from the fixed id set of
// a run. The id set is sorted once at construction and never changes; the
// "next" and "after next" targets are the ids at cyclic offsets +1 and +2
// from the local machine's position.
package topology
