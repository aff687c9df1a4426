// Package clock provides a Lamport logical clock. A node advances the
// clock by one for every local event and merges observed remote values
// with max(local, observed)+1 on receive, approximating causal order
// without synchronized real time.
package clock
