// Package node implements one simulated machine: the rate-controlled tick
// scheduler, the Lamport clock update rule, the inbound message handler,
// and the outbound peer transport. Clock mutation and queue removal happen
// only on the tick loop; the gRPC handler performs a single queue
// insertion and nothing else, which keeps the shared state correct without
// any locking beyond the queue's own.
package node
