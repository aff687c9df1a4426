package node

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	clocksimpb "clocksim/internal/gen/api"
	"clocksim/internal/retry"
)

const (
	// Connection establishment: total attempts and the fixed delay
	// between them.
	connectAttempts   = 3
	connectRetryDelay = 500 * time.Millisecond
	// Per-attempt dial timeout.
	dialTimeout = 5 * time.Second
)

// PeerSet manages outbound gRPC connections to peer machines. Only peers
// that passed Connect are in the set; a peer whose send fails is dropped
// for the remainder of the run. The connected id list preserves the order
// in which peers were connected.
type PeerSet struct {
	localID string

	mu      sync.RWMutex
	clients map[string]clocksimpb.MachineServiceClient
	conns   map[string]*grpc.ClientConn
	order   []string

	attempts   int
	retryDelay time.Duration
	dialWait   time.Duration
}

// NewPeerSet creates an empty peer set for the given local machine id.
func NewPeerSet(localID string) *PeerSet {
	return &PeerSet{
		localID:    localID,
		clients:    make(map[string]clocksimpb.MachineServiceClient),
		conns:      make(map[string]*grpc.ClientConn),
		attempts:   connectAttempts,
		retryDelay: connectRetryDelay,
		dialWait:   dialTimeout,
	}
}

// Connect attempts to establish a usable connection to a peer, retrying a
// bounded number of times. On exhaustion the peer is simply absent from
// the set and the error describes the last failure.
func (ps *PeerSet) Connect(ctx context.Context, id, addr string) error {
	return retry.Do(ctx, ps.attempts, ps.retryDelay, func(ctx context.Context) error {
		dialCtx, cancel := context.WithTimeout(ctx, ps.dialWait)
		defer cancel()

		conn, err := grpc.DialContext(dialCtx, addr,
			grpc.WithTransportCredentials(insecure.NewCredentials()),
			grpc.WithBlock(),
		)
		if err != nil {
			return fmt.Errorf("failed to dial %s: %w", addr, err)
		}

		ps.mu.Lock()
		ps.clients[id] = clocksimpb.NewMachineServiceClient(conn)
		ps.conns[id] = conn
		ps.order = append(ps.order, id)
		ps.mu.Unlock()
		return nil
	})
}

// Send delivers a message synchronously to one peer and reports whether it
// was acknowledged. An unknown target is a silent no-op; an RPC failure is
// logged and the target is marked unreachable for the rest of the run.
func (ps *PeerSet) Send(ctx context.Context, target string, logicalTime int64) bool {
	ps.mu.RLock()
	client, ok := ps.clients[target]
	ps.mu.RUnlock()
	if !ok {
		return false
	}

	_, err := client.SendMessage(ctx, &clocksimpb.ClockMessage{
		SenderId:    ps.localID,
		LogicalTime: logicalTime,
	})
	if err != nil {
		log.Printf("[%s] send to %s failed, marking unreachable: %v", ps.localID, target, err)
		ps.remove(target)
		return false
	}
	return true
}

// Connected returns the ids of currently connected peers in connection
// order.
func (ps *PeerSet) Connected() []string {
	ps.mu.RLock()
	defer ps.mu.RUnlock()
	out := make([]string, len(ps.order))
	copy(out, ps.order)
	return out
}

// remove drops a peer and closes its connection.
func (ps *PeerSet) remove(id string) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	if conn, ok := ps.conns[id]; ok {
		conn.Close()
	}
	delete(ps.conns, id)
	delete(ps.clients, id)
	for i, other := range ps.order {
		if other == id {
			ps.order = append(ps.order[:i], ps.order[i+1:]...)
			break
		}
	}
}

// Close closes every connection and empties the set.
func (ps *PeerSet) Close() {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for _, conn := range ps.conns {
		conn.Close()
	}
	ps.conns = make(map[string]*grpc.ClientConn)
	ps.clients = make(map[string]clocksimpb.MachineServiceClient)
	ps.order = nil
}
