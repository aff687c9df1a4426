package node

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net"
	"sort"
	"time"

	"google.golang.org/grpc"

	"clocksim/internal/clock"
	"clocksim/internal/config"
	"clocksim/internal/eventlog"
	clocksimpb "clocksim/internal/gen/api"
	"clocksim/internal/inbox"
	"clocksim/internal/topology"
)

// Node is one simulated machine: it owns a Lamport clock and an inbound
// queue, listens for peer messages, and runs the tick scheduler. The clock
// and the queue head are mutated only by the tick loop; the gRPC handler
// only ever inserts into the queue.
type Node struct {
	cfg   config.Config
	clock *clock.Lamport
	queue *inbox.Inbox
	topo  *topology.Topology
	peers *PeerSet
	logw  *eventlog.Writer

	grpcServer *grpc.Server
	interval   time.Duration

	// Injectable for deterministic tests.
	roll  func(sides int) int // uniform over [1, sides]
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration)
}

// Option configures a Node in New.
type Option func(*Node)

// WithRoll sets a custom action-roll source. The function must return a
// value in [1, sides].
func WithRoll(fn func(sides int) int) Option {
	return func(n *Node) { n.roll = fn }
}

// WithTimeSource sets a custom wall-clock source.
func WithTimeSource(fn func() time.Time) Option {
	return func(n *Node) { n.now = fn }
}

// WithSleep sets a custom sleep function for the tick interval wait.
func WithSleep(fn func(ctx context.Context, d time.Duration)) Option {
	return func(n *Node) { n.sleep = fn }
}

// New validates the configuration and constructs a machine. The log file
// is created (and truncated) here, before the machine starts listening, so
// it is guaranteed zero-length before the first tick.
func New(cfg config.Config, opts ...Option) (*Node, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid machine config: %w", err)
	}

	topo, err := topology.New(cfg.ID, cfg.PeerIDs())
	if err != nil {
		return nil, err
	}

	logw, err := eventlog.NewWriter(cfg.LogPath)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	n := &Node{
		cfg:      cfg,
		clock:    clock.New(),
		queue:    inbox.New(),
		topo:     topo,
		peers:    NewPeerSet(cfg.ID),
		logw:     logw,
		interval: time.Second / time.Duration(cfg.TicksPerSec),
		roll:     func(sides int) int { return rng.Intn(sides) + 1 },
		now:      time.Now,
		sleep: func(ctx context.Context, d time.Duration) {
			select {
			case <-time.After(d):
			case <-ctx.Done():
			}
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}

	log.Printf("[%s] initialized with %d ticks/sec, weight %d, logging to %s",
		cfg.ID, cfg.TicksPerSec, cfg.InternalEventWeight, cfg.LogPath)
	return n, nil
}

// Run starts listening, connects to peers, and drives the tick loop until
// ctx is cancelled. An in-flight tick always completes; the listener is
// then drained with a graceful stop. The returned error is fatal (failed
// to bind or serve); peer connectivity problems are not fatal.
func (n *Node) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", n.cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", n.cfg.ListenAddr, err)
	}

	n.grpcServer = grpc.NewServer()
	clocksimpb.RegisterMachineServiceServer(n.grpcServer, NewServer(n.cfg.ID, n.queue))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- n.grpcServer.Serve(lis)
	}()
	log.Printf("[%s] listening on %s", n.cfg.ID, n.cfg.ListenAddr)

	n.connectPeers(ctx)
	n.loop(ctx)

	log.Printf("[%s] shutting down", n.cfg.ID)
	n.grpcServer.GracefulStop()
	n.peers.Close()
	if err := n.logw.Close(); err != nil {
		log.Printf("[%s] failed to close event log: %v", n.cfg.ID, err)
	}

	if err := <-serveErr; err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}
	return nil
}

// connectPeers dials every configured peer in topology order. Unreachable
// peers are logged and excluded from the connected set; the machine keeps
// running with a degraded topology.
func (n *Node) connectPeers(ctx context.Context) {
	addrs := make(map[string]string, len(n.cfg.Peers))
	for _, p := range n.cfg.Peers {
		addrs[p.ID] = p.Addr
	}
	ids := n.cfg.PeerIDs()
	sort.Strings(ids)

	for _, id := range ids {
		if err := n.peers.Connect(ctx, id, addrs[id]); err != nil {
			log.Printf("[%s] peer %s unreachable, continuing without it: %v", n.cfg.ID, id, err)
			continue
		}
		log.Printf("[%s] connected to peer %s at %s", n.cfg.ID, id, addrs[id])
	}
}

// Clock returns the current Lamport clock value. Intended for tests and
// status inspection only.
func (n *Node) Clock() int64 {
	return n.clock.Time()
}

// QueueLen returns the number of pending inbound messages.
func (n *Node) QueueLen() int {
	return n.queue.Len()
}
