package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"clocksim/internal/config"
	"clocksim/internal/node"
)

func main() {
	var (
		id       = flag.String("id", "", "machine id, unique within the run")
		listen   = flag.String("listen", "", "listen address (host:port)")
		ticks    = flag.Int("ticks", 0, "target ticks per second")
		logPath  = flag.String("log", "", "event log file path (truncated at startup)")
		weight   = flag.Int("weight", config.DefaultInternalEventWeight, "internal event weight")
		peersStr = flag.String("peers", "", "peer list as id=addr,id=addr")
	)
	flag.Parse()

	peers, err := config.ParsePeers(*peersStr)
	if err != nil {
		log.Fatalf("invalid --peers: %v", err)
	}

	cfg := config.Config{
		ID:                  *id,
		ListenAddr:          *listen,
		TicksPerSec:         *ticks,
		LogPath:             *logPath,
		InternalEventWeight: *weight,
		Peers:               peers,
	}

	n, err := node.New(cfg)
	if err != nil {
		log.Fatalf("failed to construct machine: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := n.Run(ctx); err != nil {
		log.Fatalf("machine %s failed: %v", cfg.ID, err)
	}
}
