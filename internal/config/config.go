package config

import (
	"fmt"
	"strings"
)

// DefaultInternalEventWeight biases how often an idle tick is an internal
// event: the action roll is uniform over [1, 3+weight].
const DefaultInternalEventWeight = 7

// Peer identifies a remote machine and its dialable address.
type Peer struct {
	ID   string
	Addr string
}

// Config holds the construction parameters for one machine, as supplied
// by the supervisor.
type Config struct {
	ID                  string
	ListenAddr          string
	TicksPerSec         int
	LogPath             string
	InternalEventWeight int
	Peers               []Peer
}

// Validate reports the first fatal misconfiguration, if any. A machine
// must refuse to start on any of these rather than degrade silently.
func (c Config) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("machine id cannot be empty")
	}
	if c.ListenAddr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	if c.TicksPerSec <= 0 {
		return fmt.Errorf("ticks per second must be positive, got %d", c.TicksPerSec)
	}
	if c.LogPath == "" {
		return fmt.Errorf("log path cannot be empty")
	}
	if c.InternalEventWeight < 0 {
		return fmt.Errorf("internal event weight cannot be negative, got %d", c.InternalEventWeight)
	}

	seen := make(map[string]bool, len(c.Peers))
	for _, p := range c.Peers {
		if p.ID == c.ID {
			return fmt.Errorf("peer list contains the local machine id %s", c.ID)
		}
		if seen[p.ID] {
			return fmt.Errorf("duplicate peer id: %s", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// PeerIDs returns the ids of all configured peers, in list order.
func (c Config) PeerIDs() []string {
	ids := make([]string, 0, len(c.Peers))
	for _, p := range c.Peers {
		ids = append(ids, p.ID)
	}
	return ids
}

// ParsePeers parses a comma-separated list of peers in the format:
// "id1=addr1,id2=addr2,id3=addr3"
func ParsePeers(peersStr string) ([]Peer, error) {
	if peersStr == "" {
		return []Peer{}, nil
	}

	parts := strings.Split(peersStr, ",")
	peers := make([]Peer, 0, len(parts))

	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		kv := strings.SplitN(part, "=", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid peer format: %s (expected id=addr)", part)
		}

		id := strings.TrimSpace(kv[0])
		addr := strings.TrimSpace(kv[1])

		if id == "" || addr == "" {
			return nil, fmt.Errorf("peer ID and address cannot be empty: %s", part)
		}

		peers = append(peers, Peer{
			ID:   id,
			Addr: addr,
		})
	}

	return peers, nil
}
