package config

import (
	"testing"
)

func TestParsePeers(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []Peer
		wantErr bool
	}{
		{
			name:  "empty string",
			input: "",
			want:  []Peer{},
		},
		{
			name:  "single peer",
			input: "n1=127.0.0.1:50051",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
			},
		},
		{
			name:  "multiple peers",
			input: "n1=127.0.0.1:50051,n2=127.0.0.1:50052,n3=127.0.0.1:50053",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
				{ID: "n2", Addr: "127.0.0.1:50052"},
				{ID: "n3", Addr: "127.0.0.1:50053"},
			},
		},
		{
			name:  "with spaces",
			input: "n1 = 127.0.0.1:50051 , n2 = 127.0.0.1:50052",
			want: []Peer{
				{ID: "n1", Addr: "127.0.0.1:50051"},
				{ID: "n2", Addr: "127.0.0.1:50052"},
			},
		},
		{
			name:    "invalid format - no equals",
			input:   "n1:127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - empty ID",
			input:   "=127.0.0.1:50051",
			wantErr: true,
		},
		{
			name:    "invalid format - empty addr",
			input:   "n1=",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePeers(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParsePeers() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr {
				if len(got) != len(tt.want) {
					t.Errorf("ParsePeers() length = %d, want %d", len(got), len(tt.want))
					return
				}
				for i := range got {
					if got[i].ID != tt.want[i].ID || got[i].Addr != tt.want[i].Addr {
						t.Errorf("ParsePeers()[%d] = %v, want %v", i, got[i], tt.want[i])
					}
				}
			}
		})
	}
}

func validConfig() Config {
	return Config{
		ID:                  "A",
		ListenAddr:          "127.0.0.1:50051",
		TicksPerSec:         3,
		LogPath:             "logs/A.log",
		InternalEventWeight: DefaultInternalEventWeight,
		Peers: []Peer{
			{ID: "B", Addr: "127.0.0.1:50052"},
			{ID: "C", Addr: "127.0.0.1:50053"},
		},
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:   "no peers is valid",
			mutate: func(c *Config) { c.Peers = nil },
		},
		{
			name:   "zero weight is valid",
			mutate: func(c *Config) { c.InternalEventWeight = 0 },
		},
		{
			name:    "missing id",
			mutate:  func(c *Config) { c.ID = "" },
			wantErr: true,
		},
		{
			name:    "missing listen address",
			mutate:  func(c *Config) { c.ListenAddr = "" },
			wantErr: true,
		},
		{
			name:    "zero tick rate",
			mutate:  func(c *Config) { c.TicksPerSec = 0 },
			wantErr: true,
		},
		{
			name:    "negative tick rate",
			mutate:  func(c *Config) { c.TicksPerSec = -1 },
			wantErr: true,
		},
		{
			name:    "missing log path",
			mutate:  func(c *Config) { c.LogPath = "" },
			wantErr: true,
		},
		{
			name:    "negative weight",
			mutate:  func(c *Config) { c.InternalEventWeight = -1 },
			wantErr: true,
		},
		{
			name:    "self in peer list",
			mutate:  func(c *Config) { c.Peers = append(c.Peers, Peer{ID: "A", Addr: "x"}) },
			wantErr: true,
		},
		{
			name:    "duplicate peer",
			mutate:  func(c *Config) { c.Peers = append(c.Peers, Peer{ID: "B", Addr: "y"}) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_PeerIDs(t *testing.T) {
	cfg := validConfig()
	ids := cfg.PeerIDs()
	if len(ids) != 2 || ids[0] != "B" || ids[1] != "C" {
		t.Errorf("PeerIDs() = %v, want [B C]", ids)
	}
}
