package clock

import (
	"testing"
)

func TestLamport_StartsAtZero(t *testing.T) {
	c := New()
	if c.Time() != 0 {
		t.Errorf("Expected fresh clock at 0, got %d", c.Time())
	}
}

func TestLamport_Tick(t *testing.T) {
	c := New()
	for i := int64(1); i <= 3; i++ {
		if got := c.Tick(); got != i {
			t.Errorf("Tick %d: expected %d, got %d", i, i, got)
		}
	}
	if c.Time() != 3 {
		t.Errorf("Expected clock 3 after 3 ticks, got %d", c.Time())
	}
}

func TestLamport_Witness(t *testing.T) {
	tests := []struct {
		name     string
		local    int64
		observed int64
		want     int64
	}{
		{
			name:     "remote ahead",
			local:    0,
			observed: 5,
			want:     6,
		},
		{
			name:     "remote behind",
			local:    6,
			observed: 3,
			want:     7,
		},
		{
			name:     "remote equal",
			local:    4,
			observed: 4,
			want:     5,
		},
		{
			name:     "remote zero",
			local:    2,
			observed: 0,
			want:     3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New()
			c.time = tt.local
			if got := c.Witness(tt.observed); got != tt.want {
				t.Errorf("Witness(%d) with local %d: expected %d, got %d",
					tt.observed, tt.local, tt.want, got)
			}
			if c.Time() != tt.want {
				t.Errorf("Time() after Witness: expected %d, got %d", tt.want, c.Time())
			}
		})
	}
}

func TestLamport_ReceiveChain(t *testing.T) {
	// Two messages processed back to back: (5) then (3).
	c := New()
	if got := c.Witness(5); got != 6 {
		t.Errorf("First receive: expected 6, got %d", got)
	}
	if got := c.Witness(3); got != 7 {
		t.Errorf("Second receive: expected max(6,3)+1=7, got %d", got)
	}
}
