package clock

import (
	"math/rand"
	"testing"
)

// TestLamport_Property_Monotonic tests that the clock never decreases under
// any interleaving of Tick and Witness.
func TestLamport_Property_Monotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	c := New()
	prev := c.Time()

	for i := 0; i < 1000; i++ {
		var got int64
		if rng.Intn(2) == 0 {
			got = c.Tick()
		} else {
			got = c.Witness(int64(rng.Intn(2000)))
		}
		if got <= prev {
			t.Fatalf("Clock went from %d to %d at step %d", prev, got, i)
		}
		prev = got
	}
}

// TestLamport_Property_WitnessDominates tests that after witnessing a remote
// value the clock is strictly greater than both the old local value and the
// observed value.
func TestLamport_Property_WitnessDominates(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	c := New()

	for i := 0; i < 1000; i++ {
		before := c.Time()
		observed := int64(rng.Intn(5000))
		after := c.Witness(observed)

		if after <= before {
			t.Fatalf("Witness(%d): clock %d not greater than previous %d", observed, after, before)
		}
		if after <= observed {
			t.Fatalf("Witness(%d): clock %d not greater than observed value", observed, after)
		}
		want := before + 1
		if observed > before {
			want = observed + 1
		}
		if after != want {
			t.Fatalf("Witness(%d) with local %d: expected %d, got %d", observed, before, want, after)
		}
	}
}

// TestLamport_Property_TickStepsByOne tests that every local event advances
// the clock by exactly one.
func TestLamport_Property_TickStepsByOne(t *testing.T) {
	c := New()
	for i := 0; i < 1000; i++ {
		before := c.Time()
		after := c.Tick()
		if after != before+1 {
			t.Fatalf("Tick advanced clock from %d to %d, expected +1", before, after)
		}
	}
}
