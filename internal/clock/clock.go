package clock

// Lamport is a scalar logical clock. It is not safe for concurrent use;
// all mutation must happen on the owning node's tick loop.
type Lamport struct {
	time int64
}

// New creates a new Lamport clock starting at 0.
func New() *Lamport {
	return &Lamport{}
}

// Time returns the current clock value without advancing it.
func (c *Lamport) Time() int64 {
	return c.time
}

// Tick advances the clock by one for a locally-originated event and
// returns the new value.
func (c *Lamport) Tick() int64 {
	c.time++
	return c.time
}

// Witness applies the receive rule for an observed remote clock value:
// time = max(time, observed) + 1. Returns the new value.
func (c *Lamport) Witness(observed int64) int64 {
	if observed > c.time {
		c.time = observed
	}
	c.time++
	return c.time
}
