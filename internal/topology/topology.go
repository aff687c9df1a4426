package topology

import (
	"fmt"
	"sort"
)

// Topology is the fixed set of machine ids in a run, sorted, including the
// local machine. Targeted sends go to the neighbors at cyclic offsets +1
// and +2 from the local position. Immutable after construction.
type Topology struct {
	self string
	ids  []string // sorted, includes self
	pos  int      // index of self in ids
}

// New builds the topology for the local machine from its peer id set.
// The peer list must not contain self or duplicates.
func New(self string, peerIDs []string) (*Topology, error) {
	if self == "" {
		return nil, fmt.Errorf("local machine id cannot be empty")
	}

	ids := make([]string, 0, len(peerIDs)+1)
	ids = append(ids, self)
	seen := map[string]bool{self: true}
	for _, id := range peerIDs {
		if seen[id] {
			return nil, fmt.Errorf("duplicate machine id in topology: %s", id)
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Strings(ids)

	pos := sort.SearchStrings(ids, self)
	return &Topology{self: self, ids: ids, pos: pos}, nil
}

// Self returns the local machine id.
func (t *Topology) Self() string {
	return t.self
}

// Size returns the total number of machines, including self.
func (t *Topology) Size() int {
	return len(t.ids)
}

// Next returns the machine id at cyclic offset +1 from self.
// In a single-machine topology this is self.
func (t *Topology) Next() string {
	return t.ids[(t.pos+1)%len(t.ids)]
}

// AfterNext returns the machine id at cyclic offset +2 from self.
func (t *Topology) AfterNext() string {
	return t.ids[(t.pos+2)%len(t.ids)]
}

// All returns the sorted id set including self.
func (t *Topology) All() []string {
	out := make([]string, len(t.ids))
	copy(out, t.ids)
	return out
}

// Peers returns the sorted id set excluding self.
func (t *Topology) Peers() []string {
	out := make([]string, 0, len(t.ids)-1)
	for _, id := range t.ids {
		if id != t.self {
			out = append(out, id)
		}
	}
	return out
}
