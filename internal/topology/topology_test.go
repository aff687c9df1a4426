package topology

import (
	"reflect"
	"testing"
)

func TestTopology_NextAndAfterNext(t *testing.T) {
	tests := []struct {
		name          string
		self          string
		peers         []string
		wantNext      string
		wantAfterNext string
	}{
		{
			name:          "first of three",
			self:          "A",
			peers:         []string{"B", "C"},
			wantNext:      "B",
			wantAfterNext: "C",
		},
		{
			name:          "middle of three",
			self:          "B",
			peers:         []string{"A", "C"},
			wantNext:      "C",
			wantAfterNext: "A",
		},
		{
			name:          "last of three wraps",
			self:          "C",
			peers:         []string{"A", "B"},
			wantNext:      "A",
			wantAfterNext: "B",
		},
		{
			name:          "unsorted peer input",
			self:          "B",
			peers:         []string{"E", "A", "D", "C"},
			wantNext:      "C",
			wantAfterNext: "D",
		},
		{
			name:          "two machines",
			self:          "A",
			peers:         []string{"B"},
			wantNext:      "B",
			wantAfterNext: "A",
		},
		{
			name:          "single machine",
			self:          "A",
			peers:         nil,
			wantNext:      "A",
			wantAfterNext: "A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			topo, err := New(tt.self, tt.peers)
			if err != nil {
				t.Fatalf("New() returned error: %v", err)
			}
			if got := topo.Next(); got != tt.wantNext {
				t.Errorf("Next() = %s, want %s", got, tt.wantNext)
			}
			if got := topo.AfterNext(); got != tt.wantAfterNext {
				t.Errorf("AfterNext() = %s, want %s", got, tt.wantAfterNext)
			}
		})
	}
}

func TestTopology_AllSortedIncludesSelf(t *testing.T) {
	topo, err := New("B", []string{"C", "A"})
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	want := []string{"A", "B", "C"}
	if got := topo.All(); !reflect.DeepEqual(got, want) {
		t.Errorf("All() = %v, want %v", got, want)
	}
	if got := topo.Peers(); !reflect.DeepEqual(got, []string{"A", "C"}) {
		t.Errorf("Peers() = %v, want [A C]", got)
	}
	if topo.Size() != 3 {
		t.Errorf("Size() = %d, want 3", topo.Size())
	}
}

func TestTopology_Errors(t *testing.T) {
	if _, err := New("", []string{"A"}); err == nil {
		t.Error("Expected error for empty self id")
	}
	if _, err := New("A", []string{"B", "B"}); err == nil {
		t.Error("Expected error for duplicate peer id")
	}
	if _, err := New("A", []string{"A"}); err == nil {
		t.Error("Expected error for self listed as peer")
	}
}
