package eventlog

import (
	"testing"
)

func TestEntry_Line(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  string
	}{
		{
			name:  "internal event has empty target",
			entry: Entry{Timestamp: 1740000000.125, Clock: 3, Type: EventInternal, QueueSize: 0},
			want:  "1740000000.125000|3|INTERNAL|0|\n",
		},
		{
			name:  "send has single target",
			entry: Entry{Timestamp: 1740000000.5, Clock: 4, Type: EventSend, QueueSize: 2, Target: "B"},
			want:  "1740000000.500000|4|SEND|2|B\n",
		},
		{
			name:  "recv names the sender",
			entry: Entry{Timestamp: 1740000001.25, Clock: 9, Type: EventRecv, QueueSize: 1, Target: "C"},
			want:  "1740000001.250000|9|RECV|1|C\n",
		},
		{
			name:  "broadcast joins targets with commas",
			entry: Entry{Timestamp: 1740000002.0, Clock: 10, Type: EventBroadcast, QueueSize: 0, Target: "B,C,D"},
			want:  "1740000002.000000|10|BROADCAST|0|B,C,D\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.Line(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseLine(t *testing.T) {
	e, err := ParseLine("1740000000.500000|4|SEND|2|B\n")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	want := Entry{Timestamp: 1740000000.5, Clock: 4, Type: EventSend, QueueSize: 2, Target: "B"}
	if e != want {
		t.Errorf("ParseLine = %+v, want %+v", e, want)
	}
}

func TestParseLine_BroadcastTargetsPreserved(t *testing.T) {
	e, err := ParseLine("1.000000|2|BROADCAST|0|B,C,D")
	if err != nil {
		t.Fatalf("ParseLine returned error: %v", err)
	}
	if e.Target != "B,C,D" {
		t.Errorf("Target = %q, want B,C,D", e.Target)
	}
}

func TestParseLine_Malformed(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "too few fields", line: "1.0|2|SEND|0"},
		{name: "bad timestamp", line: "abc|2|SEND|0|B"},
		{name: "bad clock", line: "1.0|x|SEND|0|B"},
		{name: "unknown event type", line: "1.0|2|PING|0|B"},
		{name: "bad queue size", line: "1.0|2|SEND|-|B"},
		{name: "negative queue size", line: "1.0|2|SEND|-1|B"},
		{name: "empty", line: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLine(tt.line); err == nil {
				t.Errorf("Expected error for %q", tt.line)
			}
		})
	}
}
