package eventlog

import (
	"fmt"
	"strconv"
	"strings"
)

// EventType classifies one logged event.
type EventType string

const (
	EventInternal  EventType = "INTERNAL"
	EventSend      EventType = "SEND"
	EventRecv      EventType = "RECV"
	EventBroadcast EventType = "BROADCAST"
)

// Valid reports whether t is one of the four known event types.
func (t EventType) Valid() bool {
	switch t {
	case EventInternal, EventSend, EventRecv, EventBroadcast:
		return true
	}
	return false
}

// Entry is one immutable record in a machine's event log.
//
// Wire format, one newline-terminated line per entry:
//
//	<unix_timestamp:float>|<logical_clock:int>|<EVENT_TYPE>|<queue_size:int>|<target>
//
// Target is empty for INTERNAL, a single machine id for SEND/RECV, and a
// comma-joined id list for BROADCAST.
type Entry struct {
	Timestamp float64
	Clock     int64
	Type      EventType
	QueueSize int
	Target    string
}

// Line renders the entry in wire format, newline-terminated.
func (e Entry) Line() string {
	return fmt.Sprintf("%s|%d|%s|%d|%s\n",
		strconv.FormatFloat(e.Timestamp, 'f', 6, 64),
		e.Clock, e.Type, e.QueueSize, e.Target)
}

// ParseLine parses one wire-format line (with or without the trailing
// newline) into an Entry.
func ParseLine(line string) (Entry, error) {
	line = strings.TrimSuffix(line, "\n")
	parts := strings.SplitN(line, "|", 5)
	if len(parts) != 5 {
		return Entry{}, fmt.Errorf("malformed log line: expected 5 fields, got %d", len(parts))
	}

	ts, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Entry{}, fmt.Errorf("malformed timestamp %q: %w", parts[0], err)
	}
	clk, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return Entry{}, fmt.Errorf("malformed clock %q: %w", parts[1], err)
	}
	typ := EventType(parts[2])
	if !typ.Valid() {
		return Entry{}, fmt.Errorf("unknown event type %q", parts[2])
	}
	qs, err := strconv.Atoi(parts[3])
	if err != nil {
		return Entry{}, fmt.Errorf("malformed queue size %q: %w", parts[3], err)
	}
	if qs < 0 {
		return Entry{}, fmt.Errorf("negative queue size %d", qs)
	}

	return Entry{
		Timestamp: ts,
		Clock:     clk,
		Type:      typ,
		QueueSize: qs,
		Target:    parts[4],
	}, nil
}
