package report

import (
	"clocksim/internal/eventlog"
)

// Stats summarizes one machine's event log.
type Stats struct {
	Events     int
	FinalClock int64
	MaxJump    int64
	// ClockRate is logical clock advance per wall-clock second over the
	// span of the log.
	ClockRate float64
	AvgQueue  float64
	MaxQueue  int
	Counts    map[eventlog.EventType]int
}

// Analyze computes summary statistics from a machine's log entries.
// An empty log yields zero stats.
func Analyze(entries []eventlog.Entry) Stats {
	s := Stats{Counts: make(map[eventlog.EventType]int)}
	if len(entries) == 0 {
		return s
	}

	s.Events = len(entries)
	var queueSum int
	for i, e := range entries {
		s.Counts[e.Type]++
		queueSum += e.QueueSize
		if e.QueueSize > s.MaxQueue {
			s.MaxQueue = e.QueueSize
		}
		if i > 0 {
			if jump := e.Clock - entries[i-1].Clock; jump > s.MaxJump {
				s.MaxJump = jump
			}
		}
	}

	s.FinalClock = entries[len(entries)-1].Clock
	s.AvgQueue = float64(queueSum) / float64(len(entries))

	first, last := entries[0], entries[len(entries)-1]
	elapsed := last.Timestamp - first.Timestamp
	if elapsed < 0.1 {
		elapsed = 0.1
	}
	s.ClockRate = float64(last.Clock-first.Clock) / elapsed

	return s
}

// Share returns the fraction of events of the given type, in [0, 1].
func (s Stats) Share(t eventlog.EventType) float64 {
	if s.Events == 0 {
		return 0
	}
	return float64(s.Counts[t]) / float64(s.Events)
}

// Drift is the spread between the fastest and slowest machines' final
// clock values. Needs at least two machines to be meaningful.
func Drift(byMachine map[string]Stats) int64 {
	if len(byMachine) < 2 {
		return 0
	}
	first := true
	var lo, hi int64
	for _, s := range byMachine {
		if first {
			lo, hi = s.FinalClock, s.FinalClock
			first = false
			continue
		}
		if s.FinalClock < lo {
			lo = s.FinalClock
		}
		if s.FinalClock > hi {
			hi = s.FinalClock
		}
	}
	return hi - lo
}
