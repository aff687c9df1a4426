package supervisor

import (
	"bytes"
	"strings"
	"testing"

	"clocksim/internal/experiment"
	"clocksim/internal/report"
)

func testExperiment(t *testing.T) experiment.Experiment {
	t.Helper()
	e, err := experiment.Parse([]byte(`
name: baseline
duration: 10s
machines:
  A: {ticks: 3, port: 50051}
  B: {ticks: 5, port: 50052}
  C: {ticks: 2, port: 50053}
`))
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func TestArgs(t *testing.T) {
	exp := testExperiment(t)
	args := Args(exp, "out/run", "B", 2)

	joined := strings.Join(args, " ")
	for _, want := range []string{
		"--id B",
		"--listen 127.0.0.1:50052",
		"--ticks 5",
		"--weight 7",
		"--log out/run/B.baseline.trial_2.log",
		"--peers A=127.0.0.1:50051,C=127.0.0.1:50053",
	} {
		if !strings.Contains(joined, want) {
			t.Errorf("Args missing %q in %q", want, joined)
		}
	}
}

func TestPeersArg_ExcludesSelf(t *testing.T) {
	exp := testExperiment(t)
	got := PeersArg(exp, "A")
	if strings.Contains(got, "A=") {
		t.Errorf("PeersArg must exclude the machine itself, got %q", got)
	}
	if got != "B=127.0.0.1:50052,C=127.0.0.1:50053" {
		t.Errorf("PeersArg = %q", got)
	}
}

func TestRenderTable(t *testing.T) {
	exp := testExperiment(t)
	stats := map[string]report.Stats{
		"A": {Events: 10, FinalClock: 42, ClockRate: 3.0},
		"B": {Events: 20, FinalClock: 55, ClockRate: 5.1, MaxQueue: 4},
		"C": {},
	}

	var buf bytes.Buffer
	RenderTable(&buf, exp, stats)
	out := buf.String()

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("Expected header plus 3 rows, got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "MACHINE") {
		t.Errorf("Missing header: %q", lines[0])
	}
	for i, id := range []string{"A", "B", "C"} {
		if !strings.HasPrefix(strings.TrimSpace(lines[i+1]), id) {
			t.Errorf("Row %d should be machine %s: %q", i+1, id, lines[i+1])
		}
	}
	if !strings.Contains(out, "42") || !strings.Contains(out, "55") {
		t.Errorf("Expected final clocks in table:\n%s", out)
	}
}
