package supervisor

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/google/uuid"

	"clocksim/internal/eventlog"
	"clocksim/internal/experiment"
	"clocksim/internal/report"
)

const (
	statusInterval = 2 * time.Second
	stopTimeout    = 5 * time.Second
)

// Supervisor spawns one machine process per configured machine, watches
// their logs while the experiment runs, and delivers SIGTERM when the
// duration expires or the run is interrupted. Its only view into a
// running machine is that machine's log file.
type Supervisor struct {
	exp     experiment.Experiment
	binary  string
	out     io.Writer
	verbose bool
}

// New creates a supervisor for an experiment. binary is the path to the
// machine executable; out receives status tables and summaries.
func New(exp experiment.Experiment, binary string, out io.Writer) *Supervisor {
	return &Supervisor{exp: exp, binary: binary, out: out}
}

// SetVerbose forwards machine process output to the supervisor's writer
// instead of discarding it.
func (s *Supervisor) SetVerbose(v bool) {
	s.verbose = v
}

// Run executes every trial of the experiment and returns the run
// directory holding all collected logs.
func (s *Supervisor) Run(ctx context.Context) (string, error) {
	runID := uuid.NewString()[:8]
	runDir := filepath.Join(s.exp.LogDir, fmt.Sprintf("%s-%s", s.exp.Name, runID))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create run directory: %w", err)
	}

	fmt.Fprintf(s.out, "experiment %s: %d trial(s) of %s, logs in %s\n",
		s.exp.Name, s.exp.Trials, s.exp.Duration.Std(), runDir)

	for trial := 1; trial <= s.exp.Trials; trial++ {
		if ctx.Err() != nil {
			break
		}
		fmt.Fprintf(s.out, "--- trial %d/%d ---\n", trial, s.exp.Trials)
		if err := s.runTrial(ctx, runDir, trial); err != nil {
			return runDir, fmt.Errorf("trial %d: %w", trial, err)
		}
	}
	return runDir, nil
}

// runTrial starts all machines, waits out the duration (or cancellation),
// stops them, and prints the trial summary.
func (s *Supervisor) runTrial(ctx context.Context, runDir string, trial int) error {
	procs, err := s.startAll(runDir, trial)
	if err != nil {
		s.stopAll(procs)
		return err
	}

	deadline := time.NewTimer(s.exp.Duration.Std())
	defer deadline.Stop()
	status := time.NewTicker(statusInterval)
	defer status.Stop()

wait:
	for {
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out, "interrupted, stopping machines")
			break wait
		case <-deadline.C:
			break wait
		case <-status.C:
			s.printStatus(runDir, trial)
		}
	}

	s.stopAll(procs)
	s.printSummary(runDir, trial)
	return nil
}

type proc struct {
	id  string
	cmd *exec.Cmd
}

// startAll spawns one process per machine. Any spawn failure aborts the
// trial; a machine that cannot even start is a fatal misconfiguration.
func (s *Supervisor) startAll(runDir string, trial int) ([]proc, error) {
	var procs []proc
	for _, id := range s.exp.MachineIDs() {
		cmd := exec.Command(s.binary, Args(s.exp, runDir, id, trial)...)
		if s.verbose {
			cmd.Stdout = s.out
			cmd.Stderr = s.out
		}
		if err := cmd.Start(); err != nil {
			return procs, fmt.Errorf("failed to start machine %s: %w", id, err)
		}
		log.Printf("[supervisor] started machine %s (pid %d)", id, cmd.Process.Pid)
		procs = append(procs, proc{id: id, cmd: cmd})
	}
	return procs, nil
}

// stopAll delivers SIGTERM to every machine and waits for each with a
// bounded grace period, killing stragglers.
func (s *Supervisor) stopAll(procs []proc) {
	for _, p := range procs {
		if p.cmd.Process == nil {
			continue
		}
		if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil {
			log.Printf("[supervisor] failed to signal machine %s: %v", p.id, err)
		}
	}
	for _, p := range procs {
		if p.cmd.Process == nil {
			continue
		}
		done := make(chan error, 1)
		go func(c *exec.Cmd) { done <- c.Wait() }(p.cmd)
		select {
		case <-done:
			log.Printf("[supervisor] machine %s terminated", p.id)
		case <-time.After(stopTimeout):
			log.Printf("[supervisor] machine %s did not terminate, killing", p.id)
			p.cmd.Process.Kill()
			<-done
		}
	}
}

// Args builds the machine process argument list for one machine in one
// trial.
func Args(exp experiment.Experiment, runDir, machineID string, trial int) []string {
	m := exp.Machines[machineID]
	return []string{
		"--id", machineID,
		"--listen", m.Addr(),
		"--ticks", strconv.Itoa(m.Ticks),
		"--log", exp.LogPath(runDir, machineID, trial),
		"--weight", strconv.Itoa(m.Weight()),
		"--peers", PeersArg(exp, machineID),
	}
}

// PeersArg renders a machine's peer list in the id=addr,id=addr flag
// format.
func PeersArg(exp experiment.Experiment, machineID string) string {
	parts := make([]string, 0, len(exp.Machines)-1)
	for _, p := range exp.PeersOf(machineID) {
		parts = append(parts, fmt.Sprintf("%s=%s", p.ID, p.Addr))
	}
	return strings.Join(parts, ",")
}

// collect reads and analyzes every machine's log for a trial. Machines
// whose logs are missing or empty appear with zero stats.
func (s *Supervisor) collect(runDir string, trial int) map[string]report.Stats {
	byMachine := make(map[string]report.Stats, len(s.exp.Machines))
	for _, id := range s.exp.MachineIDs() {
		entries, err := eventlog.ReadFile(s.exp.LogPath(runDir, id, trial))
		if err != nil {
			byMachine[id] = report.Stats{}
			continue
		}
		byMachine[id] = report.Analyze(entries)
	}
	return byMachine
}

func (s *Supervisor) printStatus(runDir string, trial int) {
	RenderTable(s.out, s.exp, s.collect(runDir, trial))
}

func (s *Supervisor) printSummary(runDir string, trial int) {
	byMachine := s.collect(runDir, trial)
	fmt.Fprintf(s.out, "trial %d complete\n", trial)
	RenderTable(s.out, s.exp, byMachine)
	fmt.Fprintf(s.out, "max clock drift between machines: %d\n", report.Drift(byMachine))
}

// RenderTable writes one status/summary table: a row per machine with its
// configured tick rate and the statistics observed in its log so far.
func RenderTable(w io.Writer, exp experiment.Experiment, byMachine map[string]report.Stats) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "MACHINE\tTICKS/S\tCLOCK\tRATE\tMAX JUMP\tAVG QUEUE\tMAX QUEUE\tI/S/R/B %")
	for _, id := range exp.MachineIDs() {
		st := byMachine[id]
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.1f\t%d\t%.2f\t%d\t%.0f/%.0f/%.0f/%.0f\n",
			id, exp.Machines[id].Ticks, st.FinalClock, st.ClockRate, st.MaxJump,
			st.AvgQueue, st.MaxQueue,
			100*st.Share(eventlog.EventInternal),
			100*st.Share(eventlog.EventSend),
			100*st.Share(eventlog.EventRecv),
			100*st.Share(eventlog.EventBroadcast))
	}
	tw.Flush()
}
