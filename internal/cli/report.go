package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"clocksim/internal/eventlog"
	"clocksim/internal/experiment"
	"clocksim/internal/report"
	"clocksim/internal/supervisor"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report <experiment.yaml> <run-dir>",
		Short: "Summarize collected event logs",
		Long: `Analyze the logs a finished run left in its run directory: per-machine
clock statistics, queue behavior, event distribution, and the clock drift
between machines, per trial.

Example:
  clocksim report experiments/baseline.yaml logs/baseline-1a2b3c4d`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(args[0], args[1], cmd)
		},
	}
	return cmd
}

func runReport(expPath, runDir string, cmd *cobra.Command) error {
	exp, err := experiment.Load(expPath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for trial := 1; trial <= exp.Trials; trial++ {
		byMachine := make(map[string]report.Stats, len(exp.Machines))
		found := 0
		for _, id := range exp.MachineIDs() {
			entries, err := eventlog.ReadFile(exp.LogPath(runDir, id, trial))
			if err != nil {
				byMachine[id] = report.Stats{}
				continue
			}
			found++
			byMachine[id] = report.Analyze(entries)
		}
		if found == 0 {
			return fmt.Errorf("no logs for trial %d under %s", trial, runDir)
		}

		fmt.Fprintf(out, "trial %d\n", trial)
		supervisor.RenderTable(out, exp, byMachine)
		fmt.Fprintf(out, "max clock drift between machines: %d\n\n", report.Drift(byMachine))
	}
	return nil
}
