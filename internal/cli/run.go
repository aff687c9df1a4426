package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"clocksim/internal/experiment"
	"clocksim/internal/supervisor"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Binary string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <experiment.yaml>",
		Short: "Run an experiment",
		Long: `Run every trial of an experiment: spawn one clocknode process per
machine, watch their event logs, and terminate them when the configured
duration expires. Ctrl-C stops the run early.

Example:
  clocksim run experiments/baseline.yaml
  clocksim run --node ./clocknode experiments/fast_clocks.yaml -v`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExperiment(opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Binary, "node", "clocknode", "path to the machine binary")

	return cmd
}

func runExperiment(opts *RunOptions, path string, cmd *cobra.Command) error {
	exp, err := experiment.Load(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(opts.Binary); err != nil {
		return fmt.Errorf("machine binary not found at %s (build it with 'go build ./cmd/clocknode'): %w", opts.Binary, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sup := supervisor.New(exp, opts.Binary, cmd.OutOrStdout())
	sup.SetVerbose(opts.Verbose)

	runDir, err := sup.Run(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "done; inspect with: clocksim report %s\n", runDir)
	return nil
}
