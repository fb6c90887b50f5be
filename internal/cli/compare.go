// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optbst/loader"
	"github.com/katalvlaran/optbst/obst"
	"github.com/katalvlaran/optbst/report"
)

// errNotDeterministic is returned when sequential and parallel tables differ.
var errNotDeterministic = errors.New("sequential and parallel tables differ")

// NewCompareCommand creates the compare command: it fills the table once
// sequentially and once with --workers, reports both timings and fails when
// the tables are not identical. Output is always text.
func NewCompareCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts, Order: "level"}

	cmd := &cobra.Command{
		Use:   "compare <input>",
		Short: "Time sequential vs parallel table fills and check they agree",
		Args:  usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args[0])
		},
	}
	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "parallel worker count (default: config, input, then GOMAXPROCS)")

	return cmd
}

func runCompare(cmd *cobra.Command, opts *BuildOptions, path string) error {
	in, err := loader.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	s, err := resolveSettings(cmd, opts, in)
	if err != nil {
		return err
	}
	if len(in.Keys) != len(in.Weights) {
		return WrapExitError(ExitFailure, "compare failed", obst.ErrInputLengthMismatch)
	}

	runID := report.NewRunID()
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, runID)

	seq, seqElapsed, err := report.Timed(func() (*obst.Table, error) {
		return obst.FillTable(in.Weights, 1, logger.With("mode", "sequential"))
	})
	if err != nil {
		return WrapExitError(ExitFailure, "sequential fill failed", err)
	}
	par, parElapsed, err := report.Timed(func() (*obst.Table, error) {
		return obst.FillTable(in.Weights, s.workers, logger.With("mode", "parallel"))
	})
	if err != nil {
		return WrapExitError(ExitFailure, "parallel fill failed", err)
	}

	identical := seq.Equal(par)
	cost := "0"
	if seq.N() > 0 {
		cost = seq.Cost(0, seq.N()-1).String()
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run:        %s\n", runID)
	fmt.Fprintf(out, "keys:       %d\n", seq.N())
	fmt.Fprintf(out, "sequential: %s\n", seqElapsed)
	fmt.Fprintf(out, "parallel:   %s (%d workers)\n", parElapsed, s.workers)
	fmt.Fprintf(out, "total cost: %s\n", cost)
	fmt.Fprintf(out, "identical:  %t\n", identical)

	if !identical {
		return WrapExitError(ExitFailure, "compare failed", errNotDeterministic)
	}

	return nil
}
