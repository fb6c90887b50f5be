// SPDX-License-Identifier: MIT

package cli

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optbst/loader"
	"github.com/katalvlaran/optbst/obst"
	"github.com/katalvlaran/optbst/report"
)

// BuildOptions holds flags for the build command.
type BuildOptions struct {
	*RootOptions
	Workers int
	Order   string
	Strict  bool
}

// NewBuildCommand creates the build command.
func NewBuildCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BuildOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "build <input>",
		Short: "Build the optimal tree for an input file",
		Long: `Read "key weight" pairs (text, one per line) or a YAML entries list,
build the optimal binary search tree and print it level by level.

Worker count precedence: --workers, then the config file, then the input
file's workers field, then GOMAXPROCS.

Example:
  optbst build input.txt --workers 4
  optbst build keys.yaml --format json --order in`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, opts, args[0])
		},
	}

	cmd.Flags().IntVarP(&opts.Workers, "workers", "w", 0, "workers per wave (default: config, input, then GOMAXPROCS)")
	cmd.Flags().StringVar(&opts.Order, "order", "level", "extra traversal to print (level|pre|in)")
	cmd.Flags().BoolVar(&opts.Strict, "strict", false, "reject keys that are not strictly ascending")

	return cmd
}

// settings is the resolved configuration of one run.
type settings struct {
	workers int
	order   obst.Order
	strict  bool
	format  report.Format
}

// resolveSettings merges flags, config file and input file.
func resolveSettings(cmd *cobra.Command, opts *BuildOptions, in *loader.Input) (settings, error) {
	cfg := opts.config
	if cfg == nil {
		cfg = &Config{}
	}
	s := settings{strict: opts.Strict || cfg.Strict}

	switch {
	case cmd.Flags().Changed("workers"):
		s.workers = opts.Workers
	case cfg.Workers > 0:
		s.workers = cfg.Workers
	case in.Workers > 0:
		s.workers = in.Workers
	default:
		s.workers = runtime.GOMAXPROCS(0)
	}

	orderName := opts.Order
	if !cmd.Flags().Changed("order") && cfg.Order != "" {
		orderName = cfg.Order
	}
	order, err := obst.ParseOrder(orderName)
	if err != nil {
		return settings{}, WrapExitError(ExitCommandError, "invalid --order", err)
	}
	s.order = order

	format, err := report.ParseFormat(opts.Format)
	if err != nil {
		return settings{}, WrapExitError(ExitCommandError, "invalid --format", err)
	}
	s.format = format

	return s, nil
}

func runBuild(cmd *cobra.Command, opts *BuildOptions, path string) error {
	in, err := loader.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read input", err)
	}
	s, err := resolveSettings(cmd, opts, in)
	if err != nil {
		return err
	}

	runID := report.NewRunID()
	logger := newLogger(cmd.ErrOrStderr(), opts.Verbose, runID)
	logger.Info("input loaded", "path", path, "keys", in.Len(), "workers", s.workers)

	buildOpts := []obst.Option{obst.WithWorkers(s.workers), obst.WithLogger(logger)}
	if s.strict {
		buildOpts = append(buildOpts, obst.WithStrictOrder())
	}
	res, elapsed, err := report.Timed(func() (*obst.Result, error) {
		return obst.BuildTree(in.Keys, in.Weights, buildOpts...)
	})
	if err != nil {
		return WrapExitError(ExitFailure, "build failed", err)
	}
	logger.Info("tree built", "cost", res.TotalCost().String(), "elapsed", elapsed)

	snap := report.NewSnapshot(res, runID, elapsed, s.order)
	if err := report.Render(cmd.OutOrStdout(), snap, s.format); err != nil {
		return WrapExitError(ExitFailure, "failed to render result", err)
	}

	return nil
}
