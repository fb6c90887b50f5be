// SPDX-License-Identifier: MIT

// Package cli implements the optbst command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/optbst/report"
)

// Version is reported by "optbst version"; overridden at link time.
var Version = "dev"

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string
	ConfigPath string

	config *Config
}

// NewRootCommand creates the root command for the optbst CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "optbst",
		Short: "Optimal binary search trees over exact fractions",
		Long: `optbst computes the cost-minimal binary search tree for sorted keys and
access weights, filling the dynamic-programming table in parallel waves.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig(opts.ConfigPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to load config", err)
			}
			opts.config = cfg
			if !cmd.Flags().Changed("format") && cfg.Format != "" {
				opts.Format = cfg.Format
			}
			if !cmd.Flags().Changed("verbose") && cfg.Verbose {
				opts.Verbose = true
			}
			if _, err := report.ParseFormat(opts.Format); err != nil {
				return WrapExitError(ExitCommandError, "invalid --format", err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging (one line per wave)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", string(report.FormatText), "output format (text|json|msgpack)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "YAML file with default flag values")

	cmd.SetFlagErrorFunc(usageFlagError)

	cmd.AddCommand(NewBuildCommand(opts))
	cmd.AddCommand(NewCompareCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// newLogger builds the run logger on w, at Debug when verbose.
func newLogger(w io.Writer, verbose bool, runID string) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With("run_id", runID)
}

// NewVersionCommand prints Version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "optbst %s\n", Version)
			return err
		},
	}
}
