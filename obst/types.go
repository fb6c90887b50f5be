// SPDX-License-Identifier: MIT

package obst

import (
	"errors"
	"io"
	"log/slog"
	"runtime"

	"github.com/katalvlaran/optbst/fraction"
)

// Sentinel errors for tree construction.
var (
	// ErrInputLengthMismatch is returned when keys and weights differ in length.
	ErrInputLengthMismatch = errors.New("obst: keys and weights differ in length")

	// ErrInvalidWorkerCount is returned when fewer than one worker is requested.
	ErrInvalidWorkerCount = errors.New("obst: worker count must be >= 1")

	// ErrKeysNotSorted is returned under WithStrictOrder when keys are not strictly ascending.
	ErrKeysNotSorted = errors.New("obst: keys are not strictly ascending")
)

// Options configures BuildTree.
//
// Fields:
//   - Workers     - number of concurrent workers per wave (must be ≥ 1).
//   - StrictOrder - reject keys that are not strictly ascending.
//   - Logger      - structured logger; nil discards.
type Options struct {
	Workers     int
	StrictOrder bool
	Logger      *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns Workers = GOMAXPROCS, no order check, discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.GOMAXPROCS(0),
		Logger:  discardLogger(),
	}
}

// WithWorkers sets the worker count. Values < 1 surface as ErrInvalidWorkerCount.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// WithStrictOrder enables the strictly-ascending key check.
func WithStrictOrder() Option {
	return func(o *Options) {
		o.StrictOrder = true
	}
}

// WithLogger sets the logger; nil keeps the current one.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result is the long-lived product of a run: the tree and its total cost.
type Result struct {
	tree    *Tree
	cost    fraction.Fraction
	workers int
}

// Tree returns the materialized tree (never nil).
func (r *Result) Tree() *Tree { return r.tree }

// TotalCost returns cost(0, n-1), or zero for an empty input.
func (r *Result) TotalCost() fraction.Fraction { return r.cost }

// Workers returns the worker count the table was filled with.
func (r *Result) Workers() int { return r.workers }

// TotalCost returns res.TotalCost(), or zero for a nil result.
func TotalCost(res *Result) fraction.Fraction {
	if res == nil {
		return fraction.Zero
	}

	return res.cost
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
