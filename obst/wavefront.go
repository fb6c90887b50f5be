// SPDX-License-Identifier: MIT

package obst

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/optbst/fraction"
)

// span is a half-open row range [lo, hi) handed to one worker.
type span struct {
	lo, hi int
}

// partition splits cells rows into min(workers, cells) contiguous spans whose
// sizes differ by at most one. Earlier spans get the extra rows.
func partition(cells, workers int) []span {
	if cells <= 0 || workers <= 0 {
		return nil
	}
	k := workers
	if k > cells {
		k = cells
	}
	base, extra := cells/k, cells%k

	spans := make([]span, 0, k)
	lo := 0
	for c := 0; c < k; c++ {
		size := base
		if c < extra {
			size++
		}
		spans = append(spans, span{lo: lo, hi: lo + size})
		lo += size
	}

	return spans
}

// wavefront fills a Table wave by wave. Wave L holds cells (i, i+L-1) for
// i = 0..n-L; its rows are split across workers and the group is joined
// before wave L+1 is released.
type wavefront struct {
	table   *Table
	sums    *PrefixSums
	workers int
	log     *slog.Logger
}

// run processes waves 1..n in order. The first failing wave aborts the fill.
func (w *wavefront) run() error {
	for length := 1; length <= w.table.n; length++ {
		if err := w.wave(length); err != nil {
			return fmt.Errorf("obst: wave %d: %w", length, err)
		}
	}

	return nil
}

// wave computes every cell of one length concurrently and waits for all of
// them. Wait is the barrier: no cell of the next wave may read before it.
func (w *wavefront) wave(length int) error {
	cells := w.table.n - length + 1
	spans := partition(cells, w.workers)

	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(w.workers)
	for _, s := range spans {
		g.Go(func() error {
			for i := s.lo; i < s.hi; i++ {
				if ctx.Err() != nil {
					// A sibling failed; Wait reports its error.
					return nil
				}
				if err := w.table.evalCell(w.sums, i, i+length-1); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w.log.Debug("wave done", "length", length, "cells", cells, "chunks", len(spans))

	return nil
}

// FillTable allocates and fills the cost/root table for weights using the
// given number of workers. The result is identical for every workers ≥ 1.
//
// Errors:
//   - ErrInvalidWorkerCount - workers < 1.
//   - fraction.ErrOverflow  - a prefix sum or cell cost does not fit in int64.
//
// On error no table is returned.
func FillTable(weights []fraction.Fraction, workers int, logger *slog.Logger) (*Table, error) {
	if workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, workers)
	}
	if logger == nil {
		logger = discardLogger()
	}

	sums, err := NewPrefixSums(weights)
	if err != nil {
		return nil, err
	}

	n := len(weights)
	w := &wavefront{
		table:   newTable(n),
		sums:    sums,
		workers: workers,
		log:     logger,
	}

	start := time.Now()
	logger.Info("table fill started", "keys", n, "workers", workers)
	if err = w.run(); err != nil {
		logger.Error("table fill failed", "keys", n, "workers", workers, "error", err)
		return nil, err
	}
	logger.Info("table fill done", "keys", n, "workers", workers, "elapsed", time.Since(start))

	return w.table, nil
}
