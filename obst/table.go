// SPDX-License-Identifier: MIT

package obst

import (
	"fmt"

	"github.com/katalvlaran/optbst/fraction"
)

// noRoot marks a cell that has not been computed (or an empty range).
const noRoot = -1

// Table is the cost/root pair of the DP, stored as two flat row-major n×n
// buffers (offset = i*n + j). Only cells with i ≤ j are meaningful.
//
// During a fill, each cell is written exactly once by exactly one worker; a
// cell of wave L is read only by waves > L, after the barrier.
type Table struct {
	n    int
	cost []fraction.Fraction
	root []int
}

func newTable(n int) *Table {
	root := make([]int, n*n)
	for k := range root {
		root[k] = noRoot
	}

	return &Table{
		n:    n,
		cost: make([]fraction.Fraction, n*n),
		root: root,
	}
}

// N returns the number of keys the table was built for.
func (t *Table) N() int { return t.n }

func (t *Table) offset(i, j int) int { return i*t.n + j }

// Cost returns cost(i, j). The empty range (i > j) costs zero.
// Indices outside [0, n) panic like any slice access.
func (t *Table) Cost(i, j int) fraction.Fraction {
	if i > j {
		return fraction.Zero
	}

	return t.cost[t.offset(i, j)]
}

// Root returns the chosen split index for [i, j], or -1 for the empty range.
func (t *Table) Root(i, j int) int {
	if i > j {
		return noRoot
	}

	return t.root[t.offset(i, j)]
}

// Equal reports whether both tables have the same size and identical cost
// and root entries on every cell with i ≤ j.
func (t *Table) Equal(o *Table) bool {
	if t == nil || o == nil {
		return t == o
	}
	if t.n != o.n {
		return false
	}
	for i := 0; i < t.n; i++ {
		for j := i; j < t.n; j++ {
			k := t.offset(i, j)
			if t.root[k] != o.root[k] || !t.cost[k].Equal(o.cost[k]) {
				return false
			}
		}
	}

	return true
}

// evalCell computes cost(i, j) and root(i, j) from cells of shorter ranges.
//
// Implementation:
//   - Stage 1: best = Infinity, scan r = i..j with left + right candidates.
//   - Stage 2: replace best only on strict less-than, so the smallest r wins ties.
//   - Stage 3: cost = sum(i, j) + best.
//
// Complexity: O(j-i+1).
func (t *Table) evalCell(sums *PrefixSums, i, j int) error {
	best := fraction.Infinity()
	bestRoot := noRoot
	for r := i; r <= j; r++ {
		left, right := fraction.Zero, fraction.Zero
		if r > i {
			left = t.cost[t.offset(i, r-1)]
		}
		if r < j {
			right = t.cost[t.offset(r+1, j)]
		}
		cand, err := left.Add(right)
		if err != nil {
			return fmt.Errorf("obst: cell (%d,%d) split %d: %w", i, j, r, err)
		}
		if cand.Less(best) {
			best, bestRoot = cand, r
		}
	}
	if bestRoot == noRoot {
		// Every candidate reached the sentinel: the costs are beyond int64.
		return fmt.Errorf("obst: cell (%d,%d): %w", i, j, fraction.ErrOverflow)
	}

	total, err := sums.Sum(i, j)
	if err != nil {
		return fmt.Errorf("obst: cell (%d,%d) range weight: %w", i, j, err)
	}
	c, err := best.Add(total)
	if err != nil {
		return fmt.Errorf("obst: cell (%d,%d): %w", i, j, err)
	}

	k := t.offset(i, j)
	t.cost[k] = c
	t.root[k] = bestRoot

	return nil
}
