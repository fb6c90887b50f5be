// SPDX-License-Identifier: MIT

package obst

import (
	"fmt"

	"github.com/katalvlaran/optbst/fraction"
)

// BuildTree computes the optimal binary search tree for keys with the given
// access weights.
//
// Contracts:
//   - keys are sorted ascending by the caller; the engine never sorts.
//     WithStrictOrder turns that assumption into a check.
//   - len(keys) == len(weights), checked before any allocation.
//   - Workers ≥ 1 (default GOMAXPROCS).
//
// Errors:
//   - ErrInputLengthMismatch, ErrInvalidWorkerCount, ErrKeysNotSorted.
//   - fraction.ErrOverflow when a cost does not fit in int64.
//
// The cost/root table lives only for the duration of the call; the returned
// Result keeps the tree and the total cost.
//
// Complexity: O(n³) time, O(n²) transient memory.
func BuildTree(keys, weights []fraction.Fraction, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if len(keys) != len(weights) {
		return nil, fmt.Errorf("%w: %d keys, %d weights", ErrInputLengthMismatch, len(keys), len(weights))
	}
	if o.Workers < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkerCount, o.Workers)
	}
	if o.StrictOrder {
		if err := checkAscending(keys); err != nil {
			return nil, err
		}
	}

	table, err := FillTable(weights, o.Workers, o.Logger)
	if err != nil {
		return nil, err
	}

	n := len(keys)
	res := &Result{
		tree:    buildTree(table, keys),
		cost:    fraction.Zero,
		workers: o.Workers,
	}
	if n > 0 {
		res.cost = table.Cost(0, n-1)
	}

	return res, nil
}

// checkAscending reports the first adjacent pair that is not strictly increasing.
func checkAscending(keys []fraction.Fraction) error {
	for i := 1; i < len(keys); i++ {
		if !keys[i-1].Less(keys[i]) {
			return fmt.Errorf("%w: key %d (%v) >= key %d (%v)", ErrKeysNotSorted, i-1, keys[i-1], i, keys[i])
		}
	}

	return nil
}
