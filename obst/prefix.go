// SPDX-License-Identifier: MIT

package obst

import (
	"fmt"

	"github.com/katalvlaran/optbst/fraction"
)

// PrefixSums answers range-weight queries in O(1).
// prefix[k] = Σ weight[0..k-1], prefix[0] = 0. Read-only after construction.
type PrefixSums struct {
	weights []fraction.Fraction
	prefix  []fraction.Fraction
}

// NewPrefixSums precomputes running totals of weights. Weights are copied in
// normalized form, so a zero-value weight is stored as 0/1.
// Returns fraction.ErrOverflow (wrapped with the index) if a running total overflows.
func NewPrefixSums(weights []fraction.Fraction) (*PrefixSums, error) {
	own := make([]fraction.Fraction, len(weights))
	prefix := make([]fraction.Fraction, len(weights)+1)
	prefix[0] = fraction.Zero
	for k, w := range weights {
		norm, err := fraction.New(w.Num(), w.Den())
		if err != nil {
			return nil, fmt.Errorf("obst: weight %d: %w", k, err)
		}
		own[k] = norm
		next, err := prefix[k].Add(norm)
		if err != nil {
			return nil, fmt.Errorf("obst: prefix sum at weight %d: %w", k, err)
		}
		prefix[k+1] = next
	}

	return &PrefixSums{weights: own, prefix: prefix}, nil
}

// Len returns the number of weights.
func (p *PrefixSums) Len() int { return len(p.weights) }

// Sum returns Σ weight[i..j] for i ≤ j and zero otherwise.
// Single-element ranges return the weight itself.
func (p *PrefixSums) Sum(i, j int) (fraction.Fraction, error) {
	if i > j {
		return fraction.Zero, nil
	}
	if i == j {
		return p.weights[i], nil
	}

	return p.prefix[j+1].Sub(p.prefix[i])
}
