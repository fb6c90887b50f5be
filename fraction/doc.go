// SPDX-License-Identifier: MIT

// Package fraction provides Fraction, an immutable exact rational number
// backed by a pair of int64 values.
//
// What it guarantees:
//
//   - Always normalized: denominator > 0, gcd(|num|, den) = 1, sign on the numerator.
//   - Two fractions are equal iff their normalized pairs are equal.
//   - Ordering uses exact cross-multiplication with 128-bit products, so Cmp
//     never overflows and no floating point is involved anywhere.
//   - Add/Sub/Mul/Div report ErrOverflow instead of wrapping when a result or
//     an intermediate term does not fit in int64.
//
// Maximum safe magnitude:
//
//	Every numerator and denominator produced along the way must lie in
//	(math.MinInt64, math.MaxInt64]. Operands are cross-reduced by their gcds
//	before multiplying, which keeps sums of fractions with small common
//	denominators well inside that range in practice.
//
// Usage:
//
//	a := fraction.MustNew(1, 3)
//	b := fraction.FromInt(2)
//	sum, err := a.Add(b) // 7/3
//
// The zero value of Fraction is 0 and is ready to use.
package fraction
