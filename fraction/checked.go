// SPDX-License-Identifier: MIT

package fraction

import (
	"math"
	"math/bits"
)

// absU returns |x| as uint64; correct for math.MinInt64 as well.
func absU(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}

	return uint64(x)
}

// gcd is Euclid on unsigned values. gcd(0, b) == b.
func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// mulInt64 multiplies with overflow detection. math.MinInt64 is treated as
// overflow so every result stays negatable.
func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	hi, lo := bits.Mul64(absU(a), absU(b))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, ErrOverflow
	}
	if (a < 0) != (b < 0) {
		return -int64(lo), nil
	}

	return int64(lo), nil
}

// addInt64 adds with overflow detection; a result of math.MinInt64 is overflow.
func addInt64(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s < 0) || (a < 0 && b < 0 && s >= 0) || s == math.MinInt64 {
		return 0, ErrOverflow
	}

	return s, nil
}

// cmp128 compares two unsigned 128-bit values given as (hi, lo) pairs.
func cmp128(ah, al, bh, bl uint64) int {
	switch {
	case ah < bh:
		return -1
	case ah > bh:
		return 1
	case al < bl:
		return -1
	case al > bl:
		return 1
	default:
		return 0
	}
}
