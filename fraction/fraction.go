// SPDX-License-Identifier: MIT

package fraction

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

// Fraction is an exact rational number num/den in lowest terms.
//   - num carries the sign.
//   - den is > 0 for every constructed value; the zero value stores 0 and is
//     read as 0/1 through d().
type Fraction struct {
	num int64
	den int64
}

// Zero is the fraction 0/1.
var Zero = Fraction{num: 0, den: 1}

// One is the fraction 1/1.
var One = Fraction{num: 1, den: 1}

// infinity is the "no candidate yet" baseline returned by Infinity.
var infinity = Fraction{num: math.MaxInt64, den: 1}

// New builds num/den in normalized form.
//
// Errors:
//   - ErrDivisionByZero if den == 0.
//   - ErrOverflow if num or den is math.MinInt64 (its negation is not representable).
func New(num, den int64) (Fraction, error) {
	if den == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	if num == math.MinInt64 || den == math.MinInt64 {
		return Fraction{}, ErrOverflow
	}
	if den < 0 {
		num, den = -num, -den
	}
	// gcd(0, den) == den, so zero collapses to 0/1.
	g := int64(gcd(absU(num), uint64(den)))

	return Fraction{num: num / g, den: den / g}, nil
}

// MustNew is like New but panics on error. Intended for literals.
func MustNew(num, den int64) Fraction {
	f, err := New(num, den)
	if err != nil {
		panic(fmt.Sprintf("fraction.MustNew(%d, %d): %v", num, den, err))
	}

	return f
}

// FromInt returns n/1. Like MustNew it is meant for literals: it panics with
// ErrOverflow for math.MinInt64. Use New(n, 1) for untrusted values.
func FromInt(n int64) Fraction {
	if n == math.MinInt64 {
		panic(fmt.Sprintf("fraction.FromInt(%d): %v", n, ErrOverflow))
	}

	return Fraction{num: n, den: 1}
}

// Infinity returns the large-magnitude sentinel math.MaxInt64/1.
// It is a comparison baseline only and must never be used as a real cost.
func Infinity() Fraction {
	return infinity
}

// IsInfinity reports whether f is the Infinity sentinel.
func (f Fraction) IsInfinity() bool {
	return f.num == infinity.num && f.d() == infinity.den
}

// d returns the denominator, treating the zero value as 0/1.
func (f Fraction) d() int64 {
	if f.den == 0 {
		return 1
	}

	return f.den
}

// Num returns the normalized numerator.
func (f Fraction) Num() int64 { return f.num }

// Den returns the normalized denominator (always > 0).
func (f Fraction) Den() int64 { return f.d() }

// Sign returns -1, 0 or +1.
func (f Fraction) Sign() int {
	switch {
	case f.num < 0:
		return -1
	case f.num > 0:
		return 1
	default:
		return 0
	}
}

// IsZero reports whether f == 0.
func (f Fraction) IsZero() bool { return f.num == 0 }

// Neg returns -f. Never overflows: num is never math.MinInt64.
func (f Fraction) Neg() Fraction {
	return Fraction{num: -f.num, den: f.d()}
}

// Add returns f + g.
//
// Implementation:
//   - Stage 1: l = gcd(b, d); scale each numerator by the other's reduced denominator.
//   - Stage 2: checked multiply/add in int64, then normalize.
func (f Fraction) Add(g Fraction) (Fraction, error) {
	a, b := f.num, f.d()
	c, d := g.num, g.d()
	if a == 0 {
		return g.normalized(), nil
	}
	if c == 0 {
		return f.normalized(), nil
	}

	l := int64(gcd(uint64(b), uint64(d)))
	bd, db := b/l, d/l

	left, err := mulInt64(a, db)
	if err != nil {
		return Fraction{}, err
	}
	right, err := mulInt64(c, bd)
	if err != nil {
		return Fraction{}, err
	}
	num, err := addInt64(left, right)
	if err != nil {
		return Fraction{}, err
	}
	den, err := mulInt64(b, db)
	if err != nil {
		return Fraction{}, err
	}

	return New(num, den)
}

// Sub returns f - g.
func (f Fraction) Sub(g Fraction) (Fraction, error) {
	return f.Add(g.Neg())
}

// Mul returns f * g, cross-reducing before multiplying.
func (f Fraction) Mul(g Fraction) (Fraction, error) {
	a, b := f.num, f.d()
	c, d := g.num, g.d()
	if a == 0 || c == 0 {
		return Zero, nil
	}

	g1 := int64(gcd(absU(a), uint64(d)))
	g2 := int64(gcd(absU(c), uint64(b)))

	num, err := mulInt64(a/g1, c/g2)
	if err != nil {
		return Fraction{}, err
	}
	den, err := mulInt64(b/g2, d/g1)
	if err != nil {
		return Fraction{}, err
	}

	return New(num, den)
}

// Div returns f / g, or ErrDivisionByZero when g == 0.
func (f Fraction) Div(g Fraction) (Fraction, error) {
	if g.num == 0 {
		return Fraction{}, ErrDivisionByZero
	}
	inv := Fraction{num: g.d(), den: g.num}
	if inv.den < 0 {
		inv.num, inv.den = -inv.num, -inv.den
	}

	return f.Mul(inv)
}

// Cmp compares f and g and returns -1, 0 or +1.
// It compares |a|·d against |c|·b as 128-bit products and cannot overflow.
func (f Fraction) Cmp(g Fraction) int {
	sf, sg := f.Sign(), g.Sign()
	if sf != sg {
		if sf < sg {
			return -1
		}
		return 1
	}
	if sf == 0 {
		return 0
	}

	lh, ll := bits.Mul64(absU(f.num), uint64(g.d()))
	rh, rl := bits.Mul64(absU(g.num), uint64(f.d()))
	c := cmp128(lh, ll, rh, rl)
	if sf < 0 {
		c = -c
	}

	return c
}

// Equal reports whether f and g denote the same rational.
func (f Fraction) Equal(g Fraction) bool {
	return f.num == g.num && f.d() == g.d()
}

// Less reports f < g.
func (f Fraction) Less(g Fraction) bool { return f.Cmp(g) < 0 }

// LessEq reports f <= g.
func (f Fraction) LessEq(g Fraction) bool { return f.Cmp(g) <= 0 }

// Greater reports f > g.
func (f Fraction) Greater(g Fraction) bool { return f.Cmp(g) > 0 }

// GreaterEq reports f >= g.
func (f Fraction) GreaterEq(g Fraction) bool { return f.Cmp(g) >= 0 }

// String renders "n" when the denominator is 1, else "n/d".
func (f Fraction) String() string {
	if f.d() == 1 {
		return strconv.FormatInt(f.num, 10)
	}

	return strconv.FormatInt(f.num, 10) + "/" + strconv.FormatInt(f.d(), 10)
}

// Parse reads "a", "a/b" or "a / b" (surrounding blanks ignored).
//
// Errors:
//   - ErrSyntax for malformed text.
//   - ErrOverflow when a component does not fit in int64.
//   - ErrDivisionByZero when b == 0.
func Parse(s string) (Fraction, error) {
	text := strings.TrimSpace(s)
	numText, denText, hasDen := strings.Cut(text, "/")

	num, err := parseComponent(numText)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, err)
	}
	den := int64(1)
	if hasDen {
		if den, err = parseComponent(denText); err != nil {
			return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, err)
		}
	}

	f, err := New(num, den)
	if err != nil {
		return Fraction{}, fmt.Errorf("fraction: parse %q: %w", s, err)
	}

	return f, nil
}

// MarshalText implements encoding.TextMarshaler using String.
func (f Fraction) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
func (f *Fraction) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = v

	return nil
}

// normalized maps the zero value onto Zero so results always carry den > 0.
func (f Fraction) normalized() Fraction {
	return Fraction{num: f.num, den: f.d()}
}

func parseComponent(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrSyntax
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow
		}
		return 0, ErrSyntax
	}

	return v, nil
}
