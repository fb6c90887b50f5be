// SPDX-License-Identifier: MIT

package fraction

import "errors"

var (
	// ErrDivisionByZero is returned when a fraction would get a zero denominator,
	// either at construction or by dividing by zero.
	ErrDivisionByZero = errors.New("fraction: division by zero")

	// ErrOverflow is returned when a numerator or denominator does not fit in int64.
	ErrOverflow = errors.New("fraction: int64 overflow")

	// ErrSyntax is returned by Parse for text that is not "a" or "a/b".
	ErrSyntax = errors.New("fraction: invalid syntax")
)
