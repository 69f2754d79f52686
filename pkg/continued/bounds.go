package continued

import (
	"fmt"
)

// Bounds is a closed interval [Lower, Upper] of exact rationals known to
// contain a value that has only been partially read.
//
// Mathematical Properties:
//   - Lower ≤ Upper
//   - Each converter's bounds never widen as more input is consumed
//   - For unbounded, non-degenerate input the width tends to zero
type Bounds struct {
	Lower Rational
	Upper Rational
}

// NewBounds returns the interval spanned by a and b in either order.
func NewBounds(a, b Rational) Bounds {
	if a.Cmp(b) > 0 {
		a, b = b, a
	}
	return Bounds{Lower: a, Upper: b}
}

// Width returns Upper - Lower.
func (b Bounds) Width() Rational {
	return b.Upper.Sub(b.Lower)
}

// Contains reports whether x lies in the closed interval.
func (b Bounds) Contains(x Rational) bool {
	return b.Lower.Cmp(x) <= 0 && x.Cmp(b.Upper) <= 0
}

// Within reports whether b is nested inside outer.
func (b Bounds) Within(outer Bounds) bool {
	return outer.Contains(b.Lower) && outer.Contains(b.Upper)
}

// IsPoint reports whether the interval has collapsed to a single value.
func (b Bounds) IsPoint() bool {
	return b.Lower.Equals(b.Upper)
}

// String returns a human-readable representation of the interval.
func (b Bounds) String() string {
	return fmt.Sprintf("[%s, %s]", b.Lower, b.Upper)
}
