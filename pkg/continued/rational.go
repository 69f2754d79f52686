package continued

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

// Rational is an exact rational number with arbitrary precision numerator and
// denominator.
//
// Rationals are immutable: every operation returns a new value and the
// underlying big.Rat is never handed out for mutation. They are always stored
// in normalized form (reduced to lowest terms, positive denominator), which
// math/big guarantees. The zero value is 0.
//
// Common examples:
//
//	123456/1000 = 15432/125 = 123.456 = [123; 2, 5, 5, 2]
//	10/3        = 3.333…    = [3; 3]
//	1900/99     = 19.1919…  = [19; 5, 4, 1, 3]
type Rational struct {
	v *big.Rat
}

// NewRational creates the rational number num/den in normalized form.
// Returns ErrZeroDenominator if den is zero.
//
// Examples:
//
//	NewRational(6, 8) → 3/4
//	NewRational(-6, 8) → -3/4
//	NewRational(6, -8) → -3/4
//	NewRational(0, 5) → 0
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, xerrors.Errorf("rational %d/0: %w", num, ErrZeroDenominator)
	}
	return Rational{v: big.NewRat(num, den)}, nil
}

// NewRationalBig creates the rational number num/den from big integers.
// The arguments are not retained. Returns ErrZeroDenominator if den is zero.
func NewRationalBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, xerrors.Errorf("rational %s/0: %w", num, ErrZeroDenominator)
	}
	return Rational{v: new(big.Rat).SetFrac(num, den)}, nil
}

// RationalFromRat copies x into a Rational.
func RationalFromRat(x *big.Rat) Rational {
	return Rational{v: new(big.Rat).Set(x)}
}

// IntegerRational returns the integer n as a Rational.
func IntegerRational(n *big.Int) Rational {
	return Rational{v: new(big.Rat).SetInt(n)}
}

// ParseRational parses "p/q", an integer "p", or a finite decimal such as
// "123.456".
func ParseRational(s string) (Rational, error) {
	s = strings.TrimSpace(s)
	if num, den, ok := strings.Cut(s, "/"); ok {
		n, ok := new(big.Int).SetString(strings.TrimSpace(num), 10)
		if !ok {
			return Rational{}, xerrors.Errorf("parsing numerator %q: %w", num, ErrMalformedInput)
		}
		d, ok := new(big.Int).SetString(strings.TrimSpace(den), 10)
		if !ok {
			return Rational{}, xerrors.Errorf("parsing denominator %q: %w", den, ErrMalformedInput)
		}
		return NewRationalBig(n, d)
	}
	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, xerrors.Errorf("parsing rational %q: %w", s, ErrMalformedInput)
	}
	return Rational{v: v}, nil
}

func (r Rational) rat() *big.Rat {
	if r.v == nil {
		return new(big.Rat)
	}
	return r.v
}

// Num returns a copy of the numerator. Its sign is the sign of r.
func (r Rational) Num() *big.Int {
	return new(big.Int).Set(r.rat().Num())
}

// Den returns a copy of the denominator, which is always positive.
func (r Rational) Den() *big.Int {
	return new(big.Int).Set(r.rat().Denom())
}

// Rat returns a copy of r as a big.Rat.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).Set(r.rat())
}

// Floor returns the largest integer not greater than r.
func (r Rational) Floor() *big.Int {
	x := r.rat()
	// Euclidean division with a positive divisor rounds toward -∞.
	return new(big.Int).Div(x.Num(), x.Denom())
}

// Add returns r + other.
func (r Rational) Add(other Rational) Rational {
	return Rational{v: new(big.Rat).Add(r.rat(), other.rat())}
}

// Sub returns r - other.
func (r Rational) Sub(other Rational) Rational {
	return Rational{v: new(big.Rat).Sub(r.rat(), other.rat())}
}

// Mul returns r * other.
func (r Rational) Mul(other Rational) Rational {
	return Rational{v: new(big.Rat).Mul(r.rat(), other.rat())}
}

// Inv returns 1/r. Returns ErrZeroDenominator if r is zero.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, xerrors.Errorf("inverting zero: %w", ErrZeroDenominator)
	}
	return Rational{v: new(big.Rat).Inv(r.rat())}, nil
}

// Neg returns -r.
func (r Rational) Neg() Rational {
	return Rational{v: new(big.Rat).Neg(r.rat())}
}

// Cmp compares r and other and returns -1, 0 or +1.
func (r Rational) Cmp(other Rational) int {
	return r.rat().Cmp(other.rat())
}

// Sign returns -1, 0 or +1 depending on the sign of r.
func (r Rational) Sign() int {
	return r.rat().Sign()
}

// IsZero returns true if r is zero.
func (r Rational) IsZero() bool {
	return r.rat().Sign() == 0
}

// IsInteger returns true if the denominator of r is 1.
func (r Rational) IsInteger() bool {
	return r.rat().IsInt()
}

// Equals returns true if two rational numbers are equal.
func (r Rational) Equals(other Rational) bool {
	return r.Cmp(other) == 0
}

// String returns "num/den" for non-integers and "num" for integers.
//
// Examples:
//
//	3/4 → "3/4"
//	6/1 → "6"
//	-5/2 → "-5/2"
func (r Rational) String() string {
	x := r.rat()
	if x.IsInt() {
		return x.Num().String()
	}
	return x.String()
}

// FloatString returns a decimal rendering of r rounded to prec digits after
// the point. Intended for display only.
func (r Rational) FloatString(prec int) string {
	return r.rat().FloatString(prec)
}
