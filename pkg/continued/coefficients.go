package continued

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var one = big.NewInt(1)

// RationalToCoefficients returns the continued fraction expansion of x by
// the Euclidean algorithm:
//
//	a = floor(x); yield a; stop if x == a; otherwise continue with 1/(x-a)
//
// The stream is finite for every rational. An integer yields exactly one
// coefficient. The last coefficient of a non-integer expansion is always at
// least 2.
//
// Examples:
//
//	15432/125 → 123, 2, 5, 5, 2
//	-7/3      → -3, 1, 2
func RationalToCoefficients(x Rational) CoefficientStream {
	p, q := x.Num(), x.Den()
	done := false
	return &generator[*big.Int]{step: func() (*big.Int, bool, error) {
		if done {
			return nil, false, nil
		}
		// q > 0 throughout, so Euclidean division is floor division and
		// the remainder lands in [0, q).
		a, r := new(big.Int).DivMod(p, q, new(big.Int))
		if r.Sign() == 0 {
			done = true
		} else {
			p, q = q, r
		}
		return a, true, nil
	}}
}

// FractionToCoefficients is RationalToCoefficients for num/den. It returns
// ErrZeroDenominator when den is zero.
func FractionToCoefficients(num, den int64) (CoefficientStream, error) {
	x, err := NewRational(num, den)
	if err != nil {
		return nil, err
	}
	return RationalToCoefficients(x), nil
}

// CoefficientsToRational folds a finite coefficient stream into the exact
// rational it represents, using the convergent recurrence.
//
// Returns ErrUndefinedResult for an empty stream and ErrMalformedInput if a
// coefficient after the first is not positive. The stream must be finite;
// wrap unbounded generators in Take.
func CoefficientsToRational(cs CoefficientStream) (Rational, error) {
	c := NewConvergent()
	vs := validated(cs)
	for vs.Next() {
		c = c.Push(vs.Value())
	}
	if err := vs.Err(); err != nil {
		return Rational{}, err
	}
	v, ok := c.Value()
	if !ok {
		return Rational{}, ErrUndefinedResult
	}
	return v, nil
}

// validated passes cs through unchanged and fails the stream at the first
// coefficient that breaks the continued fraction convention.
func validated(cs CoefficientStream) CoefficientStream {
	index := 0
	return &generator[*big.Int]{step: func() (*big.Int, bool, error) {
		if !cs.Next() {
			return nil, false, cs.Err()
		}
		a := cs.Value()
		if a == nil {
			return nil, false, xerrors.Errorf("coefficient %d is nil: %w", index, ErrMalformedInput)
		}
		if index > 0 && a.Sign() <= 0 {
			return nil, false, xerrors.Errorf("coefficient %d is %s, want a positive integer: %w", index, a, ErrMalformedInput)
		}
		index++
		return a, true, nil
	}}
}

// FormatCoefficients renders up to n coefficients of cs in the usual
// [a0; a1, a2, …] notation. n <= 0 renders the whole stream, which must then
// be finite. A trailing "…" marks a stream cut short by n.
func FormatCoefficients(cs CoefficientStream, n int) (string, error) {
	var sb strings.Builder
	sb.WriteByte('[')
	i := 0
	err := Each(cs, func(a *big.Int) bool {
		if n > 0 && i == n {
			sb.WriteString(", …")
			return false
		}
		switch i {
		case 0:
		case 1:
			sb.WriteString("; ")
		default:
			sb.WriteString(", ")
		}
		sb.WriteString(a.String())
		i++
		return true
	})
	sb.WriteByte(']')
	return sb.String(), err
}
