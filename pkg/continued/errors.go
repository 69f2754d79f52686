package continued

import (
	"golang.org/x/xerrors"
)

var (
	// ErrMalformedInput is returned when an input stream violates the
	// representation rules: a coefficient after the first that is not
	// positive, a digit outside [0, base), or a misplaced marker.
	ErrMalformedInput = xerrors.New("continued: malformed input")

	// ErrZeroDenominator is returned when a rational is built with a zero
	// denominator. It wraps ErrMalformedInput.
	ErrZeroDenominator = xerrors.Errorf("zero denominator: %w", ErrMalformedInput)

	// ErrUndefinedResult is returned when folding an empty coefficient stream.
	// The value of an empty continued fraction is 1/0, which is not a number.
	ErrUndefinedResult = xerrors.New("continued: undefined result for empty coefficient sequence")

	// ErrInvalidBase is returned when a digit base is smaller than 2.
	ErrInvalidBase = xerrors.New("continued: base must be at least 2")
)

func checkBase(base int) error {
	if base < 2 {
		return xerrors.Errorf("base %d: %w", base, ErrInvalidBase)
	}
	return nil
}
