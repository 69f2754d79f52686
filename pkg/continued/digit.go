package continued

import (
	"math/big"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/xerrors"
)

// Digit is one symbol of a positional digit stream: a digit value in
// [0, base), or one of the markers RadixPoint and Minus.
type Digit int

const (
	// RadixPoint separates the integer digits from the fractional digits.
	// It appears exactly once in every digit stream.
	RadixPoint Digit = -1

	// Minus marks a negative value. When present it is the first symbol and
	// the digits that follow are those of the absolute value.
	Minus Digit = -2
)

// IsMarker reports whether d is RadixPoint or Minus rather than a digit.
func (d Digit) IsMarker() bool {
	return d < 0
}

// String renders digits 0-9 as decimal numerals, 10-35 as lowercase letters
// and larger digits as a parenthesized decimal number.
func (d Digit) String() string {
	switch {
	case d == RadixPoint:
		return "."
	case d == Minus:
		return "-"
	case d < 10:
		return strconv.Itoa(int(d))
	case d < 36:
		return string(rune('a' + d - 10))
	default:
		return "(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDigit converts a character into a Digit in the given base. Digits are
// 0-9 followed by a-z (case-insensitive), so text input supports bases up to
// 36. '.' and '-' map to RadixPoint and Minus.
func ParseDigit(r rune, base int) (Digit, error) {
	var v int
	switch {
	case r == '.':
		return RadixPoint, nil
	case r == '-':
		return Minus, nil
	case '0' <= r && r <= '9':
		v = int(r - '0')
	case 'a' <= unicode.ToLower(r) && unicode.ToLower(r) <= 'z':
		v = int(unicode.ToLower(r)-'a') + 10
	default:
		return 0, xerrors.Errorf("character %q is not a digit: %w", r, ErrMalformedInput)
	}
	if v >= base {
		return 0, xerrors.Errorf("digit %q out of range for base %d: %w", r, base, ErrMalformedInput)
	}
	return Digit(v), nil
}

// ParseDigits returns a digit stream over the characters of s. Whitespace is
// ignored. Malformed characters surface as a stream error when reached.
//
// Example:
//
//	ParseDigits("19.1919", 10)
func ParseDigits(s string, base int) DigitStream {
	runes := []rune(s)
	i := 0
	return &generator[Digit]{step: func() (Digit, bool, error) {
		for i < len(runes) && unicode.IsSpace(runes[i]) {
			i++
		}
		if i >= len(runes) {
			return 0, false, nil
		}
		d, err := ParseDigit(runes[i], base)
		if err != nil {
			return 0, false, xerrors.Errorf("position %d: %w", i, err)
		}
		i++
		return d, true, nil
	}}
}

// FormatDigits renders up to n symbols of ds as a string. n <= 0 renders the
// whole stream, which must then be finite.
func FormatDigits(ds DigitStream, n int) (string, error) {
	if n > 0 {
		ds = Take(ds, n)
	}
	var sb strings.Builder
	err := Each(ds, func(d Digit) bool {
		sb.WriteString(d.String())
		return true
	})
	return sb.String(), err
}

// integerDigits returns the base-b digits of the non-negative integer n,
// most significant first. Zero has the single digit 0.
func integerDigits(n *big.Int, base int) []Digit {
	if n.Sign() == 0 {
		return []Digit{0}
	}
	b := big.NewInt(int64(base))
	q := new(big.Int).Set(n)
	r := new(big.Int)
	var out []Digit
	for q.Sign() > 0 {
		q.QuoRem(q, b, r)
		out = append(out, Digit(r.Int64()))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
