package continued

import (
	"math/big"
)

// RationalToDigits expands x in the given base by exact long division: the
// integer digits most significant first, a RadixPoint, then one fractional
// digit per pull until the remainder is exactly zero. A negative x starts
// with Minus followed by the digits of |x|.
//
// The stream is finite when every prime factor of the reduced denominator
// divides base, and unbounded (eventually periodic) otherwise.
//
// Examples (base 10):
//
//	15432/125 → 1 2 3 . 4 5 6
//	10/3      → 3 . 3 3 3 …
//	5         → 5 .
func RationalToDigits(x Rational, base int) DigitStream {
	if err := checkBase(base); err != nil {
		return Fail[Digit](err)
	}
	var head []Digit
	if x.Sign() < 0 {
		head = append(head, Minus)
		x = x.Neg()
	}
	ip := x.Floor()
	head = append(head, integerDigits(ip, base)...)
	head = append(head, RadixPoint)

	rem := new(big.Int).Mul(ip, x.Den())
	rem.Sub(x.Num(), rem)
	return Concat(FromSlice(head), fractionDigits(rem, x.Den(), base))
}

// fractionDigits yields the base digits of num/den, which must lie in
// [0, 1), stopping once the remainder is zero. num is consumed.
func fractionDigits(num, den *big.Int, base int) DigitStream {
	b := big.NewInt(int64(base))
	d, r := new(big.Int), new(big.Int)
	return &generator[Digit]{step: func() (Digit, bool, error) {
		if num.Sign() == 0 {
			return 0, false, nil
		}
		num.Mul(num, b)
		d.QuoRem(num, den, r)
		num, r = r, num
		return Digit(d.Int64()), true, nil
	}}
}
