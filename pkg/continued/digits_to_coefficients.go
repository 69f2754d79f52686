package continued

import (
	"math/big"

	"golang.org/x/xerrors"
)

type coefficientPhase int

const (
	coefficientsInteger coefficientPhase = iota
	coefficientsFraction
	coefficientsTail
	coefficientsDone
)

// CoefficientConverter is the coefficient stream produced by
// DigitsToCoefficients.
//
// Algorithm:
//  1. Accumulate integer digits until RadixPoint. For a non-negative value
//     the integer part is the first coefficient and is emitted at once.
//  2. After j fractional digits forming the integer d, the value lies in
//     [I + d/base^j, I + (d+1)/base^j]. Expand both endpoints with
//     RationalToCoefficients, skip the n coefficients already emitted, and
//     emit coefficients while the two expansions agree.
//  3. If the digit stream ends, the value is exactly I + d/base^j; emit the
//     rest of its expansion from index n.
//
// A leading Minus negates the interval. For a negative value the first
// coefficient is not known from the integer digits alone, so it goes
// through the same agreement test as the others.
//
// A digit stream that never narrows the interval enough, such as an
// unbounded run of base-1 digits, keeps Next reading input without emitting.
//
// A CoefficientConverter is not safe for concurrent use.
type CoefficientConverter struct {
	src  DigitStream
	base int
	b    *big.Int

	phase    coefficientPhase
	pending  []*big.Int
	negative bool

	ip       *big.Int // integer part of |x|
	num      *big.Int // fractional digits read so far, as an integer
	scale    *big.Int // base^j after j fractional digits
	bounds   Bounds
	bounded  bool
	emitted  int
	consumed int

	tail CoefficientStream
	cur  *big.Int
	err  error
}

// DigitsToCoefficients converts a digit stream in the given base into the
// continued fraction coefficients of the value it denotes.
//
// A RadixPoint before any digit means an integer part of 0; a stream without
// RadixPoint denotes an integer; an empty stream denotes 0. A digit outside
// [0, base), a second RadixPoint, or a Minus anywhere but first ends the
// stream with ErrMalformedInput.
//
// Example:
//
//	DigitsToCoefficients(ParseDigits("19.191919", 10), 10) // 19, 5, 4, 1, …
func DigitsToCoefficients(ds DigitStream, base int) *CoefficientConverter {
	cc := &CoefficientConverter{
		src:   ds,
		base:  base,
		b:     big.NewInt(int64(base)),
		ip:    new(big.Int),
		num:   new(big.Int),
		scale: big.NewInt(1),
	}
	if err := checkBase(base); err != nil {
		cc.fail(err)
	}
	return cc
}

// Next advances to the next coefficient.
func (cc *CoefficientConverter) Next() bool {
	for {
		if len(cc.pending) > 0 {
			cc.cur = cc.pending[0]
			cc.pending = cc.pending[1:]
			return true
		}
		switch cc.phase {
		case coefficientsInteger:
			cc.readInteger()
		case coefficientsFraction:
			cc.readFraction()
		case coefficientsTail:
			if cc.tail.Next() {
				cc.cur = cc.tail.Value()
				return true
			}
			if err := cc.tail.Err(); err != nil {
				cc.fail(err)
				continue
			}
			cc.phase = coefficientsDone
		case coefficientsDone:
			return false
		}
	}
}

// Value returns the current coefficient. The caller must not modify it.
func (cc *CoefficientConverter) Value() *big.Int {
	return cc.cur
}

// Err returns the error that ended the stream, if any.
func (cc *CoefficientConverter) Err() error {
	return cc.err
}

// Consumed returns the number of digit stream symbols read so far,
// markers included.
func (cc *CoefficientConverter) Consumed() int {
	return cc.consumed
}

// Emitted returns the number of coefficients proven so far.
func (cc *CoefficientConverter) Emitted() int {
	return cc.emitted
}

// Bounds returns the closed interval known to contain the value given the
// digits read so far. It reports false until the radix point has been read,
// since more integer digits could still follow. Once the input has ended the
// interval is a single point.
func (cc *CoefficientConverter) Bounds() (Bounds, bool) {
	return cc.bounds, cc.bounded
}

// read pulls one symbol. It reports false at the end of input, after moving
// to coefficientsDone if the input failed.
func (cc *CoefficientConverter) read() (Digit, bool) {
	if !cc.src.Next() {
		if err := cc.src.Err(); err != nil {
			cc.fail(err)
		}
		return 0, false
	}
	cc.consumed++
	return cc.src.Value(), true
}

func (cc *CoefficientConverter) readInteger() {
	d, ok := cc.read()
	if !ok {
		if cc.phase != coefficientsDone {
			cc.flush()
		}
		return
	}
	switch {
	case d == Minus:
		if cc.consumed != 1 {
			cc.fail(xerrors.Errorf("minus sign at position %d: %w", cc.consumed-1, ErrMalformedInput))
			return
		}
		cc.negative = true
	case d == RadixPoint:
		cc.phase = coefficientsFraction
		cc.updateBounds()
		if !cc.negative {
			// I ≤ x ≤ I+1 and x = I+1 only for an unbounded run of base-1
			// digits, which this converter treats as never terminating.
			cc.pending = append(cc.pending, new(big.Int).Set(cc.ip))
			cc.emitted++
		}
		log.Debugw("integer part read", "integer", cc.ip, "negative", cc.negative, "base", cc.base)
	default:
		if err := cc.checkDigit(d); err != nil {
			cc.fail(err)
			return
		}
		cc.ip.Mul(cc.ip, cc.b)
		cc.ip.Add(cc.ip, big.NewInt(int64(d)))
	}
}

func (cc *CoefficientConverter) readFraction() {
	d, ok := cc.read()
	if !ok {
		if cc.phase != coefficientsDone {
			cc.flush()
		}
		return
	}
	if d.IsMarker() {
		cc.fail(xerrors.Errorf("marker %q after the radix point at position %d: %w", d.String(), cc.consumed-1, ErrMalformedInput))
		return
	}
	if err := cc.checkDigit(d); err != nil {
		cc.fail(err)
		return
	}
	cc.num.Mul(cc.num, cc.b)
	cc.num.Add(cc.num, big.NewInt(int64(d)))
	cc.scale.Mul(cc.scale, cc.b)
	cc.updateBounds()
	cc.confirm()
}

// updateBounds recomputes [I + d/base^j, I + (d+1)/base^j], negated and
// swapped for a negative value.
func (cc *CoefficientConverter) updateBounds() {
	low := new(big.Int).Mul(cc.ip, cc.scale)
	low.Add(low, cc.num)
	high := new(big.Int).Add(low, one)
	lower := Rational{v: new(big.Rat).SetFrac(low, cc.scale)}
	upper := Rational{v: new(big.Rat).SetFrac(high, cc.scale)}
	if cc.negative {
		lower, upper = upper.Neg(), lower.Neg()
	}
	cc.bounds = Bounds{Lower: lower, Upper: upper}
	cc.bounded = true
}

// exactValue is the value denoted by the digits read so far, assuming
// nothing follows.
func (cc *CoefficientConverter) exactValue() Rational {
	if cc.negative {
		return cc.bounds.Upper
	}
	return cc.bounds.Lower
}

// confirm emits the coefficients on which both endpoint expansions agree.
func (cc *CoefficientConverter) confirm() {
	xs := Skip(RationalToCoefficients(cc.bounds.Lower), cc.emitted)
	ys := Skip(RationalToCoefficients(cc.bounds.Upper), cc.emitted)
	for xs.Next() && ys.Next() {
		a := xs.Value()
		if a.Cmp(ys.Value()) != 0 {
			return
		}
		cc.pending = append(cc.pending, a)
		cc.emitted++
	}
}

// flush emits the remaining coefficients of the exact value once the digit
// stream has ended. Without a radix point the value is the integer read so
// far.
func (cc *CoefficientConverter) flush() {
	cc.updateBounds()
	x := cc.exactValue()
	cc.bounds = Bounds{Lower: x, Upper: x}
	log.Debugw("flushing exact value", "value", x, "emitted", cc.emitted, "digits", cc.consumed)
	cc.tail = Skip(RationalToCoefficients(x), cc.emitted)
	cc.phase = coefficientsTail
}

func (cc *CoefficientConverter) checkDigit(d Digit) error {
	if d < 0 || int(d) >= cc.base {
		return xerrors.Errorf("digit %d at position %d out of range for base %d: %w", int(d), cc.consumed-1, cc.base, ErrMalformedInput)
	}
	return nil
}

func (cc *CoefficientConverter) fail(err error) {
	cc.err = xerrors.Errorf("converting digits to coefficients: %w", err)
	cc.pending = nil
	cc.phase = coefficientsDone
	log.Debugw("coefficient conversion failed", "error", err, "digits", cc.consumed)
}
