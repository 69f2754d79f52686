package continued

import (
	"math/big"

	"golang.org/x/xerrors"
)

type digitPhase int

const (
	digitsInteger digitPhase = iota
	digitsFraction
	digitsTail
	digitsDone
)

// DigitConverter is the digit stream produced by CoefficientsToDigits.
//
// Algorithm:
//  1. Read a0 and a1, and a2 when a1 is 1, to tell the integers [a0] and
//     [a0; 1] from longer expansions. Emit the integer digits and RadixPoint.
//  2. For each further coefficient a, fold it into a convergent h/k and
//     form the bumped convergent (h+h')/(k+k') obtained by replacing a with
//     a+1. Every continuation of the coefficient stream lies between the two.
//  3. At scale K = base^(j+1), where j digits have been emitted, compare
//     floor(K·(lower−I)) and floor(K·(upper−I)). While they agree the next
//     digit is proven; emit it and multiply K by base. A single coefficient
//     may prove several digits or none. Extraction pauses while either
//     endpoint is exactly the value of the digits emitted so far, since the
//     input may end on that endpoint and no digit follows it.
//  4. If the coefficient stream ends, the last convergent is the exact value;
//     the digits still owed are produced by long division of the leftover.
//
// Negative values are emitted as Minus followed by the digits of |x|. Past
// the integer part coefficients are read one at a time, only when no further
// digit can be proven without them.
//
// A DigitConverter is not safe for concurrent use.
type DigitConverter struct {
	src  CoefficientStream
	base int
	b    *big.Int

	phase   digitPhase
	pending []Digit
	fresh   bool // conv holds a coefficient that has not been tested yet

	conv     Convergent
	consumed int
	sign     int      // +1 or -1, the sign of the value
	ip       *big.Int // integer part of |x|
	scale    *big.Int // base^j after j fractional digits
	acc      *big.Int // floor(scale·(|x|−ip)), the fractional digits so far
	exact    bool     // the coefficient stream has ended

	tail DigitStream
	cur  Digit
	err  error
}

// CoefficientsToDigits converts a coefficient stream into its positional
// digits in the given base. The result is unbounded when cs is unbounded,
// and finite when the value terminates in base.
//
// A coefficient after the first that is not positive ends the stream with
// ErrMalformedInput; an empty coefficient stream ends it with
// ErrUndefinedResult; a base below 2 with ErrInvalidBase.
//
// Example:
//
//	CoefficientsToDigits(Ints(123, 2, 5, 5, 2), 10) // 1 2 3 . 4 5 6
func CoefficientsToDigits(cs CoefficientStream, base int) *DigitConverter {
	dc := &DigitConverter{
		src:   validated(cs),
		base:  base,
		b:     big.NewInt(int64(base)),
		conv:  NewConvergent(),
		sign:  1,
		scale: big.NewInt(1),
		acc:   new(big.Int),
	}
	if err := checkBase(base); err != nil {
		dc.fail(err)
	}
	return dc
}

// Next advances to the next digit or marker.
func (dc *DigitConverter) Next() bool {
	for {
		if len(dc.pending) > 0 {
			dc.cur = dc.pending[0]
			dc.pending = dc.pending[1:]
			return true
		}
		switch dc.phase {
		case digitsInteger:
			dc.readInteger()
		case digitsFraction:
			if dc.fresh {
				dc.fresh = false
				dc.extract()
				continue
			}
			if _, ok := dc.pull(); !ok {
				if dc.phase != digitsDone {
					dc.startTail()
				}
				continue
			}
			dc.fresh = true
		case digitsTail:
			if dc.tail.Next() {
				dc.cur = dc.tail.Value()
				return true
			}
			dc.phase = digitsDone
		case digitsDone:
			return false
		}
	}
}

// Value returns the current digit or marker.
func (dc *DigitConverter) Value() Digit {
	return dc.cur
}

// Err returns the error that ended the stream, if any.
func (dc *DigitConverter) Err() error {
	return dc.err
}

// Consumed returns the number of coefficients read from the input so far.
// A malformed coefficient is not counted.
func (dc *DigitConverter) Consumed() int {
	return dc.consumed
}

// Bounds returns the closed interval known to contain the value given the
// coefficients read so far. It reports false before the first coefficient.
// Once the input has ended the interval is a single point.
func (dc *DigitConverter) Bounds() (Bounds, bool) {
	if dc.exact {
		v, ok := dc.conv.Value()
		return Bounds{Lower: v, Upper: v}, ok
	}
	return dc.conv.Bounds()
}

// pull reads one coefficient into the convergent. It reports false when the
// input has ended, after moving to digitsDone if it ended with an error.
func (dc *DigitConverter) pull() (*big.Int, bool) {
	if !dc.src.Next() {
		if err := dc.src.Err(); err != nil {
			dc.fail(err)
		} else {
			dc.exact = true
		}
		return nil, false
	}
	a := dc.src.Value()
	dc.conv = dc.conv.Push(a)
	dc.consumed++
	return a, true
}

func (dc *DigitConverter) readInteger() {
	a0, ok := dc.pull()
	if !ok {
		if dc.phase != digitsDone {
			dc.fail(ErrUndefinedResult)
		}
		return
	}

	// [a0] and [a0; 1] = a0+1 are integers. Any longer expansion has a
	// fractional part strictly between 0 and 1.
	a1, ok := dc.pull()
	if !ok {
		if dc.phase != digitsDone {
			dc.emitInteger(a0)
		}
		return
	}
	if a1.Cmp(one) == 0 {
		if _, ok := dc.pull(); !ok {
			if dc.phase != digitsDone {
				dc.emitInteger(new(big.Int).Add(a0, one))
			}
			return
		}
	}

	dc.ip = new(big.Int).Set(a0)
	if a0.Sign() < 0 {
		// |x| lies strictly between -a0-1 and -a0.
		dc.sign = -1
		dc.ip.Neg(dc.ip).Sub(dc.ip, one)
		dc.pending = append(dc.pending, Minus)
	}
	dc.pending = append(dc.pending, integerDigits(dc.ip, dc.base)...)
	dc.pending = append(dc.pending, RadixPoint)
	dc.phase = digitsFraction
	dc.fresh = true
	log.Debugw("integer part emitted", "integer", dc.ip, "negative", dc.sign < 0, "base", dc.base, "coefficients", dc.consumed)
}

// emitInteger finishes the stream with the digits of the integer v.
func (dc *DigitConverter) emitInteger(v *big.Int) {
	dc.ip = new(big.Int).Abs(v)
	if v.Sign() < 0 {
		dc.sign = -1
		dc.pending = append(dc.pending, Minus)
	}
	dc.pending = append(dc.pending, integerDigits(dc.ip, dc.base)...)
	dc.pending = append(dc.pending, RadixPoint)
	dc.phase = digitsDone
	log.Debugw("integer value emitted", "value", v, "coefficients", dc.consumed)
}

// extract emits every digit the current interval proves.
func (dc *DigitConverter) extract() {
	c := dc.conv
	hb := new(big.Int).Add(c.H, c.HPrev)
	kb := new(big.Int).Add(c.K, c.KPrev)
	for {
		if dc.leftover(c.H, c.K).Sign() == 0 || dc.leftover(hb, kb).Sign() == 0 {
			return
		}
		next := new(big.Int).Mul(dc.scale, dc.b)
		lo := dc.floorScaled(c.H, c.K, next)
		hi := dc.floorScaled(hb, kb, next)
		if lo.Cmp(hi) != 0 {
			return
		}
		d := new(big.Int).Mul(dc.acc, dc.b)
		d.Sub(lo, d)
		dc.pending = append(dc.pending, Digit(d.Int64()))
		dc.acc = lo
		dc.scale = next
	}
}

// floorScaled returns floor(scale·(sign·h/k − ip)) for k > 0.
func (dc *DigitConverter) floorScaled(h, k, scale *big.Int) *big.Int {
	n := dc.offset(h, k)
	n.Mul(n, scale)
	return n.Div(n, k)
}

// offset returns k·(sign·h/k − ip), the fractional part of |h/k| times k.
func (dc *DigitConverter) offset(h, k *big.Int) *big.Int {
	n := new(big.Int).Mul(dc.ip, k)
	if dc.sign < 0 {
		n.Add(n, h)
		return n.Neg(n)
	}
	return n.Sub(h, n)
}

// leftover returns k·(scale·(|h/k|−ip) − acc): what remains of h/k after
// the digits emitted so far, scaled by k. It is zero when h/k has no digits
// beyond them.
func (dc *DigitConverter) leftover(h, k *big.Int) *big.Int {
	n := dc.offset(h, k)
	n.Mul(n, dc.scale)
	return n.Sub(n, new(big.Int).Mul(dc.acc, k))
}

// startTail switches to long division of the exact leftover once the
// coefficient stream has ended: scale·(|x|−ip) − acc, which lies in [0, 1).
func (dc *DigitConverter) startTail() {
	c := dc.conv
	num := dc.leftover(c.H, c.K)
	log.Debugw("flushing exact remainder", "coefficients", dc.consumed, "remainder", num, "denominator", c.K)
	dc.tail = fractionDigits(num, new(big.Int).Set(c.K), dc.base)
	dc.phase = digitsTail
}

func (dc *DigitConverter) fail(err error) {
	dc.err = xerrors.Errorf("converting coefficients to digits: %w", err)
	dc.pending = nil
	dc.phase = digitsDone
	log.Debugw("digit conversion failed", "error", err, "coefficients", dc.consumed)
}
