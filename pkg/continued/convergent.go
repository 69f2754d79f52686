package continued

import (
	"math/big"
)

// Convergent is the running state of the continued fraction recurrence
//
//	h(n) = a(n)·h(n-1) + h(n-2)
//	k(n) = a(n)·k(n-1) + k(n-2)
//
// after folding some prefix a0, …, an. Its value is the exact rational H/K.
// Consecutive pairs satisfy H·KPrev − HPrev·K = ±1, so H/K is always in
// lowest terms.
//
// A Convergent is a value: Push never mutates the receiver or the argument.
type Convergent struct {
	H, K         *big.Int
	HPrev, KPrev *big.Int
}

// NewConvergent returns the seed state (1, 0, 0, 1): the empty continued
// fraction, whose value is 1/0.
func NewConvergent() Convergent {
	return Convergent{
		H:     big.NewInt(1),
		K:     big.NewInt(0),
		HPrev: big.NewInt(0),
		KPrev: big.NewInt(1),
	}
}

// Push folds one more coefficient into the state in O(1) big-integer
// operations.
func (c Convergent) Push(a *big.Int) Convergent {
	h := new(big.Int).Mul(a, c.H)
	h.Add(h, c.HPrev)
	k := new(big.Int).Mul(a, c.K)
	k.Add(k, c.KPrev)
	return Convergent{H: h, K: k, HPrev: c.H, KPrev: c.K}
}

// IsSeed reports whether no coefficient has been folded in yet.
func (c Convergent) IsSeed() bool {
	return c.K.Sign() == 0
}

// Value returns H/K. It reports false for the seed state.
func (c Convergent) Value() (Rational, bool) {
	if c.IsSeed() {
		return Rational{}, false
	}
	return Rational{v: new(big.Rat).SetFrac(c.H, c.K)}, true
}

// Bump returns the value the state would have if its last coefficient were
// one larger: (H+HPrev)/(K+KPrev). Increasing the last partial quotient by
// one moves the convergent to the other side of every continuation, so
// Value and Bump bracket the true value. Reports false for the seed state.
func (c Convergent) Bump() (Rational, bool) {
	if c.IsSeed() {
		return Rational{}, false
	}
	h := new(big.Int).Add(c.H, c.HPrev)
	k := new(big.Int).Add(c.K, c.KPrev)
	return Rational{v: new(big.Rat).SetFrac(h, k)}, true
}

// Bounds returns the closed interval between Value and Bump, ordered.
func (c Convergent) Bounds() (Bounds, bool) {
	lo, ok := c.Value()
	if !ok {
		return Bounds{}, false
	}
	hi, _ := c.Bump()
	return NewBounds(lo, hi), true
}

// Determinant returns H·KPrev − HPrev·K, which is +1 or -1 for every state
// reachable from NewConvergent.
func (c Convergent) Determinant() *big.Int {
	d := new(big.Int).Mul(c.H, c.KPrev)
	return d.Sub(d, new(big.Int).Mul(c.HPrev, c.K))
}
