package continued

import (
	"math/big"
)

// Golden returns the unbounded coefficient stream [1; 1, 1, 1, …] of the
// golden ratio φ = (1+√5)/2.
func Golden() CoefficientStream {
	return Periodic(nil, []int64{1})
}

// Sqrt2 returns the unbounded coefficient stream [1; 2, 2, 2, …] of √2.
func Sqrt2() CoefficientStream {
	return Periodic([]int64{1}, []int64{2})
}

// Periodic returns the unbounded stream that yields prefix once and then
// repeats period forever. Every quadratic irrational has such an expansion,
// for example √7 = [2; 1, 1, 1, 4, 1, 1, 1, 4, …]:
//
//	Periodic([]int64{2}, []int64{1, 1, 1, 4})
//
// An empty period makes the stream finite.
func Periodic(prefix, period []int64) CoefficientStream {
	i := 0
	return FromFunc(func() (*big.Int, bool) {
		defer func() { i++ }()
		if i < len(prefix) {
			return big.NewInt(prefix[i]), true
		}
		if len(period) == 0 {
			return nil, false
		}
		return big.NewInt(period[(i-len(prefix))%len(period)]), true
	})
}

// E returns the unbounded coefficient stream of Euler's number,
// [2; 1, 2, 1, 1, 4, 1, 1, 6, 1, …].
func E() CoefficientStream {
	i := 0
	return FromFunc(func() (*big.Int, bool) {
		defer func() { i++ }()
		switch {
		case i == 0:
			return big.NewInt(2), true
		case i%3 == 2:
			return big.NewInt(int64(2 * (i + 1) / 3)), true
		default:
			return big.NewInt(1), true
		}
	})
}
