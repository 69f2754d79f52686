package continued

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

// digitString renders up to n symbols of ds; n <= 0 drains the stream.
func digitString(t *testing.T, ds DigitStream, n int) string {
	t.Helper()
	s, err := FormatDigits(ds, n)
	require.NoError(t, err)
	return s
}

// int64s drains up to n coefficients of cs; n <= 0 drains the stream.
func int64s(t *testing.T, cs CoefficientStream, n int) []int64 {
	t.Helper()
	if n > 0 {
		cs = Take(cs, n)
	}
	vs, err := Collect(cs)
	require.NoError(t, err)
	out := make([]int64, len(vs))
	for i, v := range vs {
		require.True(t, v.IsInt64(), "coefficient %d = %s does not fit in int64", i, v)
		out[i] = v.Int64()
	}
	return out
}

func mustRational(t *testing.T, num, den int64) Rational {
	t.Helper()
	r, err := NewRational(num, den)
	require.NoError(t, err)
	return r
}

func mustParse(t *testing.T, s string) Rational {
	t.Helper()
	r, err := ParseRational(s)
	require.NoError(t, err)
	return r
}

func bigInts(values ...int64) []*big.Int {
	out := make([]*big.Int, len(values))
	for i, v := range values {
		out[i] = big.NewInt(v)
	}
	return out
}

// counting wraps a stream and records how many values were pulled from it.
type counting[T any] struct {
	Stream[T]
	pulled int
}

func (c *counting[T]) Next() bool {
	if c.Stream.Next() {
		c.pulled++
		return true
	}
	return false
}
