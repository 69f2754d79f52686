package continued

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRationalToCoefficients(t *testing.T) {
	tests := []struct {
		in   string
		want []int64
	}{
		{in: "123456/1000", want: []int64{123, 2, 5, 5, 2}},
		{in: "10/3", want: []int64{3, 3}},
		{in: "1900/99", want: []int64{19, 5, 4, 1, 3}},
		{in: "7", want: []int64{7}},
		{in: "0", want: []int64{0}},
		{in: "-7/3", want: []int64{-3, 1, 2}},
		{in: "-9/4", want: []int64{-3, 1, 3}},
		{in: "-1/2", want: []int64{-1, 2}},
		{in: "1/1000000", want: []int64{0, 1000000}},
		{in: "355/113", want: []int64{3, 7, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.want, int64s(t, RationalToCoefficients(mustParse(t, tt.in)), 0))
		})
	}
}

func TestFractionToCoefficients(t *testing.T) {
	cs, err := FractionToCoefficients(123456, 1000)
	require.NoError(t, err)
	require.Equal(t, []int64{123, 2, 5, 5, 2}, int64s(t, cs, 0))

	_, err = FractionToCoefficients(1, 0)
	require.ErrorIs(t, err, ErrZeroDenominator)
}

func TestCoefficientsToRational(t *testing.T) {
	tests := []struct {
		name string
		cs   CoefficientStream
		want string
	}{
		{name: "terminating_decimal", cs: Ints(123, 2, 5, 5, 2), want: "15432/125"},
		{name: "thirds", cs: Ints(3, 3), want: "10/3"},
		{name: "periodic_decimal", cs: Ints(19, 5, 4, 1, 3), want: "1900/99"},
		{name: "trailing_one", cs: Ints(19, 5, 4, 1, 2, 1), want: "1900/99"},
		{name: "single", cs: Ints(-4), want: "-4"},
		{name: "negative", cs: Ints(-3, 1, 2), want: "-7/3"},
		{name: "golden_prefix", cs: Take(Golden(), 10), want: "89/55"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := CoefficientsToRational(tt.cs)
			require.NoError(t, err)
			require.Equal(t, tt.want, r.String())
		})
	}
}

func TestCoefficientsToRationalEmpty(t *testing.T) {
	r, err := CoefficientsToRational(Ints())
	require.ErrorIs(t, err, ErrUndefinedResult)
	require.True(t, r.IsZero())
}

func TestCoefficientsToRationalMalformed(t *testing.T) {
	for _, cs := range [][]int64{{1, 0}, {1, 2, -3}, {0, 0}} {
		_, err := CoefficientsToRational(Ints(cs...))
		require.ErrorIs(t, err, ErrMalformedInput, "%v", cs)
	}
	_, err := CoefficientsToRational(FromSlice([]*big.Int{big.NewInt(1), nil}))
	require.ErrorIs(t, err, ErrMalformedInput)
}

func TestCoefficientRoundTrip(t *testing.T) {
	// Any sequence whose last coefficient exceeds 1 is its own canonical
	// expansion.
	sequences := [][]int64{
		{123, 2, 5, 5, 2},
		{3, 3},
		{19, 5, 4, 1, 3},
		{0, 1, 1, 1, 1, 1, 1, 1, 1, 2},
		{-5, 7, 1, 12},
		{42},
		{1, 1000000007, 3, 999999999999},
	}
	for _, cs := range sequences {
		r, err := CoefficientsToRational(Ints(cs...))
		require.NoError(t, err)
		require.Equal(t, cs, int64s(t, RationalToCoefficients(r), 0))
	}
}

func TestFormatCoefficients(t *testing.T) {
	s, err := FormatCoefficients(Ints(19, 5, 4, 1, 3), 0)
	require.NoError(t, err)
	require.Equal(t, "[19; 5, 4, 1, 3]", s)

	s, err = FormatCoefficients(Ints(5), 0)
	require.NoError(t, err)
	require.Equal(t, "[5]", s)

	s, err = FormatCoefficients(Golden(), 4)
	require.NoError(t, err)
	require.Equal(t, "[1; 1, 1, 1, …]", s)

	s, err = FormatCoefficients(Ints(1, 2), 2)
	require.NoError(t, err)
	require.Equal(t, "[1; 2]", s)
}
