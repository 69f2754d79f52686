package continued

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDigitsToCoefficients(t *testing.T) {
	tests := []struct {
		name   string
		digits string
		base   int
		want   []int64
	}{
		{name: "terminating", digits: "123.456", base: 10, want: []int64{123, 2, 5, 5, 2}},
		{name: "binary", digits: "0.1011", base: 2, want: []int64{0, 1, 2, 5}},
		{name: "hex", digits: "f.f", base: 16, want: []int64{15, 1, 15}},
		{
			name:   "pi_prefix",
			digits: "3.14159265358979323846",
			base:   10,
			want: []int64{3, 7, 15, 1, 292, 1, 1, 1, 2, 1, 3, 1, 14, 2, 1, 1, 2, 2, 2, 3,
				9, 17, 1, 6, 3, 8, 5, 29, 4, 1, 1, 2, 1, 1, 1, 18},
		},
		{
			// A truncation of 1900/99 lies just below it, so after the shared
			// prefix 19, 5, 4, 1 it takes the [..., 2, 1, ...] side of the
			// final 3.
			name:   "periodic_prefix",
			digits: "19.191919191919191919",
			base:   10,
			want:   []int64{19, 5, 4, 1, 2, 1, 531632110579478, 3, 1, 4},
		},
		{name: "nines", digits: "0.999", base: 10, want: []int64{0, 1, 999}},
		{name: "no_integer_digits", digits: ".5", base: 10, want: []int64{0, 2}},
		{name: "integer_only", digits: "7", base: 10, want: []int64{7}},
		{name: "integer_with_point", digits: "7.", base: 10, want: []int64{7}},
		{name: "empty", digits: "", base: 10, want: []int64{0}},
		{name: "negative_half", digits: "-0.5", base: 10, want: []int64{-1, 2}},
		{name: "negative_quarter", digits: "-2.25", base: 10, want: []int64{-3, 1, 3}},
		{name: "negative_integer", digits: "-5", base: 10, want: []int64{-5}},
		{name: "negative_integer_with_point", digits: "-5.", base: 10, want: []int64{-5}},
		{name: "negative_zero", digits: "-0.0", base: 10, want: []int64{0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := int64s(t, DigitsToCoefficients(ParseDigits(tt.digits, tt.base), tt.base), 0)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDigitsToCoefficientsUnbounded(t *testing.T) {
	tests := []struct {
		name string
		ds   DigitStream
		base int
		n    int
		want []int64
	}{
		{
			name: "golden",
			ds:   CoefficientsToDigits(Golden(), 10),
			base: 10,
			n:    20,
			want: []int64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		},
		{
			name: "sqrt2_binary",
			ds:   CoefficientsToDigits(Sqrt2(), 2),
			base: 2,
			n:    12,
			want: []int64{1, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		},
		{
			name: "e",
			ds:   CoefficientsToDigits(E(), 10),
			base: 10,
			n:    12,
			want: []int64{2, 1, 2, 1, 1, 4, 1, 1, 6, 1, 1, 8},
		},
		{
			// 1900/99 = [19; 5, 4, 1, 3] has an unbounded decimal expansion.
			// No finite prefix can prove the expansion stops at 3, so only the
			// first four coefficients are ever produced.
			name: "periodic_decimal",
			ds:   RationalToDigits(mustParse(t, "1900/99"), 10),
			base: 10,
			n:    4,
			want: []int64{19, 5, 4, 1},
		},
		{
			name: "negative_thirds",
			ds:   RationalToDigits(mustParse(t, "-7/3"), 10),
			base: 10,
			n:    2,
			want: []int64{-3, 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, int64s(t, DigitsToCoefficients(tt.ds, tt.base), tt.n))
		})
	}
}

func TestDigitsToCoefficientsErrors(t *testing.T) {
	tests := []struct {
		name string
		ds   DigitStream
		base int
		want error
	}{
		{name: "second_point", ds: ParseDigits("1.2.3", 10), base: 10, want: ErrMalformedInput},
		{name: "inner_minus", ds: ParseDigits("1-2", 10), base: 10, want: ErrMalformedInput},
		{name: "minus_after_point", ds: ParseDigits("1.-2", 10), base: 10, want: ErrMalformedInput},
		{name: "double_minus", ds: ParseDigits("--1", 10), base: 10, want: ErrMalformedInput},
		{name: "digit_out_of_range", ds: FromSlice([]Digit{1, RadixPoint, 12}), base: 10, want: ErrMalformedInput},
		{name: "integer_digit_out_of_range", ds: FromSlice([]Digit{2}), base: 2, want: ErrMalformedInput},
		{name: "bad_character", ds: ParseDigits("12x", 10), base: 10, want: ErrMalformedInput},
		{name: "invalid_base", ds: ParseDigits("1.5", 10), base: 1, want: ErrInvalidBase},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect[*big.Int](DigitsToCoefficients(tt.ds, tt.base))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestDigitsToCoefficientsIsOnline(t *testing.T) {
	src := &counting[Digit]{Stream: ParseDigits("123.456", 10)}
	cc := DigitsToCoefficients(src, 10)

	// The integer part is emitted as soon as the radix point is read.
	require.True(t, cc.Next())
	require.Equal(t, int64(123), cc.Value().Int64())
	require.Equal(t, 4, src.pulled)
	require.Equal(t, 4, cc.Consumed())

	b, ok := cc.Bounds()
	require.True(t, ok)
	require.Equal(t, "[123, 124]", b.String())

	// 123.4 and 123.5 both start [123; 2, ...].
	require.True(t, cc.Next())
	require.Equal(t, int64(2), cc.Value().Int64())
	require.Equal(t, 5, src.pulled)
	require.Equal(t, 2, cc.Emitted())
}

func TestDigitsToCoefficientsBoundsShrink(t *testing.T) {
	cc := DigitsToCoefficients(CoefficientsToDigits(Sqrt2(), 10), 10)
	_, ok := cc.Bounds()
	require.False(t, ok)

	var prev *Bounds
	for i := 0; i < 25; i++ {
		require.True(t, cc.Next())
		b, ok := cc.Bounds()
		require.True(t, ok)
		if prev != nil {
			require.True(t, b.Within(*prev), "%s escapes %s", b, *prev)
			require.LessOrEqual(t, b.Width().Cmp(prev.Width()), 0)
		}
		prev = &b
	}

	// A finite stream collapses the interval to the exact value.
	cc = DigitsToCoefficients(ParseDigits("0.25", 10), 10)
	_, err := Collect[*big.Int](cc)
	require.NoError(t, err)
	b, ok := cc.Bounds()
	require.True(t, ok)
	require.True(t, b.IsPoint())
	require.Equal(t, "1/4", b.Lower.String())
}

func TestDigitRoundTrip(t *testing.T) {
	tests := []struct {
		in   string
		base int
	}{
		{"15432/125", 10},
		{"11/16", 2},
		{"-7/4", 10},
		{"255/16", 16},
		{"1/1024", 10},
		{"10/3", 3},
		{"0", 7},
	}
	for _, tt := range tests {
		x := mustParse(t, tt.in)
		ds := RationalToDigits(x, tt.base)
		got := int64s(t, DigitsToCoefficients(ds, tt.base), 0)
		require.Equal(t, int64s(t, RationalToCoefficients(x), 0), got, "%s base %d", tt.in, tt.base)
	}
}

func TestCoefficientDigitRoundTrip(t *testing.T) {
	// coefficients → digits → coefficients recovers a terminating value.
	for _, cs := range [][]int64{{123, 2, 5, 5, 2}, {0, 1, 2, 5}, {-1, 2}, {-3, 1, 3}} {
		ds := CoefficientsToDigits(Ints(cs...), 10)
		require.Equal(t, cs, int64s(t, DigitsToCoefficients(ds, 10), 0))
	}
}
