package continued

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPeriodic(t *testing.T) {
	sqrt7 := Periodic([]int64{2}, []int64{1, 1, 1, 4})
	require.Equal(t, []int64{2, 1, 1, 1, 4, 1, 1, 1, 4, 1}, int64s(t, sqrt7, 10))

	s := digitString(t, CoefficientsToDigits(Periodic([]int64{2}, []int64{1, 1, 1, 4}), 10), 22)
	require.Equal(t, "2.64575131106459059050", s)

	require.Equal(t, []int64{3, 3}, int64s(t, Periodic([]int64{3, 3}, nil), 0))
}

func TestGenerators(t *testing.T) {
	require.Equal(t, []int64{1, 1, 1, 1, 1}, int64s(t, Golden(), 5))
	require.Equal(t, []int64{1, 2, 2, 2, 2}, int64s(t, Sqrt2(), 5))
	require.Equal(t, []int64{2, 1, 2, 1, 1, 4, 1, 1, 6, 1, 1, 8}, int64s(t, E(), 12))
}
