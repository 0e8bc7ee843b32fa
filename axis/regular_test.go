package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

func TestRegularIndex(t *testing.T) {
	a, err := NewRegular(4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, 4, a.Size())

	cases := []struct {
		v    float64
		want int
	}{
		{-0.1, -1},
		{0, 0},
		{0.25, 1},
		{0.6, 2},
		{0.999, 3},
		{1, 4},
		{math.Inf(1), 4},
		{math.Inf(-1), -1},
		{math.NaN(), 4},
	}
	for _, c := range cases {
		require.Equal(t, c.want, a.Index(c.v), "index of %g", c.v)
	}

	require.Equal(t, 0.25, a.Value(1))
	require.Equal(t, 1.0, a.Value(4))
	require.True(t, math.IsInf(a.Value(-1), -1))
	require.True(t, math.IsInf(a.Value(5), 1))
	require.Equal(t, 0.25, a.Width(0))
	require.True(t, math.IsInf(a.Width(-1), 1))
	require.True(t, a.Bin(3).Equal(IntervalBin(0.75, 1)))
}

func TestRegularValueBracketsIndex(t *testing.T) {
	a, err := NewRegular(10, -1, 1)
	require.NoError(t, err)

	for _, v := range []float64{-0.95, -0.31, 0.01, 0.42, 0.77, 0.99} {
		i := a.Index(v)
		require.LessOrEqual(t, a.Value(i), v)
		require.Less(t, v, a.Value(i+1))
	}
}

func TestRegularGrowth(t *testing.T) {
	a, err := NewRegular(2, 0, 1, WithOptions(Growth))
	require.NoError(t, err)
	before := []Bin{a.Bin(0), a.Bin(1)}

	i, shift, err := a.Update(1.2)
	require.NoError(t, err)
	require.Equal(t, 2, i)
	require.Equal(t, -1, shift)
	require.Equal(t, 3, a.Size())
	require.Equal(t, 1.5, a.Value(3))

	i, shift, err = a.Update(-0.7)
	require.NoError(t, err)
	require.Equal(t, 0, i)
	require.Equal(t, 2, shift)
	require.Equal(t, 5, a.Size())
	require.Equal(t, -1.0, a.Value(0))

	require.True(t, a.Bin(2).Equal(before[0]))
	require.True(t, a.Bin(3).Equal(before[1]))

	i, shift, err = a.Update(0.25)
	require.NoError(t, err)
	require.Equal(t, 2, i)
	require.Equal(t, 0, shift)

	i, shift, err = a.Update(math.Inf(-1))
	require.NoError(t, err)
	require.Equal(t, -1, i)
	require.Equal(t, 0, shift)
	require.Equal(t, 5, a.Size())
}

func TestRegularValidation(t *testing.T) {
	_, err := NewRegular(0, 0, 1)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewRegular(2, 1, 1)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewRegular(2, 0, math.NaN())
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewRegular(0, 1, 0)
	require.Len(t, multierr.Errors(err), 2)

	a, err := NewRegular(2, 0, 1)
	require.NoError(t, err)
	_, _, err = a.UpdateAny("0.5")
	require.ErrorIs(t, err, errs.ErrInvalidArgument)
}

func TestRegularString(t *testing.T) {
	a, err := NewRegular(4, 0, 1)
	require.NoError(t, err)
	require.Equal(t, "regular(4, 0, 1, options=underflow|overflow)", a.String())
}
