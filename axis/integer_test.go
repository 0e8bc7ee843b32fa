package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

func TestIntegerIndex(t *testing.T) {
	a, err := NewInteger(1, 3)
	require.NoError(t, err)
	require.Equal(t, 2, a.Size())
	require.Equal(t, Underflow|Overflow, a.Options())

	cases := []struct {
		v    int
		want int
	}{
		{0, -1},
		{1, 0},
		{2, 1},
		{3, 2},
		{math.MaxInt, 2},
		{math.MinInt, -1},
	}
	for _, c := range cases {
		require.Equal(t, c.want, a.Index(c.v), "index of %d", c.v)
	}

	require.Equal(t, 3, a.Value(2))
	require.Equal(t, 0, a.Value(-1))
	require.True(t, a.Bin(0).Equal(ValueBin(1)))
	require.Equal(t, 0.0, a.Width(0))
}

func TestIntegerNarrowTypes(t *testing.T) {
	t.Run("int8 spanning zero", func(t *testing.T) {
		a, err := NewInteger[int8](-100, 100)
		require.NoError(t, err)
		require.Equal(t, 200, a.Size())
		require.Equal(t, 0, a.Index(-100))
		require.Equal(t, 199, a.Index(99))
		require.Equal(t, 200, a.Index(100))
		require.Equal(t, -1, a.Index(-128))
	})

	t.Run("uint8", func(t *testing.T) {
		a, err := NewInteger[uint8](10, 20)
		require.NoError(t, err)
		require.Equal(t, -1, a.Index(5))
		require.Equal(t, 5, a.Index(15))
		require.Equal(t, 10, a.Index(255))
	})
}

func TestIntegerFloat(t *testing.T) {
	a, err := NewInteger(1.0, 3.0)
	require.NoError(t, err)
	require.Equal(t, 2, a.Size())

	require.Equal(t, 0, a.Index(1))
	require.Equal(t, 1, a.Index(2.5))
	require.Equal(t, -1, a.Index(0.99))
	require.Equal(t, 2, a.Index(3))
	require.Equal(t, 2, a.Index(math.NaN()))
	require.Equal(t, -1, a.Index(math.Inf(-1)))

	require.Equal(t, 1.0, a.Width(0))
	require.True(t, math.IsInf(a.Width(-1), 1))
	require.True(t, math.IsInf(a.Width(2), 1))

	require.Equal(t, 3.0, a.Value(2))
	require.True(t, math.IsInf(a.Value(-1), -1))
	require.True(t, math.IsInf(a.Value(3), 1))

	require.True(t, a.Bin(1).Equal(IntervalBin(2, 3)))
	require.True(t, a.Bin(-1).Equal(IntervalBin(math.Inf(-1), 1)))
	require.True(t, a.Bin(2).Equal(IntervalBin(3, math.Inf(1))))
}

func TestIntegerGrowth(t *testing.T) {
	t.Run("integer values", func(t *testing.T) {
		a, err := NewInteger(0, 0, WithOptions(Growth))
		require.NoError(t, err)
		require.Equal(t, 0, a.Size())

		steps := []struct {
			v            int
			index, shift int
			size         int
		}{
			{0, 0, -1, 1},
			{3, 3, -3, 4},
			{-2, 0, 2, 6},
			{1, 3, 0, 6},
		}
		for _, s := range steps {
			i, shift, err := a.Update(s.v)
			require.NoError(t, err)
			require.Equal(t, s.index, i, "index of %d", s.v)
			require.Equal(t, s.shift, shift, "shift of %d", s.v)
			require.Equal(t, s.size, a.Size())
		}

		require.Equal(t, -2, a.Value(0))
		require.Equal(t, 3, a.Value(5))
	})

	t.Run("float values", func(t *testing.T) {
		a, err := NewInteger(0.0, 1.0, WithOptions(Growth))
		require.NoError(t, err)

		i, shift, err := a.Update(-1.5)
		require.NoError(t, err)
		require.Equal(t, 0, i)
		require.Equal(t, 2, shift)
		require.Equal(t, -2.0, a.Value(0))
		require.Equal(t, 0.0, a.Value(2))

		i, shift, err = a.Update(math.Inf(1))
		require.NoError(t, err)
		require.Equal(t, a.Size(), i)
		require.Equal(t, 0, shift)

		i, shift, err = a.Update(math.NaN())
		require.NoError(t, err)
		require.Equal(t, a.Size(), i)
		require.Equal(t, 0, shift)
		require.Equal(t, 3, a.Size())
	})

	t.Run("non-growing axis is not changed", func(t *testing.T) {
		a, err := NewInteger(0, 2)
		require.NoError(t, err)

		i, shift, err := a.Update(5)
		require.NoError(t, err)
		require.Equal(t, 2, i)
		require.Equal(t, 0, shift)
		require.Equal(t, 2, a.Size())
	})

	t.Run("through UpdateAny", func(t *testing.T) {
		a, err := NewInteger(1, 3)
		require.NoError(t, err)

		i, _, err := a.UpdateAny(2.0)
		require.NoError(t, err)
		require.Equal(t, 1, i)

		_, _, err = a.UpdateAny(2.7)
		require.ErrorIs(t, err, errs.ErrInvalidArgument)

		i, err = a.IndexAny(uint16(1))
		require.NoError(t, err)
		require.Equal(t, 0, i)
	})
}

func TestIntegerGrowthRejectsValuesOutsideDomain(t *testing.T) {
	a, err := NewInteger[uint8](0, 0, WithOptions(Growth))
	require.NoError(t, err)

	for _, v := range []any{256, -1, 3.5, math.NaN()} {
		_, _, err := a.UpdateAny(v)
		require.ErrorIs(t, err, errs.ErrInvalidArgument, "value %v", v)
		require.Equal(t, 0, a.Size(), "value %v must not grow the axis", v)
	}

	i, shift, err := a.UpdateAny(255)
	require.NoError(t, err)
	require.Equal(t, 255, i)
	require.Equal(t, -256, shift)
	require.Equal(t, 256, a.Size())
	require.Equal(t, uint8(255), a.Value(255))
}

func TestIntegerValidation(t *testing.T) {
	_, err := NewInteger(3, 1)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewInteger(0, 0)
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewInteger(0, 1, WithOptions(Growth|Overflow))
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewInteger(0.0, math.Inf(1))
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewInteger(0, 1, WithOptions(Option(0x80)))
	require.ErrorIs(t, err, errs.ErrInvalidAxis)

	_, err = NewInteger(3, 1, WithOptions(Growth|Underflow))
	require.Len(t, multierr.Errors(err), 2)
}

func TestIntegerString(t *testing.T) {
	a, err := NewInteger(1, 3, WithLabel("it's"))
	require.NoError(t, err)
	require.Equal(t, `integer(1, 3, label='it\'s', options=underflow|overflow)`, a.String())

	b, err := NewInteger(0, 0, WithOptions(Growth))
	require.NoError(t, err)
	require.Equal(t, "integer(0, 0, options=growth)", b.String())
}
