package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestVector(t *testing.T) {
	v := NewVector[int]()
	require.Zero(t, v.Size())

	v.Reset(3)
	v.Increment(0)
	v.Add(1, -4)
	v.Set(2, 7)
	require.Equal(t, []int{1, -4, 7}, v.Values())
	require.Equal(t, -4.0, v.Get(1))

	v.Grow(5, func(j int) int { return j + 1 })
	require.Equal(t, []int{0, 1, -4, 7, 0}, v.Values())

	c := v.Clone()
	require.True(t, v.Equal(c))
	c.Increment(0)
	require.False(t, v.Equal(c))
	require.Equal(t, 0, v.Values()[0])
}

func TestVector_Float(t *testing.T) {
	v := NewVector[float64]()
	v.Reset(1)
	v.Add(0, 0.25)
	v.Add(0, 0.5)
	require.Equal(t, 0.75, v.Get(0))
}
