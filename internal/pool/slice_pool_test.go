package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetIntSlice(t *testing.T) {
	t.Run("returns requested length", func(t *testing.T) {
		s, cleanup := GetIntSlice(5)
		defer cleanup()

		require.Len(t, s, 5)
	})

	t.Run("zero length", func(t *testing.T) {
		s, cleanup := GetIntSlice(0)
		defer cleanup()

		require.Empty(t, s)
	})

	t.Run("reused slices are zeroed", func(t *testing.T) {
		s, cleanup := GetIntSlice(4)
		for i := range s {
			s[i] = i + 1
		}
		cleanup()

		s2, cleanup2 := GetIntSlice(3)
		defer cleanup2()
		require.Equal(t, []int{0, 0, 0}, s2)
	})

	t.Run("grows beyond pooled capacity", func(t *testing.T) {
		s, cleanup := GetIntSlice(2)
		cleanup()

		big, cleanup2 := GetIntSlice(1024)
		defer cleanup2()
		require.Len(t, big, 1024)
		_ = s
	})
}

func BenchmarkGetIntSlice(b *testing.B) {
	for b.Loop() {
		s, cleanup := GetIntSlice(8)
		s[0] = 1
		cleanup()
	}
}
