package axis

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBin(t *testing.T) {
	b := IntervalBin(1, 3)
	assert.Equal(t, KindInterval, b.Kind())
	assert.Equal(t, 1.0, b.Lower())
	assert.Equal(t, 3.0, b.Upper())
	assert.Equal(t, 2.0, b.Width())
	assert.Equal(t, 2.0, b.Center())
	assert.Equal(t, "[1, 3)", b.String())
	assert.True(t, b.Equal(IntervalBin(1, 3)))
	assert.False(t, b.Equal(IntervalBin(1, 4)))

	v := ValueBin("red")
	assert.True(t, math.IsNaN(v.Lower()))
	assert.True(t, math.IsNaN(v.Center()))
	assert.Equal(t, 0.0, v.Width())
	assert.Equal(t, "red", v.Value())
	assert.Equal(t, "red", v.String())
	assert.False(t, v.Equal(ValueBin("blue")))
	assert.False(t, v.Equal(OtherBin()))

	assert.True(t, OtherBin().Equal(OtherBin()))
	assert.Equal(t, "other", OtherBin().String())
}

func TestOption(t *testing.T) {
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "underflow|overflow", (Underflow | Overflow).String())
	assert.Equal(t, "growth", Growth.String())

	assert.Equal(t, 2, (Underflow | Overflow).Extra())
	assert.Equal(t, 1, Overflow.Extra())
	assert.Equal(t, 0, Growth.Extra())
	assert.Equal(t, 0, None.Extra())

	assert.True(t, (Underflow | Overflow).Test(Overflow))
	assert.False(t, Overflow.Test(Underflow|Overflow))
}

func TestBinEqualNonComparableValues(t *testing.T) {
	a := ValueBin([]byte("ab"))
	assert.NotPanics(t, func() {
		assert.True(t, a.Equal(ValueBin([]byte("ab"))))
		assert.False(t, a.Equal(ValueBin([]byte("ac"))))
		assert.False(t, a.Equal(ValueBin("ab")))
		assert.False(t, ValueBin("ab").Equal(a))
	})
}
