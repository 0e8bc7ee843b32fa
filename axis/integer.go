package axis

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

// Integer is an axis with one bin per integer in [start, stop).
//
// T may also be a floating-point type, in which case bin i covers the unit
// interval [start+i, start+i+1) and has width 1.
type Integer[T Number] struct {
	metadata
	min        T
	size       int
	continuous bool
}

var _ Dynamic = (*Integer[int])(nil)

// NewInteger creates an integer axis over [start, stop).
//
// By default the axis has underflow and overflow slots. A growing axis may start
// empty (start == stop).
func NewInteger[T Number](start, stop T, settings ...Setting) (*Integer[T], error) {
	var err error
	a := &Integer[T]{
		metadata:   newMetadata(Underflow|Overflow, settings, &err),
		min:        start,
		continuous: isContinuous[T](),
	}

	lo, hi := float64(start), float64(stop)
	switch {
	case math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0):
		err = multierr.Append(err, fmt.Errorf("%w: bounds must be finite, got [%v, %v)", errs.ErrInvalidAxis, start, stop))
	case stop < start:
		err = multierr.Append(err, fmt.Errorf("%w: stop %v is below start %v", errs.ErrInvalidAxis, stop, start))
	case a.continuous:
		if hi-lo > math.MaxInt32 {
			err = multierr.Append(err, fmt.Errorf("%w: %g bins exceed the axis limit", errs.ErrInvalidAxis, hi-lo))
		}
		a.size = int(math.Floor(hi - lo))
	default:
		d := uint64(stop) - uint64(start)
		if d > math.MaxInt32 {
			err = multierr.Append(err, fmt.Errorf("%w: %d bins exceed the axis limit", errs.ErrInvalidAxis, d))
		}
		a.size = int(d)
	}

	if err == nil && a.size == 0 && !a.opts.Test(Growth) {
		err = fmt.Errorf("%w: non-growing integer axis needs at least one bin", errs.ErrInvalidAxis)
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

func isContinuous[T Number]() bool {
	one, two := T(1), T(2)
	return one/two != 0
}

// Size returns the number of bins.
func (a *Integer[T]) Size() int {
	return a.size
}

// Index returns the bin of v, -1 below the axis and Size() above it or for NaN.
func (a *Integer[T]) Index(v T) int {
	z, ok := a.offset(v)
	switch {
	case !ok:
		return a.size
	case z < 0:
		return -1
	case z >= int64(a.size):
		return a.size
	default:
		return int(z)
	}
}

// offset returns the signed bin offset of v from the first bin, saturated to the
// int64 range. ok is false for NaN.
func (a *Integer[T]) offset(v T) (int64, bool) {
	if a.continuous {
		f := math.Floor(float64(v) - float64(a.min))
		switch {
		case math.IsNaN(f):
			return 0, false
		case f < math.MinInt64:
			return math.MinInt64, true
		case f >= math.MaxInt64:
			return math.MaxInt64, true
		default:
			return int64(f), true
		}
	}

	if v >= a.min {
		d := uint64(v) - uint64(a.min)
		if d > math.MaxInt64 {
			return math.MaxInt64, true
		}
		return int64(d), true
	}

	d := uint64(a.min) - uint64(v)
	if d > math.MaxInt64 {
		return math.MinInt64, true
	}

	return -int64(d), true
}

// Update returns the bin of v, growing the axis first if it has the Growth option.
func (a *Integer[T]) Update(v T) (int, int, error) {
	if !a.opts.Test(Growth) {
		return a.Index(v), 0, nil
	}
	if a.continuous && math.IsInf(float64(v), 0) {
		return a.Index(v), 0, nil
	}

	z, ok := a.offset(v)
	if !ok {
		return a.size, 0, nil
	}

	switch {
	case z < 0:
		if -z > math.MaxInt32-int64(a.size) {
			return 0, 0, fmt.Errorf("%w: growing to %v exceeds the axis limit", errs.ErrInvalidArgument, v)
		}
		k := int(-z)
		a.min -= T(k)
		a.size += k

		return 0, k, nil
	case z >= int64(a.size):
		if z >= math.MaxInt32 {
			return 0, 0, fmt.Errorf("%w: growing to %v exceeds the axis limit", errs.ErrInvalidArgument, v)
		}
		n := int(z) + 1 - a.size
		a.size += n

		return int(z), -n, nil
	default:
		return int(z), 0, nil
	}
}

// Value returns the value of bin i. For a floating-point T, Value(-1) is -Inf
// and Value(i) is +Inf for every i above Size().
func (a *Integer[T]) Value(i int) T {
	if a.continuous {
		if i < 0 {
			return T(math.Inf(-1))
		}
		if i > a.size {
			return T(math.Inf(1))
		}
	}

	return a.min + T(i)
}

// Width returns 0 for integer T. For a floating-point T it is 1 inside the axis
// and +Inf for the boundary slots.
func (a *Integer[T]) Width(i int) float64 {
	if !a.continuous {
		return 0
	}
	if i < 0 || i >= a.size {
		return math.Inf(1)
	}

	return 1
}

// Bin returns the integer value of bin i, or its unit interval for floating-point T.
func (a *Integer[T]) Bin(i int) Bin {
	if a.continuous {
		return IntervalBin(float64(a.Value(i)), float64(a.Value(i+1)))
	}

	return ValueBin(a.Value(i))
}

// IndexAny implements Dynamic.
func (a *Integer[T]) IndexAny(v any) (int, error) {
	x, err := convert[T](v)
	if err != nil {
		return 0, err
	}

	return a.Index(x), nil
}

// UpdateAny implements Dynamic.
func (a *Integer[T]) UpdateAny(v any) (int, int, error) {
	x, err := convert[T](v)
	if err != nil {
		return 0, 0, err
	}

	return a.Update(x)
}

// ValueAny implements Dynamic.
func (a *Integer[T]) ValueAny(i int) (any, error) {
	return a.Value(i), nil
}

func (a *Integer[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "integer(%v, %v", a.min, a.min+T(a.size))
	a.describe(&sb)
	sb.WriteByte(')')

	return sb.String()
}
