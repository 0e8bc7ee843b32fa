package axis

import (
	"fmt"
	"math"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

// maxBins bounds the number of bins a growing axis may reach.
const maxBins = math.MaxInt32

// Regular is an axis of n equal-width bins over [lo, hi).
//
// Bin edges are computed from the construction bounds and the bin position relative
// to them, so bins added by growth never move the edges of existing bins.
type Regular struct {
	metadata
	lo, hi float64
	n      int // bins between lo and hi
	offset int // bins prepended below lo by growth
	size   int
}

var _ Dynamic = (*Regular)(nil)

// NewRegular creates an axis of n bins over [lo, hi).
func NewRegular(n int, lo, hi float64, settings ...Setting) (*Regular, error) {
	var err error
	a := &Regular{
		metadata: newMetadata(Underflow|Overflow, settings, &err),
		lo:       lo,
		hi:       hi,
		n:        n,
		size:     n,
	}

	if n <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: bin count must be positive, got %d", errs.ErrInvalidAxis, n))
	}
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		err = multierr.Append(err, fmt.Errorf("%w: bounds must be finite, got [%g, %g)", errs.ErrInvalidAxis, lo, hi))
	} else if !(lo < hi) {
		err = multierr.Append(err, fmt.Errorf("%w: lower bound %g is not below upper bound %g", errs.ErrInvalidAxis, lo, hi))
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Size returns the number of bins.
func (a *Regular) Size() int {
	return a.size
}

// position returns the floor of the bin position of v in the current numbering.
func (a *Regular) position(v float64) float64 {
	z := (v - a.lo) / (a.hi - a.lo)
	return math.Floor(z*float64(a.n)) + float64(a.offset)
}

// Index returns the bin of v, -1 below the axis and Size() above it or for NaN.
func (a *Regular) Index(v float64) int {
	f := a.position(v)
	switch {
	case math.IsNaN(f):
		return a.size
	case f < 0:
		return -1
	case f >= float64(a.size):
		return a.size
	default:
		return int(f)
	}
}

// Update returns the bin of v, growing the axis by whole bins first if it has the
// Growth option. Non-finite values never grow the axis.
func (a *Regular) Update(v float64) (int, int, error) {
	if !a.opts.Test(Growth) || math.IsNaN(v) || math.IsInf(v, 0) {
		return a.Index(v), 0, nil
	}

	f := a.position(v)
	switch {
	case f < 0:
		if -f > float64(maxBins-a.size) {
			return 0, 0, fmt.Errorf("%w: growing to %g exceeds the axis limit", errs.ErrInvalidArgument, v)
		}
		k := int(-f)
		a.offset += k
		a.size += k

		return 0, k, nil
	case f >= float64(a.size):
		if f >= maxBins {
			return 0, 0, fmt.Errorf("%w: growing to %g exceeds the axis limit", errs.ErrInvalidArgument, v)
		}
		k := int(f) + 1 - a.size
		a.size += k

		return a.size - 1, -k, nil
	default:
		return int(f), 0, nil
	}
}

// Value returns the lower edge of bin i. Value(-1) is -Inf and Value(i) is +Inf
// for every i above Size().
func (a *Regular) Value(i int) float64 {
	switch {
	case i < 0:
		return math.Inf(-1)
	case i > a.size:
		return math.Inf(1)
	}

	z := float64(i-a.offset) / float64(a.n)

	return (1-z)*a.lo + z*a.hi
}

// Width returns the width of bin i, +Inf for the boundary slots.
func (a *Regular) Width(i int) float64 {
	return a.Value(i+1) - a.Value(i)
}

// Bin returns the interval of bin i.
func (a *Regular) Bin(i int) Bin {
	return IntervalBin(a.Value(i), a.Value(i+1))
}

// IndexAny implements Dynamic.
func (a *Regular) IndexAny(v any) (int, error) {
	x, err := convert[float64](v)
	if err != nil {
		return 0, err
	}

	return a.Index(x), nil
}

// UpdateAny implements Dynamic.
func (a *Regular) UpdateAny(v any) (int, int, error) {
	x, err := convert[float64](v)
	if err != nil {
		return 0, 0, err
	}

	return a.Update(x)
}

// ValueAny implements Dynamic.
func (a *Regular) ValueAny(i int) (any, error) {
	return a.Value(i), nil
}

func (a *Regular) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "regular(%d, %g, %g", a.size, a.Value(0), a.Value(a.size))
	a.describe(&sb)
	sb.WriteByte(')')

	return sb.String()
}
