package histo

import (
	"fmt"
	"slices"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/arloliu/histo/axis"
	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/options"
	"github.com/arloliu/histo/internal/pool"
	"github.com/arloliu/histo/internal/textfmt"
	"github.com/arloliu/histo/storage"
)

// Histogram accumulates values into the cells spanned by its axes.
type Histogram struct {
	axes    []axis.Dynamic
	shapes  []shape
	strides []int
	size    int
	storage storage.Storage
	logger  *zap.Logger
	gen     uint64 // bumped on every growth; accessors compare against it
}

// shape is the storage extent of one axis.
type shape struct {
	size  int
	under bool
	over  bool
}

func shapeOf(a axis.Dynamic) shape {
	opts := a.Options()
	growing := opts.Test(axis.Growth)

	return shape{
		size:  a.Size(),
		under: !growing && opts.Test(axis.Underflow),
		over:  !growing && opts.Test(axis.Overflow),
	}
}

// extent returns the number of stored slots along the axis.
func (s shape) extent() int {
	n := s.size
	if s.under {
		n++
	}
	if s.over {
		n++
	}

	return n
}

// slot returns the storage position of bin i along the axis. ok is false when i
// falls in a boundary slot the axis does not have.
func (s shape) slot(i int) (int, bool) {
	first := 0
	if s.under {
		first = 1
	}

	switch {
	case i < 0:
		return 0, s.under && i == -1
	case i >= s.size:
		return s.size + first, s.over && i == s.size
	default:
		return i + first, true
	}
}

// first returns the lowest addressable index along the axis.
func (s shape) first() int {
	if s.under {
		return -1
	}

	return 0
}

// Option configures a Histogram.
type Option = options.Option[*Histogram]

// WithStorage sets the cell storage. The default is storage.Adaptive.
func WithStorage(s storage.Storage) Option {
	return options.New(func(h *Histogram) error {
		if s == nil {
			return fmt.Errorf("%w: storage cannot be nil", errs.ErrInvalidConfig)
		}
		h.storage = s

		return nil
	})
}

// WithLogger sets the logger used for growth and storage events. The default
// logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return options.New(func(h *Histogram) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", errs.ErrInvalidConfig)
		}
		h.logger = logger

		return nil
	})
}

// New creates a histogram over axes, in order.
//
// The axes are owned by the histogram afterwards: growing axes are mutated by
// Fill. The storage is reset to the cell count of the axes.
//
// Parameters:
//   - axes: At least one axis, none of them nil
//   - opts: Optional settings (WithStorage, WithLogger)
//
// Returns:
//   - *Histogram: The new histogram with every cell zeroed
//   - error: errs.ErrInvalidAxis for missing axes, errs.ErrInvalidConfig for bad options
//
// Example:
//
//	x, _ := axis.NewRegular(10, 0, 1)
//	h, err := histo.New([]axis.Dynamic{x}, histo.WithLogger(logger))
func New(axes []axis.Dynamic, opts ...Option) (*Histogram, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%w: histogram needs at least one axis", errs.ErrInvalidAxis)
	}

	var err error
	for k, a := range axes {
		if a == nil {
			err = multierr.Append(err, fmt.Errorf("%w: axis %d is nil", errs.ErrInvalidAxis, k))
		}
	}
	if err != nil {
		return nil, err
	}

	h := &Histogram{
		axes:   slices.Clone(axes),
		logger: zap.NewNop(),
	}
	if err := options.Apply(h, opts...); err != nil {
		return nil, err
	}

	if h.storage == nil {
		s, err := storage.NewAdaptive(storage.WithLogger(h.logger))
		if err != nil {
			return nil, err
		}
		h.storage = s
	}

	h.layout()
	h.storage.Reset(h.size)
	h.logger.Debug("histogram created",
		zap.Int("rank", len(h.axes)),
		zap.Int("cells", h.size),
	)

	return h, nil
}

// layout recomputes shapes, strides and the cell count from the axes.
func (h *Histogram) layout() {
	h.shapes = h.shapes[:0]
	h.strides = h.strides[:0]
	h.size = 1
	for _, a := range h.axes {
		s := shapeOf(a)
		h.shapes = append(h.shapes, s)
		h.strides = append(h.strides, h.size)
		h.size *= s.extent()
	}
}

// Rank returns the number of axes.
func (h *Histogram) Rank() int {
	return len(h.axes)
}

// Axis returns axis k.
func (h *Histogram) Axis(k int) axis.Dynamic {
	return h.axes[k]
}

// Size returns the number of cells, boundary slots included.
func (h *Histogram) Size() int {
	return h.size
}

// Storage returns the cell storage.
func (h *Histogram) Storage() storage.Storage {
	return h.storage
}

// Fill counts one entry at values, one value per axis.
//
// Values outside an axis without the matching boundary slot are dropped. Numeric
// values convert to the axis domain only when representable there: 200 does not
// fit an int8 axis and 2.5 does not fit an int axis.
//
// Parameters:
//   - values: One value per axis, in axis order
//
// Returns:
//   - error: errs.ErrDimensionMismatch if len(values) != Rank(), before anything
//     changes; errs.ErrInvalidArgument if a value does not fit the domain of its
//     axis. Axes grown by earlier values of the same call stay grown and the
//     storage is remapped to match them.
func (h *Histogram) Fill(values ...any) error {
	return h.fill(values, h.storage.Increment)
}

// FillWeighted adds w at values, one value per axis.
func (h *Histogram) FillWeighted(w float64, values ...any) error {
	return h.fill(values, func(j int) { h.storage.Add(j, w) })
}

func (h *Histogram) fill(values []any, accumulate func(int)) error {
	if len(values) != len(h.axes) {
		return fmt.Errorf("%w: got %d values for %d axes", errs.ErrDimensionMismatch, len(values), len(h.axes))
	}

	idx, release := pool.GetIntSlice(len(h.axes))
	defer release()
	shifts, releaseShifts := pool.GetIntSlice(len(h.axes))
	defer releaseShifts()

	var err error
	grown := false
	for k, a := range h.axes {
		i, shift, uerr := a.UpdateAny(values[k])
		if uerr != nil {
			err = fmt.Errorf("axis %d: %w", k, uerr)
			break
		}
		idx[k] = i
		shifts[k] = shift
		grown = grown || shift != 0
	}

	if grown {
		h.grow(shifts)
	}
	if err != nil {
		return err
	}

	if j, ok := h.linear(idx); ok {
		accumulate(j)
	}

	return nil
}

// grow reallocates the storage after axes grew by shifts and moves every cell to
// its bin in the new layout.
func (h *Histogram) grow(shifts []int) {
	old := slices.Clone(h.shapes)
	h.layout()

	h.storage.Grow(h.size, func(j int) int {
		n := 0
		for k, s := range old {
			e := s.extent()
			pos := j % e
			j /= e
			n += (pos + max(shifts[k], 0)) * h.strides[k]
		}

		return n
	})
	h.gen++

	if ce := h.logger.Check(zap.DebugLevel, "histogram grew"); ce != nil {
		ce.Write(
			zap.Ints("shifts", slices.Clone(shifts)),
			zap.Int("cells", h.size),
		)
	}
}

// linear returns the storage position of the index tuple. ok is false when an
// index falls in a boundary slot its axis does not have.
func (h *Histogram) linear(idx []int) (int, bool) {
	j := 0
	for k, i := range idx {
		pos, ok := h.shapes[k].slot(i)
		if !ok {
			return 0, false
		}
		j += pos * h.strides[k]
	}

	return j, true
}

func (h *Histogram) locate(indices []int) (int, error) {
	if len(indices) != len(h.axes) {
		return 0, fmt.Errorf("%w: got %d indices for %d axes", errs.ErrDimensionMismatch, len(indices), len(h.axes))
	}
	for k, i := range indices {
		if _, ok := h.shapes[k].slot(i); !ok {
			return 0, fmt.Errorf("%w: index %d of axis %d", errs.ErrIndexOutOfRange, i, k)
		}
	}
	j, _ := h.linear(indices)

	return j, nil
}

// At returns the cell at the index tuple. Index -1 addresses the underflow slot
// and Size() of the axis the overflow slot, where the axis has them.
func (h *Histogram) At(indices ...int) (float64, error) {
	j, err := h.locate(indices)
	if err != nil {
		return 0, err
	}

	return h.storage.Get(j), nil
}

// Set overwrites the cell at the index tuple with x.
func (h *Histogram) Set(x float64, indices ...int) error {
	j, err := h.locate(indices)
	if err != nil {
		return err
	}
	h.storage.Set(j, x)

	return nil
}

// Reset zeroes every cell. Axes keep their current bins.
func (h *Histogram) Reset() {
	h.storage.Reset(h.size)
}

// Sum returns the sum of the cells covered by cov.
func (h *Histogram) Sum(cov Coverage) float64 {
	sum := 0.0
	if cov == All {
		for j := range h.size {
			sum += h.storage.Get(j)
		}

		return sum
	}

	for c := range Indexed(h, cov).All() {
		sum += c.Value()
	}

	return sum
}

// Merge adds the cells of other to h. Both histograms must have the same axes,
// bin for bin.
func (h *Histogram) Merge(other *Histogram) error {
	if err := h.compatible(other); err != nil {
		return err
	}

	for j := range h.size {
		if x := other.storage.Get(j); x != 0 {
			h.storage.Add(j, x)
		}
	}

	return nil
}

func (h *Histogram) compatible(other *Histogram) error {
	if len(h.axes) != len(other.axes) {
		return fmt.Errorf("%w: rank %d and %d", errs.ErrIncompatibleAxes, len(h.axes), len(other.axes))
	}

	for k, a := range h.axes {
		b := other.axes[k]
		if a.Size() != b.Size() || a.Options() != b.Options() {
			return fmt.Errorf("%w: axis %d differs in size or options", errs.ErrIncompatibleAxes, k)
		}
		for i := range a.Size() {
			if !a.Bin(i).Equal(b.Bin(i)) {
				return fmt.Errorf("%w: axis %d differs at bin %d (%s vs %s)",
					errs.ErrIncompatibleAxes, k, i, a.Bin(i), b.Bin(i))
			}
		}
	}

	return nil
}

func (h *Histogram) String() string {
	var sb strings.Builder
	sb.WriteString("histogram(\n")
	for _, a := range h.axes {
		sb.WriteString("  ")
		if s, ok := a.(fmt.Stringer); ok {
			sb.WriteString(s.String())
		} else {
			fmt.Fprintf(&sb, "axis(%d", a.Size())
			if l := a.Label(); l != "" {
				sb.WriteString(", label=")
				textfmt.Escape(&sb, l)
			}
			fmt.Fprintf(&sb, ", options=%s)", a.Options())
		}
		sb.WriteByte('\n')
	}
	sb.WriteByte(')')

	return sb.String()
}
