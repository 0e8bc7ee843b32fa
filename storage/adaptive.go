package storage

import (
	"fmt"
	"math"
	"math/bits"

	"go.uber.org/zap"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/options"
)

// maxExactUint is 2^64, the first float64 that no longer fits in a uint64 cell.
const maxExactUint = 0x1p64

// Adaptive stores counts at the narrowest uniform cell width.
//
// Cells start one byte wide. Before a write that would overflow the current depth
// the whole buffer is promoted to the narrowest sufficient depth. A weight that is
// negative, fractional or not finite, or a sum beyond the uint64 range, switches
// the buffer to real mode: eight-byte cells holding IEEE-754 values. The switch is
// one-way.
type Adaptive struct {
	buf    Buffer
	real   bool
	logger *zap.Logger
}

var _ Storage = (*Adaptive)(nil)

// AdaptiveOption configures an Adaptive storage.
type AdaptiveOption = options.Option[*Adaptive]

// WithLogger sets the logger that receives depth promotion events.
func WithLogger(logger *zap.Logger) AdaptiveOption {
	return options.New(func(a *Adaptive) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", errs.ErrInvalidConfig)
		}
		a.logger = logger

		return nil
	})
}

// NewAdaptive creates an empty adaptive storage.
func NewAdaptive(opts ...AdaptiveOption) (*Adaptive, error) {
	a := &Adaptive{
		buf:    NewBuffer(0, 1),
		logger: zap.NewNop(),
	}
	if err := options.Apply(a, opts...); err != nil {
		return nil, err
	}

	return a, nil
}

// Size returns the number of cells.
func (a *Adaptive) Size() int {
	return a.buf.Size()
}

// Depth returns the current cell width in bytes.
func (a *Adaptive) Depth() int {
	return a.buf.Depth()
}

// IsReal reports whether cells hold floating point values.
func (a *Adaptive) IsReal() bool {
	return a.real
}

// Reset reallocates n zeroed one-byte cells and leaves real mode.
func (a *Adaptive) Reset(n int) {
	a.buf = NewBuffer(n, 1)
	a.real = false
}

// Increment adds one to cell i.
func (a *Adaptive) Increment(i int) {
	if a.real {
		a.putReal(i, a.getReal(i)+1)
		return
	}

	v := a.buf.Uint(i)
	if v == MaxUint(a.buf.Depth()) {
		if a.buf.Depth() == 8 {
			a.toReal()
			a.putReal(i, a.getReal(i)+1)

			return
		}
		a.promote(a.buf.Depth() * 2)
	}
	a.buf.PutUint(i, v+1)
}

// Add adds w to cell i.
func (a *Adaptive) Add(i int, w float64) {
	if w == 1 {
		a.Increment(i)
		return
	}
	if a.real {
		a.putReal(i, a.getReal(i)+w)
		return
	}

	u, ok := exactUint(w)
	if !ok {
		a.toReal()
		a.putReal(i, a.getReal(i)+w)

		return
	}

	sum, carry := bits.Add64(a.buf.Uint(i), u, 0)
	if carry != 0 {
		a.toReal()
		a.putReal(i, a.getReal(i)+w)

		return
	}
	a.putUint(i, sum)
}

// Get returns cell i.
func (a *Adaptive) Get(i int) float64 {
	if a.real {
		return a.getReal(i)
	}

	return float64(a.buf.Uint(i))
}

// Set overwrites cell i with x.
func (a *Adaptive) Set(i int, x float64) {
	if !a.real {
		if u, ok := exactUint(x); ok {
			a.putUint(i, u)
			return
		}
		a.toReal()
	}
	a.putReal(i, x)
}

// Grow reallocates n cells at the current depth and moves old cell j to remap(j).
func (a *Adaptive) Grow(n int, remap func(int) int) {
	a.buf.Resize(n, remap)
}

// Clone returns a deep copy sharing the logger.
func (a *Adaptive) Clone() Storage {
	return &Adaptive{
		buf:    a.buf.Clone(),
		real:   a.real,
		logger: a.logger,
	}
}

// Equal reports whether other holds the same values, regardless of cell width.
func (a *Adaptive) Equal(other Storage) bool {
	return equalValues(a, other)
}

func (a *Adaptive) putUint(i int, v uint64) {
	if need := DepthFor(v); need > a.buf.Depth() {
		a.promote(need)
	}
	a.buf.PutUint(i, v)
}

func (a *Adaptive) promote(depth int) {
	a.logger.Debug("promoting cell depth",
		zap.Int("from", a.buf.Depth()),
		zap.Int("to", depth),
		zap.Int("cells", a.buf.Size()),
	)
	a.buf.SetDepth(depth)
}

func (a *Adaptive) toReal() {
	a.logger.Debug("switching to real-valued cells",
		zap.Int("from", a.buf.Depth()),
		zap.Int("cells", a.buf.Size()),
	)

	next := NewBuffer(a.buf.Size(), 8)
	for i := range a.buf.Size() {
		next.PutUint(i, math.Float64bits(float64(a.buf.Uint(i))))
	}
	a.buf = next
	a.real = true
}

func (a *Adaptive) getReal(i int) float64 {
	return math.Float64frombits(a.buf.Uint(i))
}

func (a *Adaptive) putReal(i int, x float64) {
	a.buf.PutUint(i, math.Float64bits(x))
}

// exactUint converts w to a uint64 when no information is lost.
func exactUint(w float64) (uint64, bool) {
	if w < 0 || w >= maxExactUint || w != math.Trunc(w) {
		return 0, false
	}

	return uint64(w), true
}
