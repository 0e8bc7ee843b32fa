package axis

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

// Variable is an axis of bins with arbitrary edges. It cannot grow.
type Variable struct {
	metadata
	edges []float64
}

var _ Dynamic = (*Variable)(nil)

// NewVariable creates an axis whose bin i is [edges[i], edges[i+1]).
// Edges must be finite and strictly increasing.
func NewVariable(edges []float64, settings ...Setting) (*Variable, error) {
	var err error
	a := &Variable{
		metadata: newMetadata(Underflow|Overflow, settings, &err),
		edges:    slices.Clone(edges),
	}

	if a.opts.Test(Growth) {
		err = multierr.Append(err, fmt.Errorf("%w: variable axis cannot grow", errs.ErrInvalidAxis))
	}
	if len(edges) < 2 {
		err = multierr.Append(err, fmt.Errorf("%w: need at least 2 edges, got %d", errs.ErrInvalidAxis, len(edges)))
	}
	for i, e := range edges {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			err = multierr.Append(err, fmt.Errorf("%w: edge %d is not finite", errs.ErrInvalidAxis, i))
			continue
		}
		if i > 0 && !(edges[i-1] < e) {
			err = multierr.Append(err, fmt.Errorf("%w: edge %d (%g) does not increase", errs.ErrInvalidAxis, i, e))
		}
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Size returns the number of bins.
func (a *Variable) Size() int {
	return len(a.edges) - 1
}

// Index returns the bin of v, -1 below the first edge and Size() at or above
// the last edge or for NaN.
func (a *Variable) Index(v float64) int {
	if math.IsNaN(v) {
		return a.Size()
	}

	return sort.Search(len(a.edges), func(j int) bool { return a.edges[j] > v }) - 1
}

// Value returns the lower edge of bin i. Value(-1) is -Inf and Value(i) is +Inf
// for every i above Size().
func (a *Variable) Value(i int) float64 {
	switch {
	case i < 0:
		return math.Inf(-1)
	case i >= len(a.edges):
		return math.Inf(1)
	default:
		return a.edges[i]
	}
}

// Width returns the width of bin i, +Inf for the boundary slots.
func (a *Variable) Width(i int) float64 {
	return a.Value(i+1) - a.Value(i)
}

// Bin returns the interval of bin i.
func (a *Variable) Bin(i int) Bin {
	return IntervalBin(a.Value(i), a.Value(i+1))
}

// IndexAny implements Dynamic.
func (a *Variable) IndexAny(v any) (int, error) {
	x, err := convert[float64](v)
	if err != nil {
		return 0, err
	}

	return a.Index(x), nil
}

// UpdateAny implements Dynamic. A variable axis never grows.
func (a *Variable) UpdateAny(v any) (int, int, error) {
	i, err := a.IndexAny(v)
	return i, 0, err
}

// ValueAny implements Dynamic.
func (a *Variable) ValueAny(i int) (any, error) {
	return a.Value(i), nil
}

func (a *Variable) String() string {
	var sb strings.Builder
	sb.WriteString("variable(")
	for i, e := range a.edges {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", e)
	}
	a.describe(&sb)
	sb.WriteByte(')')

	return sb.String()
}
