package axis

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
)

// Category is an axis with one bin per listed value. Values that are not listed
// go to the overflow slot, or extend the axis if it has the Growth option.
type Category[T comparable] struct {
	metadata
	values []T
	index  map[T]int
}

var _ Dynamic = (*Category[string])(nil)

// NewCategory creates a category axis over values, in order.
//
// By default the axis has an overflow slot. Category axes never have an underflow
// slot. A growing axis may start empty.
func NewCategory[T comparable](values []T, settings ...Setting) (*Category[T], error) {
	var err error
	a := &Category[T]{
		metadata: newMetadata(Overflow, settings, &err),
		values:   make([]T, 0, len(values)),
		index:    make(map[T]int, len(values)),
	}

	if a.opts.Test(Underflow) {
		err = multierr.Append(err, fmt.Errorf("%w: category axis cannot have an underflow slot", errs.ErrInvalidAxis))
	}
	if len(values) == 0 && !a.opts.Test(Growth) {
		err = multierr.Append(err, fmt.Errorf("%w: non-growing category axis needs at least one value", errs.ErrInvalidAxis))
	}
	for _, v := range values {
		if v != v {
			err = multierr.Append(err, fmt.Errorf("%w: NaN category", errs.ErrInvalidAxis))
			continue
		}
		if _, dup := a.index[v]; dup {
			err = multierr.Append(err, fmt.Errorf("%w: duplicate category %v", errs.ErrInvalidAxis, v))
			continue
		}
		a.index[v] = len(a.values)
		a.values = append(a.values, v)
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Size returns the number of categories.
func (a *Category[T]) Size() int {
	return len(a.values)
}

// Index returns the position of v, or Size() if v is not a category.
func (a *Category[T]) Index(v T) int {
	if i, ok := a.index[v]; ok {
		return i
	}

	return len(a.values)
}

// Update returns the position of v. A growing axis appends unknown values.
//
// A value that is not equal to itself (a NaN) can never be found again and fails
// with errs.ErrInvalidArgument.
func (a *Category[T]) Update(v T) (int, int, error) {
	if i, ok := a.index[v]; ok {
		return i, 0, nil
	}
	if v != v {
		return 0, 0, fmt.Errorf("%w: NaN is not a category", errs.ErrInvalidArgument)
	}
	if !a.opts.Test(Growth) {
		return len(a.values), 0, nil
	}

	a.index[v] = len(a.values)
	a.values = append(a.values, v)

	return len(a.values) - 1, -1, nil
}

// Value returns category i, or the zero value of T outside [0, Size()).
func (a *Category[T]) Value(i int) T {
	if i < 0 || i >= len(a.values) {
		var zero T
		return zero
	}

	return a.values[i]
}

// Width is always 0: categories are unordered.
func (a *Category[T]) Width(int) float64 {
	return 0
}

// Bin returns category i, or the "other" bin for the overflow slot.
func (a *Category[T]) Bin(i int) Bin {
	if i < 0 || i >= len(a.values) {
		return OtherBin()
	}

	return ValueBin(a.values[i])
}

// IndexAny implements Dynamic.
func (a *Category[T]) IndexAny(v any) (int, error) {
	x, err := convert[T](v)
	if err != nil {
		return 0, err
	}

	return a.Index(x), nil
}

// UpdateAny implements Dynamic.
func (a *Category[T]) UpdateAny(v any) (int, int, error) {
	x, err := convert[T](v)
	if err != nil {
		return 0, 0, err
	}

	return a.Update(x)
}

// ValueAny implements Dynamic. Indices outside [0, Size()) fail with
// errs.ErrIndexOutOfRange.
func (a *Category[T]) ValueAny(i int) (any, error) {
	if i < 0 || i >= len(a.values) {
		return nil, fmt.Errorf("%w: category %d of %d", errs.ErrIndexOutOfRange, i, len(a.values))
	}

	return a.values[i], nil
}

func (a *Category[T]) String() string {
	var sb strings.Builder
	sb.WriteString("category(")
	for i, v := range a.values {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	a.describe(&sb)
	sb.WriteByte(')')

	return sb.String()
}
