package axis

import (
	"fmt"

	"github.com/arloliu/histo/errs"
)

// Indexer maps a domain value to a bin index without changing the axis.
type Indexer[V any] interface {
	Index(v V) int
}

// Updater maps a domain value to a bin index, growing the axis when needed.
//
// shift is the signed number of bins added: positive when bins were prepended
// before index 0, negative when bins were appended after the old last bin.
type Updater[V any] interface {
	Update(v V) (index, shift int, err error)
}

// Valuer maps a bin index back to a domain value.
type Valuer[V any] interface {
	Value(i int) V
}

// Widther reports the numeric width of a bin.
type Widther interface {
	Width(i int) float64
}

// Optioner reports the boundary behavior of an axis.
type Optioner interface {
	Options() Option
}

// Sizer reports the number of bins of an axis, excluding boundary slots.
type Sizer interface {
	Size() int
}

// Binner returns the bin behind an index.
type Binner interface {
	Bin(i int) Bin
}

// Options returns the option set of an axis over domain V.
//
// Axes that report their options are taken at their word. Otherwise an axis that
// can be updated with V is growing, and any other axis has no boundary slots.
func Options[V any](a any) Option {
	if o, ok := a.(Optioner); ok {
		return o.Options()
	}
	if _, ok := a.(Updater[V]); ok {
		return Growth
	}

	return None
}

// Index returns the bin index of v. It never changes the axis.
func Index[V any](a Indexer[V], v V) int {
	return a.Index(v)
}

// Value returns the domain value of bin i.
func Value[V any](a Valuer[V], i int) V {
	return a.Value(i)
}

// Width returns the width of bin i, or 0 if the axis has no notion of width.
func Width(a any, i int) float64 {
	if w, ok := a.(Widther); ok {
		return w.Width(i)
	}

	return 0
}

// Update maps v through a.
//
// Growing axes delegate to their own Update. Other axes return (Index(v), 0).
// An axis that can do neither with a V fails with errs.ErrInvalidArgument.
func Update[V any](a any, v V) (index, shift int, err error) {
	if u, ok := a.(Updater[V]); ok {
		return u.Update(v)
	}
	if ix, ok := a.(Indexer[V]); ok {
		return ix.Index(v), 0, nil
	}

	return 0, 0, fmt.Errorf("%w: %T cannot map values of type %T", errs.ErrInvalidArgument, a, v)
}

// Dynamic is the type-erased view of an axis a histogram stores.
//
// All built-in axes implement it. Custom axes are adapted with Erase.
type Dynamic interface {
	Sizer
	Optioner
	Widther
	Binner

	// Label returns the opaque axis label.
	Label() string
	// IndexAny is Index for a value of any type.
	IndexAny(v any) (int, error)
	// UpdateAny is Update for a value of any type. A value that cannot be
	// converted to the axis domain fails with errs.ErrInvalidArgument and leaves
	// the axis unchanged.
	UpdateAny(v any) (index, shift int, err error)
	// ValueAny is Value for axes that provide it and errs.ErrNotImplemented otherwise.
	ValueAny(i int) (any, error)
}

// erased adapts a custom axis to Dynamic. Its capabilities are resolved once,
// in Erase, so the fill path calls plain function values.
type erased[V any] struct {
	axis   any
	opts   Option
	label  string
	size   func() int
	index  func(V) int
	update func(V) (int, int, error)
	value  func(int) V
	width  func(int) float64
	bin    func(int) Bin
}

// Erase adapts a custom axis over domain V to Dynamic.
//
// The axis must report its size and be able to index or update values of type V.
// Axes that already implement Dynamic are returned unchanged.
func Erase[V any](a any) (Dynamic, error) {
	if d, ok := a.(Dynamic); ok {
		return d, nil
	}

	sizer, ok := a.(Sizer)
	if !ok {
		return nil, fmt.Errorf("%w: %T has no Size method", errs.ErrInvalidAxis, a)
	}

	e := &erased[V]{
		axis:  a,
		opts:  Options[V](a),
		size:  sizer.Size,
		width: func(int) float64 { return 0 },
	}

	ix, canIndex := a.(Indexer[V])
	if canIndex {
		e.index = ix.Index
	}
	if u, ok := a.(Updater[V]); ok {
		e.update = u.Update
	} else if canIndex {
		e.update = func(v V) (int, int, error) { return ix.Index(v), 0, nil }
	} else {
		return nil, fmt.Errorf("%w: %T can neither index nor update %s values",
			errs.ErrInvalidAxis, a, typeName[V]())
	}

	if vr, ok := a.(Valuer[V]); ok {
		e.value = vr.Value
	}
	if w, ok := a.(Widther); ok {
		e.width = w.Width
	}

	if b, ok := a.(Binner); ok {
		e.bin = b.Bin
	} else if e.value != nil {
		e.bin = func(i int) Bin { return ValueBin(e.value(i)) }
	} else {
		e.bin = func(i int) Bin { return ValueBin(i) }
	}

	if l, ok := a.(interface{ Label() string }); ok {
		e.label = l.Label()
	}

	return e, nil
}

func (e *erased[V]) Size() int           { return e.size() }
func (e *erased[V]) Options() Option     { return e.opts }
func (e *erased[V]) Label() string       { return e.label }
func (e *erased[V]) Width(i int) float64 { return e.width(i) }
func (e *erased[V]) Bin(i int) Bin       { return e.bin(i) }

func (e *erased[V]) IndexAny(v any) (int, error) {
	if e.index == nil {
		return 0, fmt.Errorf("%w: %T has no Index method", errs.ErrNotImplemented, e.axis)
	}
	x, err := convert[V](v)
	if err != nil {
		return 0, err
	}

	return e.index(x), nil
}

func (e *erased[V]) UpdateAny(v any) (int, int, error) {
	x, err := convert[V](v)
	if err != nil {
		return 0, 0, err
	}

	return e.update(x)
}

func (e *erased[V]) ValueAny(i int) (any, error) {
	if e.value == nil {
		return nil, fmt.Errorf("%w: %T has no Value method", errs.ErrNotImplemented, e.axis)
	}

	return e.value(i), nil
}
