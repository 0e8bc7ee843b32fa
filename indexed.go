package histo

import (
	"iter"
	"slices"

	"github.com/arloliu/histo/axis"
)

// Coverage selects which cells an indexed range visits.
type Coverage uint8

const (
	// Inner visits the bins of every axis and skips boundary slots.
	Inner Coverage = iota
	// All visits every stored cell, boundary slots included.
	All
)

func (c Coverage) String() string {
	if c == All {
		return "all"
	}

	return "inner"
}

// Range is a snapshot of the cells of a histogram in storage order: the first
// axis varies fastest and the last slowest.
//
// A Range, its iterators and their accessors are invalidated when the histogram
// grows; using them afterwards panics.
type Range struct {
	h     *Histogram
	cov   Coverage
	gen   uint64
	begin []int // first index per axis
	end   []int // one past the last index per axis
	n     int
}

// Indexed returns the cells of h covered by cov.
//
// The range is a snapshot of the current layout: growing h afterwards makes its
// iterators and accessors panic on use.
//
// Parameters:
//   - h: The histogram to walk
//   - cov: Inner for the bins of every axis, All to include boundary slots
//
// Returns:
//   - Range: The covered cells, first axis varying fastest
//
// Example:
//
//	for c := range histo.Indexed(h, histo.Inner).All() {
//	    fmt.Println(c.Indices(), c.Density())
//	}
func Indexed(h *Histogram, cov Coverage) Range {
	r := Range{
		h:     h,
		cov:   cov,
		gen:   h.gen,
		begin: make([]int, len(h.shapes)),
		end:   make([]int, len(h.shapes)),
		n:     1,
	}
	for k, s := range h.shapes {
		r.end[k] = s.size
		if cov == All {
			r.begin[k] = s.first()
			if s.over {
				r.end[k]++
			}
		}
		r.n *= r.end[k] - r.begin[k]
	}

	return r
}

// Len returns the number of cells in the range.
func (r Range) Len() int {
	return r.n
}

// Begin returns an iterator at the first cell.
func (r Range) Begin() *Iterator {
	return &Iterator{r: r, idx: slices.Clone(r.begin)}
}

// End returns the iterator one past the last cell.
func (r Range) End() *Iterator {
	return &Iterator{r: r, pos: r.n}
}

// All returns a sequence of accessors over the range.
//
//	for c := range histo.Indexed(h, histo.Inner).All() {
//	    c.Set(0)
//	}
func (r Range) All() iter.Seq[Accessor] {
	return func(yield func(Accessor) bool) {
		for it := r.Begin(); it.pos < r.n; it.Next() {
			if !yield(it.Accessor()) {
				return
			}
		}
	}
}

func (r *Range) check() {
	if r.gen != r.h.gen {
		panic("histo: histogram grew while its cells were being iterated")
	}
}

// Iterator walks a Range.
type Iterator struct {
	r   Range
	idx []int
	pos int
}

// Next advances to the following cell.
func (it *Iterator) Next() {
	it.r.check()
	if it.pos >= it.r.n {
		panic("histo: iterator advanced past the end")
	}

	it.pos++
	for k := range it.idx {
		it.idx[k]++
		if it.idx[k] < it.r.end[k] {
			return
		}
		it.idx[k] = it.r.begin[k]
	}
}

// Equal reports whether both iterators are at the same position of the same range.
func (it *Iterator) Equal(other *Iterator) bool {
	return it.r.h == other.r.h && it.r.cov == other.r.cov && it.pos == other.pos
}

// Accessor returns the cell at the iterator. It panics at the end of the range.
func (it *Iterator) Accessor() Accessor {
	it.r.check()
	if it.pos >= it.r.n {
		panic("histo: dereferencing an iterator past the end")
	}

	idx := slices.Clone(it.idx)
	cell, _ := it.r.h.linear(idx)

	return Accessor{h: it.r.h, gen: it.r.gen, idx: idx, cell: cell}
}

// Accessor is a view of one cell: its index tuple and its value. It does not own
// the cell and is invalidated when the histogram grows.
type Accessor struct {
	h    *Histogram
	gen  uint64
	idx  []int
	cell int
}

func (a Accessor) check() {
	if a.gen != a.h.gen {
		panic("histo: accessor used after the histogram grew")
	}
}

// Indices returns the index tuple of the cell.
func (a Accessor) Indices() []int {
	return slices.Clone(a.idx)
}

// Index returns the index of the cell along axis k.
func (a Accessor) Index(k int) int {
	return a.idx[k]
}

// Bin returns the bin of the cell along axis k.
func (a Accessor) Bin(k int) axis.Bin {
	a.check()
	return a.h.axes[k].Bin(a.idx[k])
}

// Value returns the cell value.
func (a Accessor) Value() float64 {
	a.check()
	return a.h.storage.Get(a.cell)
}

// Set overwrites the cell value.
func (a Accessor) Set(x float64) {
	a.check()
	a.h.storage.Set(a.cell, x)
}

// Add adds x to the cell value.
func (a Accessor) Add(x float64) {
	a.check()
	a.h.storage.Add(a.cell, x)
}

// Density returns the cell value divided by the product of the bin widths of
// every axis with a non-zero width. Axes with zero width (integer and category
// axes) do not contribute.
func (a Accessor) Density() float64 {
	a.check()
	v := a.h.storage.Get(a.cell)
	for k, i := range a.idx {
		if w := a.h.axes[k].Width(i); w != 0 {
			v /= w
		}
	}

	return v
}
