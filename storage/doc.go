// Package storage provides the cell containers behind a histogram.
//
// The central type is Buffer, a dense array of unsigned cells that share one
// byte width (depth) of 1, 2, 4 or 8 bytes. Cells live in a single []byte and are
// read and written through the host-native endian engine, so a buffer can change
// its element width without reinterpreting memory.
//
// Two Storage implementations are provided:
//
//   - Adaptive keeps counts in a Buffer at the narrowest depth that holds the
//     largest count. When an increment would overflow the current depth the whole
//     buffer is promoted, never a single cell. Negative or fractional weights switch
//     the buffer once to real-valued cells.
//   - Vector[T] keeps cells in a plain []T for callers who want a fixed type.
//
// # Ownership
//
// A storage belongs to exactly one histogram. Nothing in this package is safe for
// concurrent mutation.
package storage

import "golang.org/x/exp/constraints"

// Storage is the cell container a histogram fills.
type Storage interface {
	// Size returns the number of cells.
	Size() int
	// Reset reallocates the storage with n zeroed cells.
	Reset(n int)
	// Increment adds one to cell i.
	Increment(i int)
	// Add adds weight w to cell i.
	Add(i int, w float64)
	// Get returns the value of cell i.
	Get(i int) float64
	// Set overwrites cell i with x.
	Set(i int, x float64)
	// Grow reallocates the storage with n zeroed cells and moves every old cell j
	// to position remap(j). The representation of moved values is preserved exactly.
	Grow(n int, remap func(int) int)
	// Clone returns a deep copy.
	Clone() Storage
	// Equal reports whether other holds the same number of cells with equal values.
	Equal(other Storage) bool
}

// Number is the set of cell types a Vector can hold.
type Number interface {
	constraints.Integer | constraints.Float
}

func equalValues(a, b Storage) bool {
	if a.Size() != b.Size() {
		return false
	}
	for i := range a.Size() {
		if a.Get(i) != b.Get(i) {
			return false
		}
	}

	return true
}
