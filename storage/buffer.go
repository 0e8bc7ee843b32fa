package storage

import (
	"bytes"
	"fmt"
	"unsafe"

	"github.com/arloliu/histo/endian"
)

// Cell is the set of fixed-width integer types a Buffer cell can be accessed as.
type Cell interface {
	~int8 | ~uint8 | ~int16 | ~uint16 | ~int32 | ~uint32 | ~int64 | ~uint64
}

// Buffer is a dense array of cells sharing one byte width.
//
// The zero value is an empty buffer. Use Clone to copy a buffer and Take to move
// it; plain assignment shares the underlying bytes.
type Buffer struct {
	data   []byte
	size   int
	depth  int
	engine endian.EndianEngine
}

// NewBuffer allocates size zeroed cells of depth bytes each.
//
// Cells are written with the host-native endian engine.
//
// Parameters:
//   - size: Number of cells
//   - depth: Bytes per cell, one of 1, 2, 4 or 8
//
// Returns:
//   - Buffer: A buffer of size zeroed cells
//
// Panics if depth is not 1, 2, 4 or 8, or if size is negative.
//
// Example:
//
//	b := storage.NewBuffer(3, 1)
//	b.PutUint(0, 200)
//	b.SetDepth(2)
//	b.PutUint(0, 300)
func NewBuffer(size, depth int) Buffer {
	checkDepth(depth)
	if size < 0 {
		panic(fmt.Sprintf("storage: negative buffer size %d", size))
	}

	return Buffer{
		data:   make([]byte, size*depth),
		size:   size,
		depth:  depth,
		engine: endian.Native(),
	}
}

func checkDepth(depth int) {
	switch depth {
	case 1, 2, 4, 8:
	default:
		panic(fmt.Sprintf("storage: invalid buffer depth %d", depth))
	}
}

// Size returns the number of cells.
func (b *Buffer) Size() int {
	return b.size
}

// Depth returns the byte width of every cell.
func (b *Buffer) Depth() int {
	return b.depth
}

// Uint returns cell i zero-extended to 64 bits.
func (b *Buffer) Uint(i int) uint64 {
	off := i * b.depth
	switch b.depth {
	case 1:
		return uint64(b.data[off])
	case 2:
		return uint64(b.engine.Uint16(b.data[off:]))
	case 4:
		return uint64(b.engine.Uint32(b.data[off:]))
	default:
		return b.engine.Uint64(b.data[off:])
	}
}

// PutUint stores the low Depth() bytes of v in cell i.
func (b *Buffer) PutUint(i int, v uint64) {
	off := i * b.depth
	switch b.depth {
	case 1:
		b.data[off] = byte(v)
	case 2:
		b.engine.PutUint16(b.data[off:], uint16(v))
	case 4:
		b.engine.PutUint32(b.data[off:], uint32(v))
	default:
		b.engine.PutUint64(b.data[off:], v)
	}
}

// At returns cell i of b as a T.
//
// T must be exactly Depth() bytes wide; any other width panics.
func At[T Cell](b *Buffer, i int) T {
	checkWidth[T](b)
	return T(b.Uint(i))
}

// Put stores v in cell i of b.
//
// T must be exactly Depth() bytes wide; any other width panics.
func Put[T Cell](b *Buffer, i int, v T) {
	checkWidth[T](b)
	b.PutUint(i, uint64(v))
}

func checkWidth[T Cell](b *Buffer) {
	var zero T
	if w := int(unsafe.Sizeof(zero)); w != b.depth {
		panic(fmt.Sprintf("storage: %d-byte access to buffer of depth %d", w, b.depth))
	}
}

// SetDepth widens every cell to depth bytes, preserving all values.
//
// Panics if depth is invalid or narrower than the current depth.
func (b *Buffer) SetDepth(depth int) {
	checkDepth(depth)
	if depth < b.depth {
		panic(fmt.Sprintf("storage: cannot narrow buffer depth from %d to %d", b.depth, depth))
	}
	if depth == b.depth {
		return
	}

	wider := NewBuffer(b.size, depth)
	for i := range b.size {
		wider.PutUint(i, b.Uint(i))
	}
	*b = wider
}

// Resize reallocates the buffer with size zeroed cells at the current depth and
// copies old cell j to position remap(j).
func (b *Buffer) Resize(size int, remap func(int) int) {
	depth := b.depth
	if depth == 0 {
		depth = 1
	}

	next := NewBuffer(size, depth)
	for j := range b.size {
		dst := remap(j) * depth
		copy(next.data[dst:dst+depth], b.data[j*depth:(j+1)*depth])
	}
	*b = next
}

// Equal reports whether both buffers have the same size, the same depth and
// identical bytes.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.size == other.size &&
		b.depth == other.depth &&
		bytes.Equal(b.data, other.data)
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() Buffer {
	c := *b
	c.data = bytes.Clone(b.data)

	return c
}

// Take moves the contents of b into the returned buffer and leaves b empty.
func (b *Buffer) Take() Buffer {
	moved := *b
	*b = Buffer{}

	return moved
}

// MaxUint returns the largest value a cell of the given depth can hold.
func MaxUint(depth int) uint64 {
	checkDepth(depth)
	if depth == 8 {
		return ^uint64(0)
	}

	return 1<<(8*depth) - 1
}

// DepthFor returns the narrowest depth able to hold v.
func DepthFor(v uint64) int {
	switch {
	case v <= MaxUint(1):
		return 1
	case v <= MaxUint(2):
		return 2
	case v <= MaxUint(4):
		return 4
	default:
		return 8
	}
}
