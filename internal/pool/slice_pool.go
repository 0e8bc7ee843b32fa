// Package pool provides pooled scratch slices for hot paths that would otherwise
// allocate on every call.
package pool

import "sync"

var intSlicePool = sync.Pool{
	New: func() any { return &[]int{} },
}

// GetIntSlice retrieves a zeroed int slice of length size from the pool.
//
// The caller must call the returned cleanup function, typically with defer,
// and must not use the slice afterwards.
//
// Example:
//
//	idx, cleanup := pool.GetIntSlice(rank)
//	defer cleanup()
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intSlicePool.Get().(*[]int)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]int, size)
	} else {
		slice = slice[:size]
		clear(slice)
	}
	*ptr = slice

	return slice, func() { intSlicePool.Put(ptr) }
}
