package storage

// Vector stores cells in a plain []T.
//
// Weights are converted to T on every write, so an integer Vector truncates
// fractional weights.
type Vector[T Number] struct {
	cells []T
}

var _ Storage = (*Vector[int])(nil)

// NewVector creates an empty vector storage.
func NewVector[T Number]() *Vector[T] {
	return &Vector[T]{}
}

// Values returns the cells. The slice is invalidated by Reset and Grow.
func (v *Vector[T]) Values() []T {
	return v.cells
}

func (v *Vector[T]) Size() int {
	return len(v.cells)
}

func (v *Vector[T]) Reset(n int) {
	v.cells = make([]T, n)
}

func (v *Vector[T]) Increment(i int) {
	v.cells[i]++
}

func (v *Vector[T]) Add(i int, w float64) {
	v.cells[i] += T(w)
}

func (v *Vector[T]) Get(i int) float64 {
	return float64(v.cells[i])
}

func (v *Vector[T]) Set(i int, x float64) {
	v.cells[i] = T(x)
}

func (v *Vector[T]) Grow(n int, remap func(int) int) {
	next := make([]T, n)
	for j, c := range v.cells {
		next[remap(j)] = c
	}
	v.cells = next
}

func (v *Vector[T]) Clone() Storage {
	return &Vector[T]{cells: append([]T(nil), v.cells...)}
}

func (v *Vector[T]) Equal(other Storage) bool {
	return equalValues(v, other)
}
