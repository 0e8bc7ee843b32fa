// Package histo provides a multi-dimensional histogram that accumulates counts or
// weights into the cells spanned by an ordered tuple of independently configured
// axes, in a single streaming pass.
//
// Each axis maps values of its own domain to bin indices. The histogram combines
// the per-axis indices into one cell of a dense, row-major storage in which the
// first axis varies fastest.
//
// # Core Features
//
//   - Heterogeneous axes: integer, regular, variable, category and string category
//     axes, plus custom axes adapted with axis.Erase
//   - Optional underflow/overflow slots per axis
//   - Growing axes that extend on demand while keeping existing bins in place
//   - Adaptive storage that keeps counts at 1, 2, 4 or 8 bytes per cell and
//     switches to real-valued cells for fractional or negative weights
//   - Indexed iteration over inner bins or every cell, with bin densities
//
// # Basic Usage
//
//	x, _ := axis.NewRegular(10, 0, 1, axis.WithLabel("x"))
//	y, _ := axis.NewInteger(0, 0, axis.WithOptions(axis.Growth))
//	h, _ := histo.New([]axis.Dynamic{x, y})
//
//	_ = h.Fill(0.25, 3)
//	_ = h.FillWeighted(2.5, 0.75, -1)
//
//	for c := range histo.Indexed(h, histo.Inner).All() {
//	    fmt.Println(c.Indices(), c.Value(), c.Density())
//	}
//
// # Storage Layout
//
// Every axis contributes size + 1 cells per boundary slot it has. Underflow is
// stored before bin 0 and overflow after the last bin. Growing axes have no
// boundary slots; when they grow, the storage is reallocated and every cell is
// moved to the position of its bin in the grown axis.
//
// # Concurrency
//
// A Histogram is not safe for concurrent use. Serialize fills externally, or fill
// one histogram per goroutine and combine them with Merge.
package histo
