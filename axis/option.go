package axis

import "strings"

// Option is the set of boundary behaviors of an axis.
type Option uint8

// None is the empty option set: values outside the axis range are dropped.
const None Option = 0

const (
	// Underflow adds a slot for values below the axis range.
	Underflow Option = 1 << iota
	// Overflow adds a slot for values above the axis range.
	Overflow
	// Growth extends the axis range instead of using boundary slots.
	Growth
)

const allOptions = Underflow | Overflow | Growth

// Test reports whether every bit of bits is set in o.
func (o Option) Test(bits Option) bool {
	return o&bits == bits
}

// Extra returns the number of boundary slots the option set adds to an axis.
// Growing axes have none.
func (o Option) Extra() int {
	if o.Test(Growth) {
		return 0
	}
	n := 0
	if o.Test(Underflow) {
		n++
	}
	if o.Test(Overflow) {
		n++
	}

	return n
}

func (o Option) String() string {
	if o == None {
		return "none"
	}

	parts := make([]string, 0, 3)
	if o.Test(Underflow) {
		parts = append(parts, "underflow")
	}
	if o.Test(Overflow) {
		parts = append(parts, "overflow")
	}
	if o.Test(Growth) {
		parts = append(parts, "growth")
	}

	return strings.Join(parts, "|")
}
