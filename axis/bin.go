package axis

import (
	"fmt"
	"math"
	"reflect"
)

// BinKind tells which fields of a Bin are meaningful.
type BinKind uint8

const (
	// KindInterval is a half-open interval [Lower, Upper).
	KindInterval BinKind = iota
	// KindValue is a single discrete value or category.
	KindValue
	// KindOther collects every category value the axis does not list.
	KindOther
)

// Bin is a read-only view of the interval, value or category behind one index.
type Bin struct {
	kind  BinKind
	lower float64
	upper float64
	value any
}

// IntervalBin returns the bin [lower, upper).
func IntervalBin(lower, upper float64) Bin {
	return Bin{kind: KindInterval, lower: lower, upper: upper}
}

// ValueBin returns the bin holding exactly v.
func ValueBin(v any) Bin {
	return Bin{kind: KindValue, value: v}
}

// OtherBin returns the overflow bin of a category axis.
func OtherBin() Bin {
	return Bin{kind: KindOther}
}

// Kind returns the bin kind.
func (b Bin) Kind() BinKind {
	return b.kind
}

// Lower returns the inclusive lower edge of an interval bin, or NaN.
func (b Bin) Lower() float64 {
	if b.kind != KindInterval {
		return math.NaN()
	}

	return b.lower
}

// Upper returns the exclusive upper edge of an interval bin, or NaN.
func (b Bin) Upper() float64 {
	if b.kind != KindInterval {
		return math.NaN()
	}

	return b.upper
}

// Width returns Upper-Lower for interval bins and 0 otherwise.
func (b Bin) Width() float64 {
	if b.kind != KindInterval {
		return 0
	}

	return b.upper - b.lower
}

// Center returns the midpoint of an interval bin, or NaN.
func (b Bin) Center() float64 {
	if b.kind != KindInterval {
		return math.NaN()
	}

	return b.lower + 0.5*(b.upper-b.lower)
}

// Value returns the value of a value bin, or nil.
func (b Bin) Value() any {
	return b.value
}

// Equal reports whether both bins have the same kind and the same bounds or value.
func (b Bin) Equal(other Bin) bool {
	if b.kind != other.kind {
		return false
	}

	switch b.kind {
	case KindInterval:
		return b.lower == other.lower && b.upper == other.upper
	case KindValue:
		if b.value != nil && !reflect.TypeOf(b.value).Comparable() {
			return reflect.DeepEqual(b.value, other.value)
		}
		return b.value == other.value
	default:
		return true
	}
}

func (b Bin) String() string {
	switch b.kind {
	case KindInterval:
		return fmt.Sprintf("[%g, %g)", b.lower, b.upper)
	case KindValue:
		return fmt.Sprint(b.value)
	default:
		return "other"
	}
}
