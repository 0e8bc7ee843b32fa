// Package axis provides the value-to-index transforms a histogram is built from.
//
// An axis maps values of one domain type to bin indices. Bins are numbered from 0
// to Size()-1; an axis with the Underflow option adds a slot addressed as -1 and an
// axis with Overflow adds one addressed as Size(). Growing axes have neither:
// instead Update extends the axis so every value lands in a real bin.
//
// Axes do not share a base type. What a histogram needs from an axis is expressed
// as small capability interfaces (Indexer, Updater, Valuer, Widther, Optioner)
// and the trait functions Options, Index, Value, Width and Update pick the right
// behavior for whatever the axis implements:
//
//	opts := axis.Options[int](a)      // Underflow|Overflow unless a says otherwise
//	i, shift, err := axis.Update(a, 7) // grows a if it is an Updater[int]
//
// The built-in axes (Integer, Regular, Variable, Category, StrCategory) implement
// Dynamic, the type-erased view a histogram stores. Custom axes are adapted with
// Erase, which resolves their capabilities once.
//
// # Growth
//
// Update returns the index of the value and the signed number of bins added:
// positive when bins were prepended before the old bin 0, negative when they were
// appended after the old last bin, zero otherwise. Bins never move relative to
// their bounds, so a caller can remap its cells from the shift alone.
package axis

// Number is the set of domain types of an Integer axis.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
