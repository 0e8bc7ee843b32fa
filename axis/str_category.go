package axis

import (
	"fmt"
	"strings"

	"go.uber.org/multierr"

	"github.com/arloliu/histo/errs"
	"github.com/arloliu/histo/internal/collision"
	"github.com/arloliu/histo/internal/hash"
	"github.com/arloliu/histo/internal/textfmt"
)

// StrCategory is a string category axis that looks labels up by their xxHash64 ID.
//
// Callers that already carry hashed labels can bin with IndexID and skip hashing.
// Hash collisions between listed labels are detected when the labels are added;
// colliding IDs then resolve through an exact string lookup, and IndexID reports
// them as not found.
type StrCategory struct {
	metadata
	tracker *collision.Tracker
	ids     []uint64
}

var _ Dynamic = (*StrCategory)(nil)

// NewStrCategory creates a string category axis over labels, in order.
//
// Options follow Category: overflow by default, never underflow.
func NewStrCategory(labels []string, settings ...Setting) (*StrCategory, error) {
	var err error
	a := &StrCategory{
		metadata: newMetadata(Overflow, settings, &err),
		tracker:  collision.NewTracker(),
		ids:      make([]uint64, 0, len(labels)),
	}

	if a.opts.Test(Underflow) {
		err = multierr.Append(err, fmt.Errorf("%w: category axis cannot have an underflow slot", errs.ErrInvalidAxis))
	}
	if len(labels) == 0 && !a.opts.Test(Growth) {
		err = multierr.Append(err, fmt.Errorf("%w: non-growing category axis needs at least one value", errs.ErrInvalidAxis))
	}
	for _, l := range labels {
		err = multierr.Append(err, a.add(l, hash.ID(l)))
	}
	if err != nil {
		return nil, err
	}

	return a, nil
}

func (a *StrCategory) add(label string, id uint64) error {
	if err := a.tracker.Track(label, id); err != nil {
		return err
	}
	a.ids = append(a.ids, id)

	return nil
}

// Size returns the number of categories.
func (a *StrCategory) Size() int {
	return len(a.ids)
}

// HasCollision reports whether two labels of the axis share a hash.
func (a *StrCategory) HasCollision() bool {
	return a.tracker.HasCollision()
}

// ID returns the hash of category i.
func (a *StrCategory) ID(i int) uint64 {
	return a.ids[i]
}

// Index returns the position of label, or Size() if label is not a category.
func (a *StrCategory) Index(label string) int {
	if i, ok := a.tracker.Lookup(label, hash.ID(label)); ok {
		return i
	}

	return a.Size()
}

// IndexID returns the position of the label hashed to id, or Size() if id is
// unknown or shared by several labels.
func (a *StrCategory) IndexID(id uint64) int {
	if i, ok := a.tracker.Position(id); ok {
		return i
	}

	return a.Size()
}

// Update returns the position of label. A growing axis appends unknown labels.
func (a *StrCategory) Update(label string) (int, int, error) {
	id := hash.ID(label)
	if i, ok := a.tracker.Lookup(label, id); ok {
		return i, 0, nil
	}
	if !a.opts.Test(Growth) {
		return a.Size(), 0, nil
	}
	if err := a.add(label, id); err != nil {
		return 0, 0, err
	}

	return a.Size() - 1, -1, nil
}

// Value returns label i, or "" outside [0, Size()).
func (a *StrCategory) Value(i int) string {
	if i < 0 || i >= a.Size() {
		return ""
	}

	return a.tracker.Labels()[i]
}

// Width is always 0.
func (a *StrCategory) Width(int) float64 {
	return 0
}

// Bin returns label i, or the "other" bin for the overflow slot.
func (a *StrCategory) Bin(i int) Bin {
	if i < 0 || i >= a.Size() {
		return OtherBin()
	}

	return ValueBin(a.tracker.Labels()[i])
}

// IndexAny implements Dynamic.
func (a *StrCategory) IndexAny(v any) (int, error) {
	s, err := convert[string](v)
	if err != nil {
		return 0, err
	}

	return a.Index(s), nil
}

// UpdateAny implements Dynamic.
func (a *StrCategory) UpdateAny(v any) (int, int, error) {
	s, err := convert[string](v)
	if err != nil {
		return 0, 0, err
	}

	return a.Update(s)
}

// ValueAny implements Dynamic.
func (a *StrCategory) ValueAny(i int) (any, error) {
	if i < 0 || i >= a.Size() {
		return nil, fmt.Errorf("%w: category %d of %d", errs.ErrIndexOutOfRange, i, a.Size())
	}

	return a.tracker.Labels()[i], nil
}

func (a *StrCategory) String() string {
	var sb strings.Builder
	sb.WriteString("category(")
	for i, l := range a.tracker.Labels() {
		if i > 0 {
			sb.WriteString(", ")
		}
		textfmt.Escape(&sb, l)
	}
	a.describe(&sb)
	sb.WriteByte(')')

	return sb.String()
}
