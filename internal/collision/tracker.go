package collision

import (
	"fmt"

	"github.com/arloliu/histo/errs"
)

// Tracker assigns positions to category labels keyed by their hash and detects
// duplicate labels and hash collisions.
//
// As long as no two labels share a hash, lookups go through the hash map alone.
// Once a collision is seen the tracker also keeps an exact label map, and
// Position stops answering for colliding hashes.
type Tracker struct {
	byID         map[uint64]int    // hash -> position of the first label with that hash
	byLabel      map[string]int    // exact map, built on first collision
	colliding    map[uint64]struct{}
	labels       []string
	hasCollision bool
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		byID:   make(map[uint64]int),
		labels: make([]string, 0),
	}
}

// Track appends label with hash id at the next position.
//
// Returns errs.ErrInvalidAxis if label was already tracked. A different label with
// the same hash is not an error; it sets the collision flag.
func (t *Tracker) Track(label string, id uint64) error {
	if t.hasCollision {
		if _, ok := t.byLabel[label]; ok {
			return fmt.Errorf("%w: duplicate category %q", errs.ErrInvalidAxis, label)
		}
	}

	if pos, exists := t.byID[id]; exists {
		if t.labels[pos] == label {
			return fmt.Errorf("%w: duplicate category %q", errs.ErrInvalidAxis, label)
		}
		t.markCollision(id)
	}

	pos := len(t.labels)
	t.labels = append(t.labels, label)
	if _, exists := t.byID[id]; !exists {
		t.byID[id] = pos
	}
	if t.hasCollision {
		t.byLabel[label] = pos
	}

	return nil
}

func (t *Tracker) markCollision(id uint64) {
	if !t.hasCollision {
		t.hasCollision = true
		t.colliding = make(map[uint64]struct{})
		t.byLabel = make(map[string]int, len(t.labels)+1)
		for i, l := range t.labels {
			t.byLabel[l] = i
		}
	}
	t.colliding[id] = struct{}{}
}

// Position returns the position of the label hashed to id.
// The second result is false if id is unknown or shared by several labels.
func (t *Tracker) Position(id uint64) (int, bool) {
	if t.hasCollision {
		if _, ok := t.colliding[id]; ok {
			return 0, false
		}
	}
	pos, ok := t.byID[id]

	return pos, ok
}

// Lookup returns the exact position of label, resolving hash collisions.
func (t *Tracker) Lookup(label string, id uint64) (int, bool) {
	if t.hasCollision {
		pos, ok := t.byLabel[label]
		return pos, ok
	}

	pos, ok := t.byID[id]
	if !ok || t.labels[pos] != label {
		return 0, false
	}

	return pos, true
}

// HasCollision reports whether two tracked labels share a hash.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Labels returns the tracked labels in insertion order.
func (t *Tracker) Labels() []string {
	return t.labels
}
