package series

import (
	"fmt"

	"github.com/arloliu/warp/internal/collision"
	"github.com/arloliu/warp/internal/hash"
)

// Builder accumulates labeled observations into per-identifier sequences.
//
// Rows may arrive in any order; rows sharing an identifier keep their
// relative order in the resulting sequence. Builder is not safe for
// concurrent use.
type Builder struct {
	entries []Entry
	index   map[uint64]int
	tracker *collision.Tracker
}

// NewBuilder creates an empty sequence builder.
func NewBuilder() *Builder {
	return &Builder{
		entries: make([]Entry, 0),
		index:   make(map[uint64]int),
		tracker: collision.NewTracker(),
	}
}

// Append adds one observation to the identifier's sequence, creating the
// sequence on first appearance. Returns errs.ErrInvalidSeriesName for an
// empty identifier.
func (b *Builder) Append(name string, value float32) error {
	idx, err := b.entryIndex(name)
	if err != nil {
		return err
	}
	b.entries[idx].Values = append(b.entries[idx].Values, value)

	return nil
}

// AppendSequence adds a whole sequence for the identifier at once,
// accumulating onto any existing values. An empty values slice still
// registers the identifier, yielding an empty sequence.
func (b *Builder) AppendSequence(name string, values []float32) error {
	idx, err := b.entryIndex(name)
	if err != nil {
		return err
	}
	b.entries[idx].Values = append(b.entries[idx].Values, values...)

	return nil
}

// Count returns the number of distinct identifiers appended so far.
func (b *Builder) Count() int {
	return len(b.entries)
}

// Build finalizes the accumulated sequences into an immutable Collection.
// The builder must not be used after Build.
func (b *Builder) Build() *Collection {
	c := &Collection{
		entries:      b.entries,
		index:        b.index,
		hasCollision: b.tracker.HasCollision(),
	}
	b.entries = nil
	b.index = nil

	return c
}

// entryIndex resolves the entry slot for name, appending a new entry on
// first appearance.
func (b *Builder) entryIndex(name string) (int, error) {
	h := hash.ID(name)

	seen, err := b.tracker.Track(name, h)
	if err != nil {
		return 0, fmt.Errorf("%w: identifier must not be empty", err)
	}

	if seen {
		idx, ok := b.index[h]
		if ok && b.entries[idx].Name == name {
			return idx, nil
		}
		// The hash slot is owned by a colliding name; find ours by scan.
		for i := range b.entries {
			if b.entries[i].Name == name {
				return i, nil
			}
		}
	}

	b.entries = append(b.entries, Entry{Name: name, Hash: h})
	if _, taken := b.index[h]; !taken {
		b.index[h] = len(b.entries) - 1
	}

	return len(b.entries) - 1, nil
}
