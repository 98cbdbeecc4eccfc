package series

import (
	"iter"

	"github.com/arloliu/warp/internal/hash"
)

// Entry is one identifier together with its ordered value sequence.
type Entry struct {
	Name   string
	Hash   uint64
	Values []float32
}

// Collection is an immutable set of named float32 sequences, ordered by
// first appearance of each identifier.
//
// Lookups go through the hash index; when a hash collision between distinct
// names was detected during building, lookups verify the stored name and
// fall back to a linear scan, so results stay correct at a small cost.
type Collection struct {
	entries      []Entry
	index        map[uint64]int // hash → first entry with that hash
	hasCollision bool
}

// Len returns the number of distinct identifiers in the collection.
func (c *Collection) Len() int {
	return len(c.entries)
}

// Entries returns the collection's entries in first-appearance order.
//
// The returned slice is the collection's backing storage; callers must
// treat it as read-only.
func (c *Collection) Entries() []Entry {
	return c.entries
}

// Names returns all identifiers in first-appearance order.
func (c *Collection) Names() []string {
	names := make([]string, len(c.entries))
	for i := range c.entries {
		names[i] = c.entries[i].Name
	}

	return names
}

// Values returns the sequence for the given identifier and whether the
// identifier exists in the collection.
//
// The returned slice is the collection's backing storage; callers must
// treat it as read-only.
func (c *Collection) Values(name string) ([]float32, bool) {
	if idx, ok := c.index[hash.ID(name)]; ok && c.entries[idx].Name == name {
		return c.entries[idx].Values, true
	}
	if !c.hasCollision {
		return nil, false
	}

	// A collision was detected at build time; the index may point at a
	// different name with the same hash. Scan by name.
	for i := range c.entries {
		if c.entries[i].Name == name {
			return c.entries[i].Values, true
		}
	}

	return nil, false
}

// HasCollision reports whether two distinct identifiers hashed to the same
// xxHash64 value while the collection was built.
func (c *Collection) HasCollision() bool {
	return c.hasCollision
}

// All iterates over (name, values) pairs in first-appearance order.
func (c *Collection) All() iter.Seq2[string, []float32] {
	return func(yield func(string, []float32) bool) {
		for i := range c.entries {
			if !yield(c.entries[i].Name, c.entries[i].Values) {
				return
			}
		}
	}
}
