package collision

import (
	"github.com/arloliu/warp/errs"
)

// Tracker tracks series names and detects hash collisions while a
// collection is being built. It maintains a hash-to-name mapping and an
// ordered list of names in first-appearance order.
//
// Duplicate names are legal: grouping accumulates repeated rows into one
// sequence, so tracking the same name twice is reported, not rejected.
// A collision (different names, same hash) is flagged so lookups can fall
// back to a name scan instead of trusting the hash index.
type Tracker struct {
	hashOwner       map[uint64]string   // Hash → first name seen with that hash
	seenNames       map[string]struct{} // All distinct tracked names
	seriesNamesList []string            // First-appearance order of distinct names
	hasCollision    bool                // Whether a collision has been detected
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		hashOwner:       make(map[uint64]string),
		seenNames:       make(map[string]struct{}),
		seriesNamesList: make([]string, 0),
		hasCollision:    false,
	}
}

// Track records a series name with its hash.
//
// Returns seen=true when the exact name was tracked before (the caller
// should accumulate into the existing sequence), seen=false for a new name.
// Returns errs.ErrInvalidSeriesName for an empty name.
//
// A hash collision (different name, same hash) is NOT an error: the
// collision flag is set and the new name is still tracked, so collections
// can serve lookups by scanning names instead of by hash.
func (t *Tracker) Track(name string, hash uint64) (bool, error) {
	if name == "" {
		return false, errs.ErrInvalidSeriesName
	}

	if _, tracked := t.seenNames[name]; tracked {
		return true, nil
	}

	if owner, exists := t.hashOwner[hash]; exists {
		// Different name, same hash. The first name keeps the hash slot.
		if owner != name {
			t.hasCollision = true
		}
	} else {
		t.hashOwner[hash] = name
	}

	t.seenNames[name] = struct{}{}
	t.seriesNamesList = append(t.seriesNamesList, name)

	return false, nil
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the distinct series names in first-appearance order.
func (t *Tracker) Names() []string {
	return t.seriesNamesList
}

// Count returns the number of distinct tracked names.
func (t *Tracker) Count() int {
	return len(t.seriesNamesList)
}

// Reset clears all tracked names and collision state so the tracker can be
// reused for a new collection.
func (t *Tracker) Reset() {
	// Clear the maps but preserve capacity to avoid allocations
	for k := range t.hashOwner {
		delete(t.hashOwner, k)
	}
	for k := range t.seenNames {
		delete(t.seenNames, k)
	}
	t.seriesNamesList = t.seriesNamesList[:0]
	t.hasCollision = false
}
