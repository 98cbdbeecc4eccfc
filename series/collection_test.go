package series

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/warp/internal/hash"
)

// collidedCollection builds a collection whose two names pretend to share a
// hash, exercising the scan fallback without needing real xxHash64
// colliding strings.
func collidedCollection(t *testing.T) *Collection {
	t.Helper()

	h := hash.ID("first")

	return &Collection{
		entries: []Entry{
			{Name: "first", Hash: h, Values: []float32{1.0}},
			{Name: "second", Hash: h, Values: []float32{2.0}},
		},
		index:        map[uint64]int{h: 0},
		hasCollision: true,
	}
}

func TestCollection_Values_CollisionFallback(t *testing.T) {
	c := collidedCollection(t)

	first, ok := c.Values("first")
	require.True(t, ok)
	require.Equal(t, []float32{1.0}, first)

	// "second" misses the hash index (slot owned by "first") and must be
	// found by the name scan.
	second, ok := c.Values("second")
	require.True(t, ok)
	require.Equal(t, []float32{2.0}, second)

	_, ok = c.Values("third")
	require.False(t, ok)

	require.True(t, c.HasCollision())
}

func TestCollection_NoCollision_ByDefault(t *testing.T) {
	builder := NewBuilder()
	require.NoError(t, builder.Append("A", 1.0))
	require.NoError(t, builder.Append("B", 2.0))
	c := builder.Build()

	require.False(t, c.HasCollision())
}

func TestCollection_Empty(t *testing.T) {
	c := NewBuilder().Build()

	require.Equal(t, 0, c.Len())
	require.Empty(t, c.Names())

	count := 0
	for range c.All() {
		count++
	}
	require.Equal(t, 0, count)
}
