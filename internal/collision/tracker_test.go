package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/warp/errs"
)

func TestTracker_Track_NewNames(t *testing.T) {
	tracker := NewTracker()

	seen, err := tracker.Track("A", 1)
	require.NoError(t, err)
	require.False(t, seen)

	seen, err = tracker.Track("B", 2)
	require.NoError(t, err)
	require.False(t, seen)

	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"A", "B"}, tracker.Names())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_DuplicateName(t *testing.T) {
	tracker := NewTracker()

	seen, err := tracker.Track("A", 1)
	require.NoError(t, err)
	require.False(t, seen)

	// Same name again: reported as seen, not an error, not re-listed.
	seen, err = tracker.Track("A", 1)
	require.NoError(t, err)
	require.True(t, seen)

	require.Equal(t, 1, tracker.Count())
	require.False(t, tracker.HasCollision())
}

func TestTracker_Track_HashCollision(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("A", 42)
	require.NoError(t, err)

	// Different name mapping to the same hash sets the collision flag.
	seen, err := tracker.Track("B", 42)
	require.NoError(t, err)
	require.False(t, seen)
	require.True(t, tracker.HasCollision())
	require.Equal(t, []string{"A", "B"}, tracker.Names())
}

func TestTracker_Track_FirstNameAfterCollision(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("A", 42)
	require.NoError(t, err)
	_, err = tracker.Track("B", 42)
	require.NoError(t, err)

	// Re-tracking either colliding name must report seen, not a new name.
	seen, err := tracker.Track("A", 42)
	require.NoError(t, err)
	require.True(t, seen)

	seen, err = tracker.Track("B", 42)
	require.NoError(t, err)
	require.True(t, seen)

	require.Equal(t, 2, tracker.Count())
	require.Equal(t, []string{"A", "B"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("", 1)
	require.ErrorIs(t, err, errs.ErrInvalidSeriesName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()

	_, err := tracker.Track("A", 1)
	require.NoError(t, err)
	_, err = tracker.Track("B", 1)
	require.NoError(t, err)
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())

	// Tracker is reusable after reset.
	seen, err := tracker.Track("A", 1)
	require.NoError(t, err)
	require.False(t, seen)
}
