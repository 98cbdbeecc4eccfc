package dtw

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/internal/pool"
)

// gridDistance is the reference full-matrix implementation of the same
// recurrence. The rolling-row kernel must match it bit for bit.
func gridDistance(a, b []float32) float32 {
	n, m := len(a), len(b)
	inf := float32(math.Inf(1))

	grid := make([][]float32, n+1)
	for i := range grid {
		grid[i] = make([]float32, m+1)
		for j := range grid[i] {
			grid[i][j] = inf
		}
	}
	grid[0][0] = 0

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			cost := a[i-1] - b[j-1]
			if cost < 0 {
				cost = -cost
			}
			grid[i][j] = cost + min3(grid[i-1][j], grid[i][j-1], grid[i-1][j-1])
		}
	}

	return grid[n][m]
}

func TestDistance_KnownValues(t *testing.T) {
	tests := []struct {
		name string
		a    []float32
		b    []float32
		want float32
	}{
		{
			name: "stretch alignment",
			a:    []float32{1.0, 2.0, 3.0},
			b:    []float32{2.0, 2.0, 2.0, 3.0},
			want: 1.0,
		},
		{
			name: "single point to pair",
			a:    []float32{5.0},
			b:    []float32{5.0, 9.0},
			want: 4.0,
		},
		{
			name: "single points",
			a:    []float32{1.5},
			b:    []float32{4.0},
			want: 2.5,
		},
		{
			name: "identical constant",
			a:    []float32{7.0, 7.0, 7.0},
			b:    []float32{7.0, 7.0},
			want: 0.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Distance(tt.a, tt.b)
			require.NoError(t, err)
			require.Equal(t, tt.want, d)
		})
	}
}

func TestDistance_Identity(t *testing.T) {
	sequences := [][]float32{
		{1.0},
		{3.5, 3.5, 3.5},
		{1.0, -2.0, 3.0, -4.0, 5.5},
	}
	for _, seq := range sequences {
		d, err := Distance(seq, seq)
		require.NoError(t, err)
		require.Equal(t, float32(0), d)
	}
}

func TestDistance_Symmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		a := randomSequence(rng, 1+rng.Intn(30))
		b := randomSequence(rng, 1+rng.Intn(30))

		dab, err := Distance(a, b)
		require.NoError(t, err)
		dba, err := Distance(b, a)
		require.NoError(t, err)
		require.Equal(t, dab, dba)
	}
}

func TestDistance_NonNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for trial := 0; trial < 50; trial++ {
		a := randomSequence(rng, 1+rng.Intn(20))
		b := randomSequence(rng, 1+rng.Intn(20))

		d, err := Distance(a, b)
		require.NoError(t, err)
		require.GreaterOrEqual(t, d, float32(0))
	}
}

// TestDistance_MatchesFullGrid verifies the rolling-row kernel is
// numerically identical to the full-matrix reference, including awkward
// inputs (negative zero, denormals, large magnitudes).
func TestDistance_MatchesFullGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 200; trial++ {
		a := randomSequence(rng, 1+rng.Intn(50))
		b := randomSequence(rng, 1+rng.Intn(50))

		d, err := Distance(a, b)
		require.NoError(t, err)
		require.Equal(t, gridDistance(a, b), d, "trial %d", trial)
	}

	awkward := [][2][]float32{
		{{float32(math.Copysign(0, -1)), 0}, {0, 0, 0}},
		{{math.SmallestNonzeroFloat32, 2 * math.SmallestNonzeroFloat32}, {0}},
		{{1e30, -1e30}, {1e30, 1e30, -1e30}},
	}
	for _, pair := range awkward {
		d, err := Distance(pair[0], pair[1])
		require.NoError(t, err)
		require.Equal(t, gridDistance(pair[0], pair[1]), d)
	}
}

func TestDistance_EmptySequences(t *testing.T) {
	t.Run("both empty", func(t *testing.T) {
		d, err := Distance(nil, nil)
		require.NoError(t, err)
		require.Equal(t, float32(0), d)
	})

	t.Run("left empty", func(t *testing.T) {
		_, err := Distance(nil, []float32{1.0})
		require.ErrorIs(t, err, errs.ErrEmptySequence)
	})

	t.Run("right empty", func(t *testing.T) {
		_, err := Distance([]float32{1.0}, nil)
		require.ErrorIs(t, err, errs.ErrEmptySequence)
	})
}

func TestDistanceBetween_ErrorNamesPair(t *testing.T) {
	_, err := DistanceBetween("left_series", nil, "right_series", []float32{1.0})
	require.ErrorIs(t, err, errs.ErrEmptySequence)
	require.Contains(t, err.Error(), "left_series")
	require.Contains(t, err.Error(), "right_series")
}

// TestDistance_PooledRowsDoNotLeakState verifies a dirty pooled row cannot
// change a later result.
func TestDistance_PooledRowsDoNotLeakState(t *testing.T) {
	a := []float32{1.0, 2.0, 3.0}
	b := []float32{2.0, 2.0, 2.0, 3.0}

	clean, err := Distance(a, b)
	require.NoError(t, err)

	// Poison the pool with rows full of garbage.
	row, release := pool.GetFloat32Slice(64)
	for i := range row {
		row[i] = -12345.0
	}
	release()

	dirty, err := Distance(a, b)
	require.NoError(t, err)
	require.Equal(t, clean, dirty)
}

func TestDistance_SentinelNeverSelected(t *testing.T) {
	// Result must be finite for any non-empty pair, regardless of shape.
	shapes := [][2]int{{1, 100}, {100, 1}, {2, 50}, {50, 2}}
	rng := rand.New(rand.NewSource(3))
	for _, shape := range shapes {
		a := randomSequence(rng, shape[0])
		b := randomSequence(rng, shape[1])

		d, err := Distance(a, b)
		require.NoError(t, err)
		require.False(t, math.IsInf(float64(d), 0), "shape %v", shape)
		require.False(t, math.IsNaN(float64(d)), "shape %v", shape)
	}
}

func randomSequence(rng *rand.Rand, n int) []float32 {
	seq := make([]float32, n)
	for i := range seq {
		seq[i] = float32(rng.NormFloat64() * 10)
	}

	return seq
}

func BenchmarkDistance(b *testing.B) {
	rng := rand.New(rand.NewSource(1))
	for _, size := range []int{16, 128, 1024} {
		seqA := randomSequence(rng, size)
		seqB := randomSequence(rng, size)
		b.Run(fmt.Sprintf("len_%d", size), func(b *testing.B) {
			for b.Loop() {
				_, _ = Distance(seqA, seqB)
			}
		})
	}
}
