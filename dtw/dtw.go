package dtw

import (
	"fmt"
	"math"

	"github.com/arloliu/warp/errs"
	"github.com/arloliu/warp/internal/pool"
)

// unreachable marks grid cells that no valid alignment can enter.
//
// Using +Inf instead of MaxFloat32 keeps the sentinel arithmetic safe:
// adding a finite cost to +Inf stays +Inf, whereas MaxFloat32 plus a cost
// would overflow. Every reachable cell has at least one finite predecessor
// through the diagonal chain from D[0][0], so the sentinel is compared but
// never selected on a reachable path.
var unreachable = float32(math.Inf(1))

// Distance computes the DTW distance between sequences a and b.
//
// The distance is the minimal cumulative absolute difference over all
// monotonic alignments covering both endpoints, using the standard step set
// (diagonal, horizontal, vertical).
//
// Edge cases:
//   - Both sequences empty: distance 0.
//   - Exactly one sequence empty: errs.ErrEmptySequence. No covering
//     alignment exists for such a pair, so the distance is undefined.
//
// Complexity is O(n·m) time and O(m) memory.
func Distance(a, b []float32) (float32, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		if n == m {
			return 0, nil
		}

		return 0, errs.ErrEmptySequence
	}

	prev, releasePrev := pool.GetFloat32Slice(m + 1)
	defer releasePrev()
	curr, releaseCurr := pool.GetFloat32Slice(m + 1)
	defer releaseCurr()

	// Row 0: only D[0][0] is reachable.
	prev[0] = 0
	for j := 1; j <= m; j++ {
		prev[j] = unreachable
	}

	for i := 1; i <= n; i++ {
		// Column 0 is unreachable for every row past the first.
		curr[0] = unreachable
		for j := 1; j <= m; j++ {
			cost := a[i-1] - b[j-1]
			if cost < 0 {
				cost = -cost
			}
			curr[j] = cost + min3(prev[j], curr[j-1], prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m], nil
}

// DistanceBetween computes the DTW distance between two named sequences,
// attaching both identifiers to any error. This is the orchestrator's entry
// point into the kernel.
func DistanceBetween(leftID string, a []float32, rightID string, b []float32) (float32, error) {
	d, err := Distance(a, b)
	if err != nil {
		return 0, fmt.Errorf("%w: pair (%q, %q)", err, leftID, rightID)
	}

	return d, nil
}

func min3(x, y, z float32) float32 {
	m := x
	if y < m {
		m = y
	}
	if z < m {
		m = z
	}

	return m
}
