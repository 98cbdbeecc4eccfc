package pairwise

import (
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/arloliu/warp/dtw"
	"github.com/arloliu/warp/series"
)

// Triple is one row of the pairwise output: a left identifier, a right
// identifier, and the DTW distance between their sequences.
type Triple struct {
	LeftID   string
	RightID  string
	Distance float32
}

// Config holds orchestrator settings, populated through Option values.
type Config struct {
	workers int
}

// Workers returns the effective worker count.
func (c *Config) Workers() int {
	return c.workers
}

func (c *Config) setWorkers(n int) {
	if n > 0 {
		c.workers = n
	}
}

func defaultConfig() Config {
	return Config{workers: runtime.GOMAXPROCS(0)}
}

// Distances computes the DTW distance for every (left, right) pair of
// series, returning exactly left.Len() × right.Len() triples.
//
// Triples appear grouped by left entry in first-appearance order; no
// ordering beyond completeness is guaranteed to callers. Self-pairs (the
// same identifier on both sides) are ordinary pairs.
//
// The first kernel error aborts the whole computation: remaining workers
// stop at the next pair boundary and no partial result is returned. The
// error names both identifiers of the offending pair.
func Distances(left, right *series.Collection, opts ...Option) ([]Triple, error) {
	cfg := defaultConfig()
	if err := applyOptions(&cfg, opts...); err != nil {
		return nil, err
	}

	leftEntries := left.Entries()
	rightEntries := right.Entries()
	if len(leftEntries) == 0 || len(rightEntries) == 0 {
		return []Triple{}, nil
	}

	workers := cfg.workers
	if workers > len(leftEntries) {
		workers = len(leftEntries)
	}

	// Contiguous index ranges over the left snapshot, one per worker. Each
	// worker owns its buffer exclusively until the final concatenation.
	buffers := make([][]Triple, workers)
	workerErrs := make([]error, workers)

	var failed atomic.Bool
	var wg sync.WaitGroup

	chunk := (len(leftEntries) + workers - 1) / workers
	for w := 0; w < workers; w++ {
		lo := w * chunk
		if lo >= len(leftEntries) {
			// Ceil division can leave trailing workers with no range.
			break
		}
		hi := lo + chunk
		if hi > len(leftEntries) {
			hi = len(leftEntries)
		}

		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()

			buf := make([]Triple, 0, (hi-lo)*len(rightEntries))
			for i := lo; i < hi; i++ {
				if failed.Load() {
					return
				}
				l := &leftEntries[i]
				for r := range rightEntries {
					d, err := dtw.DistanceBetween(l.Name, l.Values, rightEntries[r].Name, rightEntries[r].Values)
					if err != nil {
						workerErrs[w] = err
						failed.Store(true)

						return
					}
					buf = append(buf, Triple{LeftID: l.Name, RightID: rightEntries[r].Name, Distance: d})
				}
			}
			buffers[w] = buf
		}(w, lo, hi)
	}
	wg.Wait()

	for _, err := range workerErrs {
		if err != nil {
			return nil, err
		}
	}

	result := make([]Triple, 0, len(leftEntries)*len(rightEntries))
	for _, buf := range buffers {
		result = append(result, buf...)
	}

	return result, nil
}
