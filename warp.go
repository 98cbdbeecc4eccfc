// Package warp computes pairwise Dynamic Time Warping (DTW) distances
// between collections of labeled time series.
//
// Input is tabular: an identifier column and a float value column, carried
// as Arrow records. Warp groups the rows of each input into per-identifier
// float32 sequences, computes the DTW distance for every (left, right)
// identifier pair in parallel, and emits the result as a three-column
// record (id_1, id_2, dtw).
//
// # Basic Usage
//
// Computing a pairwise distance table from two Arrow records:
//
//	import "github.com/arloliu/warp"
//
//	out, err := warp.PairwiseDTW(left, right)
//	if err != nil {
//	    return err
//	}
//	defer out.Release()
//	// out has |left ids| × |right ids| rows
//
// Column names, worker count, and the allocator are configurable:
//
//	out, err := warp.PairwiseDTW(left, right,
//	    warp.WithIDColumn("sensor"),
//	    warp.WithValueColumn("reading"),
//	    warp.WithWorkers(8),
//	)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the focused
// subpackages: frame (Arrow column casting), series (sequence grouping),
// dtw (the distance kernel), pairwise (the parallel cross product), and
// decompose (seasonal strength features). For fine-grained control, use
// those packages directly.
package warp

import (
	"github.com/apache/arrow/go/v17/arrow"

	"github.com/arloliu/warp/decompose"
	"github.com/arloliu/warp/frame"
	"github.com/arloliu/warp/internal/hash"
	"github.com/arloliu/warp/pairwise"
	"github.com/arloliu/warp/series"
)

// PairwiseDTW groups both input records into series collections and
// computes the full cross product of DTW distances.
//
// The returned record follows frame.DistanceSchema (id_1 utf8, id_2 utf8,
// dtw float32) with exactly |left ids| × |right ids| rows. The caller owns
// the record and must Release it.
//
// Errors are schema-class when an input table cannot be interpreted
// (missing column, bad type, nulls) and computation-class when a valid
// input is numerically degenerate (an empty sequence paired with a
// non-empty one); see the errs package predicates.
func PairwiseDTW(left, right arrow.Record, opts ...Option) (arrow.Record, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	leftColl, err := frame.GroupRecord(left, cfg.idColumn, cfg.valueColumn)
	if err != nil {
		return nil, err
	}
	rightColl, err := frame.GroupRecord(right, cfg.idColumn, cfg.valueColumn)
	if err != nil {
		return nil, err
	}

	return pairwiseRecord(cfg, leftColl, rightColl)
}

// PairwiseDTWCollections computes the pairwise distance record for callers
// that already hold grouped collections.
func PairwiseDTWCollections(left, right *series.Collection, opts ...Option) (arrow.Record, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	return pairwiseRecord(cfg, left, right)
}

func pairwiseRecord(cfg *Config, left, right *series.Collection) (arrow.Record, error) {
	triples, err := pairwise.Distances(left, right, pairwise.WithWorkers(cfg.workers))
	if err != nil {
		return nil, err
	}

	return frame.DistanceRecord(cfg.allocator, triples), nil
}

// DecomposeFeatures groups the input record and computes per-identifier
// seasonal strength features at the given frequency.
//
// The returned record follows frame.FeatureSchema with one row per
// identifier. The caller owns the record and must Release it.
func DecomposeFeatures(rec arrow.Record, freq int, opts ...Option) (arrow.Record, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	coll, err := frame.GroupRecord(rec, cfg.idColumn, cfg.valueColumn)
	if err != nil {
		return nil, err
	}

	rows, err := decompose.Features(coll, freq, decompose.WithMethod(cfg.method))
	if err != nil {
		return nil, err
	}

	return frame.FeatureRecord(cfg.allocator, rows), nil
}

// SeriesID computes the xxHash64 identity of a series name, the same hash
// collections use internally for lookups.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}
