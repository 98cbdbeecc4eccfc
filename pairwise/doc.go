// Package pairwise computes the full cross product of DTW distances
// between two series collections.
//
// The work fans out over the left collection: its entries are partitioned
// into contiguous index ranges, one per worker, and each worker computes
// its rows against every right entry into a worker-local buffer. Buffers
// are concatenated only after all workers finish, so no lock guards the
// output. The first kernel error stops all workers and aborts the call
// with no partial output.
//
//	triples, err := pairwise.Distances(left, right, pairwise.WithWorkers(8))
package pairwise
