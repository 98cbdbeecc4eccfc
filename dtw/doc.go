// Package dtw implements the Dynamic Time Warping distance kernel over
// float32 sequences.
//
// DTW measures similarity between two sequences that may vary in speed by
// finding the minimal-cost monotonic alignment between them, where the cost
// of aligning two points is the absolute difference of their values.
//
// The kernel follows the classic (n+1)×(m+1) dynamic-programming recurrence
// but stores only two rows of the grid at a time (rolling rows), reducing
// memory from O(n·m) to O(m) while producing bit-identical results to the
// full grid. The rows come from a shared pool so large pairwise workloads
// do not reallocate per pair.
//
// All arithmetic stays in float32: costs, accumulation, and comparisons.
// This matches the 32-bit precision of the sequence data end to end.
package dtw
