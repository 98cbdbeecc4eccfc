// Package series implements the sequence grouper: it turns labeled
// observations into per-identifier float32 sequences and holds them in an
// immutable Collection.
//
// Identifiers are hashed with xxHash64 for O(1) lookup. Hash collisions
// between different names are legal and detected at build time; a collided
// collection transparently falls back to name scans for lookups, so callers
// never observe the collision beyond HasCollision reporting true.
//
// Building a collection:
//
//	builder := series.NewBuilder()
//	builder.Append("A", 1.0)
//	builder.Append("A", 2.0)
//	builder.Append("B", 5.0)
//	c := builder.Build()
//	// c.Values("A") == [1.0, 2.0], order preserved
//
// Collections are immutable after Build and safe for concurrent readers.
package series
