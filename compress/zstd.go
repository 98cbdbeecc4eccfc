package compress

// ZstdCompressor provides Zstandard compression for table files.
//
// Zstd offers the best compression ratio of the supported codecs and is the
// recommended choice when output files are archived or transferred. Two
// implementations back this type: a pure-Go path (klauspost/compress/zstd)
// used when cgo is disabled, and a cgo path (valyala/gozstd) used otherwise.
// Both produce standard Zstandard frames, so files are interchangeable
// between builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
