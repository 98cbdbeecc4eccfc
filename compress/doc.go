// Package compress provides block compression codecs for warp table files.
//
// The warp CLI reads and writes whole table files (CSV, Arrow IPC); a
// compressed file is decompressed in one shot before parsing, and output
// tables are compressed in one shot before being written. This package
// supplies the codecs behind that boundary.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Supported Algorithms
//
//   - None (format.CompressionNone): pass-through, no copy
//   - Zstd (format.CompressionZstd): best ratio, moderate speed
//   - S2 (format.CompressionS2): balanced ratio and speed
//   - LZ4 (format.CompressionLZ4): fastest decompression
//
// Codecs are selected through the factory:
//
//	codec, err := compress.CreateCodec(format.CompressionZstd, "input file")
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(fileBytes)
//
// All codecs are stateless values and safe for concurrent use; pooled
// encoder/decoder state is managed internally.
package compress
