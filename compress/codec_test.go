package compress

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/warp/format"
)

// sampleCSV produces table-shaped test data resembling what the CLI feeds
// through the codecs.
func sampleCSV(rows int) []byte {
	var buf bytes.Buffer
	buf.WriteString("unique_id,y\n")
	for i := 0; i < rows; i++ {
		fmt.Fprintf(&buf, "series_%d,%0.4f\n", i%7, float32(i)*0.25)
	}

	return buf.Bytes()
}

func TestCodec_RoundTrip(t *testing.T) {
	data := sampleCSV(500)

	codecs := map[string]Codec{
		"noop": NewNoOpCompressor(),
		"zstd": NewZstdCompressor(),
		"s2":   NewS2Compressor(),
		"lz4":  NewLZ4Compressor(),
	}

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, c := range []format.CompressionType{
		format.CompressionNone, format.CompressionZstd,
		format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := GetCodec(c)
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestCodec_CompressionReducesSize(t *testing.T) {
	// Repetitive CSV text should shrink under every real codec.
	data := sampleCSV(2000)

	for _, c := range []format.CompressionType{
		format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		t.Run(c.String(), func(t *testing.T) {
			codec, err := GetCodec(c)
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(data))
		})
	}
}

func TestCreateCodec(t *testing.T) {
	t.Run("valid types", func(t *testing.T) {
		for _, c := range []format.CompressionType{
			format.CompressionNone, format.CompressionZstd,
			format.CompressionS2, format.CompressionLZ4,
		} {
			codec, err := CreateCodec(c, "test")
			require.NoError(t, err)
			require.NotNil(t, codec)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		codec, err := CreateCodec(format.CompressionType(0xff), "input file")
		require.Error(t, err)
		require.Nil(t, codec)
		require.Contains(t, err.Error(), "input file")
	})
}

func TestGetCodec_Unknown(t *testing.T) {
	codec, err := GetCodec(format.CompressionType(0x7f))
	require.Error(t, err)
	require.Nil(t, codec)
}

func TestLZ4Compressor_CorruptedData(t *testing.T) {
	codec := NewLZ4Compressor()

	_, err := codec.Decompress([]byte{0xde, 0xad, 0xbe, 0xef})
	require.Error(t, err)
}

func TestZstdCompressor_CorruptedData(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0x01, 0x02, 0x03, 0x04})
	require.Error(t, err)
}

func BenchmarkCodec_Compress(b *testing.B) {
	data := sampleCSV(10000)

	for _, c := range []format.CompressionType{
		format.CompressionZstd, format.CompressionS2, format.CompressionLZ4,
	} {
		codec, err := GetCodec(c)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(c.String(), func(b *testing.B) {
			b.SetBytes(int64(len(data)))
			for b.Loop() {
				_, _ = codec.Compress(data)
			}
		})
	}
}
