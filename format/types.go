package format

type (
	CompressionType uint8
	TableFormat     uint8
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.

	TableCSV   TableFormat = 0x1 // TableCSV represents CSV table files.
	TableArrow TableFormat = 0x2 // TableArrow represents Arrow IPC stream files.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

func (f TableFormat) String() string {
	switch f {
	case TableCSV:
		return "CSV"
	case TableArrow:
		return "Arrow"
	default:
		return "Unknown"
	}
}

// Ext returns the file extension associated with the compression type,
// including the leading dot, or "" for CompressionNone.
func (c CompressionType) Ext() string {
	switch c {
	case CompressionZstd:
		return ".zst"
	case CompressionS2:
		return ".s2"
	case CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}

// CompressionFromExt maps a file extension (with leading dot) to its
// compression type. Unrecognized extensions map to CompressionNone, so a
// plain ".csv" path selects no compression.
func CompressionFromExt(ext string) CompressionType {
	switch ext {
	case ".zst":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
