package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompressionType_String(t *testing.T) {
	require.Equal(t, "None", CompressionNone.String())
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "S2", CompressionS2.String())
	require.Equal(t, "LZ4", CompressionLZ4.String())
	require.Equal(t, "Unknown", CompressionType(0xff).String())
}

func TestCompressionFromExt(t *testing.T) {
	tests := []struct {
		ext  string
		want CompressionType
	}{
		{".zst", CompressionZstd},
		{".s2", CompressionS2},
		{".lz4", CompressionLZ4},
		{".csv", CompressionNone},
		{"", CompressionNone},
		{".gz", CompressionNone},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, CompressionFromExt(tt.ext), "ext %q", tt.ext)
	}
}

func TestCompressionType_Ext_RoundTrip(t *testing.T) {
	for _, c := range []CompressionType{CompressionZstd, CompressionS2, CompressionLZ4} {
		require.Equal(t, c, CompressionFromExt(c.Ext()))
	}
	require.Equal(t, "", CompressionNone.Ext())
}

func TestTableFormat_String(t *testing.T) {
	require.Equal(t, "CSV", TableCSV.String())
	require.Equal(t, "Arrow", TableArrow.String())
	require.Equal(t, "Unknown", TableFormat(0xff).String())
}
