package format

import (
	"testing"

	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
	"github.com/stretchr/testify/require"
)

func TestParseCompression(t *testing.T) {
	tests := []struct {
		in   string
		want CompressionType
	}{
		{"", CompressionAuto},
		{"auto", CompressionAuto},
		{"None", CompressionNone},
		{"zstd", CompressionZstd},
		{"ZST", CompressionZstd},
		{"s2", CompressionS2},
		{"lz4", CompressionLZ4},
		{"gz", CompressionGzip},
		{" gzip ", CompressionGzip},
	}

	for _, tt := range tests {
		got, err := ParseCompression(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseCompression("brotli")
	require.ErrorIs(t, err, errs.ErrInvalidCompression)
}

func TestCompressionFromPath(t *testing.T) {
	require.Equal(t, CompressionNone, CompressionFromPath("data.csv"))
	require.Equal(t, CompressionNone, CompressionFromPath("data"))
	require.Equal(t, CompressionZstd, CompressionFromPath("/tmp/data.csv.zst"))
	require.Equal(t, CompressionZstd, CompressionFromPath("data.ZSTD"))
	require.Equal(t, CompressionS2, CompressionFromPath("data.csv.s2"))
	require.Equal(t, CompressionLZ4, CompressionFromPath("data.csv.lz4"))
	require.Equal(t, CompressionGzip, CompressionFromPath("data.csv.gz"))
}

func TestParseReportFormat(t *testing.T) {
	f, err := ParseReportFormat("")
	require.NoError(t, err)
	require.Equal(t, ReportText, f)

	f, err = ParseReportFormat("JSON")
	require.NoError(t, err)
	require.Equal(t, ReportJSON, f)

	f, err = ParseReportFormat("yml")
	require.NoError(t, err)
	require.Equal(t, ReportYAML, f)

	_, err = ParseReportFormat("xml")
	require.ErrorIs(t, err, errs.ErrInvalidFormat)
}

func TestStringers(t *testing.T) {
	require.Equal(t, "Zstd", CompressionZstd.String())
	require.Equal(t, "Gzip", CompressionGzip.String())
	require.Equal(t, "Unknown", CompressionType(0x7f).String())
	require.Equal(t, "yaml", ReportYAML.String())
	require.Equal(t, "unknown", ReportFormat(0).String())
}
