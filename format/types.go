package format

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/juninhoojl/pearson-correlation-coefficient/errs"
)

type (
	CompressionType uint8
	ReportFormat    uint8
)

const (
	CompressionAuto CompressionType = 0x0 // CompressionAuto selects the codec from the file extension.
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 stream compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
	CompressionGzip CompressionType = 0x5 // CompressionGzip represents gzip compression.

	ReportText ReportFormat = 0x1 // ReportText is the human-readable console layout.
	ReportJSON ReportFormat = 0x2 // ReportJSON is a single JSON document.
	ReportYAML ReportFormat = 0x3 // ReportYAML is a single YAML document.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionAuto:
		return "Auto"
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	case CompressionGzip:
		return "Gzip"
	default:
		return "Unknown"
	}
}

func (f ReportFormat) String() string {
	switch f {
	case ReportText:
		return "text"
	case ReportJSON:
		return "json"
	case ReportYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseCompression maps a case-insensitive name to a CompressionType.
// The empty string maps to CompressionAuto.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return CompressionAuto, nil
	case "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	case "gzip", "gz":
		return CompressionGzip, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCompression, name)
	}
}

// CompressionFromPath infers the compression of a file from its extension.
// Unknown extensions map to CompressionNone.
func CompressionFromPath(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	case ".gz", ".gzip":
		return CompressionGzip
	default:
		return CompressionNone
	}
}

// ParseReportFormat maps a case-insensitive name to a ReportFormat.
// The empty string maps to ReportText.
func ParseReportFormat(name string) (ReportFormat, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "text", "txt":
		return ReportText, nil
	case "json":
		return ReportJSON, nil
	case "yaml", "yml":
		return ReportYAML, nil
	default:
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidFormat, name)
	}
}
