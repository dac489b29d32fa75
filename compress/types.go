package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/isofit/errs"
)

// CompressionType identifies a report codec.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// String returns the string representation of the compression type.
func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionS2:
		return "s2"
	case CompressionLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Extension returns the file suffix of the compression type, empty for none.
func (c CompressionType) Extension() string {
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

// ParseCompression returns the compression type for a given name.
// The empty string selects CompressionNone.
func ParseCompression(name string) (CompressionType, error) {
	switch strings.ToLower(name) {
	case "", "none":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, errs.ErrInvalidCompressionType)
	}
}

// FromExtension returns the compression type implied by the suffix of path.
// Unknown suffixes select CompressionNone.
func FromExtension(path string) CompressionType {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".zst", ".zstd":
		return CompressionZstd
	case ".s2":
		return CompressionS2
	case ".lz4":
		return CompressionLZ4
	default:
		return CompressionNone
	}
}
