package compress

import (
	"fmt"
	"time"

	"github.com/arloliu/isofit/errs"
)

// Compressor compresses a complete payload.
//
// Memory management:
//   - Returned slice is owned by the caller, except for the no-op codec
//   - Input slice is not modified
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload produced by the matching Compressor.
//
// It returns an error if the data is corrupted or was produced by a
// different codec. Implementations are safe for concurrent use.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats describes one compression operation.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm CompressionType

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Returns:
//   - float64: Compression ratio (0.0 if original size is zero)
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage.
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

var builtinCodecs = map[CompressionType]Codec{
	CompressionNone: NewNoOpCompressor(),
	CompressionZstd: NewZstdCompressor(),
	CompressionS2:   NewS2Compressor(),
	CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type %s: %w", compressionType, errs.ErrInvalidCompressionType)
}

// Compress compresses data with the built-in codec of compressionType and
// reports the sizes and elapsed time.
func Compress(compressionType CompressionType, data []byte) ([]byte, CompressionStats, error) {
	codec, err := GetCodec(compressionType)
	if err != nil {
		return nil, CompressionStats{}, err
	}

	start := time.Now()
	out, err := codec.Compress(data)
	if err != nil {
		return nil, CompressionStats{}, fmt.Errorf("%s compression failed: %w", compressionType, err)
	}

	return out, CompressionStats{
		Algorithm:         compressionType,
		OriginalSize:      int64(len(data)),
		CompressedSize:    int64(len(out)),
		CompressionTimeNs: time.Since(start).Nanoseconds(),
	}, nil
}
