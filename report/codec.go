package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/arloliu/isofit/compress"
	"github.com/arloliu/isofit/errs"
	"github.com/arloliu/isofit/internal/options"
	"github.com/arloliu/isofit/internal/pool"
)

// writeConfig holds the settings of WriteFile.
type writeConfig struct {
	compression compress.CompressionType
}

// WriteOption is a functional option for WriteFile.
type WriteOption = options.Option[*writeConfig]

// WithCompression overrides the compression implied by the file extension.
func WithCompression(ct compress.CompressionType) WriteOption {
	return options.New(func(cfg *writeConfig) error {
		if _, err := compress.GetCodec(ct); err != nil {
			return err
		}
		cfg.compression = ct

		return nil
	})
}

// Encode serializes r as indented JSON and compresses it.
func Encode(r *Report, ct compress.CompressionType) ([]byte, compress.CompressionStats, error) {
	buf := pool.GetReportBuffer()
	defer pool.PutReportBuffer(buf)

	enc := json.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return nil, compress.CompressionStats{}, fmt.Errorf("encode report: %w", err)
	}

	data, stats, err := compress.Compress(ct, buf.Bytes())
	if err != nil {
		return nil, stats, err
	}

	// the result must not alias the pooled buffer
	if ct == compress.CompressionNone {
		data = bytes.Clone(data)
	}

	return data, stats, nil
}

// Decode decompresses and parses a report.
func Decode(data []byte, ct compress.CompressionType) (*Report, error) {
	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, err
	}
	raw, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidReport, err)
	}

	var r Report
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&r); err != nil {
		return nil, fmt.Errorf("%w: %w", errs.ErrInvalidReport, err)
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

// Write encodes r to w.
func Write(w io.Writer, r *Report, ct compress.CompressionType) (compress.CompressionStats, error) {
	data, stats, err := Encode(r, ct)
	if err != nil {
		return stats, err
	}
	if _, err := w.Write(data); err != nil {
		return stats, fmt.Errorf("write report: %w", err)
	}

	return stats, nil
}

// Read decodes a report from rd.
func Read(rd io.Reader, ct compress.CompressionType) (*Report, error) {
	data, err := io.ReadAll(rd)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	return Decode(data, ct)
}

// WriteFile writes r to path. The compression follows the file extension
// (.zst, .s2, .lz4) unless WithCompression is given.
func WriteFile(path string, r *Report, opts ...WriteOption) (compress.CompressionStats, error) {
	cfg := writeConfig{compression: compress.FromExtension(path)}
	if err := options.Apply(&cfg, opts...); err != nil {
		return compress.CompressionStats{}, err
	}

	data, stats, err := Encode(r, cfg.compression)
	if err != nil {
		return stats, err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return stats, fmt.Errorf("write report: %w", err)
	}

	return stats, nil
}

// ReadFile reads a report from path, picking the codec from the file extension.
func ReadFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read report: %w", err)
	}

	return Decode(data, compress.FromExtension(path))
}
