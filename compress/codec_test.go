package compress

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/isofit/errs"
)

// reportPayload builds a JSON-like document with repeated keys.
func reportPayload(points int) []byte {
	var b strings.Builder
	b.WriteString(`{"model":"binary-langmuir","points":[`)
	for i := range points {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, `{"own_fugacity":%d.5,"companion_fugacity":%d,"loading":%.4f,"temperature":300}`, i, i*2, float64(i)/7)
	}
	b.WriteString(`]}`)

	return []byte(b.String())
}

func TestCodecRoundTrip(t *testing.T) {
	types := []CompressionType{CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4}
	payloads := map[string][]byte{
		"small":  []byte(`{"a":1}`),
		"report": reportPayload(500),
	}

	for _, ct := range types {
		for name, data := range payloads {
			t.Run(ct.String()+"/"+name, func(t *testing.T) {
				codec, err := GetCodec(ct)
				require.NoError(t, err)

				compressed, err := codec.Compress(data)
				require.NoError(t, err)

				restored, err := codec.Decompress(compressed)
				require.NoError(t, err)
				assert.Equal(t, data, restored)
			})
		}
	}
}

func TestCodecEmptyInput(t *testing.T) {
	for _, ct := range []CompressionType{CompressionS2, CompressionLZ4} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		out, err := codec.Compress(nil)
		require.NoError(t, err)
		assert.Nil(t, out)

		out, err = codec.Decompress(nil)
		require.NoError(t, err)
		assert.Nil(t, out)
	}
}

func TestCodecCorruptedInput(t *testing.T) {
	garbage := []byte("definitely not a compressed frame")

	for _, ct := range []CompressionType{CompressionZstd, CompressionS2} {
		codec, err := GetCodec(ct)
		require.NoError(t, err)

		_, err = codec.Decompress(garbage)
		require.Error(t, err, ct.String())
	}

	lz := NewLZ4Compressor()
	compressed, err := lz.Compress(reportPayload(50))
	require.NoError(t, err)

	_, err = lz.Decompress(compressed[:len(compressed)/2])
	require.Error(t, err)

	_, err = lz.Decompress([]byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0x01})
	require.Error(t, err)
}

func TestCompressStats(t *testing.T) {
	data := reportPayload(1000)

	out, stats, err := Compress(CompressionZstd, data)
	require.NoError(t, err)

	assert.Equal(t, CompressionZstd, stats.Algorithm)
	assert.Equal(t, int64(len(data)), stats.OriginalSize)
	assert.Equal(t, int64(len(out)), stats.CompressedSize)
	assert.Less(t, stats.CompressionRatio(), 0.5)
	assert.Greater(t, stats.SpaceSavings(), 50.0)

	assert.Zero(t, CompressionStats{}.CompressionRatio())

	_, _, err = Compress(CompressionType(9), data)
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestGetCodecUnknown(t *testing.T) {
	_, err := GetCodec(CompressionType(0))
	require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
}

func TestNoOpSharesMemory(t *testing.T) {
	data := []byte("abc")
	out, err := NewNoOpCompressor().Compress(data)
	require.NoError(t, err)
	assert.True(t, bytes.Equal(data, out))
	assert.Same(t, &data[0], &out[0])
}
