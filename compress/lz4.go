package compress

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"
)

// lz4CompressorPool pools lz4.Compressor instances for reuse.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// lz4MaxSize bounds the declared decompressed size of a payload.
const lz4MaxSize = 128 * 1024 * 1024

// LZ4Compressor provides LZ4 block compression.
//
// LZ4 blocks do not record their decompressed size, so every payload starts
// with the original length as an unsigned varint.
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates a new LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// Compress compresses the input data using a pooled lz4.Compressor.
//
// Returns:
//   - []byte: Length-prefixed block (nil if input is empty)
//   - error: Compression error if any
func (c LZ4Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dst := make([]byte, binary.MaxVarintLen64+lz4.CompressBlockBound(len(data)))
	hdr := binary.PutUvarint(dst, uint64(len(data)))

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst[hdr:])
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("lz4: incompressible payload of %d bytes", len(data))
	}

	return dst[:hdr+n], nil
}

// Decompress decompresses a length-prefixed LZ4 block.
//
// Returns:
//   - []byte: Decompressed data (nil if input is empty)
//   - error: Corrupted header, a declared size above 128MB, or a block error
func (c LZ4Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	size, hdr := binary.Uvarint(data)
	if hdr <= 0 {
		return nil, fmt.Errorf("lz4: invalid length header")
	}
	if size > lz4MaxSize {
		return nil, fmt.Errorf("lz4: declared size %d exceeds limit", size)
	}

	buf := make([]byte, size)
	n, err := lz4.UncompressBlock(data[hdr:], buf)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompression failed: %w", err)
	}
	if uint64(n) != size {
		return nil, fmt.Errorf("lz4: decompressed %d bytes, header declares %d", n, size)
	}

	return buf, nil
}
