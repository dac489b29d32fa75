// Package compress provides the codecs used to store fit reports.
//
// Reports are small JSON documents, so the codecs favor compatibility and
// ratio over raw speed. Four codecs are available:
//
//   - None: stores the payload unchanged
//   - Zstd: Zstandard via github.com/klauspost/compress, pooled encoders and decoders
//   - S2: github.com/klauspost/compress/s2 block format
//   - LZ4: github.com/pierrec/lz4 block format with a length prefix
//
// The codec of a report file is picked from its extension:
//
//	t := compress.FromExtension("fit.json.zst") // CompressionZstd
//	codec, err := compress.GetCodec(t)
//	if err != nil {
//	    return err
//	}
//	payload, err := codec.Compress(data)
package compress
