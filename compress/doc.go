// Package compress provides the codecs used to read compressed sample files.
//
// Sample files are plain comma-delimited text, but large exports are often
// shipped compressed. sample.Load picks a codec from the file extension (or an
// explicit format.CompressionType) and decodes the whole file before the line
// filter runs.
//
// # Supported Algorithms
//
//   - None: data passes through unchanged
//   - Zstd: Zstandard frames (.zst, .zstd)
//   - S2: S2 stream format, also reads Snappy framed streams (.s2)
//   - LZ4: LZ4 frame format (.lz4)
//   - Gzip: gzip members (.gz)
//
// Every codec implements both directions so that tests and tooling can produce
// fixtures in the same format the loader consumes:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	if err != nil {
//	    return err
//	}
//	raw, err := codec.Decompress(payload)
//
// Codecs are stateless values and safe for concurrent use.
package compress
