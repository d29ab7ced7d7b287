// Package compress handles the compression that surrounds sonar logs.
//
// Two concerns live here:
//
//  1. Stream decompression. Recorder logs are often archived as whole-file
//     zstd, LZ4 frame or S2/Snappy framed streams. Open sniffs the leading
//     bytes and returns a reader of the decompressed log, so the decoder
//     only ever sees the raw SL2/SL3 byte stream.
//  2. Payload codecs. Each block carries an opaque intensity payload. When
//     records are exported, the payload can be compressed one block at a
//     time with a Codec.
//
// # Stream Detection
//
//	rc, kind, err := compress.Open(file)
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//	// kind is format.CompressionNone for a plain .sl2 file
//
// Detect recognizes:
//   - zstd frames (28 B5 2F FD)
//   - LZ4 frames (04 22 4D 18)
//   - S2 and Snappy framed streams (FF 06 00 00 followed by the stream identifier)
//
// # Payload Codecs
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	compressed, err := codec.Compress(rec.Payload)
//	original, err := codec.Decompress(compressed)
//
// Supported algorithms:
//   - None: pass-through, returns the input slice
//   - Zstd: best ratio; pure Go by default, cgo gozstd with the gozstd build tag
//   - S2: fast block compression from klauspost/compress
//   - LZ4: LZ4 block format from pierrec/lz4
//
// LZ4 blocks do not record their decompressed size. LZ4Compressor.Decompress
// grows its output buffer until the block fits, up to a fixed limit.
//
// # Thread Safety
//
// All codecs are stateless values backed by sync.Pool instances and are safe
// for concurrent use. Stream readers returned by NewReader and Open are not.
package compress
