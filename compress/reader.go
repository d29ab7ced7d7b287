package compress

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/arloliu/sonarlog/format"
)

// Stream magic numbers.
var (
	zstdMagic     = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4FrameMagic = []byte{0x04, 0x22, 0x4D, 0x18}
	s2StreamID    = []byte{0xFF, 0x06, 0x00, 0x00, 'S', '2', 's', 'T', 'w', 'O'}
	snappyID      = []byte{0xFF, 0x06, 0x00, 0x00, 's', 'N', 'a', 'P', 'p', 'Y'}
)

// DetectPrefixSize is the number of leading bytes Detect needs to recognize
// every supported stream format.
const DetectPrefixSize = 10

// Detect identifies the outer compression of a stream from its leading bytes.
//
// Anything that is not a zstd frame, an LZ4 frame or an S2/Snappy framed
// stream is reported as format.CompressionNone. SL2 and SL3 prologues start
// with 0x02 or 0x03 and never collide with these magics.
func Detect(prefix []byte) format.CompressionType {
	switch {
	case bytes.HasPrefix(prefix, zstdMagic):
		return format.CompressionZstd
	case bytes.HasPrefix(prefix, lz4FrameMagic):
		return format.CompressionLZ4
	case bytes.HasPrefix(prefix, s2StreamID), bytes.HasPrefix(prefix, snappyID):
		return format.CompressionS2
	default:
		return format.CompressionNone
	}
}

// NewReader wraps r with a streaming decompressor for compressionType.
//
// format.CompressionNone returns r unchanged behind a no-op Close. The
// returned reader must be closed to release decoder resources; closing it
// does not close r.
func NewReader(r io.Reader, compressionType format.CompressionType) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, fmt.Errorf("zstd stream: %w", err)
		}

		return dec.IOReadCloser(), nil
	case format.CompressionS2:
		return io.NopCloser(s2.NewReader(r)), nil
	case format.CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return nil, fmt.Errorf("unsupported stream compression: %s", compressionType)
	}
}

// Open detects the outer compression of r and returns a reader producing the
// decompressed bytes together with the detected type.
//
// Inputs shorter than DetectPrefixSize are treated as uncompressed.
func Open(r io.Reader) (io.ReadCloser, format.CompressionType, error) {
	br := bufio.NewReaderSize(r, 4096)

	prefix, err := br.Peek(DetectPrefixSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, 0, err
	}

	compressionType := Detect(prefix)
	rc, err := NewReader(br, compressionType)
	if err != nil {
		return nil, 0, err
	}

	return rc, compressionType, nil
}
