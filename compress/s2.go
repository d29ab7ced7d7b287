package compress

import "github.com/klauspost/compress/s2"

// S2Compressor provides S2 block compression for sonar payloads.
//
// S2 trades ratio for speed. It suits the noisy down-scan and side-scan
// channels, whose payloads gain little from zstd, when sl2json exports
// large logs with the "s2" payload mode. Each payload is a standalone
// block, so lines can be decoded independently.
type S2Compressor struct{}

var _ Codec = (*S2Compressor)(nil)

// NewS2Compressor creates a new S2 payload compressor.
func NewS2Compressor() S2Compressor {
	return S2Compressor{}
}

// Compress encodes one payload as an S2 block. Empty payloads yield nil.
func (c S2Compressor) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decodes one S2 block back into the payload.
func (c S2Compressor) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Decode(nil, data)
}
