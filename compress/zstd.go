package compress

// ZstdCompressor provides Zstandard compression for sonar payloads.
//
// Zstd gives the best ratio of the built-in codecs on the mostly smooth
// intensity data of the primary and secondary channels. It is the codec to
// use when exported payloads are archived.
//
// The default build uses the pure Go klauspost/compress implementation.
// Building with the gozstd tag (and cgo enabled) switches to valyala/gozstd.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
