// Package hash computes the xxHash64 fingerprints used for stream checksums
// and payload identification.
package hash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Payload computes the xxHash64 of a block payload.
func Payload(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Hex formats a fingerprint as 16 lowercase hex digits.
func Hex(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}

// Stream computes a running xxHash64 over every byte consumed from a log.
// The zero value is not usable, create one with NewStream.
type Stream struct {
	d *xxhash.Digest
}

// NewStream creates an empty stream digest.
func NewStream() *Stream {
	return &Stream{d: xxhash.New()}
}

// Write adds data to the digest. It never fails.
func (s *Stream) Write(data []byte) {
	_, _ = s.d.Write(data)
}

// Sum64 returns the digest of all data written so far.
func (s *Stream) Sum64() uint64 {
	return s.d.Sum64()
}
