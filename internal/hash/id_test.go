package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	require.Equal(t, xxhash.Sum64([]byte("ping")), Payload([]byte("ping")))
	require.Equal(t, uint64(0xef46db3751d8e999), Payload(nil), "xxHash64 of empty input")
	require.NotEqual(t, Payload([]byte{1}), Payload([]byte{2}))
}

func TestHex(t *testing.T) {
	require.Equal(t, "0000000000000000", Hex(0))
	require.Equal(t, "00000000000000ff", Hex(255))
	require.Equal(t, "ef46db3751d8e999", Hex(0xef46db3751d8e999))
}

func TestStream(t *testing.T) {
	whole := []byte("sonar log stream digest")

	s := NewStream()
	for _, c := range whole {
		s.Write([]byte{c})
	}

	require.Equal(t, xxhash.Sum64(whole), s.Sum64(), "chunking must not change the digest")
}
