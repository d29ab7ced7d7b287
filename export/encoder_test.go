package export

import (
	"bufio"
	"bytes"
	"encoding/json"
	"math"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/internal/fixture"
	"github.com/arloliu/sonarlog/section"
)

func firstRecord() block.Record {
	b := fixture.SmallFirstBlock()
	return block.NewRecord(&b.Header, b.Payload)
}

func decodeLines(t *testing.T, data []byte) []map[string]any {
	t.Helper()

	var lines []map[string]any
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}
	require.NoError(t, sc.Err())

	return lines
}

func TestEncoder_OmitPayload(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	require.NoError(t, enc.Encode(firstRecord()))
	require.Equal(t, uint64(1), enc.Count())
	require.Equal(t, byte('\n'), buf.Bytes()[buf.Len()-1])

	lines := decodeLines(t, buf.Bytes())
	require.Len(t, lines, 1)

	line := lines[0]
	require.Len(t, line, 20)
	require.Equal(t, "Primary", line["channel"])
	require.Equal(t, float64(3216), line["blockSize"])
	require.Equal(t, 6.622000217437744, line["waterDepth"])
	require.Equal(t, float64(1383678), line["longitude"])
	require.NotContains(t, line, "payload")
	require.NotContains(t, line, "payloadHash")

	flags, ok := line["flags"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, true, flags["trackValid"])
	require.Equal(t, false, flags["headingValid"])
}

func TestEncoder_HashPayload(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, WithPayload(PayloadHash))
	require.NoError(t, err)

	rec := firstRecord()
	require.NoError(t, enc.Encode(rec))

	line := decodeLines(t, buf.Bytes())[0]
	require.Len(t, line, 21)
	require.Len(t, line["payloadHash"], 16)

	sum := xxhash.Sum64(rec.Payload)
	require.Equal(t, sum, mustParseHex(t, line["payloadHash"].(string)))
}

func mustParseHex(t *testing.T, s string) uint64 {
	t.Helper()

	var v uint64
	for _, c := range s {
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		default:
			t.Fatalf("invalid hex digit %q", c)
		}
	}

	return v
}

func TestEncoder_EmbeddedPayload(t *testing.T) {
	for _, mode := range []PayloadMode{PayloadRaw, PayloadZstd, PayloadS2, PayloadLZ4} {
		t.Run(mode.String(), func(t *testing.T) {
			var buf bytes.Buffer
			enc, err := NewEncoder(&buf, WithPayload(mode))
			require.NoError(t, err)

			rec := firstRecord()
			require.NoError(t, enc.Encode(rec))

			line := decodeLines(t, buf.Bytes())[0]
			require.Equal(t, mode.String(), line["payloadEncoding"])

			payload, err := DecodePayload(line["payload"].(string), line["payloadEncoding"].(string))
			require.NoError(t, err)
			require.Equal(t, rec.Payload, payload)
		})
	}
}

func TestEncoder_EmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf, WithPayload(PayloadZstd))
	require.NoError(t, err)

	rec := firstRecord()
	rec.Payload = nil
	require.NoError(t, enc.Encode(rec))

	line := decodeLines(t, buf.Bytes())[0]
	require.NotContains(t, line, "payload")
	require.NotContains(t, line, "payloadEncoding")
}

func TestEncoder_NonFiniteField(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	rec := firstRecord()
	rec.FrameIndex = 7
	rec.WaterDepth = math.NaN()

	err = enc.Encode(rec)
	require.Error(t, err)
	require.Contains(t, err.Error(), "frame 7")
	require.Zero(t, enc.Count())
}

func TestEncoder_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	enc, err := NewEncoder(&buf)
	require.NoError(t, err)

	require.NoError(t, enc.WriteHeader(section.FileHeader{Format: format.VersionSL3, Version: 1, BlockSizeHint: 3216}))
	require.JSONEq(t, `{"formatVersion":"sl3","version":1,"blockSizeHint":3216}`, buf.String())
	require.Zero(t, enc.Count())
}

func TestEncoder_InvalidMode(t *testing.T) {
	_, err := NewEncoder(&bytes.Buffer{}, WithPayload(PayloadMode(99)))
	require.Error(t, err)
	require.Contains(t, err.Error(), "WithPayload")
}

func TestParsePayloadMode(t *testing.T) {
	tests := []struct {
		in      string
		want    PayloadMode
		wantErr bool
	}{
		{"", PayloadOmit, false},
		{"omit", PayloadOmit, false},
		{"HASH", PayloadHash, false},
		{"raw", PayloadRaw, false},
		{" zstd ", PayloadZstd, false},
		{"s2", PayloadS2, false},
		{"lz4", PayloadLZ4, false},
		{"gzip", PayloadOmit, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePayloadMode(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePayload_Errors(t *testing.T) {
	_, err := DecodePayload("AAAA", "hash")
	require.Error(t, err)

	_, err = DecodePayload("!!!", "raw")
	require.Error(t, err)

	_, err = DecodePayload("AAAA", "brotli")
	require.Error(t, err)
}
