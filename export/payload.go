package export

import (
	"fmt"
	"strings"

	"github.com/arloliu/sonarlog/format"
)

// PayloadMode selects how a record's sonar payload appears in its JSON line.
type PayloadMode uint8

const (
	PayloadOmit PayloadMode = iota // no payload key
	PayloadHash                    // xxHash64 hex under "payloadHash"
	PayloadRaw                     // base64 of the payload under "payload"
	PayloadZstd                    // base64 of the zstd-compressed payload
	PayloadS2                      // base64 of the S2-compressed payload
	PayloadLZ4                     // base64 of the LZ4-compressed payload
)

func (m PayloadMode) String() string {
	switch m {
	case PayloadOmit:
		return "omit"
	case PayloadHash:
		return "hash"
	case PayloadRaw:
		return "raw"
	case PayloadZstd:
		return "zstd"
	case PayloadS2:
		return "s2"
	case PayloadLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("PayloadMode(%d)", uint8(m))
	}
}

// IsValid reports whether m is a known payload mode.
func (m PayloadMode) IsValid() bool {
	return m <= PayloadLZ4
}

// ParsePayloadMode parses a payload mode name, case-insensitive. An empty name means omit.
func ParsePayloadMode(s string) (PayloadMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "omit", "none":
		return PayloadOmit, nil
	case "hash":
		return PayloadHash, nil
	case "raw":
		return PayloadRaw, nil
	case "zstd":
		return PayloadZstd, nil
	case "s2":
		return PayloadS2, nil
	case "lz4":
		return PayloadLZ4, nil
	default:
		return PayloadOmit, fmt.Errorf("unknown payload mode %q", s)
	}
}

// UnmarshalText decodes a payload mode by name.
func (m *PayloadMode) UnmarshalText(text []byte) error {
	mode, err := ParsePayloadMode(string(text))
	if err != nil {
		return err
	}
	*m = mode

	return nil
}

// MarshalText encodes the payload mode by name.
func (m PayloadMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// compression returns the payload codec of modes that embed the payload.
func (m PayloadMode) compression() (format.CompressionType, bool) {
	switch m {
	case PayloadRaw:
		return format.CompressionNone, true
	case PayloadZstd:
		return format.CompressionZstd, true
	case PayloadS2:
		return format.CompressionS2, true
	case PayloadLZ4:
		return format.CompressionLZ4, true
	default:
		return 0, false
	}
}
