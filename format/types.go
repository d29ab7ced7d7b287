package format

import (
	"fmt"
	"strconv"
	"strings"
)

type (
	// Version identifies the log file family decoded from the file prologue.
	Version uint16
	// Channel is the logical sonar source of a block.
	Channel uint16
	// SpeedUnit is the target unit for speed conversion.
	SpeedUnit uint8
	// CompressionType identifies an outer compression applied to a log stream or payload.
	CompressionType uint8
)

const (
	VersionUnknown Version = 0x0 // VersionUnknown is used before the prologue is decoded.
	VersionSL2     Version = 0x2 // VersionSL2 is the SL2 family (format word 2).
	VersionSL3     Version = 0x3 // VersionSL3 is the SL3 family (format word 3).
)

const (
	ChannelPrimary   Channel = 0x0 // ChannelPrimary is the traditional 2D sonar.
	ChannelSecondary Channel = 0x1 // ChannelSecondary is the second 2D sonar frequency.
	ChannelDSI       Channel = 0x2 // ChannelDSI is Down-Scan Imaging.
	ChannelLeft      Channel = 0x3 // ChannelLeft is the left side-scan.
	ChannelRight     Channel = 0x4 // ChannelRight is the right side-scan.
	ChannelComposite Channel = 0x5 // ChannelComposite is the combined side-scan.

	channelMax = ChannelComposite
)

const (
	SpeedPassthrough SpeedUnit = 0x0 // SpeedPassthrough keeps native knots.
	SpeedMS          SpeedUnit = 0x1 // SpeedMS converts knots to meters per second.
	SpeedKMH         SpeedUnit = 0x2 // SpeedKMH converts knots to kilometers per hour.
	SpeedMPH         SpeedUnit = 0x3 // SpeedMPH converts knots to statute miles per hour.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 (and Snappy framed) compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 frame compression.
)

var channelNames = [...]string{
	ChannelPrimary:   "Primary",
	ChannelSecondary: "Secondary",
	ChannelDSI:       "DSI",
	ChannelLeft:      "Left",
	ChannelRight:     "Right",
	ChannelComposite: "Composite",
}

func (v Version) String() string {
	switch v {
	case VersionSL2:
		return "sl2"
	case VersionSL3:
		return "sl3"
	default:
		return "unknown"
	}
}

// IsKnown reports whether v is a supported file family.
func (v Version) IsKnown() bool {
	return v == VersionSL2 || v == VersionSL3
}

// MarshalText encodes the version as "sl2" or "sl3".
func (v Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// IsKnown reports whether the channel code is one of the documented sources.
// Unknown codes are still valid channels, they only lack a name.
func (c Channel) IsKnown() bool {
	return c <= channelMax
}

// String returns the channel name, or Unknown(n) for undocumented codes.
func (c Channel) String() string {
	if c.IsKnown() {
		return channelNames[c]
	}

	return "Unknown(" + strconv.FormatUint(uint64(c), 10) + ")"
}

// MarshalText encodes the channel by name.
func (c Channel) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts a channel name or the Unknown(n) form.
func (c *Channel) UnmarshalText(text []byte) error {
	s := string(text)
	for i, name := range channelNames {
		if name == s {
			*c = Channel(i) //nolint:gosec
			return nil
		}
	}

	if inner, ok := strings.CutPrefix(s, "Unknown("); ok {
		if num, ok := strings.CutSuffix(inner, ")"); ok {
			n, err := strconv.ParseUint(num, 10, 16)
			if err == nil {
				*c = Channel(n)
				return nil
			}
		}
	}

	return fmt.Errorf("invalid channel: %q", s)
}

func (u SpeedUnit) String() string {
	switch u {
	case SpeedPassthrough:
		return "passthrough"
	case SpeedMS:
		return "ms"
	case SpeedKMH:
		return "kmh"
	case SpeedMPH:
		return "mph"
	default:
		return "unknown"
	}
}

// IsValid reports whether u is a recognized speed unit.
func (u SpeedUnit) IsValid() bool {
	return u <= SpeedMPH
}

// ParseSpeedUnit parses a speed unit name. The empty string and "knots" map to SpeedPassthrough.
func ParseSpeedUnit(s string) (SpeedUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "passthrough", "knots", "kn":
		return SpeedPassthrough, nil
	case "ms", "m/s":
		return SpeedMS, nil
	case "kmh", "km/h":
		return SpeedKMH, nil
	case "mph":
		return SpeedMPH, nil
	default:
		return SpeedPassthrough, fmt.Errorf("invalid speed unit: %q", s)
	}
}

// MarshalText encodes the unit by name.
func (u SpeedUnit) MarshalText() ([]byte, error) {
	if !u.IsValid() {
		return nil, fmt.Errorf("invalid speed unit: %d", u)
	}

	return []byte(u.String()), nil
}

// UnmarshalText parses the unit by name, see ParseSpeedUnit.
func (u *SpeedUnit) UnmarshalText(text []byte) error {
	parsed, err := ParseSpeedUnit(string(text))
	if err != nil {
		return err
	}
	*u = parsed

	return nil
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// ParseCompressionType parses a compression name, case-insensitive.
func ParseCompressionType(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "raw", "":
		return CompressionNone, nil
	case "zstd", "zst":
		return CompressionZstd, nil
	case "s2", "snappy", "sz":
		return CompressionS2, nil
	case "lz4":
		return CompressionLZ4, nil
	default:
		return 0, fmt.Errorf("invalid compression type: %q", s)
	}
}
