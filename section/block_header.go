package section

import (
	"fmt"

	"github.com/arloliu/sonarlog/endian"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
)

// BlockHeader represents the fixed-size header in front of every block, with
// every field in its on-disk width and native unit.
type BlockHeader struct {
	FrameIndex       uint32         // byte offset 36-39
	Time1            uint32         // byte offset 140-143
	UpperLimit       float32        // byte offset 40-43
	LowerLimit       float32        // byte offset 44-47
	Frequency        float32        // byte offset 48-51
	WaterDepth       float32        // byte offset 64-67
	KeelDepth        float32        // byte offset 68-71
	GPSSpeed         float32        // byte offset 100-103
	Temperature      float32        // byte offset 104-107
	Longitude        int32          // byte offset 108-111
	Latitude         int32          // byte offset 112-115
	WaterSpeed       float32        // byte offset 116-119
	CourseOverGround float32        // byte offset 120-123
	Altitude         float32        // byte offset 124-127
	Heading          float32        // byte offset 128-131
	BlockSize        uint16         // byte offset 28-29
	LastBlockSize    uint16         // byte offset 30-31
	Channel          format.Channel // byte offset 32-33
	PacketSize       uint16         // byte offset 34-35
	Flags            BlockFlag      // byte offset 132-133
}

// Parse parses the block header from a byte slice.
//
// Parse does not validate field values, see Validate.
//
// Parameters:
//   - data: Byte slice containing the block header (must be exactly 144 bytes)
//
// Returns:
//   - error: ErrInvalidHeaderSize if data is not 144 bytes
func (h *BlockHeader) Parse(data []byte) error {
	if len(data) != BlockHeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	engine := endian.GetLittleEndianEngine()

	h.BlockSize = engine.Uint16(data[BlockSizeOffset:])
	h.LastBlockSize = engine.Uint16(data[LastBlockSizeOffset:])
	h.Channel = format.Channel(engine.Uint16(data[ChannelOffset:]))
	h.PacketSize = engine.Uint16(data[PacketSizeOffset:])
	h.FrameIndex = engine.Uint32(data[FrameIndexOffset:])
	h.UpperLimit = endian.Float32(engine, data[UpperLimitOffset:])
	h.LowerLimit = endian.Float32(engine, data[LowerLimitOffset:])
	h.Frequency = endian.Float32(engine, data[FrequencyOffset:])
	h.WaterDepth = endian.Float32(engine, data[WaterDepthOffset:])
	h.KeelDepth = endian.Float32(engine, data[KeelDepthOffset:])
	h.GPSSpeed = endian.Float32(engine, data[GPSSpeedOffset:])
	h.Temperature = endian.Float32(engine, data[TemperatureOffset:])
	h.Longitude = endian.Int32(engine, data[LongitudeOffset:])
	h.Latitude = endian.Int32(engine, data[LatitudeOffset:])
	h.WaterSpeed = endian.Float32(engine, data[WaterSpeedOffset:])
	h.CourseOverGround = endian.Float32(engine, data[CourseOverGroundOffset:])
	h.Altitude = endian.Float32(engine, data[AltitudeOffset:])
	h.Heading = endian.Float32(engine, data[HeadingOffset:])
	h.Flags = BlockFlag(engine.Uint16(data[FlagsOffset:]))
	h.Time1 = engine.Uint32(data[Time1Offset:])

	return nil
}

// Validate checks that the block size is within [MinBlockSize, MaxBlockSize].
func (h *BlockHeader) Validate() error {
	if h.BlockSize < MinBlockSize {
		return fmt.Errorf("%w: block size %d below minimum %d", errs.ErrCorruptBlock, h.BlockSize, MinBlockSize)
	}

	return nil
}

// PayloadSize returns the number of opaque payload bytes following the header.
// It returns 0 for blocks that fail Validate.
func (h *BlockHeader) PayloadSize() int {
	if h.BlockSize < MinBlockSize {
		return 0
	}

	return int(h.BlockSize) - BlockHeaderSize
}

// ParseBlockHeader parses and validates a BlockHeader from the start of a byte slice.
//
// Parameters:
//   - data: Byte slice starting with the block header (must be at least 144 bytes)
//
// Returns:
//   - BlockHeader: Parsed header
//   - error: ErrInvalidHeaderSize or ErrCorruptBlock
func ParseBlockHeader(data []byte) (BlockHeader, error) {
	if len(data) < BlockHeaderSize {
		return BlockHeader{}, errs.ErrInvalidHeaderSize
	}

	h := BlockHeader{}
	if err := h.Parse(data[:BlockHeaderSize]); err != nil {
		return BlockHeader{}, err
	}

	if err := h.Validate(); err != nil {
		return BlockHeader{}, err
	}

	return h, nil
}
