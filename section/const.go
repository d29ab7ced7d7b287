package section

import "math"

// Prologue and block sizes in bytes.
const (
	FileHeaderSize  = 8              // fixed prologue size at file offset 0
	BlockHeaderSize = 144            // fixed block header size, the payload follows it
	MinBlockSize    = BlockHeaderSize // a block without payload
	MaxBlockSize    = math.MaxUint16  // blockSize is stored as u16
)

// Prologue field offsets.
const (
	fileFormatOffset    = 0 // u16 format word, the magic
	fileVersionOffset   = 2 // u16 recorder family revision
	fileBlockSizeOffset = 4 // u16 nominal block size
)

// Block header field offsets. All fields are little-endian.
const (
	BlockSizeOffset        = 28  // u16
	LastBlockSizeOffset    = 30  // u16
	ChannelOffset          = 32  // u16
	PacketSizeOffset       = 34  // u16
	FrameIndexOffset       = 36  // u32
	UpperLimitOffset       = 40  // f32, feet
	LowerLimitOffset       = 44  // f32, feet
	FrequencyOffset        = 48  // f32
	WaterDepthOffset       = 64  // f32, feet
	KeelDepthOffset        = 68  // f32, feet
	GPSSpeedOffset         = 100 // f32, knots
	TemperatureOffset      = 104 // f32, celsius
	LongitudeOffset        = 108 // i32, spherical Mercator easting
	LatitudeOffset         = 112 // i32, spherical Mercator northing
	WaterSpeedOffset       = 116 // f32, knots
	CourseOverGroundOffset = 120 // f32, radians
	AltitudeOffset         = 124 // f32, feet
	HeadingOffset          = 128 // f32, radians
	FlagsOffset            = 132 // u16 bitfield
	Time1Offset            = 140 // u32, milliseconds, recorder clock
)

// Block flag bit masks.
const (
	TrackValidMask      = 0x0001 // course over ground is valid
	WaterSpeedValidMask = 0x0002 // water speed is valid
	PositionValidMask   = 0x0004 // longitude/latitude are valid
	WaterTempValidMask  = 0x0008 // temperature is valid
	GPSSpeedValidMask   = 0x0010 // gps speed is valid
	AltitudeValidMask   = 0x0020 // altitude is valid
	HeadingValidMask    = 0x0040 // heading is valid
	ReservedFlagsMask   = 0xFF80 // reserved bits, ignored on decode
)
