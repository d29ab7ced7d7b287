package block

import (
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/section"
)

// Flags holds the decoded validity bits of a block.
type Flags struct {
	TrackValid      bool `json:"trackValid"`
	WaterSpeedValid bool `json:"waterSpeedValid"`
	PositionValid   bool `json:"positionValid"`
	WaterTempValid  bool `json:"waterTempValid"`
	GPSSpeedValid   bool `json:"gpsSpeedValid"`
	AltitudeValid   bool `json:"altitudeValid"`
	HeadingValid    bool `json:"headingValid"`
}

// NewFlags expands a packed flag word. Reserved bits are ignored.
func NewFlags(f section.BlockFlag) Flags {
	return Flags{
		TrackValid:      f.TrackValid(),
		WaterSpeedValid: f.WaterSpeedValid(),
		PositionValid:   f.PositionValid(),
		WaterTempValid:  f.WaterTempValid(),
		GPSSpeedValid:   f.GPSSpeedValid(),
		AltitudeValid:   f.AltitudeValid(),
		HeadingValid:    f.HeadingValid(),
	}
}

// Record is one decoded block: a sonar ping or navigation sample.
//
// Measurements are widened to float64 so conversions can replace them in place.
// Without conversion they hold the exact on-disk values in native units: feet for
// depths, limits and altitude, radians for heading and course, knots for speeds,
// and raw spherical Mercator coordinates for longitude and latitude.
type Record struct {
	FrameIndex       uint64         `json:"frameIndex"`
	BlockSize        uint16         `json:"blockSize"`
	PacketSize       uint32         `json:"packetSize"`
	LastBlockSize    uint16         `json:"lastBlockSize"`
	Channel          format.Channel `json:"channel"`
	Time1            uint32         `json:"time1"`
	WaterDepth       float64        `json:"waterDepth"`
	Temperature      float64        `json:"temperature"`
	Frequency        float64        `json:"frequency"`
	KeelDepth        float64        `json:"keelDepth"`
	UpperLimit       float64        `json:"upperLimit"`
	LowerLimit       float64        `json:"lowerLimit"`
	Altitude         float64        `json:"altitude"`
	Heading          float64        `json:"heading"`
	CourseOverGround float64        `json:"courseOverGround"`
	WaterSpeed       float64        `json:"waterSpeed"`
	GPSSpeed         float64        `json:"gpsSpeed"`
	Longitude        float64        `json:"longitude"`
	Latitude         float64        `json:"latitude"`
	Flags            Flags          `json:"flags"`

	// Payload is the opaque sonar intensity data following the header.
	// It is owned by the record.
	Payload []byte `json:"-"`
}

// NewRecord assembles a record from a parsed block header and its payload.
// The payload slice is stored as is.
func NewRecord(h *section.BlockHeader, payload []byte) Record {
	return Record{
		FrameIndex:       uint64(h.FrameIndex),
		BlockSize:        h.BlockSize,
		PacketSize:       uint32(h.PacketSize),
		LastBlockSize:    h.LastBlockSize,
		Channel:          h.Channel,
		Time1:            h.Time1,
		WaterDepth:       float64(h.WaterDepth),
		Temperature:      float64(h.Temperature),
		Frequency:        float64(h.Frequency),
		KeelDepth:        float64(h.KeelDepth),
		UpperLimit:       float64(h.UpperLimit),
		LowerLimit:       float64(h.LowerLimit),
		Altitude:         float64(h.Altitude),
		Heading:          float64(h.Heading),
		CourseOverGround: float64(h.CourseOverGround),
		WaterSpeed:       float64(h.WaterSpeed),
		GPSSpeed:         float64(h.GPSSpeed),
		Longitude:        float64(h.Longitude),
		Latitude:         float64(h.Latitude),
		Flags:            NewFlags(h.Flags),
		Payload:          payload,
	}
}

// PayloadSize returns the number of payload bytes of the block.
func (r *Record) PayloadSize() int {
	return int(r.BlockSize) - section.BlockHeaderSize
}
