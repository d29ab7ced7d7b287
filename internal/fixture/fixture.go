// Package fixture builds synthetic SL2/SL3 logs for tests.
//
// The decoder packages never write the binary format; this package exists so tests can
// produce byte-exact inputs without shipping recorder captures.
package fixture

import (
	"github.com/arloliu/sonarlog/endian"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/section"
)

// SmallBlockSize is the block size of every block in the Small log.
const SmallBlockSize = 3216

// SmallBlockCount is the number of blocks of the complete Small log.
const SmallBlockCount = 4038

// Block is one synthetic block. A zero Header.BlockSize is filled in from the payload
// length; a zero Header.PacketSize likewise.
type Block struct {
	Header  section.BlockHeader
	Payload []byte
}

// Bytes encodes the block header followed by its payload.
func (b Block) Bytes() []byte {
	h := b.Header
	if h.BlockSize == 0 {
		h.BlockSize = uint16(section.BlockHeaderSize + len(b.Payload)) //nolint:gosec
	}
	if h.PacketSize == 0 {
		h.PacketSize = uint16(len(b.Payload)) //nolint:gosec
	}

	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, section.BlockHeaderSize, section.BlockHeaderSize+len(b.Payload))

	engine.PutUint16(buf[section.BlockSizeOffset:], h.BlockSize)
	engine.PutUint16(buf[section.LastBlockSizeOffset:], h.LastBlockSize)
	engine.PutUint16(buf[section.ChannelOffset:], uint16(h.Channel))
	engine.PutUint16(buf[section.PacketSizeOffset:], h.PacketSize)
	engine.PutUint32(buf[section.FrameIndexOffset:], h.FrameIndex)
	endian.PutFloat32(engine, buf[section.UpperLimitOffset:], h.UpperLimit)
	endian.PutFloat32(engine, buf[section.LowerLimitOffset:], h.LowerLimit)
	endian.PutFloat32(engine, buf[section.FrequencyOffset:], h.Frequency)
	endian.PutFloat32(engine, buf[section.WaterDepthOffset:], h.WaterDepth)
	endian.PutFloat32(engine, buf[section.KeelDepthOffset:], h.KeelDepth)
	endian.PutFloat32(engine, buf[section.GPSSpeedOffset:], h.GPSSpeed)
	endian.PutFloat32(engine, buf[section.TemperatureOffset:], h.Temperature)
	endian.PutInt32(engine, buf[section.LongitudeOffset:], h.Longitude)
	endian.PutInt32(engine, buf[section.LatitudeOffset:], h.Latitude)
	endian.PutFloat32(engine, buf[section.WaterSpeedOffset:], h.WaterSpeed)
	endian.PutFloat32(engine, buf[section.CourseOverGroundOffset:], h.CourseOverGround)
	endian.PutFloat32(engine, buf[section.AltitudeOffset:], h.Altitude)
	endian.PutFloat32(engine, buf[section.HeadingOffset:], h.Heading)
	engine.PutUint16(buf[section.FlagsOffset:], uint16(h.Flags))
	engine.PutUint32(buf[section.Time1Offset:], h.Time1)

	return append(buf, b.Payload...)
}

// FileHeader encodes an 8-byte prologue with the given format word.
func FileHeader(v format.Version) []byte {
	engine := endian.GetLittleEndianEngine()
	buf := make([]byte, section.FileHeaderSize)
	engine.PutUint16(buf[0:], uint16(v))
	engine.PutUint16(buf[2:], 0)
	engine.PutUint16(buf[4:], SmallBlockSize)

	return buf
}

// File encodes a complete log: prologue followed by every block.
func File(v format.Version, blocks ...Block) []byte {
	out := FileHeader(v)
	for _, b := range blocks {
		out = append(out, b.Bytes()...)
	}

	return out
}

// SmallFirstBlock returns block 0 of the Small log. Its values are those of a real
// recorder capture.
func SmallFirstBlock() Block {
	return Block{
		Header: section.BlockHeader{
			FrameIndex:       0,
			BlockSize:        SmallBlockSize,
			PacketSize:       SmallBlockSize - section.BlockHeaderSize,
			LastBlockSize:    0,
			Channel:          format.ChannelPrimary,
			Time1:            3536977920,
			WaterDepth:       6.622000217437744,
			Temperature:      19.350006103515625,
			Frequency:        0,
			KeelDepth:        0,
			UpperLimit:       0,
			LowerLimit:       19.600000381469727,
			Altitude:         118.89765930175781,
			Heading:          0,
			CourseOverGround: 3.7873644828796387,
			WaterSpeed:       0,
			GPSSpeed:         2.585312843322754,
			Longitude:        1383678,
			Latitude:         8147302,
			Flags: section.TrackValidMask | section.PositionValidMask | section.WaterTempValidMask |
				section.GPSSpeedValidMask | section.AltitudeValidMask,
		},
		Payload: Payload(SmallBlockSize-section.BlockHeaderSize, 0),
	}
}

// SmallBlock returns block i of the Small log.
func SmallBlock(i int) Block {
	if i == 0 {
		return SmallFirstBlock()
	}

	b := SmallFirstBlock()
	h := &b.Header
	h.FrameIndex = uint32(i) //nolint:gosec
	h.LastBlockSize = SmallBlockSize
	h.Channel = format.Channel(i % 6) //nolint:gosec
	h.Time1 += uint32(i) * 41        //nolint:gosec
	h.WaterDepth += float32(i%50) * 0.01
	h.Longitude += int32(i % 300) //nolint:gosec
	h.Latitude -= int32(i % 200)  //nolint:gosec
	h.CourseOverGround = float32(i%628) / 100
	b.Payload = Payload(SmallBlockSize-section.BlockHeaderSize, byte(i))

	return b
}

// Small returns the first n blocks of the Small log, including the prologue.
func Small(n int) []byte {
	out := make([]byte, 0, section.FileHeaderSize+n*SmallBlockSize)
	out = append(out, FileHeader(format.VersionSL2)...)
	for i := range n {
		out = append(out, SmallBlock(i).Bytes()...)
	}

	return out
}

// Payload returns n bytes of deterministic sonar-like intensity data.
func Payload(n int, seed byte) []byte {
	p := make([]byte, n)
	for i := range p {
		p[i] = byte(i*7) ^ seed //nolint:gosec
	}

	return p
}

// Chunks splits data into consecutive chunks of at most size bytes.
func Chunks(data []byte, size int) [][]byte {
	if size <= 0 {
		size = 1
	}

	chunks := make([][]byte, 0, len(data)/size+1)
	for len(data) > 0 {
		n := min(size, len(data))
		chunks = append(chunks, data[:n])
		data = data[n:]
	}

	return chunks
}
