// Package endian provides byte order utilities for decoding SL2/SL3 log sections.
//
// This package extends Go's standard encoding/binary package by combining
// ByteOrder and AppendByteOrder into a single EndianEngine interface, and adds
// the float and signed-integer accessors that the sonar log layouts need.
//
// # Basic Usage
//
// SL2 and SL3 files are always little-endian:
//
//	engine := endian.GetLittleEndianEngine()
//	depth := endian.Float32(engine, data[64:68])
//	lon := endian.Int32(engine, data[108:112])
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use.
// The returned EndianEngine instances are immutable and stateless.
package endian

import (
	"encoding/binary"
	"math"
)

// EndianEngine combines ByteOrder and AppendByteOrder interfaces from encoding/binary
// into a single interface for convenient byte order operations.
//
// This interface is satisfied by binary.LittleEndian and binary.BigEndian from
// the standard library.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Float32 decodes an IEEE 754 single precision value from the first 4 bytes of b.
func Float32(engine EndianEngine, b []byte) float32 {
	return math.Float32frombits(engine.Uint32(b))
}

// PutFloat32 encodes v as an IEEE 754 single precision value into the first 4 bytes of b.
func PutFloat32(engine EndianEngine, b []byte, v float32) {
	engine.PutUint32(b, math.Float32bits(v))
}

// Int32 decodes a two's complement signed 32-bit integer from the first 4 bytes of b.
func Int32(engine EndianEngine, b []byte) int32 {
	return int32(engine.Uint32(b)) //nolint:gosec
}

// PutInt32 encodes v as a two's complement signed 32-bit integer into the first 4 bytes of b.
func PutInt32(engine EndianEngine, b []byte, v int32) {
	engine.PutUint32(b, uint32(v)) //nolint:gosec
}
