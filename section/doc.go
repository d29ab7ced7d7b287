// Package section defines the low-level binary structures and constants of the SL2/SL3 log format.
//
// This package provides the foundational types that describe the physical layout of a sonar
// log: the fixed-size file prologue, the fixed-size block header that precedes every sonar
// ping or navigation sample, and the packed flag word inside the block header. Types are
// parsed from byte slices; buffering and stream handling live in the block and stream packages.
//
// # File Structure
//
// A log consists of an 8-byte prologue followed by a chain of variable-size blocks:
//
//	┌─────────────────────────────────────────────────────────┐
//	│ File Header (8 bytes, fixed)                            │
//	│  - Format (2 bytes): 2 = sl2, 3 = sl3                   │
//	│  - Version (2 bytes)                                    │
//	│  - BlockSizeHint (2 bytes)                              │
//	│  - Reserved (2 bytes)                                   │
//	├─────────────────────────────────────────────────────────┤
//	│ Block 0                                                 │
//	│  - Block Header (144 bytes, fixed)                      │
//	│  - Payload (blockSize - 144 bytes, opaque sonar data)   │
//	├─────────────────────────────────────────────────────────┤
//	│ Block 1 ...                                             │
//	└─────────────────────────────────────────────────────────┘
//
// Blocks are not independently addressable: the only way to find block N+1 is to read
// the blockSize of block N. A corrupt blockSize therefore ends decoding.
//
// # Block Header Format
//
//	Bytes   | Field            | Type | Description
//	--------|------------------|------|----------------------------------
//	28-29   | BlockSize        | u16  | header + payload size, >= 144
//	30-31   | LastBlockSize    | u16  | size of the previous block on the same channel
//	32-33   | Channel          | u16  | 0-5 named, other codes unknown
//	34-35   | PacketSize       | u16  | sonar payload length
//	36-39   | FrameIndex       | u32  | running block counter
//	40-47   | Upper/LowerLimit | f32  | display range, feet
//	48-51   | Frequency        | f32  | transducer frequency
//	64-71   | Water/KeelDepth  | f32  | feet
//	100-107 | GPSSpeed, Temp   | f32  | knots, celsius
//	108-115 | Longitude/Lat    | i32  | spherical Mercator, see convert package
//	116-131 | WaterSpeed, COG, | f32  | knots, radians, feet, radians
//	        | Altitude, Heading|      |
//	132-133 | Flags            | u16  | validity bits, see BlockFlag
//	140-143 | Time1            | u32  | milliseconds, recorder clock
//
// Bytes not listed are undocumented and skipped. All values are little-endian.
//
// # Thread Safety
//
// All types in this package are value types and are safe for concurrent use.
package section
