package section

// BlockFlag represents the packed validity bits of a block header.
//
// Bit 0 is track (course over ground) valid.
// Bit 1 is water speed valid.
// Bit 2 is position valid.
// Bit 3 is water temperature valid.
// Bit 4 is gps speed valid.
// Bit 5 is altitude valid.
// Bit 6 is heading valid.
// Bit 7-15 are reserved and ignored.
type BlockFlag uint16

// TrackValid returns whether the course over ground is valid.
func (f BlockFlag) TrackValid() bool {
	return f&TrackValidMask != 0
}

// WaterSpeedValid returns whether the water speed is valid.
func (f BlockFlag) WaterSpeedValid() bool {
	return f&WaterSpeedValidMask != 0
}

// PositionValid returns whether longitude and latitude are valid.
func (f BlockFlag) PositionValid() bool {
	return f&PositionValidMask != 0
}

// WaterTempValid returns whether the water temperature is valid.
func (f BlockFlag) WaterTempValid() bool {
	return f&WaterTempValidMask != 0
}

// GPSSpeedValid returns whether the gps speed is valid.
func (f BlockFlag) GPSSpeedValid() bool {
	return f&GPSSpeedValidMask != 0
}

// AltitudeValid returns whether the altitude is valid.
func (f BlockFlag) AltitudeValid() bool {
	return f&AltitudeValidMask != 0
}

// HeadingValid returns whether the heading is valid.
func (f BlockFlag) HeadingValid() bool {
	return f&HeadingValidMask != 0
}

// Known returns the flag with the reserved bits cleared.
func (f BlockFlag) Known() BlockFlag {
	return f &^ ReservedFlagsMask
}
