// Package convert applies unit and projection conversions to decoded records.
//
// Records leave the block decoder in the recorder's native units: feet, radians,
// knots and raw spherical Mercator coordinates. A Config selects which groups of
// fields to convert; every group is independent and only touches its own fields.
//
//	cfg := convert.Config{FeetToMeter: true, SpeedUnit: format.SpeedMS}
//	rec = cfg.Apply(rec)
package convert

import (
	"fmt"
	"math"

	"github.com/arloliu/sonarlog/block"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
)

// Conversion factors.
const (
	FeetToMeters     = 0.3048         // international foot
	RadiansToDegrees = 180 / math.Pi  // exact in float64 arithmetic
	KnotsToMS        = 0.514444444    // knots to meters per second
	KnotsToKMH       = 1.852          // knots to kilometers per hour
	KnotsToMPH       = 1.150779       // knots to statute miles per hour
	EarthRadius      = 6356752.3142   // polar radius in meters used by the recorders' Mercator projection
)

// Config selects the conversions applied to every record of a session.
// The zero value applies no conversion.
type Config struct {
	// FeetToMeter converts waterDepth, keelDepth, upperLimit, lowerLimit and altitude to meters.
	FeetToMeter bool `json:"feetToMeter" yaml:"feetToMeter"`
	// RadToDeg converts heading and courseOverGround to degrees.
	RadToDeg bool `json:"radToDeg" yaml:"radToDeg"`
	// SpeedUnit converts waterSpeed and gpsSpeed from knots.
	SpeedUnit format.SpeedUnit `json:"speedInUnit" yaml:"speedInUnit"`
	// ConvertProjection converts longitude and latitude to degrees.
	ConvertProjection bool `json:"convertProjection" yaml:"convertProjection"`
}

// IsZero reports whether the config applies no conversion.
func (c Config) IsZero() bool {
	return !c.FeetToMeter && !c.RadToDeg && c.SpeedUnit == format.SpeedPassthrough && !c.ConvertProjection
}

// Validate checks that the speed unit is recognized.
func (c Config) Validate() error {
	if !c.SpeedUnit.IsValid() {
		return fmt.Errorf("%w: speed unit %d", errs.ErrInvalidOption, c.SpeedUnit)
	}

	return nil
}

// Apply returns r with every enabled conversion applied. r is not modified.
func (c Config) Apply(r block.Record) block.Record {
	if c.FeetToMeter {
		r.WaterDepth *= FeetToMeters
		r.KeelDepth *= FeetToMeters
		r.UpperLimit *= FeetToMeters
		r.LowerLimit *= FeetToMeters
		r.Altitude *= FeetToMeters
	}

	if c.RadToDeg {
		r.Heading *= RadiansToDegrees
		r.CourseOverGround *= RadiansToDegrees
	}

	if factor := SpeedFactor(c.SpeedUnit); factor != 1 {
		r.WaterSpeed *= factor
		r.GPSSpeed *= factor
	}

	if c.ConvertProjection {
		r.Longitude = MercatorToLongitude(r.Longitude)
		r.Latitude = MercatorToLatitude(r.Latitude)
	}

	return r
}

// SpeedFactor returns the multiplier from knots to unit. Passthrough and
// unknown units return 1.
func SpeedFactor(unit format.SpeedUnit) float64 {
	switch unit {
	case format.SpeedMS:
		return KnotsToMS
	case format.SpeedKMH:
		return KnotsToKMH
	case format.SpeedMPH:
		return KnotsToMPH
	default:
		return 1
	}
}

// MercatorToLongitude inverts the spherical Mercator easting to degrees of longitude.
func MercatorToLongitude(easting float64) float64 {
	return easting / EarthRadius * RadiansToDegrees
}

// MercatorToLatitude inverts the spherical Mercator northing to degrees of latitude.
func MercatorToLatitude(northing float64) float64 {
	return RadiansToDegrees * (2*math.Atan(math.Exp(northing/EarthRadius)) - math.Pi/2)
}
