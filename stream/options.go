package stream

import (
	"fmt"

	"github.com/arloliu/sonarlog/convert"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
	"github.com/arloliu/sonarlog/internal/options"
)

// DefaultChunkSize is the number of bytes a Reader requests from its source per refill.
const DefaultChunkSize = 64 * 1024

// config holds the settings shared by Session and Reader.
type config struct {
	conversion convert.Config
	strictTail bool
	chunkSize  int
	maxRecords uint64
}

// Option configures a Session or a Reader.
type Option = options.Option[*config]

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{chunkSize: DefaultChunkSize}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// WithConversion sets every unit conversion at once.
//
// The zero convert.Config disables conversion, which is also the default.
func WithConversion(c convert.Config) Option {
	return options.New("WithConversion", func(cfg *config) error {
		if err := c.Validate(); err != nil {
			return err
		}
		cfg.conversion = c

		return nil
	})
}

// WithFeetToMeter converts depths, range limits and altitude from feet to meters.
func WithFeetToMeter(enabled bool) Option {
	return options.NoError("WithFeetToMeter", func(cfg *config) {
		cfg.conversion.FeetToMeter = enabled
	})
}

// WithRadToDeg converts heading and course over ground from radians to degrees.
func WithRadToDeg(enabled bool) Option {
	return options.NoError("WithRadToDeg", func(cfg *config) {
		cfg.conversion.RadToDeg = enabled
	})
}

// WithSpeedUnit converts water and GPS speed from knots to the given unit.
func WithSpeedUnit(unit format.SpeedUnit) Option {
	return options.New("WithSpeedUnit", func(cfg *config) error {
		if !unit.IsValid() {
			return fmt.Errorf("%w: unknown speed unit %d", errs.ErrInvalidOption, unit)
		}
		cfg.conversion.SpeedUnit = unit

		return nil
	})
}

// WithProjection converts longitude and latitude from spherical Mercator to degrees.
func WithProjection(enabled bool) Option {
	return options.NoError("WithProjection", func(cfg *config) {
		cfg.conversion.ConvertProjection = enabled
	})
}

// WithStrictTail makes an input that ends inside a block fail with ErrTruncatedTail.
//
// By default a truncated tail is dropped and the stream ends cleanly after the
// last complete block, which is how recorders that lose power leave their files.
func WithStrictTail(strict bool) Option {
	return options.NoError("WithStrictTail", func(cfg *config) {
		cfg.strictTail = strict
	})
}

// WithChunkSize sets how many bytes a Reader requests from its source per refill.
// It has no effect on a Session.
func WithChunkSize(size int) Option {
	return options.New("WithChunkSize", func(cfg *config) error {
		if size <= 0 {
			return fmt.Errorf("%w: chunk size must be positive, got %d", errs.ErrInvalidOption, size)
		}
		cfg.chunkSize = size

		return nil
	})
}

// WithMaxRecords ends the stream after n records. Zero means no limit.
func WithMaxRecords(n uint64) Option {
	return options.NoError("WithMaxRecords", func(cfg *config) {
		cfg.maxRecords = n
	})
}
