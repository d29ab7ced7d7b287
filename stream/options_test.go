package stream

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/sonarlog/convert"
	"github.com/arloliu/sonarlog/errs"
	"github.com/arloliu/sonarlog/format"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := newConfig()
	require.NoError(t, err)
	require.True(t, cfg.conversion.IsZero())
	require.False(t, cfg.strictTail)
	require.Equal(t, DefaultChunkSize, cfg.chunkSize)
	require.Zero(t, cfg.maxRecords)
}

func TestNewConfig_Options(t *testing.T) {
	cfg, err := newConfig(
		WithFeetToMeter(true),
		WithRadToDeg(true),
		WithSpeedUnit(format.SpeedKMH),
		WithProjection(true),
		WithStrictTail(true),
		WithChunkSize(512),
		WithMaxRecords(7),
	)
	require.NoError(t, err)

	want := convert.Config{FeetToMeter: true, RadToDeg: true, SpeedUnit: format.SpeedKMH, ConvertProjection: true}
	require.Equal(t, want, cfg.conversion)
	require.True(t, cfg.strictTail)
	require.Equal(t, 512, cfg.chunkSize)
	require.Equal(t, uint64(7), cfg.maxRecords)
}

func TestNewConfig_WithConversionThenOverride(t *testing.T) {
	cfg, err := newConfig(
		WithConversion(convert.Config{FeetToMeter: true, SpeedUnit: format.SpeedMPH}),
		WithFeetToMeter(false),
	)
	require.NoError(t, err)
	require.Equal(t, convert.Config{SpeedUnit: format.SpeedMPH}, cfg.conversion)
}

func TestNewConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
		want string
	}{
		{"zero chunk size", WithChunkSize(0), "WithChunkSize"},
		{"negative chunk size", WithChunkSize(-5), "WithChunkSize"},
		{"unknown speed unit", WithSpeedUnit(format.SpeedUnit(42)), "WithSpeedUnit"},
		{"invalid conversion", WithConversion(convert.Config{SpeedUnit: format.SpeedUnit(42)}), "WithConversion"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newConfig(tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
			require.Contains(t, err.Error(), tt.want)

			_, err = NewSession(tt.opt)
			require.ErrorIs(t, err, errs.ErrInvalidOption)
		})
	}
}
