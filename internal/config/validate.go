package config

import (
	"fmt"

	"github.com/arloliu/sonarlog/format"
)

// CompressionAuto selects stream compression by sniffing the input.
const CompressionAuto = "auto"

// Validate checks configuration correctness.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	if err := cfg.Conversion.Validate(); err != nil {
		return fmt.Errorf("conversion: %w", err)
	}

	if _, _, err := cfg.Input.StreamCompression(); err != nil {
		return fmt.Errorf("input: %w", err)
	}
	if cfg.Input.ChunkSize < 0 {
		return fmt.Errorf("input: chunkSize must not be negative, got %d", cfg.Input.ChunkSize)
	}
	if cfg.Input.MaxBytes < 0 {
		return fmt.Errorf("input: maxBytes must not be negative, got %d", cfg.Input.MaxBytes)
	}

	if !cfg.Output.Payload.IsValid() {
		return fmt.Errorf("output: unknown payload mode %d", uint8(cfg.Output.Payload))
	}

	return nil
}

// StreamCompression resolves the configured input compression.
//
// Returns:
//   - format.CompressionType: the explicit compression, valid when auto is false
//   - bool: true when the compression must be detected from the input
//   - error: unknown compression name
func (in InputConfig) StreamCompression() (format.CompressionType, bool, error) {
	if in.Compression == "" || in.Compression == CompressionAuto {
		return 0, true, nil
	}

	ct, err := format.ParseCompressionType(in.Compression)
	if err != nil {
		return 0, false, err
	}

	return ct, false, nil
}
