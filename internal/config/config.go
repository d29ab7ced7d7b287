// Package config loads the YAML configuration of the sl2json command.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arloliu/sonarlog/convert"
	"github.com/arloliu/sonarlog/export"
	"github.com/arloliu/sonarlog/stream"
)

type Config struct {
	Conversion convert.Config `yaml:"conversion"`
	Input      InputConfig    `yaml:"input"`
	Output     OutputConfig   `yaml:"output"`
}

// ---- INPUT ----

type InputConfig struct {
	// Compression is auto, none, zstd, s2 or lz4. Empty means auto.
	Compression string `yaml:"compression"`
	ChunkSize   int    `yaml:"chunkSize"`
	StrictTail  bool   `yaml:"strictTail"`

	// Limits (0 = unlimited)
	MaxBytes   int64  `yaml:"maxBytes"`
	MaxRecords uint64 `yaml:"maxRecords"`
}

// ---- OUTPUT ----

type OutputConfig struct {
	// Path of the JSON lines file. Empty or "-" means stdout.
	Path    string             `yaml:"path"`
	Payload export.PayloadMode `yaml:"payload"`
	Header  bool               `yaml:"header"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Input: InputConfig{Compression: CompressionAuto},
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// Default values; unknown keys are rejected.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes a YAML document on top of Default.
func Parse(data []byte) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if cfg.Input.Compression == "" {
		cfg.Input.Compression = CompressionAuto
	}

	return cfg, nil
}

// StreamOptions translates the conversion and input settings into decoder options.
func (c *Config) StreamOptions() []stream.Option {
	opts := []stream.Option{
		stream.WithConversion(c.Conversion),
		stream.WithStrictTail(c.Input.StrictTail),
		stream.WithMaxRecords(c.Input.MaxRecords),
	}
	if c.Input.ChunkSize > 0 {
		opts = append(opts, stream.WithChunkSize(c.Input.ChunkSize))
	}

	return opts
}
