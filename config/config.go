// SPDX-License-Identifier: MIT

// Package config holds planner settings loaded from YAML.
//
// A file only needs the keys it overrides; everything else keeps the value
// from Default:
//
//	plate:
//	  rows: 8
//	  columns: 12
//	  column_major: true
//	trough:
//	  rows: 1
//	  columns: 12
//	max_plates_per_role: 8
//	workers: 4
//	log:
//	  level: info
//	  format: console
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/assemblygenie/plate"
	"github.com/katalvlaran/assemblygenie/well"
)

// ErrInvalid indicates a configuration value out of range.
var ErrInvalid = errors.New("config: invalid configuration")

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the planner configuration.
type Config struct {
	Plate            well.Format `yaml:"plate"`
	Trough           well.Format `yaml:"trough"`
	MaxPlatesPerRole int         `yaml:"max_plates_per_role"`
	Workers          int         `yaml:"workers"`
	Log              LogConfig   `yaml:"log"`
}

// Default returns 96-well column-major plates, a 12-lane trough, at most 8
// plates per role, 4 resolution workers and info-level console logs.
func Default() Config {
	return Config{
		Plate:            well.Plate96,
		Trough:           well.Trough12,
		MaxPlatesPerRole: 8,
		Workers:          4,
		Log:              LogConfig{Level: "info", Format: FormatConsole},
	}
}

// Load reads path over Default and validates the result. An empty path
// returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: Load: %w", err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks formats, limits and log settings.
func (c Config) Validate() error {
	if err := c.Plate.Validate(); err != nil {
		return fmt.Errorf("%w: plate: %w", ErrInvalid, err)
	}
	if err := c.Trough.Validate(); err != nil {
		return fmt.Errorf("%w: trough: %w", ErrInvalid, err)
	}
	if c.MaxPlatesPerRole < 0 {
		return fmt.Errorf("%w: max_plates_per_role %d is negative", ErrInvalid, c.MaxPlatesPerRole)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalid, c.Workers)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log level %q", ErrInvalid, c.Log.Level)
	}
	switch c.Log.Format {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.Log.Format)
	}

	return nil
}

// PlateOptions translates the plate settings into registry options.
func (c Config) PlateOptions() []plate.Option {
	return []plate.Option{
		plate.WithFormat(c.Plate),
		plate.WithTroughFormat(c.Trough),
		plate.WithMaxPlatesPerRole(c.MaxPlatesPerRole),
	}
}
