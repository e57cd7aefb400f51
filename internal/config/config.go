// =============================================================================
// HTML Table Converter - Configuration Module
// =============================================================================
//
// This module holds the conversion settings used for every input file in a
// run. Settings come from three layers, applied in order:
//   1. Built-in defaults (Default)
//   2. An optional YAML configuration file (Load)
//   3. Command-line flags (applied by the cmd package)
//
// A Config is a plain value. Once validated it is passed by value to the
// table builder and the converter and is never mutated afterwards.
//
// EXAMPLE CONFIG FILE:
//   write_header: true
//   delimiter: ","
//   shade_rows: true
//   shade_color: "c1c2c3"
//   encoding: "utf-8"
//
// =============================================================================

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultDelimiter separates columns when nothing else is configured.
	DefaultDelimiter = "\t"

	// DefaultShadeColor is the background fill for shaded body rows.
	DefaultShadeColor = "dddddd"

	// DefaultEncoding is the text encoding assumed for input files.
	DefaultEncoding = "utf-8"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the settings for converting delimited text into an HTML table.
type Config struct {
	// WriteHeader treats the first input line as the header row.
	// Default: true
	WriteHeader bool `yaml:"write_header"`

	// Delimiter is the literal substring used to split a line into columns.
	// An empty delimiter splits a line into one column per character.
	// Default: "\t"
	Delimiter string `yaml:"delimiter"`

	// ShadeRows alternates the background of body rows, starting with the
	// first body row.
	// Default: false
	ShadeRows bool `yaml:"shade_rows"`

	// ShadeColor is the 6-digit hex RGB fill used for shaded rows, without
	// the leading '#'.
	// Default: "dddddd"
	ShadeColor string `yaml:"shade_color"`

	// Encoding names the character encoding of text input files. Any label
	// known to the WHATWG encoding index is accepted ("utf-8", "latin1",
	// "windows-1252", "shift_jis", ...).
	// Default: "utf-8"
	Encoding string `yaml:"encoding"`
}

// Default returns the configuration used when no overrides are given.
func Default() Config {
	return Config{
		WriteHeader: true,
		Delimiter:   DefaultDelimiter,
		ShadeRows:   false,
		ShadeColor:  DefaultShadeColor,
		Encoding:    DefaultEncoding,
	}
}

// =============================================================================
// CONFIGURATION LOADING
// =============================================================================

// Load reads a YAML configuration file and merges it over the defaults.
//
// PARAMETERS:
//   - path: The path to the YAML configuration file.
//
// RETURNS:
//   - The merged and validated configuration.
//   - An error if the file cannot be read, contains unknown keys, or holds
//     invalid values.
//
// Keys missing from the file keep their default values. Unknown keys are
// rejected so that a misspelled setting never passes silently.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse decodes YAML configuration data over the defaults and validates it.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// An empty document leaves the defaults untouched.
	if err := decoder.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
