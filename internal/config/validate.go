// =============================================================================
// HTML Table Converter - Configuration Validation
// =============================================================================
//
// Validation runs once, before any file is processed. The table builder
// trusts the configuration it receives and does not re-check it.
//
// =============================================================================

package config

import (
	"fmt"

	"golang.org/x/text/encoding/htmlindex"
)

// ValidationError describes a configuration value that was rejected.
type ValidationError struct {
	// Field is the configuration key that failed validation.
	Field string

	// Value is the rejected value.
	Value string

	// Reason is a human-readable explanation.
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks every field of the configuration.
//
// RETURNS:
//   - nil if the configuration can be used as is.
//   - A *ValidationError for the first invalid field.
func (c Config) Validate() error {
	if err := ValidateShadeColor(c.ShadeColor); err != nil {
		return err
	}

	if c.Encoding != "" {
		if _, err := htmlindex.Get(c.Encoding); err != nil {
			return &ValidationError{
				Field:  "encoding",
				Value:  c.Encoding,
				Reason: "unknown character encoding",
			}
		}
	}

	return nil
}

// ValidateShadeColor reports whether s is a 6-digit hexadecimal RGB value,
// such as "a1b2c3". Signs, prefixes and whitespace are not accepted.
func ValidateShadeColor(s string) error {
	if len(s) != 6 {
		return &ValidationError{
			Field:  "shade color",
			Value:  s,
			Reason: "please use a 6-digit hex string, e.g. 'a1b2c3'",
		}
	}

	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return &ValidationError{
				Field:  "shade color",
				Value:  s,
				Reason: fmt.Sprintf("%q is not a hex digit", s[i]),
			}
		}
	}

	return nil
}

func isHexDigit(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b >= 'a' && b <= 'f':
		return true
	case b >= 'A' && b <= 'F':
		return true
	}
	return false
}
