// ABOUTME: Duration wrapper decoding "500ms"-style strings from TOML and YAML
// ABOUTME: Implements encoding.TextUnmarshaler/TextMarshaler, which both decoders honour

package config

import (
	"fmt"
	"time"
)

// Duration is a time.Duration written as a Go duration string.
type Duration time.Duration

// Std returns the time.Duration value.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// UnmarshalText parses a duration string such as "530ms".
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}
