package ms

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a millisecond count that decodes from duration literals or
// plain integers in text, JSON and YAML. It encodes as the integer count so
// values survive a round trip exactly.
type Duration int64

// String returns the Format rendering of d.
func (d Duration) String() string { return Format(int64(d)) }

// Milliseconds returns d as an integer count.
func (d Duration) Milliseconds() int64 { return int64(d) }

// Std converts d to a time.Duration. It fails with ErrOverflow when d is
// outside the roughly 292 year range time.Duration can hold.
func (d Duration) Std() (time.Duration, error) {
	const limit = Duration(math.MaxInt64 / int64(time.Millisecond))
	if d > limit || d < -limit {
		return 0, ErrOverflow
	}
	return time.Duration(d) * time.Millisecond, nil
}

// FromStd converts a time.Duration, truncating sub-millisecond precision.
func FromStd(d time.Duration) Duration { return Duration(d.Milliseconds()) }

// ParseDuration parses a literal into a time.Duration.
func ParseDuration(s string) (time.Duration, error) {
	n, err := Parse(s)
	if err != nil {
		return 0, err
	}
	d, err := Duration(n).Std()
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return d, nil
}

// FormatDuration renders a time.Duration with Format.
func FormatDuration(d time.Duration) string { return Format(d.Milliseconds()) }

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(d), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	n, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = Duration(n)
	return nil
}

// MarshalJSON encodes d as a JSON number.
func (d Duration) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(d), 10), nil
}

// UnmarshalJSON accepts an integer number of milliseconds or a string literal.
func (d *Duration) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return d.UnmarshalText([]byte(s))
	}
	n, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("ms: duration must be an integer or a string, got %s", data)
	}
	*d = Duration(n)
	return nil
}

// MarshalYAML encodes d as an integer.
func (d Duration) MarshalYAML() (any, error) {
	return int64(d), nil
}

// UnmarshalYAML accepts an integer scalar or a duration literal. A null
// leaves d unchanged, as UnmarshalJSON does.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.ShortTag() == "!!null" {
		return nil
	}
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("ms: line %d: duration must be a scalar", node.Line)
	}
	if node.ShortTag() == "!!int" {
		var n int64
		if err := node.Decode(&n); err != nil {
			return err
		}
		*d = Duration(n)
		return nil
	}
	if err := d.UnmarshalText([]byte(node.Value)); err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	return nil
}
