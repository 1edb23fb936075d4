package ms

import (
	"math"
	"math/bits"
	"regexp"
	"strconv"
	"strings"
)

// MaxInputLength is the longest literal Parse will look at, after trimming.
const MaxInputLength = 100

// durationRE captures the signed number and the optional unit token. The gap
// accepts the same whitespace strings.TrimSpace strips: ASCII space, \v,
// NEL and the Unicode separators.
var durationRE = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)[\s\v\x{85}\p{Z}]*([a-zA-Z][a-zA-Z0-9_]*)?$`)

// Parse converts a duration literal into milliseconds.
//
// A literal is an optional '-', a decimal number with an optional fraction,
// optional whitespace and an optional case-insensitive unit such as "d",
// "hrs" or "minutes". A bare number is milliseconds. Surrounding whitespace
// is ignored. Fractional results are rounded half away from zero.
//
// Errors are *ParseError values wrapping ErrInputTooLong, ErrInvalidFormat,
// ErrUnknownUnit or ErrOverflow.
func Parse(s string) (int64, error) {
	text := strings.TrimSpace(s)
	if len(text) > MaxInputLength {
		return 0, &ParseError{Input: s, Err: ErrInputTooLong}
	}

	m := durationRE.FindStringSubmatch(text)
	if m == nil {
		return 0, &ParseError{Input: s, Err: ErrInvalidFormat}
	}
	number, token := m[1], m[2]

	multiplier, ok := lookupUnit(token)
	if !ok {
		return 0, &ParseError{Input: s, Err: ErrUnknownUnit}
	}

	var (
		v   int64
		err error
	)
	if strings.IndexByte(number, '.') < 0 {
		v, err = scaleInt(number, multiplier)
	} else {
		v, err = scaleFloat(number, multiplier)
	}
	if err != nil {
		return 0, &ParseError{Input: s, Err: err}
	}
	return v, nil
}

// scaleInt multiplies an integer literal exactly.
func scaleInt(number string, multiplier int64) (int64, error) {
	neg := strings.HasPrefix(number, "-")
	mag, err := strconv.ParseUint(strings.TrimPrefix(number, "-"), 10, 64)
	if err != nil {
		// Only range errors are possible once the grammar matched.
		return 0, ErrOverflow
	}
	hi, lo := bits.Mul64(mag, uint64(multiplier))
	if hi != 0 {
		return 0, ErrOverflow
	}
	return applySign(lo, neg)
}

// scaleFloat handles literals with a fractional part.
func scaleFloat(number string, multiplier int64) (int64, error) {
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, ErrOverflow
	}
	r := math.Round(f * float64(multiplier))
	// float64(math.MaxInt64) rounds up to 2^63, which is itself out of range.
	if math.IsNaN(r) || r >= -math.MinInt64 || r < math.MinInt64 {
		return 0, ErrOverflow
	}
	return int64(r), nil
}

// applySign converts a magnitude to int64, allowing -2^63.
func applySign(mag uint64, neg bool) (int64, error) {
	if neg {
		if mag > 1<<63 {
			return 0, ErrOverflow
		}
		return int64(-mag), nil
	}
	if mag > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(mag), nil
}
