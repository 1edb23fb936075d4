package util

import (
	"math"
	"strconv"
	"time"

	str2duration "github.com/xhit/go-str2duration/v2"
)

// Compact renders a millisecond count as a compact multi-unit string.
// Output uses the str2duration units (w, d, h, m, s, ms), e.g. "1w2d3h",
// and parses back with str2duration.ParseDuration.
// Values outside the time.Duration range fall back to "<n>ms".
func Compact(ms int64) string {
	const limit = math.MaxInt64 / int64(time.Millisecond)
	if ms > limit || ms < -limit {
		return strconv.FormatInt(ms, 10) + "ms"
	}
	if ms == 0 {
		return "0s"
	}
	d := time.Duration(ms) * time.Millisecond
	if d < 0 {
		return "-" + str2duration.String(-d)
	}
	return str2duration.String(d)
}
