package ms

import "strings"

// Milliseconds per unit.
const (
	Millisecond int64 = 1
	Second            = 1000 * Millisecond
	Minute            = 60 * Second
	Hour              = 60 * Minute
	Day               = 24 * Hour
	Week              = 7 * Day
	Year              = Day * 36525 / 100 // 365.25 days
)

// unit is one row of the formatting table.
type unit struct {
	name       string
	multiplier int64
}

// formatUnits is ordered from the largest multiplier to the smallest.
var formatUnits = []unit{
	{"year", Year},
	{"week", Week},
	{"day", Day},
	{"hour", Hour},
	{"minute", Minute},
	{"second", Second},
}

// aliases maps every accepted unit token, lower-cased, to its multiplier.
var aliases = map[string]int64{
	"y": Year, "yr": Year, "yrs": Year, "year": Year, "years": Year,
	"w": Week, "wk": Week, "wks": Week, "week": Week, "weeks": Week,
	"d": Day, "day": Day, "days": Day,
	"h": Hour, "hr": Hour, "hrs": Hour, "hour": Hour, "hours": Hour,
	"m": Minute, "min": Minute, "mins": Minute, "minute": Minute, "minutes": Minute,
	"s": Second, "sec": Second, "secs": Second, "second": Second, "seconds": Second,
	"ms": Millisecond, "msec": Millisecond, "msecs": Millisecond,
	"millisecond": Millisecond, "milliseconds": Millisecond,
}

// lookupUnit resolves a unit token case-insensitively. The empty token means
// milliseconds.
func lookupUnit(token string) (int64, bool) {
	if token == "" {
		return Millisecond, true
	}
	m, ok := aliases[strings.ToLower(token)]
	return m, ok
}
