package util

import (
	"github.com/dustin/go-humanize"
)

// GroupDigits formats n with comma thousands separators, e.g. 172,800,000.
func GroupDigits(n int64) string {
	return humanize.Comma(n)
}
