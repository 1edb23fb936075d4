package ms

import "strconv"

// Format renders a millisecond count as a short literal such as "2 days",
// "1 minute" or "-999 ms".
//
// The coarsest unit not larger than the magnitude is chosen and the value is
// rounded half up to a whole number of that unit. The unit name is plural
// once the magnitude reaches one and a half units. Magnitudes below one
// second are printed verbatim in ms. Format is defined for every int64.
func Format(ms int64) string {
	mag := uint64(ms)
	if ms < 0 {
		mag = -mag
	}

	for _, u := range formatUnits {
		m := uint64(u.multiplier)
		if mag < m {
			continue
		}
		n := (mag + m/2) / m
		buf := make([]byte, 0, 24)
		if ms < 0 {
			buf = append(buf, '-')
		}
		buf = strconv.AppendUint(buf, n, 10)
		buf = append(buf, ' ')
		buf = append(buf, u.name...)
		if mag >= m+m/2 {
			buf = append(buf, 's')
		}
		return string(buf)
	}
	return strconv.FormatInt(ms, 10) + " ms"
}
