package booking

import (
	"regexp"
	"strconv"
	"strings"
)

// Catalog variants carry durations in whatever shape the backend happens to
// store: a number of hours, a number of minutes, or free text such as
// "2-4 hours" or "90 min". Everything normalizes to fractional hours here.

var (
	durationRangePattern  = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*-\s*(\d+(?:\.\d+)?)\s*(hours?|minutes?|mins?|h|m)$`)
	durationSinglePattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)\s*(hours?|minutes?|mins?|h|m)$`)
)

// ParseDurationHours normalizes a heterogeneous duration value to hours.
// The second return value is false when the value cannot be interpreted;
// callers substitute the configured default duration in that case.
func ParseDurationHours(d any) (float64, bool) {
	switch v := d.(type) {
	case nil:
		return 0, false
	case float64:
		return numericDurationHours(v), true
	case float32:
		return numericDurationHours(float64(v)), true
	case int:
		return numericDurationHours(float64(v)), true
	case int32:
		return numericDurationHours(float64(v)), true
	case int64:
		return numericDurationHours(float64(v)), true
	case string:
		return parseDurationString(v)
	default:
		return 0, false
	}
}

// numericDurationHours interprets values below 24 as hours and anything else
// as minutes. No service runs for 24 hours or more.
func numericDurationHours(v float64) float64 {
	if v < 24 {
		return v
	}
	return v / 60
}

func parseDurationString(s string) (float64, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return 0, false
	}

	if m := durationRangePattern.FindStringSubmatch(s); m != nil {
		lo, err1 := strconv.ParseFloat(m[1], 64)
		hi, err2 := strconv.ParseFloat(m[2], 64)
		if err1 == nil && err2 == nil {
			return unitToHours((lo+hi)/2, m[3]), true
		}
	}

	if m := durationSinglePattern.FindStringSubmatch(s); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			return unitToHours(v, m[2]), true
		}
	}

	// Bare numeric string: values below 10 read as hours, the rest as
	// minutes. The threshold intentionally differs from the numeric case
	// above; existing catalog data depends on both cutoffs as they are.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		if v < 10 {
			return v, true
		}
		return v / 60, true
	}

	return 0, false
}

func unitToHours(v float64, unit string) float64 {
	if strings.HasPrefix(unit, "m") {
		return v / 60
	}
	return v
}
