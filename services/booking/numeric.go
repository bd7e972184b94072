package booking

import (
	"strconv"
	"strings"
)

// numericField parses a raw form value, falling back to def when the value is
// empty, unparsable, or zero. Zero falls back too: a quantity of "0" prices as
// the default of 1, matching what the booking forms have always sent.
//
// Parsing is lenient the way form inputs need it to be: the longest leading
// numeric prefix wins, so "12abc" reads as 12 and trailing garbage never
// poisons a price with NaN.
func numericField(raw string, def float64) float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return def
	}

	end := 0
	seenDot := false
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	for end < len(s) {
		c := s[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !seenDot {
			seenDot = true
			end++
			continue
		}
		break
	}

	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil || v == 0 {
		return def
	}
	return v
}
