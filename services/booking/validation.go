package booking

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Result is the outcome of an advisory field validation. These checks are
// meant for forms: they run before a RawBookingInput is assembled and never
// block the builder itself.
type Result struct {
	Valid   bool   `json:"isValid"`
	Message string `json:"error,omitempty"`
}

func valid() Result {
	return Result{Valid: true}
}

func invalid(msg string) Result {
	return Result{Valid: false, Message: msg}
}

var (
	decimalInputPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)
	integerInputPattern = regexp.MustCompile(`^[0-9]*$`)
)

// ValidateNumericInput checks a raw text field for numeric shape. An empty
// string is valid: it means the user has not entered anything yet.
func ValidateNumericInput(text string, allowDecimals bool) Result {
	if text == "" {
		return valid()
	}
	if allowDecimals {
		if !decimalInputPattern.MatchString(text) {
			return invalid("Please enter a valid number")
		}
		// A second decimal point is rejected outright, independent of the pattern.
		if strings.Count(text, ".") > 1 {
			return invalid("Please enter a valid number")
		}
		return valid()
	}
	if !integerInputPattern.MatchString(text) {
		return invalid("Please enter a whole number")
	}
	return valid()
}

// ValidateMeasurement checks a measurement value against optional bounds.
// Empty is valid (not yet entered).
func ValidateMeasurement(value string, min, max *float64) Result {
	if value == "" {
		return valid()
	}
	if res := ValidateNumericInput(value, true); !res.Valid {
		return res
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return invalid("Please enter a valid number")
	}
	if v <= 0 {
		return invalid("Value must be greater than zero")
	}
	if min != nil && v < *min {
		return invalid(fmt.Sprintf("Value must be at least %g", *min))
	}
	if max != nil && v > *max {
		return invalid(fmt.Sprintf("Value must be at most %g", *max))
	}
	return valid()
}

// ValidateQuantity checks a quantity value. Empty is valid (not yet entered).
func ValidateQuantity(value string) Result {
	if value == "" {
		return valid()
	}
	if res := ValidateNumericInput(value, true); !res.Valid {
		return res
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return invalid("Please enter a valid number")
	}
	if v <= 0 {
		return invalid("Quantity must be greater than zero")
	}
	return valid()
}

// ValidateDistance checks the moving distance. Unlike quantity and
// measurement, an empty distance is invalid: moving services cannot be priced
// without it.
func ValidateDistance(value string) Result {
	if value == "" {
		return invalid("Distance is required")
	}
	if res := ValidateNumericInput(value, true); !res.Valid {
		return res
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return invalid("Please enter a valid number")
	}
	if v <= 0 {
		return invalid("Distance must be greater than zero")
	}
	return valid()
}

// ValidateBoxes checks the number of moving boxes. Empty is valid (boxes are
// optional); otherwise the value must be a whole number of zero or more.
func ValidateBoxes(value string) Result {
	if value == "" {
		return valid()
	}
	if res := ValidateNumericInput(value, false); !res.Valid {
		return res
	}
	v, err := strconv.Atoi(value)
	if err != nil {
		return invalid("Please enter a whole number")
	}
	if v < 0 {
		return invalid("Number of boxes cannot be negative")
	}
	return valid()
}

// ValidateDate rejects dates on a calendar day before today.
func ValidateDate(date time.Time) Result {
	return validateDateAt(date, time.Now())
}

func validateDateAt(date, now time.Time) Result {
	if startOfDay(date).Before(startOfDay(now)) {
		return invalid("Date cannot be in the past")
	}
	return valid()
}

// ValidateTime only constrains the time when the selected date is today; in
// that case the time must be strictly in the future.
func ValidateTime(t, selectedDate time.Time) Result {
	return validateTimeAt(t, selectedDate, time.Now())
}

func validateTimeAt(t, selectedDate, now time.Time) Result {
	if !startOfDay(selectedDate).Equal(startOfDay(now)) {
		return valid()
	}
	// Re-anchor the picked time onto today's date before comparing.
	anchored := time.Date(now.Year(), now.Month(), now.Day(),
		t.Hour(), t.Minute(), t.Second(), 0, now.Location())
	if !anchored.After(now) {
		return invalid("Time must be in the future")
	}
	return valid()
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateServiceAddress rejects empty or whitespace-only addresses.
func ValidateServiceAddress(address string) Result {
	if strings.TrimSpace(address) == "" {
		return invalid("Service address is required")
	}
	return valid()
}
