package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateNumericInput(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		allowDecimals bool
		want          bool
	}{
		{"empty is valid", "", true, true},
		{"integer", "42", true, true},
		{"decimal allowed", "3.14", true, true},
		{"trailing dot allowed", "3.", true, true},
		{"leading zeros allowed", "007", true, true},
		{"letters rejected", "12a", true, false},
		{"negative rejected", "-5", true, false},
		{"decimal rejected when integers only", "3.14", false, false},
		{"integer fine when integers only", "12", false, true},
		{"double dot rejected", "1..2", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateNumericInput(tt.text, tt.allowDecimals).Valid)
		})
	}
}

func TestValidateMeasurement(t *testing.T) {
	min, max := 10.0, 200.0

	tests := []struct {
		name  string
		value string
		min   *float64
		max   *float64
		want  bool
	}{
		{"empty is not yet entered", "", &min, &max, true},
		{"within bounds", "50", &min, &max, true},
		{"below min", "5", &min, &max, false},
		{"above max", "250", &min, &max, false},
		{"zero rejected", "0", nil, nil, false},
		{"no bounds", "999", nil, nil, true},
		{"garbage rejected", "a lot", nil, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ValidateMeasurement(tt.value, tt.min, tt.max)
			assert.Equal(t, tt.want, res.Valid)
			if !tt.want {
				assert.NotEmpty(t, res.Message)
			}
		})
	}
}

func TestValidateMeasurement_BoundMessagesNameTheBound(t *testing.T) {
	min, max := 10.0, 200.0

	res := ValidateMeasurement("5", &min, &max)
	assert.Contains(t, res.Message, "10")

	res = ValidateMeasurement("250", &min, &max)
	assert.Contains(t, res.Message, "200")
}

// Empty means "not yet entered" for quantity and measurement, but distance is
// mandatory for moving services. The asymmetry is deliberate.
func TestValidateEmptyFieldAsymmetry(t *testing.T) {
	assert.True(t, ValidateQuantity("").Valid)
	assert.True(t, ValidateMeasurement("", nil, nil).Valid)
	assert.True(t, ValidateBoxes("").Valid)
	assert.False(t, ValidateDistance("").Valid)
}

func TestValidateDistance(t *testing.T) {
	assert.True(t, ValidateDistance("12.5").Valid)
	assert.False(t, ValidateDistance("0").Valid)
	assert.False(t, ValidateDistance("-3").Valid)
	assert.False(t, ValidateDistance("far").Valid)
}

func TestValidateBoxes(t *testing.T) {
	assert.True(t, ValidateBoxes("0").Valid)
	assert.True(t, ValidateBoxes("15").Valid)
	assert.False(t, ValidateBoxes("2.5").Valid, "boxes must be whole")
	assert.False(t, ValidateBoxes("ten").Valid)
}

func TestValidateDate(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"yesterday invalid", now.AddDate(0, 0, -1), false},
		{"today valid even earlier in the day", time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC), true},
		{"tomorrow valid", now.AddDate(0, 0, 1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateDateAt(tt.date, now).Valid)
		})
	}
}

func TestValidateTime(t *testing.T) {
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	today := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)

	pick := func(hour, minute int) time.Time {
		return time.Date(2026, 3, 15, hour, minute, 0, 0, time.UTC)
	}

	tests := []struct {
		name         string
		t            time.Time
		selectedDate time.Time
		want         bool
	}{
		{"future time today", pick(16, 0), today, true},
		{"past time today", pick(9, 0), today, false},
		{"exactly now is not in the future", pick(14, 30), today, false},
		{"any time on a future day", pick(9, 0), tomorrow, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validateTimeAt(tt.t, tt.selectedDate, now).Valid)
		})
	}
}

func TestValidateServiceAddress(t *testing.T) {
	assert.True(t, ValidateServiceAddress("123 Main St").Valid)
	assert.False(t, ValidateServiceAddress("").Valid)
	assert.False(t, ValidateServiceAddress("   \t  ").Valid)
}
