package booking

import (
	"encoding/json"
	"testing"

	"homebook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseInput() models.RawBookingInput {
	return models.RawBookingInput{
		Customer: models.Customer{
			ID:    "7a9f2f44-4f7e-4b6e-9f0a-0d6f3f0c2a11",
			Name:  "Jane Doe",
			Email: "jane@example.com",
		},
		Service: models.ServiceSelection{
			ID:       "svc-cleaning",
			Title:    "Home Cleaning",
			Category: "cleaning",
		},
		Variant: models.ServiceVariant{
			ID:       "var-standard",
			Title:    "Standard Cleaning",
			Price:    floatPtr(60),
			Duration: "2-4 hours",
		},
		Date:           "2026-04-01",
		Time:           "10:00",
		ServiceAddress: "123 Main St",
	}
}

func TestBuildBookingData_AddressRequired(t *testing.T) {
	cfg := DefaultPricingConfig()

	for _, address := range []string{"", "   ", "\t\n"} {
		input := baseInput()
		input.ServiceAddress = address
		_, err := BuildBookingData(input, cfg)
		require.Error(t, err)

		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	}

	input := baseInput()
	input.ServiceAddress = "  123 Main St  "
	record, err := BuildBookingData(input, cfg)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", record.ServiceAddress)
}

func TestBuildBookingData_FixedPricing(t *testing.T) {
	input := baseInput()
	input.Quantity = "2"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, models.PricingFixed, record.PricingType)
	assert.InDelta(t, 120, record.TotalAmount, 1e-9)
	require.NotNil(t, record.Quantity)
	assert.InDelta(t, 2, *record.Quantity, 1e-9)
	assert.Nil(t, record.MeasurementValue)
	assert.Nil(t, record.MovingServiceData)
	assert.Nil(t, record.CostBreakdown)

	// "2-4 hours" averages to 3 hours.
	assert.InDelta(t, 3, record.ServiceDurationHours, 1e-9)
	assert.Equal(t, 180, record.DurationMinutes)

	assert.Equal(t, "2026-04-01", record.BookingDate)
	assert.Equal(t, "10:00", record.BookingTime)
	assert.Equal(t, input.Customer.ID, record.UserID)
}

func TestBuildBookingData_DefaultDuration(t *testing.T) {
	input := baseInput()
	input.Variant.Duration = "sometime soon"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.InDelta(t, 2, record.ServiceDurationHours, 1e-9)
	assert.Equal(t, 120, record.DurationMinutes)
}

func TestBuildBookingData_NumericDegradation(t *testing.T) {
	input := baseInput()
	input.Quantity = "abc"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	// Garbage quantity prices as 1, never NaN.
	assert.InDelta(t, 60, record.TotalAmount, 1e-9)
	assert.False(t, record.TotalAmount != record.TotalAmount)
}

func TestBuildBookingData_PerUnitPricing(t *testing.T) {
	input := baseInput()
	input.Variant = models.ServiceVariant{
		ID:          "var-sqm",
		Title:       "Carpet Cleaning",
		UnitPrice:   floatPtr(10),
		UnitMeasure: "sqm",
	}
	input.Measurement = "25"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, models.PricingPerUnit, record.PricingType)
	assert.InDelta(t, 250, record.TotalAmount, 1e-9)
	require.NotNil(t, record.MeasurementValue)
	assert.InDelta(t, 25, *record.MeasurementValue, 1e-9)
	assert.Equal(t, "sqm", record.MeasurementUnit)
	require.NotNil(t, record.UnitPrice)
	assert.InDelta(t, 10, *record.UnitPrice, 1e-9)
	assert.Nil(t, record.Quantity)
}

func TestBuildBookingData_PerUnitZeroesStayNull(t *testing.T) {
	input := baseInput()
	input.Variant = models.ServiceVariant{
		ID:          "var-sqm",
		Title:       "Carpet Cleaning",
		UnitMeasure: "sqm",
	}
	input.Measurement = ""

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.InDelta(t, 0, record.TotalAmount, 1e-9)
	assert.Nil(t, record.MeasurementValue)
	assert.Nil(t, record.UnitPrice)
}

func TestBuildBookingData_HouseMovingFixed(t *testing.T) {
	input := baseInput()
	input.Service = models.ServiceSelection{ID: "svc-moving", Title: "House Moving", Category: "moving"}
	input.Variant = models.ServiceVariant{ID: "var-move", Title: "Full Move", Price: floatPtr(3)}
	input.Quantity = "50"
	input.Distance = "20"
	input.NumberOfBoxes = "10"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.InDelta(t, 220.15, record.TotalAmount, 1e-9)
	require.NotNil(t, record.AreaSqm)
	assert.InDelta(t, 50, *record.AreaSqm, 1e-9)
	require.NotNil(t, record.DistanceKm)
	assert.InDelta(t, 20, *record.DistanceKm, 1e-9)
	require.NotNil(t, record.NumberOfBoxes)
	assert.Equal(t, 10, *record.NumberOfBoxes)
	require.NotNil(t, record.AreaCost)
	assert.InDelta(t, 150, *record.AreaCost, 1e-9)
	require.NotNil(t, record.DistanceCost)
	assert.InDelta(t, 10, *record.DistanceCost, 1e-9)
	require.NotNil(t, record.BoxesCost)
	assert.InDelta(t, 25, *record.BoxesCost, 1e-9)
	require.NotNil(t, record.SubtotalBeforeVAT)
	assert.InDelta(t, 185, *record.SubtotalBeforeVAT, 1e-9)
	require.NotNil(t, record.VATAmount)
	assert.InDelta(t, 35.15, *record.VATAmount, 1e-9)
	require.NotNil(t, record.VATRate)
	assert.InDelta(t, 0.19, *record.VATRate, 1e-9)

	// Fixed-priced moving stores the area under quantity.
	require.NotNil(t, record.Quantity)
	assert.InDelta(t, 50, *record.Quantity, 1e-9)
	assert.Nil(t, record.MeasurementValue)

	require.NotNil(t, record.MovingServiceData)
	assert.InDelta(t, 50, record.MovingServiceData.AreaSqm, 1e-9)
	assert.Equal(t, 10, record.MovingServiceData.NumberOfBoxes)

	require.NotNil(t, record.CostBreakdown)
	assert.InDelta(t, 0.19, record.CostBreakdown.VATRate, 1e-9)
	assert.InDelta(t, 220.15, record.CostBreakdown.Total, 1e-9)
}

func TestBuildBookingData_HouseMovingPerUnit(t *testing.T) {
	input := baseInput()
	input.Service = models.ServiceSelection{ID: "svc-moving", Title: "House Moving", Category: "moving"}
	input.Variant = models.ServiceVariant{
		ID: "var-move", Title: "Full Move",
		UnitPrice: floatPtr(3), UnitMeasure: "sqm",
	}
	input.Measurement = "50"
	input.Distance = "20"
	input.NumberOfBoxes = "10"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.InDelta(t, 220.15, record.TotalAmount, 1e-9)
	require.NotNil(t, record.MeasurementValue)
	assert.InDelta(t, 50, *record.MeasurementValue, 1e-9)
	assert.Equal(t, "sqm", record.MeasurementUnit)
	require.NotNil(t, record.UnitPrice)
	assert.InDelta(t, 3, *record.UnitPrice, 1e-9)
	assert.Nil(t, record.Quantity)
}

func TestBuildBookingData_MultiDayFlag(t *testing.T) {
	cfg := DefaultPricingConfig()

	single := baseInput()
	single.SelectedDates = []models.BookingDateEntry{
		{ID: "d1", Date: "2026-04-02", Time: "09:00"},
	}
	record, err := BuildBookingData(single, cfg)
	require.NoError(t, err)
	assert.False(t, record.IsMultiDayBooking, "one entry is not multi-day")
	assert.Equal(t, "2026-04-02", record.BookingDate, "selection list overrides single date")
	assert.Equal(t, "09:00", record.BookingTime)
	assert.Len(t, record.SelectedDates, 1)

	multi := baseInput()
	multi.SelectedDates = []models.BookingDateEntry{
		{ID: "d1", Date: "2026-04-02", Time: "09:00"},
		{ID: "d2", Date: "2026-04-09", Time: "09:00"},
	}
	record, err = BuildBookingData(multi, cfg)
	require.NoError(t, err)
	assert.True(t, record.IsMultiDayBooking)
}

func TestBuildBookingData_WeeklyPricesPerSelectedDate(t *testing.T) {
	input := baseInput()
	input.Service.Title = "Weekly Cleaning"
	input.Quantity = "1"
	input.SelectedDates = []models.BookingDateEntry{
		{ID: "d1", Date: "2026-04-02", Time: "09:00"},
		{ID: "d2", Date: "2026-04-09", Time: "09:00"},
		{ID: "d3", Date: "2026-04-16", Time: "09:00"},
	}

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	require.NotNil(t, record.Quantity)
	assert.InDelta(t, 3, *record.Quantity, 1e-9)
	assert.InDelta(t, 180, record.TotalAmount, 1e-9)
	assert.True(t, record.IsMultiDayBooking)
}

func TestBuildBookingData_SparseOptionalFields(t *testing.T) {
	cfg := DefaultPricingConfig()

	input := baseInput()
	record, err := BuildBookingData(input, cfg)
	require.NoError(t, err)
	assert.Nil(t, record.CustomerPhone)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.NotContains(t, string(data), `"customer_phone"`)

	withPhone := baseInput()
	withPhone.Customer.Phone = "+49 170 1234567"
	record, err = BuildBookingData(withPhone, cfg)
	require.NoError(t, err)
	require.NotNil(t, record.CustomerPhone)
	assert.Equal(t, "+49 170 1234567", *record.CustomerPhone)
}

func TestBuildBookingData_SelectedDatesNullWithoutList(t *testing.T) {
	record, err := BuildBookingData(baseInput(), DefaultPricingConfig())
	require.NoError(t, err)

	assert.Nil(t, record.SelectedDates)

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"selected_dates":null`)
	assert.Contains(t, string(data), `"moving_service_data":null`)
	assert.Contains(t, string(data), `"cost_breakdown":null`)
}

func TestBuildBookingData_UserInputsEchoRawValues(t *testing.T) {
	input := baseInput()
	input.Quantity = "abc"
	input.Notes = "ring twice"

	record, err := BuildBookingData(input, DefaultPricingConfig())
	require.NoError(t, err)

	assert.Equal(t, "abc", record.UserInputs.Quantity, "raw inputs are echoed untouched")
	assert.Equal(t, "ring twice", record.UserInputs.Notes)
	assert.Equal(t, input.Variant.ID, record.ServiceVariantData.ID)
	assert.Equal(t, models.PricingFixed, record.ServiceVariantData.PricingType)
}
