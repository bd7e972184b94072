package booking

import (
	"math"
	"strings"

	"homebook/models"
)

// BuildBookingData assembles the priced booking record from raw form input.
// This is a single-pass pure transform: the only hard failure is a missing
// service address, everything else degrades to defaults. Callers are expected
// to have run the advisory validations first.
func BuildBookingData(input models.RawBookingInput, cfg PricingConfig) (*models.PricedBookingRecord, error) {
	address := strings.TrimSpace(input.ServiceAddress)
	if address == "" {
		return nil, NewValidationError("service address is required")
	}

	pricingType := ResolvePricingType(input.Variant)
	isMoving := IsHouseMovingService(input.Service, input.Variant)
	isWeekly := IsWeeklyCleaningService(input.Service, input.Variant)

	// Dates: an explicit selection list is authoritative, the single
	// date/time fields are the fallback. Multi-day needs more than one entry.
	bookingDate, bookingTime := input.Date, input.Time
	var selectedDates []models.BookingDateEntry
	if len(input.SelectedDates) > 0 {
		selectedDates = input.SelectedDates
		bookingDate = selectedDates[0].Date
		bookingTime = selectedDates[0].Time
	}

	hours, ok := ParseDurationHours(input.Variant.Duration)
	if !ok {
		hours = cfg.DefaultDurationHours
	}

	record := &models.PricedBookingRecord{
		UserID:          input.Customer.ID,
		ServiceID:       input.Service.ID,
		ServiceName:     input.Service.Title,
		ServiceCategory: input.Service.Category,
		VariantID:       input.Variant.ID,
		VariantName:     input.Variant.Title,

		BookingDate:          bookingDate,
		BookingTime:          bookingTime,
		DurationMinutes:      int(math.Round(hours * 60)),
		ServiceDurationHours: hours,

		CustomerName:  input.Customer.Name,
		CustomerEmail: input.Customer.Email,

		ServiceAddress: address,
		Notes:          input.Notes,
		PricingType:    pricingType,
		Currency:       cfg.Currency,

		SelectedDates:     selectedDates,
		IsMultiDayBooking: len(selectedDates) > 1,

		UserInputs: models.UserInputs{
			Quantity:      input.Quantity,
			Measurement:   input.Measurement,
			Distance:      input.Distance,
			NumberOfBoxes: input.NumberOfBoxes,
			Date:          input.Date,
			Time:          input.Time,
			Notes:         input.Notes,
		},
		ServiceVariantData: models.VariantSnapshot{
			ID:          input.Variant.ID,
			Title:       input.Variant.Title,
			Description: input.Variant.Description,
			Price:       input.Variant.Price,
			UnitPrice:   input.Variant.UnitPrice,
			UnitMeasure: input.Variant.UnitMeasure,
			PricingType: pricingType,
			Duration:    input.Variant.Duration,
		},
	}

	// The backend drops the key entirely when no phone was given.
	if input.Customer.Phone != "" {
		phone := input.Customer.Phone
		record.CustomerPhone = &phone
	}

	switch {
	case isMoving:
		applyHouseMovingPricing(record, input, pricingType, cfg)
	case pricingType == models.PricingPerUnit:
		applyPerUnitPricing(record, input)
	default:
		applyFixedPricing(record, input, isWeekly, selectedDates)
	}

	return record, nil
}

// applyHouseMovingPricing populates the moving breakdown fields and total.
func applyHouseMovingPricing(record *models.PricedBookingRecord, input models.RawBookingInput,
	pricingType models.PricingType, cfg PricingConfig) {

	var area, rate float64
	if pricingType == models.PricingPerUnit {
		area = numericField(input.Measurement, 0)
		rate = unitRate(input.Variant)
	} else {
		area = numericField(input.Quantity, 1)
		rate = basePrice(input.Variant)
	}
	distance := numericField(input.Distance, 0)
	boxes := numericField(input.NumberOfBoxes, 0)

	cost := CalculateHouseMovingCost(cfg, area, distance, rate, boxes)
	boxCount := int(boxes)
	vatRate := cfg.VATRate

	record.TotalAmount = cost.Total
	record.AreaSqm = &area
	record.DistanceKm = &distance
	record.NumberOfBoxes = &boxCount
	record.AreaCost = &cost.AreaCost
	record.DistanceCost = &cost.DistanceCost
	record.BoxesCost = &cost.BoxesCost
	record.SubtotalBeforeVAT = &cost.Subtotal
	record.VATAmount = &cost.VAT
	record.VATRate = &vatRate

	if pricingType == models.PricingPerUnit {
		record.MeasurementValue = &area
		record.MeasurementUnit = input.Variant.UnitMeasure
		record.UnitPrice = &rate
	} else {
		// Fixed-priced moving stores the area under quantity; the backend
		// schema expects it there.
		record.Quantity = &area
	}

	record.MovingServiceData = &models.MovingServiceData{
		AreaSqm:       area,
		DistanceKm:    distance,
		NumberOfBoxes: boxCount,
	}
	record.CostBreakdown = &models.CostBreakdown{
		AreaCost:     cost.AreaCost,
		DistanceCost: cost.DistanceCost,
		BoxesCost:    cost.BoxesCost,
		Subtotal:     cost.Subtotal,
		VATRate:      vatRate,
		VATAmount:    cost.VAT,
		Total:        cost.Total,
	}
}

// applyPerUnitPricing populates measurement fields and total for non-moving
// per-unit variants. Zero measurement or rate stays null on the wire.
func applyPerUnitPricing(record *models.PricedBookingRecord, input models.RawBookingInput) {
	measurement := numericField(input.Measurement, 0)
	rate := unitRate(input.Variant)

	record.TotalAmount = measurement * rate
	record.MeasurementUnit = input.Variant.UnitMeasure
	if measurement > 0 {
		record.MeasurementValue = &measurement
	}
	if rate > 0 {
		record.UnitPrice = &rate
	}
}

// applyFixedPricing populates quantity and total for fixed/hourly variants.
// Weekly services price per selected date instead of the entered quantity.
func applyFixedPricing(record *models.PricedBookingRecord, input models.RawBookingInput,
	isWeekly bool, selectedDates []models.BookingDateEntry) {

	quantity := numericField(input.Quantity, 1)
	if isWeekly && len(selectedDates) > 0 {
		quantity = float64(len(selectedDates))
	}

	record.TotalAmount = basePrice(input.Variant) * quantity
	record.Quantity = &quantity
}
