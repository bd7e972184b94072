package booking

import (
	"strings"

	"homebook/models"
)

// PricingConfig carries the deployment-specific pricing rates. Rates are
// injected rather than hardcoded so regional deployments can vary them
// without a code change.
type PricingConfig struct {
	RatePerKm            float64 // house-moving cost per kilometre
	BoxPrice             float64 // house-moving cost per box
	VATRate              float64 // flat VAT applied to the moving subtotal
	DefaultDurationHours float64 // substituted when a variant duration is unparsable
	Currency             string
}

// DefaultPricingConfig returns the standard rates.
func DefaultPricingConfig() PricingConfig {
	return PricingConfig{
		RatePerKm:            0.5,
		BoxPrice:             2.5,
		VATRate:              0.19,
		DefaultDurationHours: 2,
		Currency:             "EUR",
	}
}

// ResolvePricingType returns the concrete pricing tag for a variant. An
// explicit tag wins; otherwise the presence of unit price or unit measure
// means per-unit pricing, and fixed is the fallback.
func ResolvePricingType(v models.ServiceVariant) models.PricingType {
	switch v.PricingType {
	case models.PricingFixed, models.PricingPerUnit, models.PricingHourly:
		return v.PricingType
	}
	if v.UnitPrice != nil || v.UnitMeasure != "" {
		return models.PricingPerUnit
	}
	return models.PricingFixed
}

// IsHouseMovingService reports whether the selection or variant is a
// house-moving service, flagged by title/category keywords.
func IsHouseMovingService(s models.ServiceSelection, v models.ServiceVariant) bool {
	for _, text := range []string{s.Title, s.Category, v.Title} {
		lower := strings.ToLower(text)
		if strings.Contains(lower, "moving") || strings.Contains(lower, "house") {
			return true
		}
	}
	return false
}

// IsWeeklyCleaningService reports whether the selection or variant is a
// weekly service, whose quantity scales with the count of selected dates.
func IsWeeklyCleaningService(s models.ServiceSelection, v models.ServiceVariant) bool {
	for _, text := range []string{s.Title, v.Title} {
		if strings.Contains(strings.ToLower(text), "weekly") {
			return true
		}
	}
	return false
}

// HouseMovingCost is the full cost breakdown for a house-moving booking.
type HouseMovingCost struct {
	AreaCost     float64
	DistanceCost float64
	BoxesCost    float64
	Subtotal     float64
	VAT          float64
	Total        float64
}

// CalculateHouseMovingCost computes the moving cost from area, distance and
// boxes. All values stay unrounded floats; rounding is a display concern and
// never happens here.
func CalculateHouseMovingCost(cfg PricingConfig, area, distance, rate, boxes float64) HouseMovingCost {
	areaCost := area * rate
	distanceCost := distance * cfg.RatePerKm
	boxesCost := boxes * cfg.BoxPrice
	subtotal := areaCost + distanceCost + boxesCost
	vat := subtotal * cfg.VATRate
	return HouseMovingCost{
		AreaCost:     areaCost,
		DistanceCost: distanceCost,
		BoxesCost:    boxesCost,
		Subtotal:     subtotal,
		VAT:          vat,
		Total:        subtotal + vat,
	}
}

// CalculateTotalPrice computes the total for a variant from raw form values.
// Unparsable numbers degrade to their defaults (1 for quantity, 0 for the
// rest) instead of failing.
func CalculateTotalPrice(cfg PricingConfig, v models.ServiceVariant, pricingType models.PricingType,
	quantity, measurement, distance, numberOfBoxes string, isHouseMoving bool) float64 {

	if isHouseMoving {
		var area, rate float64
		if pricingType == models.PricingPerUnit {
			area = numericField(measurement, 0)
			rate = unitRate(v)
		} else {
			area = numericField(quantity, 1)
			rate = basePrice(v)
		}
		cost := CalculateHouseMovingCost(cfg, area, numericField(distance, 0), rate, numericField(numberOfBoxes, 0))
		return cost.Total
	}

	if pricingType == models.PricingPerUnit {
		return numericField(measurement, 0) * unitRate(v)
	}

	return basePrice(v) * numericField(quantity, 1)
}

// unitRate resolves the per-unit rate: unit price first, base price second.
func unitRate(v models.ServiceVariant) float64 {
	if v.UnitPrice != nil {
		return *v.UnitPrice
	}
	return basePrice(v)
}

func basePrice(v models.ServiceVariant) float64 {
	if v.Price != nil {
		return *v.Price
	}
	return 0
}
