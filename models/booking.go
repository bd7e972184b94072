package models

import "time"

// PricedBookingRecord is the fully priced booking payload. Field names are
// snake_case and mirror the backend booking table columns; they form the wire
// contract for booking creation and must not drift.
//
// Optional fields use pointers so that absent values stay absent on the wire
// (no key at all) instead of serializing as zero values.
type PricedBookingRecord struct {
	ID     string `bson:"id,omitempty" json:"id,omitempty"`
	UserID string `bson:"user_id" json:"user_id"`

	ServiceID       string `bson:"service_id" json:"service_id"`
	ServiceName     string `bson:"service_name" json:"service_name"`
	ServiceCategory string `bson:"service_category" json:"service_category"`
	VariantID       string `bson:"variant_id" json:"variant_id"`
	VariantName     string `bson:"variant_name" json:"variant_name"`

	BookingDate          string  `bson:"booking_date" json:"booking_date"` // "YYYY-MM-DD"
	BookingTime          string  `bson:"booking_time" json:"booking_time"` // "HH:MM"
	DurationMinutes      int     `bson:"duration_minutes" json:"duration_minutes"`
	ServiceDurationHours float64 `bson:"service_duration_hours" json:"service_duration_hours"`

	CustomerName  string  `bson:"customer_name" json:"customer_name"`
	CustomerEmail string  `bson:"customer_email" json:"customer_email"`
	CustomerPhone *string `bson:"customer_phone,omitempty" json:"customer_phone,omitempty"`

	ServiceAddress string `bson:"service_address" json:"service_address"`
	Notes          string `bson:"notes,omitempty" json:"notes,omitempty"`

	TotalAmount float64     `bson:"total_amount" json:"total_amount"`
	PricingType PricingType `bson:"pricing_type" json:"pricing_type"`
	Currency    string      `bson:"currency" json:"currency"`

	// Quantity carries the fixed-pricing multiplier. For a house-moving
	// variant on fixed pricing it carries the area, by backend convention.
	Quantity *float64 `bson:"quantity,omitempty" json:"quantity,omitempty"`

	// Per-unit pricing fields.
	MeasurementValue *float64 `bson:"measurement_value,omitempty" json:"measurement_value,omitempty"`
	MeasurementUnit  string   `bson:"measurement_unit,omitempty" json:"measurement_unit,omitempty"`
	UnitPrice        *float64 `bson:"unit_price,omitempty" json:"unit_price,omitempty"`

	// House-moving breakdown fields, populated only for moving services.
	AreaSqm           *float64 `bson:"area_sqm,omitempty" json:"area_sqm,omitempty"`
	DistanceKm        *float64 `bson:"distance_km,omitempty" json:"distance_km,omitempty"`
	NumberOfBoxes     *int     `bson:"number_of_boxes,omitempty" json:"number_of_boxes,omitempty"`
	AreaCost          *float64 `bson:"area_cost,omitempty" json:"area_cost,omitempty"`
	DistanceCost      *float64 `bson:"distance_cost,omitempty" json:"distance_cost,omitempty"`
	BoxesCost         *float64 `bson:"boxes_cost,omitempty" json:"boxes_cost,omitempty"`
	SubtotalBeforeVAT *float64 `bson:"subtotal_before_vat,omitempty" json:"subtotal_before_vat,omitempty"`
	VATAmount         *float64 `bson:"vat_amount,omitempty" json:"vat_amount,omitempty"`
	VATRate           *float64 `bson:"vat_rate,omitempty" json:"vat_rate,omitempty"`

	SelectedDates     []BookingDateEntry `bson:"selected_dates" json:"selected_dates"` // null when no date list was given
	IsMultiDayBooking bool               `bson:"is_multi_day_booking" json:"is_multi_day_booking"`

	// Denormalized snapshots for downstream consumers.
	UserInputs         UserInputs         `bson:"user_inputs" json:"user_inputs"`
	ServiceVariantData VariantSnapshot    `bson:"service_variant_data" json:"service_variant_data"`
	MovingServiceData  *MovingServiceData `bson:"moving_service_data" json:"moving_service_data"` // null unless house moving
	CostBreakdown      *CostBreakdown     `bson:"cost_breakdown" json:"cost_breakdown"`           // null unless house moving

	Status    string    `bson:"status,omitempty" json:"status,omitempty"`
	CreatedAt time.Time `bson:"created_at,omitempty" json:"created_at,omitempty"`
}

// UserInputs echoes the raw form values exactly as entered.
type UserInputs struct {
	Quantity      string `bson:"quantity,omitempty" json:"quantity,omitempty"`
	Measurement   string `bson:"measurement,omitempty" json:"measurement,omitempty"`
	Distance      string `bson:"distance,omitempty" json:"distance,omitempty"`
	NumberOfBoxes string `bson:"number_of_boxes,omitempty" json:"number_of_boxes,omitempty"`
	Date          string `bson:"date,omitempty" json:"date,omitempty"`
	Time          string `bson:"time,omitempty" json:"time,omitempty"`
	Notes         string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// VariantSnapshot is a denormalized copy of the variant at booking time.
type VariantSnapshot struct {
	ID          string      `bson:"id" json:"id"`
	Title       string      `bson:"title" json:"title"`
	Description string      `bson:"description,omitempty" json:"description,omitempty"`
	Price       *float64    `bson:"price,omitempty" json:"price,omitempty"`
	UnitPrice   *float64    `bson:"unit_price,omitempty" json:"unit_price,omitempty"`
	UnitMeasure string      `bson:"unit_measure,omitempty" json:"unit_measure,omitempty"`
	PricingType PricingType `bson:"pricing_type" json:"pricing_type"`
	Duration    any         `bson:"duration,omitempty" json:"duration,omitempty"`
}

// MovingServiceData holds the resolved house-moving inputs.
type MovingServiceData struct {
	AreaSqm       float64 `bson:"area_sqm" json:"area_sqm"`
	DistanceKm    float64 `bson:"distance_km" json:"distance_km"`
	NumberOfBoxes int     `bson:"number_of_boxes" json:"number_of_boxes"`
}

// CostBreakdown restates the house-moving cost math, vat rate included.
type CostBreakdown struct {
	AreaCost     float64 `bson:"area_cost" json:"area_cost"`
	DistanceCost float64 `bson:"distance_cost" json:"distance_cost"`
	BoxesCost    float64 `bson:"boxes_cost" json:"boxes_cost"`
	Subtotal     float64 `bson:"subtotal" json:"subtotal"`
	VATRate      float64 `bson:"vat_rate" json:"vat_rate"`
	VATAmount    float64 `bson:"vat_amount" json:"vat_amount"`
	Total        float64 `bson:"total" json:"total"`
}
