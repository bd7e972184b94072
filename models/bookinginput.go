package models

// BookingDateEntry is one date/time selection in a multi-day booking.
type BookingDateEntry struct {
	ID   string `bson:"id" json:"id"`
	Date string `bson:"date" json:"date"` // "YYYY-MM-DD"
	Time string `bson:"time" json:"time"` // "HH:MM"
}

// RawBookingInput aggregates everything a form submits: the selected service
// and variant, the customer, raw string numeric fields and date selections.
// Numeric fields stay strings on purpose; parsing with defaults happens in
// the booking core, never in transport.
type RawBookingInput struct {
	Customer Customer         `json:"customer"`
	Service  ServiceSelection `json:"service"`
	Variant  ServiceVariant   `json:"variant"`

	Quantity      string `json:"quantity,omitempty"`
	Measurement   string `json:"measurement,omitempty"`
	Distance      string `json:"distance,omitempty"`      // km, house-moving only
	NumberOfBoxes string `json:"numberOfBoxes,omitempty"` // house-moving only

	// Single-date fallback, used when SelectedDates is empty.
	Date string `json:"date,omitempty"` // "YYYY-MM-DD"
	Time string `json:"time,omitempty"` // "HH:MM"

	SelectedDates []BookingDateEntry `json:"selectedDates,omitempty"`

	ServiceAddress string `json:"serviceAddress"`
	Notes          string `json:"notes,omitempty"`
}
