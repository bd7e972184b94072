package models

// PricingType tags how a service variant is priced. The tag is resolved once
// at the ingestion boundary; downstream code switches on the concrete value
// instead of re-deriving it from other fields.
type PricingType string

const (
	PricingFixed   PricingType = "fixed"    // flat price x quantity
	PricingPerUnit PricingType = "per_unit" // unit price x user-entered measurement
	PricingHourly  PricingType = "hourly"   // recognized tag, priced like fixed
)

// ServiceSelection is the category/type the customer picked from the catalog.
type ServiceSelection struct {
	ID       string `bson:"id" json:"id"`
	Title    string `bson:"title" json:"title"`
	Category string `bson:"category" json:"category"`
}

// ServiceVariant is a priceable configuration of a service
// (e.g. "Deep Cleaning, Standard"). Supplied by the catalog, never mutated.
type ServiceVariant struct {
	ID             string      `bson:"id" json:"id"`
	ServiceID      string      `bson:"service_id" json:"service_id"`
	Title          string      `bson:"title" json:"title"`
	Description    string      `bson:"description,omitempty" json:"description,omitempty"`
	Price          *float64    `bson:"price,omitempty" json:"price,omitempty"`                     // fixed price per quantity unit
	UnitPrice      *float64    `bson:"unit_price,omitempty" json:"unit_price,omitempty"`           // price per measurement unit
	UnitMeasure    string      `bson:"unit_measure,omitempty" json:"unit_measure,omitempty"`       // e.g. "sqm", "kg"
	PricingType    PricingType `bson:"pricing_type,omitempty" json:"pricing_type,omitempty"`       // empty means: infer from unit fields
	MinMeasurement *float64    `bson:"min_measurement,omitempty" json:"min_measurement,omitempty"` // lower bound for measurement input
	MaxMeasurement *float64    `bson:"max_measurement,omitempty" json:"max_measurement,omitempty"` // upper bound for measurement input

	// Duration is heterogeneous by contract with the catalog backend: a number
	// of hours, a number of minutes, or a free-text range like "2-4 hours".
	Duration any `bson:"duration,omitempty" json:"duration,omitempty"`
}
