package models

// Service is a bookable service category in the catalog
// (e.g. cleaning, moving, furniture assembly).
type Service struct {
	ID          string `bson:"id" json:"id"`
	Title       string `bson:"title" json:"title"`
	Category    string `bson:"category" json:"category"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Icon        string `bson:"icon,omitempty" json:"icon,omitempty"`
}
