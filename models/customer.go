package models

// Customer identifies who the booking is for. The ID must be UUID-shaped when
// used for booking creation. Phone is optional; an empty string means absent.
type Customer struct {
	ID    string `bson:"id" json:"id"`
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
}
