package bookingRepo

import (
	"context"

	"homebook/database"
	"homebook/models"

	"go.mongodb.org/mongo-driver/mongo"
)

type BookingRepository interface {
	Create(ctx context.Context, record models.PricedBookingRecord) (string, error)
	GetByID(ctx context.Context, id string) (*models.PricedBookingRecord, error)
	GetByUserID(ctx context.Context, userID string) ([]models.PricedBookingRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo returns a new BookingRepository instance using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	return &mongoBookingRepo{
		coll: database.Database().Collection("bookings"),
	}
}
