package booking

import (
	"context"

	bookingRepo "homebook/database/repository/bookings"
	"homebook/models"

	"github.com/hibiken/asynq"
)

// BookingService defines the interface for pricing and creating bookings.
type BookingService interface {
	// Quote prices a booking without persisting anything.
	Quote(input models.RawBookingInput) (*models.PricedBookingRecord, error)
	// CreateBooking builds, persists and queues confirmation for a booking.
	CreateBooking(ctx context.Context, input models.RawBookingInput) (*models.PricedBookingRecord, error)
	GetCustomerBookings(ctx context.Context, userID string) ([]models.PricedBookingRecord, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	TaskClient *asynq.Client
	Pricing    PricingConfig
}
