package booking

import (
	"context"
	"fmt"

	"homebook/config"
	"homebook/models"
	"homebook/services/tasks"
	"homebook/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PricingFromConfig builds the pricing configuration from the loaded app
// config. Called once at wiring time; the core never reads config itself.
func PricingFromConfig() PricingConfig {
	return PricingConfig{
		RatePerKm:            config.AppConfig.RatePerKm,
		BoxPrice:             config.AppConfig.BoxPrice,
		VATRate:              config.AppConfig.VATRate,
		DefaultDurationHours: config.AppConfig.DefaultDurationHours,
		Currency:             config.AppConfig.Currency,
	}
}

// Quote prices the input without persisting. Used by clients to show the
// total before the customer submits.
func (s *DefaultBookingService) Quote(input models.RawBookingInput) (*models.PricedBookingRecord, error) {
	return BuildBookingData(input, s.Pricing)
}

// CreateBooking builds the priced record, stores it, and enqueues a
// confirmation task. The customer ID must be UUID-shaped.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, input models.RawBookingInput) (*models.PricedBookingRecord, error) {
	if _, err := uuid.Parse(input.Customer.ID); err != nil {
		return nil, NewValidationError("customer id must be a valid UUID")
	}

	record, err := BuildBookingData(input, s.Pricing)
	if err != nil {
		return nil, err
	}
	record.ID = uuid.New().String()
	record.Status = "pending"

	if _, err := s.Repo.Create(ctx, *record); err != nil {
		return nil, fmt.Errorf("failed to store booking: %w", err)
	}

	// Confirmation is best effort; the booking stands even if the queue is down.
	if s.TaskClient != nil {
		task, opts, err := tasks.NewBookingConfirmationTask(*record)
		if err == nil {
			_, err = s.TaskClient.Enqueue(task, opts...)
		}
		if err != nil {
			utils.GetLogger().Warn("Failed to enqueue booking confirmation",
				zap.String("bookingID", record.ID), zap.Error(err))
		}
	}

	return record, nil
}

// GetCustomerBookings returns all bookings made by the given customer.
func (s *DefaultBookingService) GetCustomerBookings(ctx context.Context, userID string) ([]models.PricedBookingRecord, error) {
	records, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return records, nil
}
