package tasks

import (
	"encoding/json"

	"homebook/models"

	"github.com/hibiken/asynq"
)

const TypeBookingConfirmation = "booking:confirmation"

// NewBookingConfirmationTask builds the queue task that sends the customer
// their booking confirmation.
func NewBookingConfirmationTask(record models.PricedBookingRecord) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(record)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeBookingConfirmation, b)
	opts := []asynq.Option{asynq.Queue("notifications"), asynq.MaxRetry(5)}

	return task, opts, nil
}
