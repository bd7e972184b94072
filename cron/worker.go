package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"homebook/config"
	"homebook/models"
	"homebook/services/tasks"

	"github.com/hibiken/asynq"
)

// InitConfirmationWorker runs the async worker in background. It drains the
// notifications queue and logs each confirmed booking; delivery channels
// (email, push) hang off this handler.
func InitConfirmationWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"notifications": 2,
				"default":       1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeBookingConfirmation, handleConfirmationTask)

	// Start async worker with retry logic
	go func() {
		log.Println("[ConfirmationWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ConfirmationWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ConfirmationWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleConfirmationTask(ctx context.Context, task *asynq.Task) error {
	var record models.PricedBookingRecord
	if err := json.Unmarshal(task.Payload(), &record); err != nil {
		log.Printf("[ConfirmationHandler] Invalid payload: %v", err)
		return err
	}

	log.Printf("[ConfirmationHandler] Booking %s confirmed for %s on %s %s (total %.2f %s)",
		record.ID, record.CustomerEmail, record.BookingDate, record.BookingTime,
		record.TotalAmount, record.Currency)
	return nil
}
