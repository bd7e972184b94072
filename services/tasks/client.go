package tasks

import (
	"homebook/config"

	"github.com/hibiken/asynq"
)

// NewClient returns an asynq client bound to the tasks Redis DB.
func NewClient() *asynq.Client {
	return asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	})
}
