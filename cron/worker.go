package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"

	"carenest/config"
	"carenest/models"
	"carenest/services/notification"
	"carenest/services/tasks"
)

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(notifier *notification.Notifier) *asynq.Server {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSessionReminder, handleReminderTask(notifier))

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()

	return srv
}

func handleReminderTask(notifier *notification.Notifier) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p tasks.SessionReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		log.Printf("[ReminderHandler] firing reminder for %s %s, booking %s", p.Target, p.UserID, p.BookingID)

		notifier.Notify(ctx, p.UserID, models.Notification{
			ID:        uuid.New().String(),
			UserID:    p.UserID,
			Category:  models.CategoryBooking,
			Title:     p.Title,
			Message:   p.Body,
			RelatedID: p.BookingID,
			CreatedAt: time.Now().UTC(),
		})
		return nil
	}
}
