package tasks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"carenest/models"
)

const TypeSessionReminder = "reminder:session"

// SessionReminderPayload is the queued reminder for one booking party.
type SessionReminderPayload struct {
	BookingID string    `json:"bookingId"`
	Target    string    `json:"target"` // "parent" or "nanny"
	UserID    string    `json:"userId"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	StartTime time.Time `json:"startTime"`
}

// NewSessionReminderTask builds the asynq task scheduled at fireAt.
func NewSessionReminderTask(payload SessionReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSessionReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// AsynqReminderScheduler enqueues session reminders ahead of a confirmed
// booking's start time.
type AsynqReminderScheduler struct {
	Client *asynq.Client
	Lead   time.Duration
	Logger *zap.Logger
}

// Schedule queues one reminder per party. Bookings starting inside the lead
// window are skipped rather than fired immediately.
func (s *AsynqReminderScheduler) Schedule(ctx context.Context, booking *models.Booking) error {
	fireAt := booking.StartTime.Add(-s.Lead)
	if !fireAt.After(time.Now()) {
		s.Logger.Debug("reminder skipped, booking starts inside the lead window",
			zap.String("bookingId", booking.ID))
		return nil
	}

	when := booking.StartTime.Local().Format("15:04")
	parties := []SessionReminderPayload{
		{
			BookingID: booking.ID,
			Target:    models.RoleParent,
			UserID:    booking.ParentID,
			Title:     "Upcoming care session",
			Body:      fmt.Sprintf("Your session starts at %s.", when),
			StartTime: booking.StartTime,
		},
		{
			BookingID: booking.ID,
			Target:    models.RoleNanny,
			UserID:    booking.NannyID,
			Title:     "Upcoming care session",
			Body:      fmt.Sprintf("You have a session starting at %s.", when),
			StartTime: booking.StartTime,
		},
	}

	for _, payload := range parties {
		task, opts, err := NewSessionReminderTask(payload, fireAt)
		if err != nil {
			return fmt.Errorf("failed to build reminder task: %w", err)
		}
		if _, err := s.Client.EnqueueContext(ctx, task, opts...); err != nil {
			return fmt.Errorf("failed to enqueue reminder for %s: %w", payload.UserID, err)
		}
	}
	return nil
}
