package booking

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"carenest/models"
)

// actionTargets maps transition actions to the status they produce.
var actionTargets = map[string]string{
	"confirm":  models.StatusConfirmed,
	"start":    models.StatusInProgress,
	"complete": models.StatusCompleted,
	"cancel":   models.StatusCancelled,
}

// Transition validates the requested status change against the lifecycle
// table and proxies it to the core API. The core API remains authoritative;
// the local check only rejects actions that can never succeed.
func (s *DefaultBookingService) Transition(ctx context.Context, bookingID, action string) (*models.Booking, error) {
	target, ok := actionTargets[action]
	if !ok {
		return nil, newValidationError("action", fmt.Sprintf("unknown action %q", action))
	}

	current, err := s.Bookings.Get(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking %s: %w", bookingID, err)
	}
	if !models.CanTransition(current.Status, target) {
		return nil, newValidationError("status",
			fmt.Sprintf("cannot %s a booking in status %s", action, current.Status))
	}

	updated, err := s.Bookings.Transition(ctx, bookingID, action)
	if err != nil {
		return nil, fmt.Errorf("failed to %s booking %s: %w", action, bookingID, err)
	}

	// A confirmed session gets a reminder ahead of its start.
	if updated.Status == models.StatusConfirmed && s.Reminders != nil {
		if err := s.Reminders.Schedule(ctx, updated); err != nil {
			s.Logger.Warn("failed to schedule session reminder",
				zap.String("bookingId", updated.ID), zap.Error(err))
		}
	}
	return updated, nil
}
