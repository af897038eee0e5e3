package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"carenest/models"
)

// transitionStubAPI serves a single booking and applies transitions to it.
type transitionStubAPI struct {
	stubBookingAPI
	booking     models.Booking
	transitions []string
}

func (s *transitionStubAPI) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	b := s.booking
	return &b, nil
}

func (s *transitionStubAPI) Transition(ctx context.Context, bookingID, action string) (*models.Booking, error) {
	s.transitions = append(s.transitions, action)
	b := s.booking
	b.Status = actionTargets[action]
	return &b, nil
}

// recordingScheduler remembers which bookings were scheduled.
type recordingScheduler struct {
	mu        sync.Mutex
	scheduled []string
	err       error
}

func (r *recordingScheduler) Schedule(ctx context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.scheduled = append(r.scheduled, booking.ID)
	return r.err
}

func TestTransitionRejectsIllegalMove(t *testing.T) {
	api := &transitionStubAPI{booking: models.Booking{ID: "b1", Status: models.StatusRequested}}
	svc := NewDefaultBookingService(api, nil, nil, nil, zap.NewNop())

	_, err := svc.Transition(context.Background(), "b1", "start")
	if err == nil {
		t.Fatal("expected REQUESTED -> IN_PROGRESS to be rejected")
	}
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if len(api.transitions) != 0 {
		t.Fatal("illegal transition must not reach the core API")
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	api := &transitionStubAPI{booking: models.Booking{ID: "b1", Status: models.StatusRequested}}
	svc := NewDefaultBookingService(api, nil, nil, nil, zap.NewNop())

	if _, err := svc.Transition(context.Background(), "b1", "teleport"); err == nil {
		t.Fatal("expected unknown action to be rejected")
	}
}

func TestTransitionConfirmSchedulesReminder(t *testing.T) {
	api := &transitionStubAPI{booking: models.Booking{ID: "b1", Status: models.StatusRequested}}
	sched := &recordingScheduler{}
	svc := NewDefaultBookingService(api, nil, nil, sched, zap.NewNop())

	updated, err := svc.Transition(context.Background(), "b1", "confirm")
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if updated.Status != models.StatusConfirmed {
		t.Fatalf("status = %s, want CONFIRMED", updated.Status)
	}
	if len(sched.scheduled) != 1 || sched.scheduled[0] != "b1" {
		t.Fatalf("scheduled = %v, want [b1]", sched.scheduled)
	}
}

func TestTransitionReminderFailureIsNonFatal(t *testing.T) {
	api := &transitionStubAPI{booking: models.Booking{ID: "b1", Status: models.StatusRequested}}
	sched := &recordingScheduler{err: errors.New("queue down")}
	svc := NewDefaultBookingService(api, nil, nil, sched, zap.NewNop())

	if _, err := svc.Transition(context.Background(), "b1", "confirm"); err != nil {
		t.Fatalf("confirm must succeed despite reminder failure, got %v", err)
	}
}

func TestTransitionCancelFromConfirmed(t *testing.T) {
	api := &transitionStubAPI{booking: models.Booking{ID: "b1", Status: models.StatusConfirmed}}
	svc := NewDefaultBookingService(api, nil, nil, nil, zap.NewNop())

	updated, err := svc.Transition(context.Background(), "b1", "cancel")
	if err != nil {
		t.Fatalf("cancel failed: %v", err)
	}
	if updated.Status != models.StatusCancelled {
		t.Fatalf("status = %s, want CANCELLED", updated.Status)
	}
}
