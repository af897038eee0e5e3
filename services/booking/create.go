package booking

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"carenest/models"
)

// ComputeEndTime derives the end of a session from its start and duration in
// hours. The end rolls over to the next day when it crosses midnight, e.g.
// 22:00 plus 3 hours ends 01:00 the next day.
func ComputeEndTime(startTime string, durationHours float64) (end string, nextDay bool, err error) {
	start, err := time.Parse("15:04", startTime)
	if err != nil {
		return "", false, newValidationError("start_time", "must be in HH:MM format")
	}
	minutes := int(math.Round(durationHours * 60))
	startMinutes := start.Hour()*60 + start.Minute()
	endMinutes := startMinutes + minutes
	nextDay = endMinutes >= 24*60
	endMinutes %= 24 * 60
	return fmt.Sprintf("%02d:%02d", endMinutes/60, endMinutes%60), nextDay, nil
}

// EstimateCost renders duration_hours * hourly_rate with two decimal places.
func EstimateCost(hourlyRate, durationHours float64) string {
	return fmt.Sprintf("%.2f", hourlyRate*durationHours)
}

// validateInput applies the form rules before anything is sent upstream.
func validateInput(input models.CreateBookingInput) error {
	if input.NannyID == "" {
		return newValidationError("nanny_id", "a caregiver must be selected")
	}
	if input.Date == "" {
		return newValidationError("date", "date is required")
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return newValidationError("date", "must be in YYYY-MM-DD format")
	}
	if input.StartTime == "" {
		return newValidationError("start_time", "start time is required")
	}
	if _, err := time.Parse("15:04", input.StartTime); err != nil {
		return newValidationError("start_time", "must be in HH:MM format")
	}
	if input.DurationHours <= 0 && input.EndTime == "" {
		return newValidationError("duration_hours", "a duration or an explicit end time is required")
	}
	if input.EndTime != "" {
		if _, err := time.Parse("15:04", input.EndTime); err != nil {
			return newValidationError("end_time", "must be in HH:MM format")
		}
	}
	if input.NumChildren < 1 {
		return newValidationError("num_children", "at least one child is required")
	}
	return nil
}

// OpenDraft starts a booking form session in the idle state.
func (s *DefaultBookingService) OpenDraft(ctx context.Context, parentID string, input models.CreateBookingInput) (*models.BookingDraft, error) {
	draft := &models.BookingDraft{
		DraftID:   uuid.New().String(),
		ParentID:  parentID,
		Input:     input,
		State:     models.DraftIdle,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// UpdateDraft replaces the form contents of an idle draft.
func (s *DefaultBookingService) UpdateDraft(ctx context.Context, parentID, draftID string, input models.CreateBookingInput) (*models.BookingDraft, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.ParentID != parentID {
		return nil, ErrDraftNotFound
	}
	if draft.State == models.DraftSubmitting {
		return nil, ErrSubmissionInFlight
	}
	draft.Input = input
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}
	return draft, nil
}

// Create validates the form, derives end time and estimated cost, and submits
// one create request to the core API. While a create for this parent is in
// flight any further attempt is a no-op (ErrSubmissionInFlight); a
// gateway-generated idempotency key covers the remaining race window.
func (s *DefaultBookingService) Create(ctx context.Context, parentID string, input models.CreateBookingInput) (*models.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if _, pending := s.inFlight[parentID]; pending {
		s.mu.Unlock()
		return nil, ErrSubmissionInFlight
	}
	s.inFlight[parentID] = struct{}{}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		delete(s.inFlight, parentID)
		s.mu.Unlock()
	}()

	req := models.CreateBookingRequest{
		CreateBookingInput: input,
		ParentID:           parentID,
		IdempotencyKey:     uuid.New().String(),
	}

	if input.EndTime != "" {
		req.ComputedEnd = input.EndTime
	} else {
		end, nextDay, err := ComputeEndTime(input.StartTime, input.DurationHours)
		if err != nil {
			return nil, err
		}
		req.ComputedEnd = end
		req.EndsNextDay = nextDay
	}

	// The estimate is display-only; the core API computes the authoritative
	// total. A failed rate lookup degrades to no estimate.
	if input.DurationHours > 0 && s.Enricher != nil {
		if profile, err := s.Enricher.Profile(ctx, input.NannyID); err != nil {
			s.Logger.Warn("cost estimate skipped, caregiver profile unavailable",
				zap.String("nannyId", input.NannyID), zap.Error(err))
		} else if profile.HourlyRate > 0 {
			req.EstimatedCost = EstimateCost(profile.HourlyRate, input.DurationHours)
		}
	}

	created, err := s.Bookings.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	return created, nil
}

// SubmitDraft moves a draft to submitting, creates the booking, and clears
// the draft on success. On failure the draft returns to idle so the form can
// be resubmitted.
func (s *DefaultBookingService) SubmitDraft(ctx context.Context, parentID, draftID string) (*models.Booking, error) {
	draft, err := s.Drafts.Get(ctx, draftID)
	if err != nil {
		return nil, err
	}
	if draft.ParentID != parentID {
		return nil, ErrDraftNotFound
	}
	if draft.State == models.DraftSubmitting {
		return nil, ErrSubmissionInFlight
	}

	draft.State = models.DraftSubmitting
	if err := s.Drafts.Save(ctx, draft); err != nil {
		return nil, err
	}

	created, err := s.Create(ctx, parentID, draft.Input)
	if err != nil {
		draft.State = models.DraftIdle
		if saveErr := s.Drafts.Save(ctx, draft); saveErr != nil {
			s.Logger.Warn("failed to reset draft after submit error",
				zap.String("draftId", draftID), zap.Error(saveErr))
		}
		return nil, err
	}

	if delErr := s.Drafts.Delete(ctx, draftID); delErr != nil {
		s.Logger.Warn("failed to clear submitted draft",
			zap.String("draftId", draftID), zap.Error(delErr))
	}
	return created, nil
}
