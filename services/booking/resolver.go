package booking

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"carenest/models"
)

// Resolve classifies a user's bookings into the dashboard view. The active
// session is the first IN_PROGRESS booking in input order; upcoming bookings
// are CONFIRMED or REQUESTED excluding the active one, ascending by start;
// history is COMPLETED and CANCELLED, descending by start.
func Resolve(bookings []models.Booking) *models.DashboardView {
	view := &models.DashboardView{
		Upcoming: []models.Booking{},
		History:  []models.Booking{},
	}

	for i := range bookings {
		b := bookings[i]
		switch b.Status {
		case models.StatusInProgress:
			if view.Active == nil {
				active := b
				view.Active = &active
			}
		case models.StatusConfirmed, models.StatusRequested:
			view.Upcoming = append(view.Upcoming, b)
		case models.StatusCompleted, models.StatusCancelled:
			view.History = append(view.History, b)
		}
	}

	sort.SliceStable(view.Upcoming, func(i, j int) bool {
		return view.Upcoming[i].StartTime.Before(view.Upcoming[j].StartTime)
	})
	sort.SliceStable(view.History, func(i, j int) bool {
		return view.History[i].StartTime.After(view.History[j].StartTime)
	})

	return view
}

// countInProgress reports how many bookings claim to be in progress.
func countInProgress(bookings []models.Booking) int {
	n := 0
	for i := range bookings {
		if bookings[i].Status == models.StatusInProgress {
			n++
		}
	}
	return n
}

// List fetches the user's bookings from the role-specific endpoint.
func (s *DefaultBookingService) List(ctx context.Context, userID, role string) ([]models.Booking, error) {
	var (
		bookings []models.Booking
		err      error
	)
	if role == models.RoleNanny {
		bookings, err = s.Bookings.ListForNanny(ctx, userID)
	} else {
		bookings, err = s.Bookings.ListForParent(ctx, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// Dashboard runs the full fetch-and-resolve pipeline for one user: fetch per
// role, classify, then enrich counterpart profiles lazily.
func (s *DefaultBookingService) Dashboard(ctx context.Context, userID, role string) (*models.DashboardView, error) {
	bookings, err := s.List(ctx, userID, role)
	if err != nil {
		return nil, err
	}

	if n := countInProgress(bookings); n > 1 {
		// The core API should never report two simultaneous sessions; the
		// first one in document order wins.
		s.Logger.Warn("multiple in-progress bookings reported for user",
			zap.String("userId", userID), zap.Int("count", n))
	}

	view := Resolve(bookings)

	if s.Enricher != nil {
		s.Enricher.EnrichView(ctx, role, view)
	}
	return view, nil
}
