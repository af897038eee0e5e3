package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"carenest/models"
)

// stubProfileAPI counts fetches per user id.
type stubProfileAPI struct {
	mu       sync.Mutex
	fetches  map[string]int
	profiles map[string]*models.ProfileSnapshot
	err      error
}

func newStubProfileAPI() *stubProfileAPI {
	return &stubProfileAPI{
		fetches:  make(map[string]int),
		profiles: make(map[string]*models.ProfileSnapshot),
	}
}

func (s *stubProfileAPI) Get(ctx context.Context, userID string) (*models.ProfileSnapshot, error) {
	s.mu.Lock()
	s.fetches[userID]++
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	if p, ok := s.profiles[userID]; ok {
		return p, nil
	}
	return &models.ProfileSnapshot{ID: userID, Name: "Caregiver " + userID, Role: models.RoleNanny}, nil
}

func (s *stubProfileAPI) fetchCount(userID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches[userID]
}

func TestEnrichDeduplicatesFetches(t *testing.T) {
	api := newStubProfileAPI()
	enricher := NewEnricher(api, nil, zap.NewNop())

	// Five bookings all missing the same counterpart.
	bookings := make([]*models.Booking, 5)
	for i := range bookings {
		bookings[i] = &models.Booking{ID: string(rune('a' + i)), ParentID: "p1", NannyID: "n1", Status: models.StatusConfirmed}
	}

	enricher.EnrichBookings(context.Background(), models.RoleParent, bookings)

	if got := api.fetchCount("n1"); got != 1 {
		t.Fatalf("profile n1 fetched %d times, want 1", got)
	}
	for _, b := range bookings {
		if b.Nanny == nil || b.Nanny.Name == "" {
			t.Fatalf("booking %s not enriched", b.ID)
		}
	}
}

func TestEnrichSkipsPopulatedProfiles(t *testing.T) {
	api := newStubProfileAPI()
	enricher := NewEnricher(api, nil, zap.NewNop())

	bookings := []*models.Booking{
		{ID: "a", ParentID: "p1", NannyID: "n1", Nanny: &models.ProfileSnapshot{ID: "n1", Name: "Already Here"}},
		{ID: "b", ParentID: "p1", NannyID: "n2"},
	}

	enricher.EnrichBookings(context.Background(), models.RoleParent, bookings)

	if got := api.fetchCount("n1"); got != 0 {
		t.Fatalf("populated profile fetched %d times, want 0", got)
	}
	if got := api.fetchCount("n2"); got != 1 {
		t.Fatalf("missing profile fetched %d times, want 1", got)
	}
}

func TestEnrichRoleSelectsCounterpart(t *testing.T) {
	api := newStubProfileAPI()
	api.profiles["p1"] = &models.ProfileSnapshot{ID: "p1", Name: "Parent One", Role: models.RoleParent}
	enricher := NewEnricher(api, nil, zap.NewNop())

	b := &models.Booking{ID: "a", ParentID: "p1", NannyID: "n1"}
	enricher.EnrichBookings(context.Background(), models.RoleNanny, []*models.Booking{b})

	if got := api.fetchCount("p1"); got != 1 {
		t.Fatalf("parent profile fetched %d times, want 1", got)
	}
	if b.Parent == nil || b.Parent.Name != "Parent One" {
		t.Fatal("nanny view must enrich the parent side of the booking")
	}
	if b.Nanny != nil {
		t.Fatal("nanny view must not touch the nanny side")
	}
}

func TestEnrichToleratesFetchFailure(t *testing.T) {
	api := newStubProfileAPI()
	api.err = errors.New("upstream down")
	enricher := NewEnricher(api, nil, zap.NewNop())

	b := &models.Booking{ID: "a", ParentID: "p1", NannyID: "n1"}
	enricher.EnrichBookings(context.Background(), models.RoleParent, []*models.Booking{b})

	if b.Nanny != nil {
		t.Fatal("failed lookup must leave the profile unset")
	}
}
