package refresh

import (
	"context"
	"errors"
	"sync"
	"testing"

	"go.uber.org/zap"

	"carenest/models"
	"carenest/realtime"
	"carenest/upstream"
)

type stubDashboardSource struct {
	mu     sync.Mutex
	calls  int
	tokens []string
	err    error
}

func (s *stubDashboardSource) Dashboard(ctx context.Context, userID, role string) (*models.DashboardView, error) {
	s.mu.Lock()
	s.calls++
	s.tokens = append(s.tokens, upstream.AuthTokenFromContext(ctx))
	s.mu.Unlock()
	if s.err != nil {
		return nil, s.err
	}
	return &models.DashboardView{Upcoming: []models.Booking{}, History: []models.Booking{}}, nil
}

type stubFeedSource struct {
	mu    sync.Mutex
	calls int
}

func (s *stubFeedSource) Feed(ctx context.Context, userID, category string) (*models.NotificationFeed, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	return &models.NotificationFeed{Groups: []models.NotificationGroup{}}, nil
}

type stubHub struct {
	mu   sync.Mutex
	subs []realtime.Subscriber
	sent map[string][]any
}

func newStubHub(subs ...realtime.Subscriber) *stubHub {
	return &stubHub{subs: subs, sent: make(map[string][]any)}
}

func (h *stubHub) Connected() []realtime.Subscriber { return h.subs }

func (h *stubHub) SendToUser(userID string, payload any) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sent[userID] = append(h.sent[userID], payload)
	return true
}

func TestRefreshBookingPushesDashboards(t *testing.T) {
	dash := &stubDashboardSource{}
	feed := &stubFeedSource{}
	hub := newStubHub(
		realtime.Subscriber{UserID: "u1", Role: models.RoleParent, Token: "t1"},
		realtime.Subscriber{UserID: "u2", Role: models.RoleNanny, Token: "t2"},
	)
	r := &Reconciler{Bookings: dash, Feed: feed, Hub: hub, Logger: zap.NewNop()}

	r.Refresh("booking")

	if dash.calls != 2 {
		t.Fatalf("dashboard re-fetched %d times, want 2", dash.calls)
	}
	if feed.calls != 0 {
		t.Fatalf("feed re-fetched %d times for a booking event, want 0", feed.calls)
	}
	if len(hub.sent["u1"]) != 1 || len(hub.sent["u2"]) != 1 {
		t.Fatal("each connected user must receive one push")
	}
	// Each re-fetch carries that user's own token upstream.
	want := map[string]bool{"t1": true, "t2": true}
	for _, tok := range dash.tokens {
		if !want[tok] {
			t.Fatalf("unexpected auth token %q on refresh", tok)
		}
	}
}

func TestRefreshOtherCategoriesPushFeed(t *testing.T) {
	dash := &stubDashboardSource{}
	feed := &stubFeedSource{}
	hub := newStubHub(realtime.Subscriber{UserID: "u1", Role: models.RoleParent, Token: "t1"})
	r := &Reconciler{Bookings: dash, Feed: feed, Hub: hub, Logger: zap.NewNop()}

	r.Refresh("message")

	if dash.calls != 0 {
		t.Fatalf("dashboard re-fetched %d times for a message event, want 0", dash.calls)
	}
	if feed.calls != 1 {
		t.Fatalf("feed re-fetched %d times, want 1", feed.calls)
	}
}

func TestRefreshSkipsFailedUsers(t *testing.T) {
	dash := &stubDashboardSource{err: errors.New("upstream down")}
	hub := newStubHub(realtime.Subscriber{UserID: "u1", Role: models.RoleParent, Token: "t1"})
	r := &Reconciler{Bookings: dash, Feed: &stubFeedSource{}, Hub: hub, Logger: zap.NewNop()}

	r.Refresh("booking")

	if len(hub.sent["u1"]) != 0 {
		t.Fatal("no push must be sent when the re-fetch fails")
	}
}
