package notification

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"carenest/models"
)

// stubNotificationAPI serves a fixed list and records mark calls.
type stubNotificationAPI struct {
	mu          sync.Mutex
	list        []models.Notification
	listErr     error
	markErr     error
	markedIDs   []string
	markedAll   int
	markedAllCh chan struct{}
}

func (s *stubNotificationAPI) List(ctx context.Context, userID string) ([]models.Notification, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]models.Notification, len(s.list))
	copy(out, s.list)
	return out, nil
}

func (s *stubNotificationAPI) MarkRead(ctx context.Context, userID, notificationID string) error {
	s.mu.Lock()
	s.markedIDs = append(s.markedIDs, notificationID)
	s.mu.Unlock()
	if s.markedAllCh != nil {
		s.markedAllCh <- struct{}{}
	}
	return s.markErr
}

func (s *stubNotificationAPI) MarkAllRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	s.markedAll++
	s.mu.Unlock()
	if s.markedAllCh != nil {
		s.markedAllCh <- struct{}{}
	}
	return s.markErr
}

func at(now time.Time, daysAgo int) time.Time {
	return now.AddDate(0, 0, -daysAgo)
}

func TestBucketFor(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{"same day", now.Add(-2 * time.Hour), models.BucketToday},
		{"midnight today", time.Date(2026, 9, 1, 0, 0, 1, 0, time.UTC), models.BucketToday},
		{"one day ago", at(now, 1), models.BucketYesterday},
		{"three days ago", at(now, 3), models.BucketThisWeek},
		{"six days ago", at(now, 6), models.BucketThisWeek},
		{"seven days ago", at(now, 7), models.BucketEarlier},
		{"a month ago", at(now, 30), models.BucketEarlier},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bucketFor(now, tt.ts); got != tt.want {
				t.Errorf("bucketFor(%v) = %s, want %s", tt.ts, got, tt.want)
			}
		})
	}
}

func TestGroupFeedOrderingAndFilter(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)
	list := []models.Notification{
		{ID: "1", Category: models.CategoryBooking, CreatedAt: now.Add(-1 * time.Hour)},
		{ID: "2", Category: models.CategoryMessage, CreatedAt: now.Add(-30 * time.Minute), IsRead: true},
		{ID: "3", Category: models.CategoryBooking, CreatedAt: at(now, 1)},
		{ID: "4", Category: models.CategoryReview, CreatedAt: at(now, 10)},
	}

	feed := groupFeed(list, "all", now)
	if feed.UnreadCount != 3 {
		t.Fatalf("unread = %d, want 3", feed.UnreadCount)
	}
	wantBuckets := []string{models.BucketToday, models.BucketYesterday, models.BucketEarlier}
	if len(feed.Groups) != len(wantBuckets) {
		t.Fatalf("groups = %d, want %d", len(feed.Groups), len(wantBuckets))
	}
	for i, bucket := range wantBuckets {
		if feed.Groups[i].Bucket != bucket {
			t.Errorf("group[%d] = %s, want %s", i, feed.Groups[i].Bucket, bucket)
		}
	}
	// Newest first inside Today.
	today := feed.Groups[0].Notifications
	if today[0].ID != "2" || today[1].ID != "1" {
		t.Fatalf("today order = [%s %s], want [2 1]", today[0].ID, today[1].ID)
	}

	// Category filter narrows the groups but not the unread count.
	booking := groupFeed(list, models.CategoryBooking, now)
	if booking.UnreadCount != 3 {
		t.Fatalf("filtered unread = %d, want 3", booking.UnreadCount)
	}
	total := 0
	for _, g := range booking.Groups {
		for _, n := range g.Notifications {
			if n.Category != models.CategoryBooking {
				t.Fatalf("filtered feed contains category %s", n.Category)
			}
			total++
		}
	}
	if total != 2 {
		t.Fatalf("filtered feed has %d entries, want 2", total)
	}
}

func TestMarkReadIsOptimistic(t *testing.T) {
	api := &stubNotificationAPI{
		list: []models.Notification{
			{ID: "1", CreatedAt: time.Now()},
			{ID: "2", CreatedAt: time.Now()},
		},
		markErr:     errors.New("core api down"),
		markedAllCh: make(chan struct{}, 2),
	}
	svc := NewDefaultNotificationService(api, zap.NewNop())

	if _, err := svc.Feed(context.Background(), "u1", "all"); err != nil {
		t.Fatalf("feed failed: %v", err)
	}

	if err := svc.MarkRead(context.Background(), "u1", "1"); err != nil {
		t.Fatalf("mark read failed: %v", err)
	}

	// The local flip is visible immediately even though the server call fails.
	for _, n := range svc.snapshot("u1") {
		if n.ID == "1" && !n.IsRead {
			t.Fatal("notification 1 must be read locally right away")
		}
		if n.ID == "2" && n.IsRead {
			t.Fatal("notification 2 must stay unread")
		}
	}

	// Wait for the background confirmation attempt before the test exits.
	select {
	case <-api.markedAllCh:
	case <-time.After(time.Second):
		t.Fatal("background confirmation never attempted")
	}
}

func TestMarkAllReadFlipsEverything(t *testing.T) {
	api := &stubNotificationAPI{
		list: []models.Notification{
			{ID: "1", CreatedAt: time.Now()},
			{ID: "2", CreatedAt: time.Now(), IsRead: true},
			{ID: "3", CreatedAt: time.Now()},
		},
		markErr:     errors.New("core api down"),
		markedAllCh: make(chan struct{}, 1),
	}
	svc := NewDefaultNotificationService(api, zap.NewNop())

	if _, err := svc.Feed(context.Background(), "u1", "all"); err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if err := svc.MarkAllRead(context.Background(), "u1"); err != nil {
		t.Fatalf("mark all read failed: %v", err)
	}

	for _, n := range svc.snapshot("u1") {
		if !n.IsRead {
			t.Fatalf("notification %s still unread after mark-all", n.ID)
		}
	}

	select {
	case <-api.markedAllCh:
	case <-time.After(time.Second):
		t.Fatal("background confirmation never attempted")
	}
	api.mu.Lock()
	defer api.mu.Unlock()
	if api.markedAll != 1 {
		t.Fatalf("mark-all confirmed %d times, want 1", api.markedAll)
	}
}

func TestFeedPropagatesListError(t *testing.T) {
	api := &stubNotificationAPI{listErr: errors.New("upstream down")}
	svc := NewDefaultNotificationService(api, zap.NewNop())

	if _, err := svc.Feed(context.Background(), "u1", "all"); err == nil {
		t.Fatal("expected feed to fail when the list fetch fails")
	}
}

func TestFeedEvictsIdleUsers(t *testing.T) {
	api := &stubNotificationAPI{
		list: []models.Notification{{ID: "1", CreatedAt: time.Now()}},
	}
	svc := NewDefaultNotificationService(api, zap.NewNop())
	svc.ttl = time.Millisecond

	if _, err := svc.Feed(context.Background(), "idle-user", "all"); err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if len(svc.snapshot("idle-user")) != 1 {
		t.Fatal("fresh entry must be retained")
	}

	time.Sleep(5 * time.Millisecond)

	// Any later fetch sweeps entries idle past the TTL.
	if _, err := svc.Feed(context.Background(), "active-user", "all"); err != nil {
		t.Fatalf("feed failed: %v", err)
	}
	if got := len(svc.snapshot("idle-user")); got != 0 {
		t.Fatalf("idle entry still holds %d notifications after TTL sweep", got)
	}
	if len(svc.snapshot("active-user")) != 1 {
		t.Fatal("active entry must survive the sweep")
	}
}
