package refresh

import (
	"context"
	"time"

	"go.uber.org/zap"

	"carenest/models"
	"carenest/realtime"
	"carenest/upstream"
)

// DashboardSource re-runs the booking fetch-and-resolve pipeline.
type DashboardSource interface {
	Dashboard(ctx context.Context, userID, role string) (*models.DashboardView, error)
}

// FeedSource re-fetches the grouped notification feed.
type FeedSource interface {
	Feed(ctx context.Context, userID, category string) (*models.NotificationFeed, error)
}

// Subscribers is the hub view the reconciler needs.
type Subscribers interface {
	Connected() []realtime.Subscriber
	SendToUser(userID string, payload any) bool
}

// Reconciler turns a change signal into a wholesale re-fetch. It never
// patches state incrementally: the core API's snapshot replaces whatever the
// UI was holding, so a racing manual refresh simply loses to the later write.
type Reconciler struct {
	Bookings DashboardSource
	Feed     FeedSource
	Hub      Subscribers
	Logger   *zap.Logger
	Timeout  time.Duration
}

// Refresh re-runs the pipeline for every connected user and pushes the fresh
// snapshot. Booking and request events refresh the dashboard; everything
// else refreshes the notification feed.
func (r *Reconciler) Refresh(category string) {
	timeout := r.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	for _, sub := range r.Hub.Connected() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		ctx = upstream.WithAuthToken(ctx, sub.Token)

		switch category {
		case "booking", "request":
			view, err := r.Bookings.Dashboard(ctx, sub.UserID, sub.Role)
			if err != nil {
				r.Logger.Warn("dashboard refresh failed",
					zap.String("userId", sub.UserID), zap.Error(err))
				cancel()
				continue
			}
			r.Hub.SendToUser(sub.UserID, map[string]any{
				"type":      "refresh",
				"category":  category,
				"dashboard": view,
			})
		default:
			feed, err := r.Feed.Feed(ctx, sub.UserID, "")
			if err != nil {
				r.Logger.Warn("notification refresh failed",
					zap.String("userId", sub.UserID), zap.Error(err))
				cancel()
				continue
			}
			r.Hub.SendToUser(sub.UserID, map[string]any{
				"type":     "refresh",
				"category": category,
				"feed":     feed,
			})
		}
		cancel()
	}
}
