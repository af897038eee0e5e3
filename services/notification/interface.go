package notification

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"carenest/models"
	"carenest/upstream"
)

// NotificationService aggregates the unified notification feed and applies
// optimistic read-state updates.
type NotificationService interface {
	Feed(ctx context.Context, userID, category string) (*models.NotificationFeed, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// DefaultNotificationService is the production implementation. The per-user
// lists it holds are ephemeral view state refreshed from the core API on
// every Feed call; the core API stays authoritative. Entries untouched for
// feedStateTTL are evicted so the map does not grow with every user seen.
type DefaultNotificationService struct {
	API    upstream.NotificationAPI
	Logger *zap.Logger

	mu    sync.RWMutex
	lists map[string]feedEntry
	ttl   time.Duration
}

// feedEntry is one user's cached list plus its last touch time.
type feedEntry struct {
	list    []models.Notification
	touched time.Time
}

// feedStateTTL bounds how long an idle user's view state is retained.
const feedStateTTL = 30 * time.Minute

// NewDefaultNotificationService wires the notification service.
func NewDefaultNotificationService(api upstream.NotificationAPI, logger *zap.Logger) *DefaultNotificationService {
	return &DefaultNotificationService{
		API:    api,
		Logger: logger,
		lists:  make(map[string]feedEntry),
		ttl:    feedStateTTL,
	}
}
