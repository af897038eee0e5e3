package notification

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"carenest/models"
	"carenest/upstream"
)

// bucketFor places a timestamp into a relative date bucket by calendar-day
// difference from now. The buckets are computed at call time; they do not
// track wall-clock changes afterwards.
func bucketFor(now, ts time.Time) string {
	nowDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tsDay := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, now.Location())
	days := int(nowDay.Sub(tsDay).Hours() / 24)

	switch {
	case days <= 0:
		return models.BucketToday
	case days == 1:
		return models.BucketYesterday
	case days < 7:
		return models.BucketThisWeek
	default:
		return models.BucketEarlier
	}
}

// groupFeed filters by category and groups into date buckets, newest first
// within each bucket. Empty buckets are omitted. The unread count covers the
// whole list regardless of the active filter.
func groupFeed(list []models.Notification, category string, now time.Time) *models.NotificationFeed {
	unread := 0
	for i := range list {
		if !list[i].IsRead {
			unread++
		}
	}

	filtered := make([]models.Notification, 0, len(list))
	for i := range list {
		if category == "" || category == "all" || list[i].Category == category {
			filtered = append(filtered, list[i])
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	byBucket := make(map[string][]models.Notification)
	for i := range filtered {
		bucket := bucketFor(now, filtered[i].CreatedAt)
		byBucket[bucket] = append(byBucket[bucket], filtered[i])
	}

	feed := &models.NotificationFeed{Groups: []models.NotificationGroup{}, UnreadCount: unread}
	for _, bucket := range []string{models.BucketToday, models.BucketYesterday, models.BucketThisWeek, models.BucketEarlier} {
		if entries, ok := byBucket[bucket]; ok {
			feed.Groups = append(feed.Groups, models.NotificationGroup{Bucket: bucket, Notifications: entries})
		}
	}
	return feed
}

// Feed refreshes the user's list from the core API and returns the grouped
// view, optionally filtered by category.
func (s *DefaultNotificationService) Feed(ctx context.Context, userID, category string) (*models.NotificationFeed, error) {
	list, err := s.API.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	now := time.Now()
	s.mu.Lock()
	s.evictStale(now)
	s.lists[userID] = feedEntry{list: list, touched: now}
	s.mu.Unlock()

	return groupFeed(list, category, now), nil
}

// evictStale drops view state for users idle past the TTL. Caller holds the
// write lock.
func (s *DefaultNotificationService) evictStale(now time.Time) {
	for userID, entry := range s.lists {
		if now.Sub(entry.touched) > s.ttl {
			delete(s.lists, userID)
		}
	}
}

// snapshot returns a copy of the cached list for a user; a test seam for the
// optimistic read-state updates.
func (s *DefaultNotificationService) snapshot(userID string) []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry := s.lists[userID]
	out := make([]models.Notification, len(entry.list))
	copy(out, entry.list)
	return out
}

// MarkRead flips the cached entry immediately and confirms with the core API
// in the background. A failed confirmation is logged, not rolled back.
func (s *DefaultNotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	s.mu.Lock()
	entry := s.lists[userID]
	for i := range entry.list {
		if entry.list[i].ID == notificationID {
			entry.list[i].IsRead = true
			break
		}
	}
	entry.touched = time.Now()
	s.lists[userID] = entry
	s.mu.Unlock()

	// Fire-and-forget: detach from the request context but keep the token.
	bg := upstream.WithAuthToken(context.Background(), upstream.AuthTokenFromContext(ctx))
	go func() {
		if err := s.API.MarkRead(bg, userID, notificationID); err != nil {
			s.Logger.Warn("mark-as-read not confirmed by core api",
				zap.String("userId", userID),
				zap.String("notificationId", notificationID),
				zap.Error(err))
		}
	}()
	return nil
}

// MarkAllRead flips every cached entry immediately and confirms with the
// core API in the background, regardless of server response timing.
func (s *DefaultNotificationService) MarkAllRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	entry := s.lists[userID]
	for i := range entry.list {
		entry.list[i].IsRead = true
	}
	entry.touched = time.Now()
	s.lists[userID] = entry
	s.mu.Unlock()

	bg := upstream.WithAuthToken(context.Background(), upstream.AuthTokenFromContext(ctx))
	go func() {
		if err := s.API.MarkAllRead(bg, userID); err != nil {
			s.Logger.Warn("mark-all-as-read not confirmed by core api",
				zap.String("userId", userID), zap.Error(err))
		}
	}()
	return nil
}
