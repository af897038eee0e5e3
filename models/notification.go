package models

import "time"

// Notification categories.
const (
	CategoryBooking = "booking"
	CategoryMessage = "message"
	CategoryReview  = "review"
	CategoryGeneral = "general"
)

// Date buckets used by the notification feed.
const (
	BucketToday     = "Today"
	BucketYesterday = "Yesterday"
	BucketThisWeek  = "This Week"
	BucketEarlier   = "Earlier"
)

// Notification is a feed entry synthesized from booking, review and message
// events plus records pushed by the core API.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Category  string    `json:"category"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	RelatedID string    `json:"related_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationGroup is one date bucket of the feed, newest first.
type NotificationGroup struct {
	Bucket        string         `json:"bucket"`
	Notifications []Notification `json:"notifications"`
}

// NotificationFeed is the grouped view returned to the UI.
type NotificationFeed struct {
	Groups      []NotificationGroup `json:"groups"`
	UnreadCount int                 `json:"unread_count"`
}
