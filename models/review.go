package models

import "time"

// Review is a parent's rating of a completed session.
type Review struct {
	ID        string    `json:"id"`
	BookingID string    `json:"booking_id"`
	ParentID  string    `json:"parent_id"`
	NannyID   string    `json:"nanny_id"`
	Rating    int       `json:"rating"` // 1..5
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Favorite is a parent-to-caregiver bookmark. It has no lifecycle beyond the
// add/remove toggle.
type Favorite struct {
	ParentID  string    `json:"parent_id"`
	NannyID   string    `json:"nanny_id"`
	CreatedAt time.Time `json:"created_at"`
}
