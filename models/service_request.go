package models

import "time"

// ServiceRequest statuses. These are distinct from booking statuses: a
// request is a pre-booking intent that may later be assigned to a caregiver
// and converted into a Booking.
const (
	RequestOpen     = "OPEN"
	RequestAssigned = "ASSIGNED"
	RequestClosed   = "CLOSED"
)

// ServiceRequest is a looser pre-booking intent posted by a parent.
type ServiceRequest struct {
	ID          string    `json:"id"`
	ParentID    string    `json:"parent_id"`
	Title       string    `json:"title"`
	Date        string    `json:"date"`       // "YYYY-MM-DD"
	StartTime   string    `json:"start_time"` // "HH:MM"
	EndTime     string    `json:"end_time"`   // "HH:MM"
	NumChildren int       `json:"num_children"`
	Location    string    `json:"location,omitempty"`
	Status      string    `json:"status"`
	BookingID   string    `json:"booking_id,omitempty"` // set once converted
	CreatedAt   time.Time `json:"created_at"`
}
