package models

import "time"

// Booking statuses as reported by the core API.
const (
	StatusRequested  = "REQUESTED"
	StatusConfirmed  = "CONFIRMED"
	StatusInProgress = "IN_PROGRESS"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// transitions describes the allowed booking status flow. COMPLETED and
// CANCELLED are terminal; cancellation is a status, never a removal.
var transitions = map[string]map[string]struct{}{
	StatusRequested:  {StatusConfirmed: {}, StatusCancelled: {}},
	StatusConfirmed:  {StatusInProgress: {}, StatusCancelled: {}},
	StatusInProgress: {StatusCompleted: {}},
}

// CanTransition reports whether a booking may move from one status to another.
func CanTransition(from, to string) bool {
	next, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = next[to]
	return ok
}

// Booking represents a scheduled care session.
type Booking struct {
	ID          string           `json:"id"`
	ParentID    string           `json:"parent_id"`
	NannyID     string           `json:"nanny_id"`
	Status      string           `json:"status"`
	StartTime   time.Time        `json:"start_time"`
	EndTime     time.Time        `json:"end_time"`
	NumChildren int              `json:"num_children"`
	Notes       string           `json:"notes,omitempty"`
	TotalCost   string           `json:"total_cost,omitempty"` // formatted with 2 decimals
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Parent      *ProfileSnapshot `json:"parent,omitempty"` // denormalized, may be absent
	Nanny       *ProfileSnapshot `json:"nanny,omitempty"`  // denormalized, may be absent
}

// CounterpartID returns the other party's user id for the given viewer role.
func (b *Booking) CounterpartID(role string) string {
	if role == RoleNanny {
		return b.ParentID
	}
	return b.NannyID
}

// CounterpartProfile returns the other party's denormalized profile, if any.
func (b *Booking) CounterpartProfile(role string) *ProfileSnapshot {
	if role == RoleNanny {
		return b.Parent
	}
	return b.Nanny
}

// CreateBookingInput is the booking form payload submitted by a parent.
// Either DurationHours or EndTime must be set; when only a duration is given
// the end time is derived, rolling over midnight where needed.
type CreateBookingInput struct {
	NannyID       string  `json:"nanny_id"`
	Date          string  `json:"date"`       // "YYYY-MM-DD"
	StartTime     string  `json:"start_time"` // "HH:MM"
	DurationHours float64 `json:"duration_hours,omitempty"`
	EndTime       string  `json:"end_time,omitempty"` // "HH:MM", optional explicit end
	NumChildren   int     `json:"num_children"`
	Notes         string  `json:"notes,omitempty"`
}

// CreateBookingRequest is the payload forwarded to the core API. The
// idempotency key is generated gateway-side so a duplicate submission racing
// the in-flight latch cannot produce two server-side bookings.
type CreateBookingRequest struct {
	CreateBookingInput
	ParentID       string `json:"parent_id"`
	ComputedEnd    string `json:"computed_end"`             // "HH:MM"
	EndsNextDay    bool   `json:"ends_next_day,omitempty"`  // end rolled past midnight
	EstimatedCost  string `json:"estimated_cost,omitempty"` // 2 decimal places
	IdempotencyKey string `json:"idempotency_key"`
}

// BookingDraft holds the modal form state between opening and submission.
// It lives in Redis with a short TTL, mirroring the flow
// idle -> submitting -> {success, error -> idle}.
type BookingDraft struct {
	DraftID   string             `json:"draftId"`
	ParentID  string             `json:"parentId"`
	Input     CreateBookingInput `json:"input"`
	State     string             `json:"state"` // "idle" or "submitting"
	CreatedAt time.Time          `json:"createdAt"`
}

// Draft states.
const (
	DraftIdle       = "idle"
	DraftSubmitting = "submitting"
)
