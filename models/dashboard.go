package models

// DashboardView is the resolved booking snapshot for one user: the single
// in-progress session (if any), upcoming sessions ascending by start, and
// finished sessions descending by start.
type DashboardView struct {
	Active   *Booking  `json:"active,omitempty"`
	Upcoming []Booking `json:"upcoming"`
	History  []Booking `json:"history"`
}
