package models

// Viewer roles. The core API exposes separate booking listings per role.
const (
	RoleParent = "parent"
	RoleNanny  = "nanny"
	RoleAdmin  = "admin"
)

// ProfileSnapshot is a cached view of a user fetched from the core API for
// enrichment. The core API owns the record; the gateway never writes it back.
type ProfileSnapshot struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Role       string  `json:"role"`
	AvatarURL  string  `json:"avatar_url,omitempty"`
	HourlyRate float64 `json:"hourly_rate,omitempty"` // caregivers only
	Verified   bool    `json:"verified,omitempty"`
	FCMToken   string  `json:"fcm_token,omitempty"`
}

// VerificationStatus mirrors the core API's identity verification state for a
// caregiver (document uploaded, under review, approved, rejected).
type VerificationStatus struct {
	UserID     string `json:"user_id"`
	Status     string `json:"status"`
	DocumentID string `json:"document_id,omitempty"`
	Reason     string `json:"reason,omitempty"`
}
