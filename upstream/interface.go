package upstream

import (
	"context"

	"carenest/models"
)

// BookingAPI covers booking CRUD and status transitions.
type BookingAPI interface {
	Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error)
	Get(ctx context.Context, bookingID string) (*models.Booking, error)
	ListForParent(ctx context.Context, parentID string) ([]models.Booking, error)
	ListForNanny(ctx context.Context, nannyID string) ([]models.Booking, error)
	Transition(ctx context.Context, bookingID, action string) (*models.Booking, error)
}

// ProfileAPI fetches user snapshots for enrichment.
type ProfileAPI interface {
	Get(ctx context.Context, userID string) (*models.ProfileSnapshot, error)
}

// NotificationAPI covers the unified notification feed.
type NotificationAPI interface {
	List(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
	MarkAllRead(ctx context.Context, userID string) error
}

// ReviewAPI covers review CRUD.
type ReviewAPI interface {
	Create(ctx context.Context, review models.Review) (*models.Review, error)
	ListForNanny(ctx context.Context, nannyID string) ([]models.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

// FavoriteAPI covers the favorites toggle.
type FavoriteAPI interface {
	Add(ctx context.Context, parentID, nannyID string) error
	Remove(ctx context.Context, parentID, nannyID string) error
	Check(ctx context.Context, parentID, nannyID string) (bool, error)
	List(ctx context.Context, parentID string) ([]models.Favorite, error)
}

// RequestAPI covers pre-booking service requests.
type RequestAPI interface {
	Create(ctx context.Context, req models.ServiceRequest) (*models.ServiceRequest, error)
	ListForParent(ctx context.Context, parentID string) ([]models.ServiceRequest, error)
	ListOpen(ctx context.Context) ([]models.ServiceRequest, error)
	Close(ctx context.Context, requestID string) error
}

// AdminAPI covers moderation actions.
type AdminAPI interface {
	ListUsers(ctx context.Context) ([]models.ProfileSnapshot, error)
	ListCaregivers(ctx context.Context) ([]models.ProfileSnapshot, error)
	Suspend(ctx context.Context, userID string) error
	VerifyCaregiver(ctx context.Context, nannyID string) error
}

// PaymentAPI creates gateway orders. The order params are opaque to us; they
// are handed straight to the Razorpay script on the client.
type PaymentAPI interface {
	CreateOrder(ctx context.Context, bookingID string) (map[string]any, error)
}

// VerificationAPI covers caregiver identity verification.
type VerificationAPI interface {
	InitUpload(ctx context.Context, userID, documentType string) (map[string]any, error)
	Status(ctx context.Context, userID string) (*models.VerificationStatus, error)
}
