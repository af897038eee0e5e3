package booking

import (
	"context"
	"sync"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"carenest/models"
	"carenest/upstream"
)

// BookingService drives the booking lifecycle: draft sessions, creation,
// the dashboard resolver, and status transitions.
type BookingService interface {
	OpenDraft(ctx context.Context, parentID string, input models.CreateBookingInput) (*models.BookingDraft, error)
	UpdateDraft(ctx context.Context, parentID, draftID string, input models.CreateBookingInput) (*models.BookingDraft, error)
	Create(ctx context.Context, parentID string, input models.CreateBookingInput) (*models.Booking, error)
	SubmitDraft(ctx context.Context, parentID, draftID string) (*models.Booking, error)
	List(ctx context.Context, userID, role string) ([]models.Booking, error)
	Dashboard(ctx context.Context, userID, role string) (*models.DashboardView, error)
	Transition(ctx context.Context, bookingID, action string) (*models.Booking, error)
}

// ReminderScheduler queues a session reminder once a booking is confirmed.
// Nil-safe from the caller's side: DefaultBookingService skips scheduling
// when none is wired.
type ReminderScheduler interface {
	Schedule(ctx context.Context, booking *models.Booking) error
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Bookings  upstream.BookingAPI
	Enricher  *Enricher
	Drafts    DraftStore
	Reminders ReminderScheduler
	Logger    *zap.Logger

	// inFlight latches one create per parent; a second submission while the
	// first is pending is a no-op.
	mu       sync.Mutex
	inFlight map[string]struct{}
}

// NewDefaultBookingService wires the booking service.
func NewDefaultBookingService(bookings upstream.BookingAPI, enricher *Enricher, drafts DraftStore, reminders ReminderScheduler, logger *zap.Logger) *DefaultBookingService {
	return &DefaultBookingService{
		Bookings:  bookings,
		Enricher:  enricher,
		Drafts:    drafts,
		Reminders: reminders,
		Logger:    logger,
		inFlight:  make(map[string]struct{}),
	}
}

// DraftStore holds booking drafts between opening the form and submission.
type DraftStore interface {
	Save(ctx context.Context, draft *models.BookingDraft) error
	Get(ctx context.Context, draftID string) (*models.BookingDraft, error)
	Delete(ctx context.Context, draftID string) error
}

// NewRedisDraftStore returns the Redis-backed draft store used in production.
func NewRedisDraftStore(client *redis.Client) DraftStore {
	return &redisDraftStore{client: client}
}
