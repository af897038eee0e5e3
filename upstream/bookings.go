package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

// bookingClient is the HTTP implementation of BookingAPI.
type bookingClient struct {
	c *Client
}

// NewBookingAPI returns the booking namespace of the facade.
func NewBookingAPI(c *Client) BookingAPI {
	return &bookingClient{c: c}
}

func (b *bookingClient) Create(ctx context.Context, req models.CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := b.c.do(ctx, http.MethodPost, "/api/bookings", req, &booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return &booking, nil
}

func (b *bookingClient) Get(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	path := "/api/bookings/" + url.PathEscape(bookingID)
	if err := b.c.do(ctx, http.MethodGet, path, nil, &booking); err != nil {
		return nil, fmt.Errorf("get booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

func (b *bookingClient) ListForParent(ctx context.Context, parentID string) ([]models.Booking, error) {
	var bookings []models.Booking
	path := "/api/parents/" + url.PathEscape(parentID) + "/bookings"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, fmt.Errorf("list parent bookings: %w", err)
	}
	return bookings, nil
}

func (b *bookingClient) ListForNanny(ctx context.Context, nannyID string) ([]models.Booking, error) {
	var bookings []models.Booking
	path := "/api/nannies/" + url.PathEscape(nannyID) + "/bookings"
	if err := b.c.do(ctx, http.MethodGet, path, nil, &bookings); err != nil {
		return nil, fmt.Errorf("list nanny bookings: %w", err)
	}
	return bookings, nil
}

// Transition invokes a status action ("start", "complete" or "cancel") and
// returns the updated booking.
func (b *bookingClient) Transition(ctx context.Context, bookingID, action string) (*models.Booking, error) {
	var booking models.Booking
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/" + url.PathEscape(action)
	if err := b.c.do(ctx, http.MethodPost, path, nil, &booking); err != nil {
		return nil, fmt.Errorf("transition booking %s (%s): %w", bookingID, action, err)
	}
	return &booking, nil
}
