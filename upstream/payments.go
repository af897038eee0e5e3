package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type paymentClient struct {
	c *Client
}

// NewPaymentAPI returns the payment namespace of the facade.
func NewPaymentAPI(c *Client) PaymentAPI {
	return &paymentClient{c: c}
}

// CreateOrder asks the core API for a gateway order for the booking. The
// returned params are opaque; they feed the Razorpay script on the client.
func (p *paymentClient) CreateOrder(ctx context.Context, bookingID string) (map[string]any, error) {
	var order map[string]any
	path := "/api/bookings/" + url.PathEscape(bookingID) + "/payment-order"
	if err := p.c.do(ctx, http.MethodPost, path, nil, &order); err != nil {
		return nil, fmt.Errorf("create payment order: %w", err)
	}
	return order, nil
}

type verificationClient struct {
	c *Client
}

// NewVerificationAPI returns the identity-verification namespace of the facade.
func NewVerificationAPI(c *Client) VerificationAPI {
	return &verificationClient{c: c}
}

func (v *verificationClient) InitUpload(ctx context.Context, userID, documentType string) (map[string]any, error) {
	var resp map[string]any
	body := map[string]string{"document_type": documentType}
	path := "/api/users/" + url.PathEscape(userID) + "/verification/upload"
	if err := v.c.do(ctx, http.MethodPost, path, body, &resp); err != nil {
		return nil, fmt.Errorf("init verification upload: %w", err)
	}
	return resp, nil
}

func (v *verificationClient) Status(ctx context.Context, userID string) (*models.VerificationStatus, error) {
	var status models.VerificationStatus
	path := "/api/users/" + url.PathEscape(userID) + "/verification/status"
	if err := v.c.do(ctx, http.MethodGet, path, nil, &status); err != nil {
		return nil, fmt.Errorf("verification status: %w", err)
	}
	return &status, nil
}
