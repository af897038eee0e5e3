package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type requestClient struct {
	c *Client
}

// NewRequestAPI returns the service-request namespace of the facade.
func NewRequestAPI(c *Client) RequestAPI {
	return &requestClient{c: c}
}

func (r *requestClient) Create(ctx context.Context, req models.ServiceRequest) (*models.ServiceRequest, error) {
	var created models.ServiceRequest
	if err := r.c.do(ctx, http.MethodPost, "/api/requests", req, &created); err != nil {
		return nil, fmt.Errorf("create service request: %w", err)
	}
	return &created, nil
}

func (r *requestClient) ListForParent(ctx context.Context, parentID string) ([]models.ServiceRequest, error) {
	var list []models.ServiceRequest
	path := "/api/parents/" + url.PathEscape(parentID) + "/requests"
	if err := r.c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list service requests: %w", err)
	}
	return list, nil
}

func (r *requestClient) ListOpen(ctx context.Context) ([]models.ServiceRequest, error) {
	var list []models.ServiceRequest
	if err := r.c.do(ctx, http.MethodGet, "/api/requests?status=OPEN", nil, &list); err != nil {
		return nil, fmt.Errorf("list open service requests: %w", err)
	}
	return list, nil
}

func (r *requestClient) Close(ctx context.Context, requestID string) error {
	path := "/api/requests/" + url.PathEscape(requestID) + "/close"
	if err := r.c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("close service request %s: %w", requestID, err)
	}
	return nil
}
