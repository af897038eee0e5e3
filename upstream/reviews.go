package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type reviewClient struct {
	c *Client
}

// NewReviewAPI returns the review namespace of the facade.
func NewReviewAPI(c *Client) ReviewAPI {
	return &reviewClient{c: c}
}

func (r *reviewClient) Create(ctx context.Context, review models.Review) (*models.Review, error) {
	var created models.Review
	if err := r.c.do(ctx, http.MethodPost, "/api/reviews", review, &created); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}
	return &created, nil
}

func (r *reviewClient) ListForNanny(ctx context.Context, nannyID string) ([]models.Review, error) {
	var list []models.Review
	path := "/api/nannies/" + url.PathEscape(nannyID) + "/reviews"
	if err := r.c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return list, nil
}

func (r *reviewClient) Delete(ctx context.Context, reviewID string) error {
	path := "/api/reviews/" + url.PathEscape(reviewID)
	if err := r.c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return fmt.Errorf("delete review %s: %w", reviewID, err)
	}
	return nil
}
