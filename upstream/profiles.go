package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type profileClient struct {
	c *Client
}

// NewProfileAPI returns the profile namespace of the facade.
func NewProfileAPI(c *Client) ProfileAPI {
	return &profileClient{c: c}
}

func (p *profileClient) Get(ctx context.Context, userID string) (*models.ProfileSnapshot, error) {
	var profile models.ProfileSnapshot
	path := "/api/users/" + url.PathEscape(userID)
	if err := p.c.do(ctx, http.MethodGet, path, nil, &profile); err != nil {
		return nil, fmt.Errorf("get profile %s: %w", userID, err)
	}
	return &profile, nil
}
