package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type adminClient struct {
	c *Client
}

// NewAdminAPI returns the moderation namespace of the facade.
func NewAdminAPI(c *Client) AdminAPI {
	return &adminClient{c: c}
}

func (a *adminClient) ListUsers(ctx context.Context) ([]models.ProfileSnapshot, error) {
	var list []models.ProfileSnapshot
	if err := a.c.do(ctx, http.MethodGet, "/api/admin/users", nil, &list); err != nil {
		return nil, fmt.Errorf("admin list users: %w", err)
	}
	return list, nil
}

func (a *adminClient) ListCaregivers(ctx context.Context) ([]models.ProfileSnapshot, error) {
	var list []models.ProfileSnapshot
	if err := a.c.do(ctx, http.MethodGet, "/api/admin/caregivers", nil, &list); err != nil {
		return nil, fmt.Errorf("admin list caregivers: %w", err)
	}
	return list, nil
}

func (a *adminClient) Suspend(ctx context.Context, userID string) error {
	path := "/api/admin/users/" + url.PathEscape(userID) + "/suspend"
	if err := a.c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("admin suspend user %s: %w", userID, err)
	}
	return nil
}

func (a *adminClient) VerifyCaregiver(ctx context.Context, nannyID string) error {
	path := "/api/admin/caregivers/" + url.PathEscape(nannyID) + "/verify"
	if err := a.c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("admin verify caregiver %s: %w", nannyID, err)
	}
	return nil
}
