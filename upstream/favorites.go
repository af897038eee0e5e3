package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type favoriteClient struct {
	c *Client
}

// NewFavoriteAPI returns the favorites namespace of the facade.
func NewFavoriteAPI(c *Client) FavoriteAPI {
	return &favoriteClient{c: c}
}

func (f *favoriteClient) favoritePath(parentID, nannyID string) string {
	return "/api/parents/" + url.PathEscape(parentID) + "/favorites/" + url.PathEscape(nannyID)
}

func (f *favoriteClient) Add(ctx context.Context, parentID, nannyID string) error {
	if err := f.c.do(ctx, http.MethodPut, f.favoritePath(parentID, nannyID), nil, nil); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}
	return nil
}

func (f *favoriteClient) Remove(ctx context.Context, parentID, nannyID string) error {
	if err := f.c.do(ctx, http.MethodDelete, f.favoritePath(parentID, nannyID), nil, nil); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (f *favoriteClient) Check(ctx context.Context, parentID, nannyID string) (bool, error) {
	var resp struct {
		Favorited bool `json:"favorited"`
	}
	if err := f.c.do(ctx, http.MethodGet, f.favoritePath(parentID, nannyID), nil, &resp); err != nil {
		return false, fmt.Errorf("check favorite: %w", err)
	}
	return resp.Favorited, nil
}

func (f *favoriteClient) List(ctx context.Context, parentID string) ([]models.Favorite, error) {
	var list []models.Favorite
	path := "/api/parents/" + url.PathEscape(parentID) + "/favorites"
	if err := f.c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return list, nil
}
