package upstream

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"carenest/models"
)

type notificationClient struct {
	c *Client
}

// NewNotificationAPI returns the notification namespace of the facade.
func NewNotificationAPI(c *Client) NotificationAPI {
	return &notificationClient{c: c}
}

func (n *notificationClient) List(ctx context.Context, userID string) ([]models.Notification, error) {
	var list []models.Notification
	path := "/api/users/" + url.PathEscape(userID) + "/notifications"
	if err := n.c.do(ctx, http.MethodGet, path, nil, &list); err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	return list, nil
}

func (n *notificationClient) MarkRead(ctx context.Context, userID, notificationID string) error {
	path := "/api/users/" + url.PathEscape(userID) + "/notifications/" + url.PathEscape(notificationID) + "/read"
	if err := n.c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("mark notification %s read: %w", notificationID, err)
	}
	return nil
}

func (n *notificationClient) MarkAllRead(ctx context.Context, userID string) error {
	path := "/api/users/" + url.PathEscape(userID) + "/notifications/read-all"
	if err := n.c.do(ctx, http.MethodPost, path, nil, nil); err != nil {
		return fmt.Errorf("mark all notifications read: %w", err)
	}
	return nil
}
