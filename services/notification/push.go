package notification

import (
	"context"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"

	"carenest/models"
	"carenest/utils"
)

// HubSender pushes a payload to a connected UI client. Implemented by the
// realtime hub; reports false when the user holds no open connection.
type HubSender interface {
	SendToUser(userID string, payload any) bool
}

// ProfileSource resolves a user's profile snapshot, cache first. Implemented
// by the booking enricher, so a device token cached during dashboard
// enrichment serves FCM delivery without another core API round-trip.
type ProfileSource interface {
	Profile(ctx context.Context, userID string) (*models.ProfileSnapshot, error)
}

// Notifier delivers a notification to a user: over the websocket hub when the
// user is connected, otherwise via FCM when a device token is known.
type Notifier struct {
	Hub      HubSender
	Profiles ProfileSource
	Logger   *zap.Logger
}

// Notify pushes one notification. Delivery is best effort on both channels.
func (n *Notifier) Notify(ctx context.Context, userID string, notif models.Notification) {
	if n.Hub != nil && n.Hub.SendToUser(userID, map[string]any{
		"type":         "notification",
		"notification": notif,
	}) {
		return
	}

	if n.Profiles == nil {
		return
	}
	profile, err := n.Profiles.Profile(ctx, userID)
	if err != nil {
		n.Logger.Warn("push skipped, profile lookup failed",
			zap.String("userId", userID), zap.Error(err))
		return
	}
	if profile.FCMToken == "" {
		return
	}
	if utils.FCMClient == nil {
		n.Logger.Debug("push skipped, fcm disabled", zap.String("userId", userID))
		return
	}

	msg := &messaging.Message{
		Token: profile.FCMToken,
		Notification: &messaging.Notification{
			Title: notif.Title,
			Body:  notif.Message,
		},
		Data: map[string]string{
			"category":  notif.Category,
			"relatedId": notif.RelatedID,
		},
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		n.Logger.Warn("fcm push failed", zap.String("userId", userID), zap.Error(err))
	}
}
