package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/services/notification"
)

// NotificationHandler serves the aggregated feed and read-state updates.
type NotificationHandler struct {
	Service notification.NotificationService
}

// NewNotificationHandler wires the notification endpoints.
func NewNotificationHandler(service notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Service: service}
}

// Feed returns the grouped notification feed, optionally filtered by the
// category query parameter (all|booking|message|review|general).
func (h *NotificationHandler) Feed(c *gin.Context) {
	feed, err := h.Service.Feed(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Query("category"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, feed)
}

// MarkRead optimistically flips one notification.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Service.MarkRead(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MarkAllRead optimistically flips every notification.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.Service.MarkAllRead(c.Request.Context(), c.GetString(middleware.CtxUserID)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
