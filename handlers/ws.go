package handlers

import (
	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/realtime"
)

// WSHandler upgrades authenticated UI clients onto the push hub.
type WSHandler struct {
	Hub *realtime.Hub
}

// NewWSHandler wires the UI websocket endpoint.
func NewWSHandler(hub *realtime.Hub) *WSHandler {
	return &WSHandler{Hub: hub}
}

// Connect registers the caller's websocket connection.
func (h *WSHandler) Connect(c *gin.Context) {
	h.Hub.ServeWS(
		c.Writer,
		c.Request,
		c.GetString(middleware.CtxUserID),
		c.GetString(middleware.CtxRole),
		c.GetString(middleware.CtxToken),
	)
}
