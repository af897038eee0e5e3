package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/models"
	"carenest/upstream"
)

// RequestHandler proxies pre-booking service requests to the core API.
type RequestHandler struct {
	API upstream.RequestAPI
}

// NewRequestHandler wires the service-request endpoints.
func NewRequestHandler(api upstream.RequestAPI) *RequestHandler {
	return &RequestHandler{API: api}
}

// CreateRequest posts a new pre-booking intent.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req models.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.Title == "" || req.Date == "" || req.StartTime == "" || req.EndTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title, date, start_time and end_time are required"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be in YYYY-MM-DD format"})
		return
	}
	if req.NumChildren < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "at least one child is required"})
		return
	}
	req.ParentID = c.GetString(middleware.CtxUserID)
	req.Status = models.RequestOpen

	created, err := h.API.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"request": created})
}

// ListMyRequests returns the caller's requests.
func (h *RequestHandler) ListMyRequests(c *gin.Context) {
	requests, err := h.API.ListForParent(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// ListOpenRequests returns open requests for caregivers to browse.
func (h *RequestHandler) ListOpenRequests(c *gin.Context) {
	requests, err := h.API.ListOpen(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

// CloseRequest withdraws a request.
func (h *RequestHandler) CloseRequest(c *gin.Context) {
	if err := h.API.Close(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
