package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"carenest/middleware"
	"carenest/models"
	"carenest/services/booking"
)

// BookingHandler serves the booking form flow, listings and transitions.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

// NewBookingHandler wires the booking endpoints.
func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// OpenDraft starts a booking form session.
func (h *BookingHandler) OpenDraft(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Service.OpenDraft(c.Request.Context(), c.GetString(middleware.CtxUserID), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// UpdateDraft replaces the form contents of an existing draft.
func (h *BookingHandler) UpdateDraft(c *gin.Context) {
	var input models.CreateBookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Service.UpdateDraft(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("draftID"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SubmitBooking creates a booking, either from a draft or directly from the
// posted form.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	var body struct {
		DraftID string                     `json:"draft_id"`
		Input   *models.CreateBookingInput `json:"input"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	parentID := c.GetString(middleware.CtxUserID)
	var (
		created *models.Booking
		err     error
	)
	switch {
	case body.DraftID != "":
		created, err = h.Service.SubmitDraft(c.Request.Context(), parentID, body.DraftID)
	case body.Input != nil:
		created, err = h.Service.Create(c.Request.Context(), parentID, *body.Input)
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "either draft_id or input is required"})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"booking": created})
}

// ListBookings returns the caller's bookings, role-aware.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Service.List(c.Request.Context(), c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Dashboard returns the resolved active/upcoming/history view.
func (h *BookingHandler) Dashboard(c *gin.Context) {
	view, err := h.Service.Dashboard(c.Request.Context(), c.GetString(middleware.CtxUserID), c.GetString(middleware.CtxRole))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// TransitionBooking proxies a status action (confirm/start/complete/cancel).
func (h *BookingHandler) TransitionBooking(c *gin.Context) {
	updated, err := h.Service.Transition(c.Request.Context(), c.Param("id"), c.Param("action"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}
