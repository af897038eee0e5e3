package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/upstream"
)

// PaymentHandler proxies gateway order creation to the core API. The order
// params stay opaque; the client hands them to the Razorpay script.
type PaymentHandler struct {
	API upstream.PaymentAPI
}

// NewPaymentHandler wires the payment endpoints.
func NewPaymentHandler(api upstream.PaymentAPI) *PaymentHandler {
	return &PaymentHandler{API: api}
}

// CreateOrder returns gateway order params for a booking.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var body struct {
		BookingID string `json:"booking_id"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "booking_id is required"})
		return
	}

	order, err := h.API.CreateOrder(c.Request.Context(), body.BookingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// VerificationHandler proxies identity verification to the core API.
type VerificationHandler struct {
	API upstream.VerificationAPI
}

// NewVerificationHandler wires the verification endpoints.
func NewVerificationHandler(api upstream.VerificationAPI) *VerificationHandler {
	return &VerificationHandler{API: api}
}

// InitUpload starts a verification document upload.
func (h *VerificationHandler) InitUpload(c *gin.Context) {
	var body struct {
		DocumentType string `json:"document_type"`
	}
	if err := c.ShouldBindJSON(&body); err != nil || body.DocumentType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "document_type is required"})
		return
	}

	resp, err := h.API.InitUpload(c.Request.Context(), c.GetString(middleware.CtxUserID), body.DocumentType)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Status returns the caller's verification state.
func (h *VerificationHandler) Status(c *gin.Context) {
	status, err := h.API.Status(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
