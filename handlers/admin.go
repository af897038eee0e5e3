package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/upstream"
)

// AdminHandler proxies moderation actions to the core API.
type AdminHandler struct {
	API upstream.AdminAPI
}

// NewAdminHandler wires the admin endpoints.
func NewAdminHandler(api upstream.AdminAPI) *AdminHandler {
	return &AdminHandler{API: api}
}

// ListUsers returns all users for moderation.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.API.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListCaregivers returns all caregivers for moderation.
func (h *AdminHandler) ListCaregivers(c *gin.Context) {
	caregivers, err := h.API.ListCaregivers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"caregivers": caregivers})
}

// SuspendUser suspends an account.
func (h *AdminHandler) SuspendUser(c *gin.Context) {
	if err := h.API.Suspend(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// VerifyCaregiver marks a caregiver's identity as verified.
func (h *AdminHandler) VerifyCaregiver(c *gin.Context) {
	if err := h.API.VerifyCaregiver(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
