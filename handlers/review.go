package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/models"
	"carenest/upstream"
)

// ReviewHandler proxies review CRUD to the core API.
type ReviewHandler struct {
	API upstream.ReviewAPI
}

// NewReviewHandler wires the review endpoints.
func NewReviewHandler(api upstream.ReviewAPI) *ReviewHandler {
	return &ReviewHandler{API: api}
}

// CreateReview validates the form and submits the review.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if review.Rating < 1 || review.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "rating must be between 1 and 5"})
		return
	}
	review.ParentID = c.GetString(middleware.CtxUserID)

	created, err := h.API.Create(c.Request.Context(), review)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": created})
}

// ListReviews returns a caregiver's reviews.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	reviews, err := h.API.ListForNanny(c.Request.Context(), c.Param("nannyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": reviews})
}

// DeleteReview removes a review.
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	if err := h.API.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
