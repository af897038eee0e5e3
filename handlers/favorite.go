package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/middleware"
	"carenest/upstream"
)

// FavoriteHandler proxies the favorites toggle to the core API.
type FavoriteHandler struct {
	API upstream.FavoriteAPI
}

// NewFavoriteHandler wires the favorite endpoints.
func NewFavoriteHandler(api upstream.FavoriteAPI) *FavoriteHandler {
	return &FavoriteHandler{API: api}
}

// AddFavorite bookmarks a caregiver.
func (h *FavoriteHandler) AddFavorite(c *gin.Context) {
	if err := h.API.Add(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("nannyID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": true})
}

// RemoveFavorite drops the bookmark.
func (h *FavoriteHandler) RemoveFavorite(c *gin.Context) {
	if err := h.API.Remove(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("nannyID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": false})
}

// CheckFavorite reports whether the caregiver is bookmarked.
func (h *FavoriteHandler) CheckFavorite(c *gin.Context) {
	favorited, err := h.API.Check(c.Request.Context(), c.GetString(middleware.CtxUserID), c.Param("nannyID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorited": favorited})
}

// ListFavorites returns the caller's bookmarked caregivers.
func (h *FavoriteHandler) ListFavorites(c *gin.Context) {
	favorites, err := h.API.List(c.Request.Context(), c.GetString(middleware.CtxUserID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}
