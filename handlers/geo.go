package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"carenest/config"
)

// GeoHandler serves geocoding for the location picker ("use current
// location" and address search).
type GeoHandler struct{}

// NewGeoHandler wires the geocoding endpoints.
func NewGeoHandler() *GeoHandler {
	return &GeoHandler{}
}

// GeocodeAddress resolves an address to coordinates.
func (h *GeoHandler) GeocodeAddress(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: address"})
		return
	}

	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?address=%s&key=%s",
		url.QueryEscape(address), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Geocoding request failed"})
		return
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode geocoding response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": data["results"]})
}

// ReverseGeocode resolves coordinates to an address.
func (h *GeoHandler) ReverseGeocode(c *gin.Context) {
	latitude := c.Query("latitude")
	longitude := c.Query("longitude")

	if latitude == "" || longitude == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameters: latitude, longitude"})
		return
	}

	apiKey := config.AppConfig.GoogleAPIKey
	if apiKey == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "API authentication error"})
		return
	}

	reqURL := fmt.Sprintf(
		"https://maps.googleapis.com/maps/api/geocode/json?latlng=%s,%s&key=%s",
		url.QueryEscape(latitude), url.QueryEscape(longitude), apiKey,
	)

	resp, err := http.Get(reqURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Reverse geocoding request failed"})
		return
	}
	defer resp.Body.Close()

	var data map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode reverse geocoding response"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"results": data["results"]})
}
