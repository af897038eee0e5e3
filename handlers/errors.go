package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"carenest/services/booking"
	"carenest/upstream"
	"carenest/utils"
)

// respondError maps service errors onto HTTP responses. Validation problems
// and known lifecycle errors surface with their own message; core API errors
// pass through the user-displayable message; anything else gets a generic
// fallback.
func respondError(c *gin.Context, err error) {
	var validationErr *booking.ValidationError
	var apiErr *upstream.APIError

	switch {
	case errors.As(err, &validationErr):
		utils.JSONError(c, http.StatusBadRequest, validationErr.Message, validationErr.Field)
	case errors.Is(err, booking.ErrSubmissionInFlight):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	case errors.Is(err, booking.ErrDraftNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error(), "")
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		utils.JSONError(c, status, apiErr.Message, "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, upstream.UserMessage(err), err.Error())
	}
}
