package handlers

import (
	"net/http"

	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// APIResponse is the envelope wrapping every JSON response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// respondSuccess writes a success envelope with the given status code
func respondSuccess(c *gin.Context, status int, data interface{}) {
	c.JSON(status, APIResponse{Success: true, Data: data})
}

// respondError writes an error envelope with the given status code
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, APIResponse{Success: false, Error: message})
}

// respondServiceError maps a service error to the appropriate HTTP status.
// Client mistakes surface their message; anything else is logged and returned
// as a generic server error so internals never leak.
func respondServiceError(c *gin.Context, fallback string, err error) {
	switch {
	case apperrors.IsNotFound(err):
		respondError(c, http.StatusNotFound, err.Error())
	case apperrors.IsValidation(err), apperrors.IsStateConflict(err):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		requestID := c.GetString("request_id")
		logger.WithRequestID(requestID).WithError(err).Error(fallback)
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
