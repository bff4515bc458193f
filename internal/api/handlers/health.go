package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler handles liveness checks
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Health handles GET /health
// @Summary Health check
// @Description Liveness probe for the service
// @Tags health
// @Produce json
// @Success 200 {object} handlers.APIResponse "Service is healthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{
		"service": "leadership-survey-backend",
		"status":  "healthy",
	})
}
