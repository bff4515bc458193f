package handlers

import (
	"net/http"

	"leadership-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AnalyticsHandler handles HTTP requests for survey and manager analytics
type AnalyticsHandler struct {
	analyticsService service.AnalyticsServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// GetSurveyAnalytics handles GET /surveys/:survey_id/analytics
// @Summary Get survey analytics
// @Description Get completion rates, per-question averages and the overall average for a survey
// @Tags analytics
// @Accept json
// @Produce json
// @Param survey_id path string true "Survey ID (UUID)"
// @Success 200 {object} handlers.APIResponse{data=service.SurveyAnalytics} "Successfully retrieved analytics"
// @Failure 400 {object} handlers.APIResponse "Invalid survey ID"
// @Failure 404 {object} handlers.APIResponse "Survey not found"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /surveys/{survey_id}/analytics [get]
func (h *AnalyticsHandler) GetSurveyAnalytics(c *gin.Context) {
	surveyID, err := uuid.Parse(c.Param("survey_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid survey ID")
		return
	}

	analytics, err := h.analyticsService.GetSurveyAnalytics(surveyID)
	if err != nil {
		respondServiceError(c, "Failed to get survey analytics", err)
		return
	}

	respondSuccess(c, http.StatusOK, analytics)
}

// GetManagerAnalytics handles GET /managers/:manager_id/analytics
// @Summary Get manager analytics
// @Description Get blended completion statistics across every survey of a manager
// @Tags analytics
// @Accept json
// @Produce json
// @Param manager_id path string true "Manager ID"
// @Success 200 {object} handlers.APIResponse{data=service.ManagerAnalytics} "Successfully retrieved analytics"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /managers/{manager_id}/analytics [get]
func (h *AnalyticsHandler) GetManagerAnalytics(c *gin.Context) {
	analytics, err := h.analyticsService.GetManagerAnalytics(c.Param("manager_id"))
	if err != nil {
		respondServiceError(c, "Failed to get manager analytics", err)
		return
	}

	respondSuccess(c, http.StatusOK, analytics)
}
