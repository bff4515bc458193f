package handlers

import (
	"net/http"

	"leadership-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SurveyHandler handles HTTP requests for the survey lifecycle
type SurveyHandler struct {
	surveyService service.SurveyServiceInterface
}

// NewSurveyHandler creates a new survey handler
func NewSurveyHandler(surveyService service.SurveyServiceInterface) *SurveyHandler {
	return &SurveyHandler{
		surveyService: surveyService,
	}
}

// CreateSurvey handles POST /surveys/
// @Summary Create a new survey
// @Description Create a new leadership feedback survey with team members and unique links
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey body service.CreateSurveyRequest true "Survey data"
// @Success 201 {object} handlers.APIResponse{data=service.CreateSurveyResponse} "Successfully created survey"
// @Failure 400 {object} handlers.APIResponse "Invalid request body"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /surveys [post]
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var req service.CreateSurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.surveyService.CreateSurvey(&req)
	if err != nil {
		respondServiceError(c, "Failed to create survey", err)
		return
	}

	respondSuccess(c, http.StatusCreated, result)
}

// GetSurveyStatus handles GET /surveys/:survey_id/status
// @Summary Get survey status
// @Description Get survey status and team member completion information
// @Tags surveys
// @Accept json
// @Produce json
// @Param survey_id path string true "Survey ID (UUID)"
// @Success 200 {object} handlers.APIResponse{data=service.SurveyStatusData} "Successfully retrieved status"
// @Failure 400 {object} handlers.APIResponse "Invalid survey ID"
// @Failure 404 {object} handlers.APIResponse "Survey not found"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /surveys/{survey_id}/status [get]
func (h *SurveyHandler) GetSurveyStatus(c *gin.Context) {
	surveyID, err := uuid.Parse(c.Param("survey_id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid survey ID")
		return
	}

	status, err := h.surveyService.GetSurveyStatus(surveyID)
	if err != nil {
		respondServiceError(c, "Failed to get survey status", err)
		return
	}

	respondSuccess(c, http.StatusOK, status)
}
