package handlers

import (
	"net/http"

	"leadership-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ResponseHandler handles HTTP requests on the token-scoped survey-filling flow
type ResponseHandler struct {
	surveyService   service.SurveyServiceInterface
	responseService service.ResponseServiceInterface
}

// NewResponseHandler creates a new response handler
func NewResponseHandler(surveyService service.SurveyServiceInterface, responseService service.ResponseServiceInterface) *ResponseHandler {
	return &ResponseHandler{
		surveyService:   surveyService,
		responseService: responseService,
	}
}

// GetSurveyByToken handles GET /survey/:token
// @Summary Get survey for completion
// @Description Load survey data for a team member using their unique token
// @Tags responses
// @Accept json
// @Produce json
// @Param token path string true "Unique survey token"
// @Success 200 {object} handlers.APIResponse{data=service.SurveyData} "Successfully loaded survey"
// @Failure 404 {object} handlers.APIResponse "Invalid token or inactive survey"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /survey/{token} [get]
func (h *ResponseHandler) GetSurveyByToken(c *gin.Context) {
	surveyData, err := h.surveyService.GetSurveyByToken(c.Param("token"))
	if err != nil {
		respondServiceError(c, "Failed to load survey", err)
		return
	}

	respondSuccess(c, http.StatusOK, surveyData)
}

// SubmitResponse handles POST /survey/:token/response
// @Summary Submit survey responses
// @Description Submit exactly 3 ratings (1-5) for a team member's survey
// @Tags responses
// @Accept json
// @Produce json
// @Param token path string true "Unique survey token"
// @Param submission body service.SubmitRequest true "Survey responses"
// @Success 201 {object} handlers.APIResponse{data=service.SubmitResult} "Successfully submitted"
// @Failure 400 {object} handlers.APIResponse "Validation or state-conflict failure"
// @Failure 404 {object} handlers.APIResponse "Invalid token"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /survey/{token}/response [post]
func (h *ResponseHandler) SubmitResponse(c *gin.Context) {
	var req service.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.responseService.Submit(c.Param("token"), &req)
	if err != nil {
		respondServiceError(c, "Failed to submit survey response", err)
		return
	}

	respondSuccess(c, http.StatusCreated, result)
}

// GetResponses handles GET /survey/:token/responses
// @Summary Get team member responses
// @Description Get existing responses for a team member, empty list if none yet
// @Tags responses
// @Accept json
// @Produce json
// @Param token path string true "Unique survey token"
// @Success 200 {object} handlers.APIResponse "Successfully retrieved responses"
// @Failure 404 {object} handlers.APIResponse "Invalid token"
// @Failure 500 {object} handlers.APIResponse "Internal server error"
// @Router /survey/{token}/responses [get]
func (h *ResponseHandler) GetResponses(c *gin.Context) {
	responses, err := h.responseService.GetResponses(c.Param("token"))
	if err != nil {
		respondServiceError(c, "Failed to get responses", err)
		return
	}

	respondSuccess(c, http.StatusOK, gin.H{"responses": responses})
}
