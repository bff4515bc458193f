package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadership-survey-backend/internal/api/handlers"
	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/mocks"
	"leadership-survey-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// envelope mirrors the JSON response wrapper for assertions
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

// SurveyHandlerTestSuite defines the test suite for SurveyHandler
type SurveyHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockSurveyService *mocks.MockSurveyServiceInterface
	router            *gin.Engine
}

// SetupTest sets up the test suite
func (suite *SurveyHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSurveyService = mocks.NewMockSurveyServiceInterface(suite.ctrl)

	handler := handlers.NewSurveyHandler(suite.mockSurveyService)
	suite.router = gin.New()
	surveys := suite.router.Group("/api/v1/surveys")
	{
		surveys.POST("", handler.CreateSurvey)
		surveys.GET("/:survey_id/status", handler.GetSurveyStatus)
	}
}

// TearDownTest cleans up after each test
func (suite *SurveyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SurveyHandlerTestSuite) perform(method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveySuccess() {
	request := &service.CreateSurveyRequest{
		ManagerID: "manager-1",
		TeamMembers: []service.TeamMemberInput{
			{Name: "Alice", Email: "alice@test.com"},
		},
	}
	response := &service.CreateSurveyResponse{
		SurveyID: uuid.New().String(),
		TeamMembers: []service.TeamMemberWithLink{
			{ID: uuid.New().String(), Name: "Alice", Email: "alice@test.com", SurveyLink: "http://localhost:3000/survey/tok"},
		},
	}

	suite.mockSurveyService.EXPECT().CreateSurvey(gomock.Any()).
		DoAndReturn(func(req *service.CreateSurveyRequest) (*service.CreateSurveyResponse, error) {
			suite.Equal("manager-1", req.ManagerID)
			suite.Len(req.TeamMembers, 1)
			return response, nil
		})

	w, env := suite.perform(http.MethodPost, "/api/v1/surveys", request)

	suite.Equal(http.StatusCreated, w.Code)
	suite.True(env.Success)

	var data service.CreateSurveyResponse
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Equal(response.SurveyID, data.SurveyID)
	suite.Len(data.TeamMembers, 1)
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyMalformedJSON() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/surveys", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)

	var env envelope
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &env))
	suite.False(env.Success)
	suite.NotEmpty(env.Error)
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyValidationError() {
	suite.mockSurveyService.EXPECT().CreateSurvey(gomock.Any()).
		Return(nil, apperrors.NewValidationError("teamMembers", "at most 10 team members"))

	w, env := suite.perform(http.MethodPost, "/api/v1/surveys", &service.CreateSurveyRequest{ManagerID: "m"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.Contains(env.Error, "at most 10 team members")
}

func (suite *SurveyHandlerTestSuite) TestCreateSurveyInternalError() {
	suite.mockSurveyService.EXPECT().CreateSurvey(gomock.Any()).
		Return(nil, apperrors.NewQuestionCountError(3, 0))

	w, env := suite.perform(http.MethodPost, "/api/v1/surveys", &service.CreateSurveyRequest{ManagerID: "m"})

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.False(env.Success)
	// Configuration problems are server-side; the message must stay generic
	suite.Equal("Failed to create survey", env.Error)
}

func (suite *SurveyHandlerTestSuite) TestGetSurveyStatusSuccess() {
	surveyID := uuid.New()
	completedAt := time.Now().UTC().Truncate(time.Second)
	status := &service.SurveyStatusData{
		SurveyID: surveyID.String(),
		Status:   models.SurveyStatusActive,
		TeamMembers: []service.TeamMemberStatus{
			{ID: uuid.New().String(), Name: "Alice", Email: "alice@test.com", HasCompleted: true, CompletedAt: &completedAt},
			{ID: uuid.New().String(), Name: "Bob", Email: "bob@test.com"},
		},
		ProgressSummary: service.ProgressSummary{Completed: 1, Pending: 1, CompletionRate: 50},
	}

	suite.mockSurveyService.EXPECT().GetSurveyStatus(surveyID).Return(status, nil)

	w, env := suite.perform(http.MethodGet, "/api/v1/surveys/"+surveyID.String()+"/status", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.True(env.Success)

	var data service.SurveyStatusData
	suite.Require().NoError(json.Unmarshal(env.Data, &data))
	suite.Equal(surveyID.String(), data.SurveyID)
	suite.Len(data.TeamMembers, 2)
	suite.NotNil(data.TeamMembers[0].CompletedAt)
	suite.Nil(data.TeamMembers[1].CompletedAt)
	suite.Equal(50.0, data.ProgressSummary.CompletionRate)
}

func (suite *SurveyHandlerTestSuite) TestGetSurveyStatusInvalidID() {
	w, env := suite.perform(http.MethodGet, "/api/v1/surveys/not-a-uuid/status", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.False(env.Success)
	suite.Equal("invalid survey ID", env.Error)
}

func (suite *SurveyHandlerTestSuite) TestGetSurveyStatusNotFound() {
	surveyID := uuid.New()
	suite.mockSurveyService.EXPECT().GetSurveyStatus(surveyID).Return(nil, apperrors.ErrSurveyNotFound)

	w, env := suite.perform(http.MethodGet, "/api/v1/surveys/"+surveyID.String()+"/status", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.False(env.Success)
	suite.Equal("survey not found", env.Error)
}

// TestSurveyHandlerTestSuite runs the test suite
func TestSurveyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SurveyHandlerTestSuite))
}
