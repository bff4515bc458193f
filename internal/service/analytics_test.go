package service_test

import (
	"testing"
	"time"

	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/mocks"
	"leadership-survey-backend/internal/repository"
	"leadership-survey-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockSurveyRepo   *mocks.MockSurveyRepositoryInterface
	mockMemberRepo   *mocks.MockTeamMemberRepositoryInterface
	mockResponseRepo *mocks.MockResponseRepositoryInterface
	service          *service.AnalyticsService
}

// SetupTest sets up the test suite
func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSurveyRepo = mocks.NewMockSurveyRepositoryInterface(suite.ctrl)
	suite.mockMemberRepo = mocks.NewMockTeamMemberRepositoryInterface(suite.ctrl)
	suite.mockResponseRepo = mocks.NewMockResponseRepositoryInterface(suite.ctrl)
	suite.service = service.NewAnalyticsService(
		suite.mockSurveyRepo,
		suite.mockMemberRepo,
		suite.mockResponseRepo,
	)
}

// TearDownTest cleans up after each test
func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnalyticsServiceTestSuite) TestGetSurveyAnalyticsSuccess() {
	surveyID := uuid.New()
	survey := &models.Survey{BaseModel: models.BaseModel{ID: surveyID}, Status: models.SurveyStatusActive}
	stats := &repository.CompletionStats{Total: 3, Completed: 2, Pending: 1, CompletionRate: 66.66666666666667}
	rows := []repository.QuestionAnalyticsRow{
		{QuestionID: uuid.New(), QuestionText: "Q1", AverageScore: 4.5, ResponseCount: 2},
		{QuestionID: uuid.New(), QuestionText: "Q2", AverageScore: 3.3333333333333335, ResponseCount: 2},
		{QuestionID: uuid.New(), QuestionText: "Q3", AverageScore: 5, ResponseCount: 2},
	}
	overall := 4.277777777777778

	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(survey, nil)
	suite.mockMemberRepo.EXPECT().GetCompletionStats(surveyID).Return(stats, nil)
	suite.mockResponseRepo.EXPECT().GetAnalyticsForSurvey(surveyID).Return(rows, nil)
	suite.mockResponseRepo.EXPECT().GetOverallAverageForSurvey(surveyID).Return(&overall, nil)

	analytics, err := suite.service.GetSurveyAnalytics(surveyID)

	suite.NoError(err)
	suite.Equal(surveyID.String(), analytics.SurveyID)
	suite.Equal(int64(3), analytics.TotalMembers)
	suite.Equal(int64(2), analytics.CompletedResponses)
	suite.Equal(66.67, analytics.CompletionRate)
	suite.Len(analytics.QuestionAnalytics, 3)
	suite.Equal(4.5, analytics.QuestionAnalytics[0].AverageScore)
	suite.Equal(3.33, analytics.QuestionAnalytics[1].AverageScore)
	suite.Equal(5.0, analytics.QuestionAnalytics[2].AverageScore)
	suite.NotNil(analytics.OverallAverage)
	suite.Equal(4.28, *analytics.OverallAverage)
}

func (suite *AnalyticsServiceTestSuite) TestGetSurveyAnalyticsNoResponses() {
	surveyID := uuid.New()
	survey := &models.Survey{BaseModel: models.BaseModel{ID: surveyID}, Status: models.SurveyStatusActive}
	stats := &repository.CompletionStats{Total: 2, Completed: 0, Pending: 2, CompletionRate: 0}

	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(survey, nil)
	suite.mockMemberRepo.EXPECT().GetCompletionStats(surveyID).Return(stats, nil)
	suite.mockResponseRepo.EXPECT().GetAnalyticsForSurvey(surveyID).Return([]repository.QuestionAnalyticsRow{}, nil)
	suite.mockResponseRepo.EXPECT().GetOverallAverageForSurvey(surveyID).Return(nil, nil)

	analytics, err := suite.service.GetSurveyAnalytics(surveyID)

	suite.NoError(err)
	suite.Equal(0.0, analytics.CompletionRate)
	suite.Empty(analytics.QuestionAnalytics)
	suite.Nil(analytics.OverallAverage)
}

func (suite *AnalyticsServiceTestSuite) TestGetSurveyAnalyticsNotFound() {
	surveyID := uuid.New()
	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(nil, gorm.ErrRecordNotFound)

	analytics, err := suite.service.GetSurveyAnalytics(surveyID)

	suite.Nil(analytics)
	suite.True(apperrors.IsNotFound(err))
}

func (suite *AnalyticsServiceTestSuite) TestGetProgressSummary() {
	surveyID := uuid.New()
	survey := &models.Survey{BaseModel: models.BaseModel{ID: surveyID}, Status: models.SurveyStatusActive}
	stats := &repository.CompletionStats{Total: 4, Completed: 3, Pending: 1, CompletionRate: 75}

	suite.mockSurveyRepo.EXPECT().GetByID(surveyID).Return(survey, nil)
	suite.mockMemberRepo.EXPECT().GetCompletionStats(surveyID).Return(stats, nil)

	summary, err := suite.service.GetProgressSummary(surveyID)

	suite.NoError(err)
	suite.Equal(int64(3), summary.Completed)
	suite.Equal(int64(1), summary.Pending)
	suite.Equal(75.0, summary.CompletionRate)
}

func (suite *AnalyticsServiceTestSuite) TestGetManagerAnalytics() {
	surveyA := models.Survey{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		ManagerID: "manager-1",
		Title:     models.DefaultSurveyTitle,
		Status:    models.SurveyStatusActive,
	}
	surveyB := models.Survey{
		BaseModel: models.BaseModel{ID: uuid.New(), CreatedAt: time.Now()},
		ManagerID: "manager-1",
		Title:     models.DefaultSurveyTitle,
		Status:    models.SurveyStatusCompleted,
	}

	suite.mockSurveyRepo.EXPECT().GetByManagerID("manager-1").Return([]models.Survey{surveyA, surveyB}, nil)
	suite.mockMemberRepo.EXPECT().GetCompletionStats(surveyA.ID).
		Return(&repository.CompletionStats{Total: 2, Completed: 1, Pending: 1, CompletionRate: 50}, nil)
	suite.mockMemberRepo.EXPECT().GetCompletionStats(surveyB.ID).
		Return(&repository.CompletionStats{Total: 3, Completed: 2, Pending: 1, CompletionRate: 66.66666666666667}, nil)

	analytics, err := suite.service.GetManagerAnalytics("manager-1")

	suite.NoError(err)
	suite.Equal("manager-1", analytics.ManagerID)
	suite.Equal(2, analytics.TotalSurveys)
	suite.Equal(int64(5), analytics.TotalTeamMembers)
	suite.Equal(int64(3), analytics.TotalCompletedResponses)
	suite.Equal(60.0, analytics.OverallCompletionRate)
	suite.Len(analytics.Surveys, 2)
	suite.Equal(50.0, analytics.Surveys[0].CompletionRate)
	suite.Equal(66.67, analytics.Surveys[1].CompletionRate)
}

func (suite *AnalyticsServiceTestSuite) TestGetManagerAnalyticsNoSurveys() {
	suite.mockSurveyRepo.EXPECT().GetByManagerID("manager-2").Return([]models.Survey{}, nil)

	analytics, err := suite.service.GetManagerAnalytics("manager-2")

	suite.NoError(err)
	suite.Equal(0, analytics.TotalSurveys)
	suite.Equal(int64(0), analytics.TotalTeamMembers)
	suite.Equal(0.0, analytics.OverallCompletionRate)
	suite.NotNil(analytics.Surveys)
	suite.Empty(analytics.Surveys)
}

// TestAnalyticsServiceTestSuite runs the test suite
func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
