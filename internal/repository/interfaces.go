package repository

import (
	"leadership-survey-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// CompletionStats summarizes team member completion for one survey
type CompletionStats struct {
	Total          int64
	Completed      int64
	Pending        int64
	CompletionRate float64
}

// QuestionAnalyticsRow is one aggregated row of per-question survey analytics
type QuestionAnalyticsRow struct {
	QuestionID    uuid.UUID
	QuestionText  string
	AverageScore  float64
	ResponseCount int64
}

// SurveyRepositoryInterface defines the interface for survey repository operations
type SurveyRepositoryInterface interface {
	Create(survey *models.Survey) error
	GetByID(id uuid.UUID) (*models.Survey, error)
	GetByManagerID(managerID string) ([]models.Survey, error)
	CreateWithTeamMembers(survey *models.Survey, members []models.TeamMember) error
	SetStatus(id uuid.UUID, status models.SurveyStatus) error
	Delete(id uuid.UUID) error
}

// TeamMemberRepositoryInterface defines the interface for team member repository operations
type TeamMemberRepositoryInterface interface {
	GetByID(id uuid.UUID) (*models.TeamMember, error)
	GetByUniqueLink(uniqueLink string) (*models.TeamMember, error)
	GetBySurveyID(surveyID uuid.UUID) ([]models.TeamMember, error)
	UniqueLinkExists(uniqueLink string) (bool, error)
	GetCompletionStats(surveyID uuid.UUID) (*CompletionStats, error)
	MarkCompleted(id uuid.UUID) error
}

// QuestionRepositoryInterface defines the interface for survey question repository operations
type QuestionRepositoryInterface interface {
	Count() (int64, error)
	GetAllOrdered() ([]models.SurveyQuestion, error)
	GetByID(id uuid.UUID) (*models.SurveyQuestion, error)
	CreateBatch(questions []models.SurveyQuestion) error
}

// ResponseRepositoryInterface defines the interface for response repository operations
type ResponseRepositoryInterface interface {
	GetByTeamMember(teamMemberID uuid.UUID) ([]models.Response, error)
	HasResponses(teamMemberID uuid.UUID) (bool, error)
	SubmitForTeamMember(teamMemberID uuid.UUID, responses []models.Response) error
	GetAnalyticsForSurvey(surveyID uuid.UUID) ([]QuestionAnalyticsRow, error)
	GetOverallAverageForSurvey(surveyID uuid.UUID) (*float64, error)
}
