package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// SurveyServiceInterface defines the interface for survey lifecycle operations
type SurveyServiceInterface interface {
	CreateSurvey(req *CreateSurveyRequest) (*CreateSurveyResponse, error)
	GetSurveyByToken(token string) (*SurveyData, error)
	GetSurveyStatus(surveyID uuid.UUID) (*SurveyStatusData, error)
}

// ResponseServiceInterface defines the interface for response submission operations
type ResponseServiceInterface interface {
	Submit(token string, req *SubmitRequest) (*SubmitResult, error)
	GetResponses(token string) ([]ResponseView, error)
}

// AnalyticsServiceInterface defines the interface for analytics operations
type AnalyticsServiceInterface interface {
	GetSurveyAnalytics(surveyID uuid.UUID) (*SurveyAnalytics, error)
	GetProgressSummary(surveyID uuid.UUID) (*ProgressSummary, error)
	GetManagerAnalytics(managerID string) (*ManagerAnalytics, error)
}
