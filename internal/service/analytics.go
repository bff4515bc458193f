package service

import (
	"errors"
	"fmt"
	"math"
	"time"

	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnalyticsService handles aggregation of completion and rating statistics
type AnalyticsService struct {
	surveyRepo     repository.SurveyRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	responseRepo   repository.ResponseRepositoryInterface
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	surveyRepo repository.SurveyRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	responseRepo repository.ResponseRepositoryInterface,
) *AnalyticsService {
	return &AnalyticsService{
		surveyRepo:     surveyRepo,
		teamMemberRepo: teamMemberRepo,
		responseRepo:   responseRepo,
	}
}

// QuestionAnalytics is the aggregated result for one question within a survey
type QuestionAnalytics struct {
	QuestionID    string  `json:"questionId"`
	QuestionText  string  `json:"questionText"`
	AverageScore  float64 `json:"averageScore"`
	ResponseCount int64   `json:"responseCount"`
}

// SurveyAnalytics is the full analytics report for one survey
type SurveyAnalytics struct {
	SurveyID           string              `json:"surveyId"`
	TotalMembers       int64               `json:"totalMembers"`
	CompletedResponses int64               `json:"completedResponses"`
	CompletionRate     float64             `json:"completionRate"`
	QuestionAnalytics  []QuestionAnalytics `json:"questionAnalytics"`
	OverallAverage     *float64            `json:"overallAverage"`
}

// ManagerSurveySummary is one survey's line in a manager-level report
type ManagerSurveySummary struct {
	SurveyID       string              `json:"surveyId"`
	Title          string              `json:"title"`
	Status         models.SurveyStatus `json:"status"`
	CompletionRate float64             `json:"completionRate"`
	CreatedAt      time.Time           `json:"createdAt"`
}

// ManagerAnalytics aggregates completion across every survey of one manager
type ManagerAnalytics struct {
	ManagerID               string                 `json:"managerId"`
	TotalSurveys            int                    `json:"totalSurveys"`
	TotalTeamMembers        int64                  `json:"totalTeamMembers"`
	TotalCompletedResponses int64                  `json:"totalCompletedResponses"`
	OverallCompletionRate   float64                `json:"overallCompletionRate"`
	Surveys                 []ManagerSurveySummary `json:"surveys"`
}

// GetSurveyAnalytics computes completion stats, per-question averages and the
// overall average for one survey. Questions without responses are omitted
// from the per-question list, and the overall average is nil until the first
// response arrives.
func (s *AnalyticsService) GetSurveyAnalytics(surveyID uuid.UUID) (*SurveyAnalytics, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	stats, err := s.teamMemberRepo.GetCompletionStats(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion stats: %w", err)
	}

	rows, err := s.responseRepo.GetAnalyticsForSurvey(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get question analytics: %w", err)
	}

	questionAnalytics := make([]QuestionAnalytics, 0, len(rows))
	for _, row := range rows {
		questionAnalytics = append(questionAnalytics, QuestionAnalytics{
			QuestionID:    row.QuestionID.String(),
			QuestionText:  row.QuestionText,
			AverageScore:  round2(row.AverageScore),
			ResponseCount: row.ResponseCount,
		})
	}

	overall, err := s.responseRepo.GetOverallAverageForSurvey(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get overall average: %w", err)
	}
	if overall != nil {
		rounded := round2(*overall)
		overall = &rounded
	}

	return &SurveyAnalytics{
		SurveyID:           survey.ID.String(),
		TotalMembers:       stats.Total,
		CompletedResponses: stats.Completed,
		CompletionRate:     round2(stats.CompletionRate),
		QuestionAnalytics:  questionAnalytics,
		OverallAverage:     overall,
	}, nil
}

// GetProgressSummary returns just the completion progress for a survey
func (s *AnalyticsService) GetProgressSummary(surveyID uuid.UUID) (*ProgressSummary, error) {
	if _, err := s.surveyRepo.GetByID(surveyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	stats, err := s.teamMemberRepo.GetCompletionStats(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion stats: %w", err)
	}

	return &ProgressSummary{
		Completed:      stats.Completed,
		Pending:        stats.Pending,
		CompletionRate: round2(stats.CompletionRate),
	}, nil
}

// GetManagerAnalytics blends completion statistics across every survey owned
// by a manager. A manager with no surveys gets an empty aggregate, not an
// error.
func (s *AnalyticsService) GetManagerAnalytics(managerID string) (*ManagerAnalytics, error) {
	surveys, err := s.surveyRepo.GetByManagerID(managerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get surveys: %w", err)
	}

	var totalMembers, totalCompleted int64
	summaries := make([]ManagerSurveySummary, 0, len(surveys))
	for _, survey := range surveys {
		stats, err := s.teamMemberRepo.GetCompletionStats(survey.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to get completion stats: %w", err)
		}
		totalMembers += stats.Total
		totalCompleted += stats.Completed

		summaries = append(summaries, ManagerSurveySummary{
			SurveyID:       survey.ID.String(),
			Title:          survey.Title,
			Status:         survey.Status,
			CompletionRate: round2(stats.CompletionRate),
			CreatedAt:      survey.CreatedAt,
		})
	}

	var overallRate float64
	if totalMembers > 0 {
		overallRate = float64(totalCompleted) / float64(totalMembers) * 100
	}

	return &ManagerAnalytics{
		ManagerID:               managerID,
		TotalSurveys:            len(surveys),
		TotalTeamMembers:        totalMembers,
		TotalCompletedResponses: totalCompleted,
		OverallCompletionRate:   round2(overallRate),
		Surveys:                 summaries,
	}, nil
}

// round2 rounds to 2 decimal places
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
