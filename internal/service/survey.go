package service

import (
	"errors"
	"fmt"
	"time"

	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/repository"
	"leadership-survey-backend/internal/token"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// maxTokenAttempts caps the unique-token retry loop; exhausting it surfaces a
// fatal TokenGenerationError rather than retrying forever.
const maxTokenAttempts = 10

// SurveyService handles business logic for the survey lifecycle
type SurveyService struct {
	surveyRepo     repository.SurveyRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	questionRepo   repository.QuestionRepositoryInterface
	tokenGen       token.Generator
	frontendURL    string
	validator      *validator.Validate
}

// NewSurveyService creates a new survey service. The frontend base URL is an
// explicit dependency so link generation never reads ambient process state.
func NewSurveyService(
	surveyRepo repository.SurveyRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	questionRepo repository.QuestionRepositoryInterface,
	tokenGen token.Generator,
	frontendURL string,
	validator *validator.Validate,
) *SurveyService {
	return &SurveyService{
		surveyRepo:     surveyRepo,
		teamMemberRepo: teamMemberRepo,
		questionRepo:   questionRepo,
		tokenGen:       tokenGen,
		frontendURL:    frontendURL,
		validator:      validator,
	}
}

// TeamMemberInput is one team member in a survey creation request
type TeamMemberInput struct {
	Name  string `json:"name" validate:"required,max=255"`
	Email string `json:"email" validate:"required,email,max=255"`
}

// CreateSurveyRequest represents the request to create a survey
type CreateSurveyRequest struct {
	ManagerID   string            `json:"managerId" validate:"required,max=255"`
	TeamMembers []TeamMemberInput `json:"teamMembers" validate:"required,min=1,max=10,dive"`
}

// TeamMemberWithLink is one created team member with their survey link
type TeamMemberWithLink struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	SurveyLink   string `json:"surveyLink"`
	HasCompleted bool   `json:"hasCompleted"`
}

// CreateSurveyResponse represents the response for survey creation
type CreateSurveyResponse struct {
	SurveyID    string               `json:"surveyId"`
	TeamMembers []TeamMemberWithLink `json:"teamMembers"`
}

// SurveyQuestionView is one question as presented to a respondent
type SurveyQuestionView struct {
	ID            string `json:"id"`
	QuestionText  string `json:"questionText"`
	QuestionOrder int    `json:"questionOrder"`
	ScaleMin      int    `json:"scaleMin"`
	ScaleMax      int    `json:"scaleMax"`
	ScaleMinLabel string `json:"scaleMinLabel"`
	ScaleMaxLabel string `json:"scaleMaxLabel"`
}

// SurveyData is the survey-filling view returned for a valid token
type SurveyData struct {
	SurveyTitle    string               `json:"surveyTitle"`
	Description    string               `json:"description"`
	TeamMemberName string               `json:"teamMemberName"`
	HasCompleted   bool                 `json:"hasCompleted"`
	Questions      []SurveyQuestionView `json:"questions"`
}

// TeamMemberStatus is one team member's completion state in a status report
type TeamMemberStatus struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	HasCompleted bool       `json:"hasCompleted"`
	CompletedAt  *time.Time `json:"completedAt"`
}

// ProgressSummary summarizes survey completion progress
type ProgressSummary struct {
	Completed      int64   `json:"completed"`
	Pending        int64   `json:"pending"`
	CompletionRate float64 `json:"completionRate"`
}

// SurveyStatusData represents the response for a survey status request
type SurveyStatusData struct {
	SurveyID        string              `json:"surveyId"`
	Status          models.SurveyStatus `json:"status"`
	TeamMembers     []TeamMemberStatus  `json:"teamMembers"`
	ProgressSummary ProgressSummary     `json:"progressSummary"`
}

// CreateSurvey creates a survey together with its team members and issues one
// unique survey link per member. The member batch is persisted atomically with
// the survey row.
func (s *SurveyService) CreateSurvey(req *CreateSurveyRequest) (*CreateSurveyResponse, error) {
	// Validate request
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	// The system is provisioned with a fixed question set; refuse to create
	// surveys against a misprovisioned store
	questionCount, err := s.questionRepo.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count questions: %w", err)
	}
	if questionCount != models.RequiredQuestionCount {
		return nil, apperrors.NewQuestionCountError(models.RequiredQuestionCount, questionCount)
	}

	survey := &models.Survey{
		ManagerID:   req.ManagerID,
		Title:       models.DefaultSurveyTitle,
		Description: models.DefaultSurveyDescription,
		Status:      models.SurveyStatusActive,
	}

	members := make([]models.TeamMember, 0, len(req.TeamMembers))
	for _, input := range req.TeamMembers {
		uniqueToken, err := s.generateUniqueToken()
		if err != nil {
			return nil, err
		}

		members = append(members, models.TeamMember{
			Name:         input.Name,
			Email:        input.Email,
			UniqueLink:   uniqueToken,
			HasCompleted: false,
		})
	}

	if err := s.surveyRepo.CreateWithTeamMembers(survey, members); err != nil {
		return nil, fmt.Errorf("failed to create survey: %w", err)
	}

	result := make([]TeamMemberWithLink, 0, len(members))
	for _, member := range members {
		result = append(result, TeamMemberWithLink{
			ID:           member.ID.String(),
			Name:         member.Name,
			Email:        member.Email,
			SurveyLink:   s.buildSurveyLink(member.UniqueLink),
			HasCompleted: member.HasCompleted,
		})
	}

	return &CreateSurveyResponse{
		SurveyID:    survey.ID.String(),
		TeamMembers: result,
	}, nil
}

// GetSurveyByToken loads the survey-filling view for a team member's unique
// token. Inactive surveys are not retrievable for filling.
func (s *SurveyService) GetSurveyByToken(tok string) (*SurveyData, error) {
	member, err := s.teamMemberRepo.GetByUniqueLink(tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSurveyLink
		}
		return nil, fmt.Errorf("failed to look up survey link: %w", err)
	}

	survey, err := s.surveyRepo.GetByID(member.SurveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}
	if survey.Status != models.SurveyStatusActive {
		return nil, apperrors.ErrSurveyNotFound
	}

	questions, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}
	if len(questions) != models.RequiredQuestionCount {
		return nil, apperrors.NewQuestionCountError(models.RequiredQuestionCount, int64(len(questions)))
	}

	views := make([]SurveyQuestionView, 0, len(questions))
	for _, q := range questions {
		views = append(views, SurveyQuestionView{
			ID:            q.ID.String(),
			QuestionText:  q.QuestionText,
			QuestionOrder: q.QuestionOrder,
			ScaleMin:      q.ScaleMin,
			ScaleMax:      q.ScaleMax,
			ScaleMinLabel: q.ScaleMinLabel,
			ScaleMaxLabel: q.ScaleMaxLabel,
		})
	}

	return &SurveyData{
		SurveyTitle:    survey.Title,
		Description:    survey.Description,
		TeamMemberName: member.Name,
		HasCompleted:   member.HasCompleted,
		Questions:      views,
	}, nil
}

// GetSurveyStatus returns the survey status with per-member completion state
// and a progress summary.
func (s *SurveyService) GetSurveyStatus(surveyID uuid.UUID) (*SurveyStatusData, error) {
	survey, err := s.surveyRepo.GetByID(surveyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrSurveyNotFound
		}
		return nil, fmt.Errorf("failed to get survey: %w", err)
	}

	members, err := s.teamMemberRepo.GetBySurveyID(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}

	stats, err := s.teamMemberRepo.GetCompletionStats(surveyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get completion stats: %w", err)
	}

	memberStatuses := make([]TeamMemberStatus, 0, len(members))
	for _, member := range members {
		memberStatuses = append(memberStatuses, TeamMemberStatus{
			ID:           member.ID.String(),
			Name:         member.Name,
			Email:        member.Email,
			HasCompleted: member.HasCompleted,
			CompletedAt:  member.CompletedAt,
		})
	}

	return &SurveyStatusData{
		SurveyID:    survey.ID.String(),
		Status:      survey.Status,
		TeamMembers: memberStatuses,
		ProgressSummary: ProgressSummary{
			Completed:      stats.Completed,
			Pending:        stats.Pending,
			CompletionRate: round2(stats.CompletionRate),
		},
	}, nil
}

// generateUniqueToken draws candidate tokens until one is unused, with a
// bounded attempt budget.
func (s *SurveyService) generateUniqueToken() (string, error) {
	for attempt := 0; attempt < maxTokenAttempts; attempt++ {
		candidate, err := s.tokenGen.Generate()
		if err != nil {
			return "", fmt.Errorf("failed to generate token: %w", err)
		}

		exists, err := s.teamMemberRepo.UniqueLinkExists(candidate)
		if err != nil {
			return "", fmt.Errorf("failed to check token uniqueness: %w", err)
		}
		if !exists {
			return candidate, nil
		}
	}
	return "", apperrors.NewTokenGenerationError(maxTokenAttempts)
}

func (s *SurveyService) buildSurveyLink(tok string) string {
	return fmt.Sprintf("%s/survey/%s", s.frontendURL, tok)
}
