package service

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"
	"leadership-survey-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResponseService handles business logic for response submission
type ResponseService struct {
	responseRepo   repository.ResponseRepositoryInterface
	teamMemberRepo repository.TeamMemberRepositoryInterface
	questionRepo   repository.QuestionRepositoryInterface
	validator      *validator.Validate
}

// NewResponseService creates a new response service
func NewResponseService(
	responseRepo repository.ResponseRepositoryInterface,
	teamMemberRepo repository.TeamMemberRepositoryInterface,
	questionRepo repository.QuestionRepositoryInterface,
	validator *validator.Validate,
) *ResponseService {
	return &ResponseService{
		responseRepo:   responseRepo,
		teamMemberRepo: teamMemberRepo,
		questionRepo:   questionRepo,
		validator:      validator,
	}
}

// ResponseInput is one submitted rating for one question
type ResponseInput struct {
	QuestionID string `json:"questionId" validate:"required"`
	Rating     int    `json:"rating" validate:"required"`
}

// SubmitRequest represents a full survey submission for one token
type SubmitRequest struct {
	Responses []ResponseInput `json:"responses" validate:"required,dive"`
}

// SubmitResult represents the acknowledgment for a successful submission
type SubmitResult struct {
	Message string `json:"message"`
}

// ResponseView is one stored response as returned to the caller
type ResponseView struct {
	QuestionID  string    `json:"questionId"`
	Rating      int       `json:"rating"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Submit validates and records a team member's full answer set exactly once.
// The persisted write is atomic: the response batch and the completion flag
// flip either both happen or neither does.
func (s *ResponseService) Submit(tok string, req *SubmitRequest) (*SubmitResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	member, err := s.teamMemberRepo.GetByUniqueLink(tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSurveyLink
		}
		return nil, fmt.Errorf("failed to look up survey link: %w", err)
	}

	// Fast-path rejections; the submit transaction re-checks both conditions
	// and is the authoritative guard against concurrent double submission
	if member.HasCompleted {
		return nil, apperrors.ErrSurveyAlreadyCompleted
	}
	hasResponses, err := s.responseRepo.HasResponses(member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing responses: %w", err)
	}
	if hasResponses {
		return nil, apperrors.ErrResponsesAlreadySubmitted
	}

	questions, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, fmt.Errorf("failed to get questions: %w", err)
	}

	if len(req.Responses) != models.RequiredQuestionCount {
		return nil, apperrors.NewValidationError("responses",
			fmt.Sprintf("all %d questions must be answered", models.RequiredQuestionCount))
	}

	validIDs := make(map[string]uuid.UUID, len(questions))
	for _, q := range questions {
		validIDs[q.ID.String()] = q.ID
	}

	submittedIDs := make(map[string]bool, len(req.Responses))
	var invalidIDs []string
	for _, input := range req.Responses {
		if _, ok := validIDs[input.QuestionID]; !ok {
			invalidIDs = append(invalidIDs, input.QuestionID)
		}
		submittedIDs[input.QuestionID] = true
	}
	if len(invalidIDs) > 0 {
		sort.Strings(invalidIDs)
		return nil, apperrors.NewValidationError("questionId",
			fmt.Sprintf("invalid question IDs: %s", strings.Join(invalidIDs, ", ")))
	}

	// Duplicates collapse in the set, so a duplicate answer also fails here
	if len(submittedIDs) != len(validIDs) {
		return nil, apperrors.NewValidationError("responses", "must answer all survey questions")
	}

	// The request-schema layer already bounds ratings; re-check here with the
	// database check constraint as the final backstop
	responses := make([]models.Response, 0, len(req.Responses))
	for _, input := range req.Responses {
		if input.Rating < models.RatingMin || input.Rating > models.RatingMax {
			return nil, apperrors.NewValidationError("rating",
				fmt.Sprintf("rating must be between %d and %d", models.RatingMin, models.RatingMax))
		}
		responses = append(responses, models.Response{
			QuestionID: validIDs[input.QuestionID],
			Rating:     input.Rating,
		})
	}

	if err := s.responseRepo.SubmitForTeamMember(member.ID, responses); err != nil {
		if apperrors.IsStateConflict(err) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to submit responses: %w", err)
	}

	return &SubmitResult{Message: "Survey submitted successfully"}, nil
}

// GetResponses returns the responses already submitted for a token, or an
// empty list when none exist yet.
func (s *ResponseService) GetResponses(tok string) ([]ResponseView, error) {
	member, err := s.teamMemberRepo.GetByUniqueLink(tok)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidSurveyLink
		}
		return nil, fmt.Errorf("failed to look up survey link: %w", err)
	}

	responses, err := s.responseRepo.GetByTeamMember(member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get responses: %w", err)
	}

	views := make([]ResponseView, 0, len(responses))
	for _, r := range responses {
		views = append(views, ResponseView{
			QuestionID:  r.QuestionID.String(),
			Rating:      r.Rating,
			SubmittedAt: r.SubmittedAt,
		})
	}
	return views, nil
}
