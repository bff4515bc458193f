package repository

import (
	"time"

	"leadership-survey-backend/internal/database/models"
	apperrors "leadership-survey-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ResponseRepository handles database operations for responses
type ResponseRepository struct {
	db *gorm.DB
}

// NewResponseRepository creates a new response repository
func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{db: db}
}

// GetByTeamMember retrieves all responses submitted by a team member
func (r *ResponseRepository) GetByTeamMember(teamMemberID uuid.UUID) ([]models.Response, error) {
	var responses []models.Response
	err := r.db.Where("team_member_id = ?", teamMemberID).Find(&responses).Error
	return responses, err
}

// HasResponses reports whether a team member has already submitted responses
func (r *ResponseRepository) HasResponses(teamMemberID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Response{}).Where("team_member_id = ?", teamMemberID).Count(&count).Error
	return count > 0, err
}

// SubmitForTeamMember inserts the response batch and marks the team member
// completed in one transaction. The member row is locked and its state
// re-checked inside the transaction, so of two concurrent submissions for the
// same token exactly one wins; the loser observes a state-conflict error.
func (r *ResponseRepository) SubmitForTeamMember(teamMemberID uuid.UUID, responses []models.Response) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var member models.TeamMember
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&member, "id = ?", teamMemberID).Error; err != nil {
			return err
		}

		if member.HasCompleted {
			return apperrors.ErrSurveyAlreadyCompleted
		}

		var existing int64
		if err := tx.Model(&models.Response{}).Where("team_member_id = ?", teamMemberID).Count(&existing).Error; err != nil {
			return err
		}
		if existing > 0 {
			return apperrors.ErrResponsesAlreadySubmitted
		}

		now := time.Now().UTC()
		for i := range responses {
			responses[i].TeamMemberID = teamMemberID
			responses[i].SubmittedAt = now
		}
		if err := tx.Create(&responses).Error; err != nil {
			return err
		}

		return tx.Model(&models.TeamMember{}).Where("id = ?", teamMemberID).Updates(map[string]interface{}{
			"has_completed": true,
			"completed_at":  now,
		}).Error
	})
}

// GetAnalyticsForSurvey returns the average rating and response count per
// question, joined through team members and restricted to one survey.
// Questions without responses for the survey are not returned.
func (r *ResponseRepository) GetAnalyticsForSurvey(surveyID uuid.UUID) ([]QuestionAnalyticsRow, error) {
	var rows []QuestionAnalyticsRow
	err := r.db.Model(&models.Response{}).
		Select("responses.question_id AS question_id, survey_questions.question_text AS question_text, AVG(responses.rating) AS average_score, COUNT(responses.id) AS response_count").
		Joins("JOIN survey_questions ON responses.question_id = survey_questions.id").
		Joins("JOIN team_members ON responses.team_member_id = team_members.id").
		Where("team_members.survey_id = ?", surveyID).
		Group("responses.question_id, survey_questions.question_text, survey_questions.question_order").
		Order("survey_questions.question_order ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetOverallAverageForSurvey returns the mean rating across every response
// belonging to a survey's members, or nil when the survey has no responses.
func (r *ResponseRepository) GetOverallAverageForSurvey(surveyID uuid.UUID) (*float64, error) {
	var avg *float64
	err := r.db.Model(&models.Response{}).
		Select("AVG(responses.rating)").
		Joins("JOIN team_members ON responses.team_member_id = team_members.id").
		Where("team_members.survey_id = ?", surveyID).
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
