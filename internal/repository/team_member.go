package repository

import (
	"time"

	"leadership-survey-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamMemberRepository handles database operations for team members
type TeamMemberRepository struct {
	db *gorm.DB
}

// NewTeamMemberRepository creates a new team member repository
func NewTeamMemberRepository(db *gorm.DB) *TeamMemberRepository {
	return &TeamMemberRepository{db: db}
}

// GetByID retrieves a team member by ID
func (r *TeamMemberRepository) GetByID(id uuid.UUID) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetByUniqueLink retrieves a team member by their unique survey link token
func (r *TeamMemberRepository) GetByUniqueLink(uniqueLink string) (*models.TeamMember, error) {
	var member models.TeamMember
	err := r.db.First(&member, "unique_link = ?", uniqueLink).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// GetBySurveyID retrieves all team members for a survey
func (r *TeamMemberRepository) GetBySurveyID(surveyID uuid.UUID) ([]models.TeamMember, error) {
	var members []models.TeamMember
	err := r.db.Where("survey_id = ?", surveyID).Order("created_at ASC").Find(&members).Error
	return members, err
}

// UniqueLinkExists reports whether a token is already taken by any team member
func (r *TeamMemberRepository) UniqueLinkExists(uniqueLink string) (bool, error) {
	var count int64
	err := r.db.Model(&models.TeamMember{}).Where("unique_link = ?", uniqueLink).Count(&count).Error
	return count > 0, err
}

// GetCompletionStats returns completion statistics for a survey
func (r *TeamMemberRepository) GetCompletionStats(surveyID uuid.UUID) (*CompletionStats, error) {
	var total int64
	if err := r.db.Model(&models.TeamMember{}).Where("survey_id = ?", surveyID).Count(&total).Error; err != nil {
		return nil, err
	}

	var completed int64
	if err := r.db.Model(&models.TeamMember{}).
		Where("survey_id = ? AND has_completed = ?", surveyID, true).
		Count(&completed).Error; err != nil {
		return nil, err
	}

	stats := &CompletionStats{
		Total:     total,
		Completed: completed,
		Pending:   total - completed,
	}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}

	return stats, nil
}

// MarkCompleted flips the completion flag and stamps the completion time
func (r *TeamMemberRepository) MarkCompleted(id uuid.UUID) error {
	now := time.Now().UTC()
	return r.db.Model(&models.TeamMember{}).Where("id = ?", id).Updates(map[string]interface{}{
		"has_completed": true,
		"completed_at":  now,
	}).Error
}
