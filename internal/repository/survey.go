package repository

import (
	"leadership-survey-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SurveyRepository handles database operations for surveys
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Create creates a new survey
func (r *SurveyRepository) Create(survey *models.Survey) error {
	return r.db.Create(survey).Error
}

// GetByID retrieves a survey by ID
func (r *SurveyRepository) GetByID(id uuid.UUID) (*models.Survey, error) {
	var survey models.Survey
	err := r.db.First(&survey, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &survey, nil
}

// GetByManagerID retrieves all surveys owned by a manager, newest first
func (r *SurveyRepository) GetByManagerID(managerID string) ([]models.Survey, error) {
	var surveys []models.Survey
	err := r.db.Where("manager_id = ?", managerID).Order("created_at DESC").Find(&surveys).Error
	return surveys, err
}

// CreateWithTeamMembers creates a survey and its team member batch in one
// transaction. Either the survey and every member row are persisted or nothing is.
func (r *SurveyRepository) CreateWithTeamMembers(survey *models.Survey, members []models.TeamMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(survey).Error; err != nil {
			return err
		}

		for i := range members {
			members[i].SurveyID = survey.ID
		}
		if err := tx.Create(&members).Error; err != nil {
			return err
		}

		return nil
	})
}

// SetStatus sets the status of a survey
func (r *SurveyRepository) SetStatus(id uuid.UUID, status models.SurveyStatus) error {
	return r.db.Model(&models.Survey{}).Where("id = ?", id).Update("status", status).Error
}

// Delete deletes a survey; team members and their responses cascade
func (r *SurveyRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Survey{}, "id = ?", id).Error
}
