package repository

import (
	"leadership-survey-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// QuestionRepository handles database operations for survey questions
type QuestionRepository struct {
	db *gorm.DB
}

// NewQuestionRepository creates a new question repository
func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// Count returns the number of question rows in the system
func (r *QuestionRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.SurveyQuestion{}).Count(&count).Error
	return count, err
}

// GetAllOrdered retrieves every question ascending by question order
func (r *QuestionRepository) GetAllOrdered() ([]models.SurveyQuestion, error) {
	var questions []models.SurveyQuestion
	err := r.db.Order("question_order ASC").Find(&questions).Error
	return questions, err
}

// GetByID retrieves a question by ID
func (r *QuestionRepository) GetByID(id uuid.UUID) (*models.SurveyQuestion, error) {
	var question models.SurveyQuestion
	err := r.db.First(&question, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &question, nil
}

// CreateBatch creates multiple questions at once
func (r *QuestionRepository) CreateBatch(questions []models.SurveyQuestion) error {
	return r.db.Create(&questions).Error
}
