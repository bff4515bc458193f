package database

import (
	"fmt"

	"leadership-survey-backend/internal/database/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SeedDefaultQuestions inserts the 3 predefined questions when the question
// table is empty. Surveys cannot be created or completed until exactly 3
// question rows exist, so this runs at bootstrap before the server starts.
func SeedDefaultQuestions(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.SurveyQuestion{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count questions: %w", err)
	}

	if count > 0 {
		logrus.Infof("Question seed skipped, %d questions already present", count)
		return nil
	}

	questions := models.DefaultQuestions()
	if err := db.Create(&questions).Error; err != nil {
		return fmt.Errorf("seed questions: %w", err)
	}

	logrus.Infof("Seeded %d default survey questions", len(questions))
	return nil
}
