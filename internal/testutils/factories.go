package testutils

import (
	"fmt"
	"time"

	"leadership-survey-backend/internal/database/models"

	"github.com/google/uuid"
)

// SurveyFactory provides methods to create test Survey data
type SurveyFactory struct{}

// NewSurveyFactory creates a new SurveyFactory
func NewSurveyFactory() *SurveyFactory {
	return &SurveyFactory{}
}

// Create creates a test Survey with default values
func (f *SurveyFactory) Create() *models.Survey {
	return &models.Survey{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ManagerID:   "manager-123",
		Title:       models.DefaultSurveyTitle,
		Description: models.DefaultSurveyDescription,
		Status:      models.SurveyStatusActive,
	}
}

// WithManagerID sets a custom manager id for the survey
func (f *SurveyFactory) WithManagerID(managerID string) *models.Survey {
	survey := f.Create()
	survey.ManagerID = managerID
	return survey
}

// WithStatus sets a custom status for the survey
func (f *SurveyFactory) WithStatus(status models.SurveyStatus) *models.Survey {
	survey := f.Create()
	survey.Status = status
	return survey
}

// TeamMemberFactory provides methods to create test TeamMember data
type TeamMemberFactory struct{}

// NewTeamMemberFactory creates a new TeamMemberFactory
func NewTeamMemberFactory() *TeamMemberFactory {
	return &TeamMemberFactory{}
}

// Create creates a test TeamMember for a survey
func (f *TeamMemberFactory) Create(surveyID uuid.UUID) *models.TeamMember {
	id := uuid.New()
	return &models.TeamMember{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SurveyID:     surveyID,
		Name:         "Test Member",
		Email:        fmt.Sprintf("member-%s@test.com", id.String()[:8]),
		UniqueLink:   fmt.Sprintf("token-%s", id.String()),
		HasCompleted: false,
	}
}

// Completed creates a team member already marked completed
func (f *TeamMemberFactory) Completed(surveyID uuid.UUID) *models.TeamMember {
	member := f.Create(surveyID)
	now := time.Now()
	member.HasCompleted = true
	member.CompletedAt = &now
	return member
}

// QuestionFactory provides methods to create test SurveyQuestion data
type QuestionFactory struct{}

// NewQuestionFactory creates a new QuestionFactory
func NewQuestionFactory() *QuestionFactory {
	return &QuestionFactory{}
}

// CreateDefaultSet creates the 3 predefined questions with fresh ids
func (f *QuestionFactory) CreateDefaultSet() []models.SurveyQuestion {
	questions := models.DefaultQuestions()
	for i := range questions {
		questions[i].ID = uuid.New()
		questions[i].CreatedAt = time.Now()
		questions[i].UpdatedAt = time.Now()
	}
	return questions
}

// ResponseFactory provides methods to create test Response data
type ResponseFactory struct{}

// NewResponseFactory creates a new ResponseFactory
func NewResponseFactory() *ResponseFactory {
	return &ResponseFactory{}
}

// Create creates a test Response with the given rating
func (f *ResponseFactory) Create(teamMemberID, questionID uuid.UUID, rating int) *models.Response {
	return &models.Response{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamMemberID: teamMemberID,
		QuestionID:   questionID,
		Rating:       rating,
		SubmittedAt:  time.Now(),
	}
}
