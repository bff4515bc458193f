package models

// SurveyStatus represents the lifecycle status of a survey
type SurveyStatus string

const (
	SurveyStatusActive    SurveyStatus = "active"
	SurveyStatusCompleted SurveyStatus = "completed"
	SurveyStatusDraft     SurveyStatus = "draft"
)

// Default title and description applied to every new survey.
const (
	DefaultSurveyTitle       = "Leadership Feedback Survey"
	DefaultSurveyDescription = "Your honest feedback will help improve leadership effectiveness. All responses are anonymous."
)

// Survey represents one feedback-collection campaign owned by a manager
type Survey struct {
	BaseModel
	ManagerID   string       `json:"manager_id" gorm:"not null;size:255;index" validate:"required"`
	Title       string       `json:"title" gorm:"not null;size:255;default:'Leadership Feedback Survey'"`
	Description string       `json:"description" gorm:"type:text"`
	Status      SurveyStatus `json:"status" gorm:"type:varchar(50);not null;default:'active'"`

	// Relationships
	TeamMembers []TeamMember `json:"team_members,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Survey
func (Survey) TableName() string {
	return "surveys"
}
