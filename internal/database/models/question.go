package models

// RequiredQuestionCount is the number of question rows the system must hold
// before surveys can be created or completed.
const RequiredQuestionCount = 3

// SurveyQuestion represents one of the fixed global rating prompts. Questions
// are shared by every survey rather than owned by one.
type SurveyQuestion struct {
	BaseModel
	QuestionText  string `json:"question_text" gorm:"type:text;not null" validate:"required"`
	QuestionOrder int    `json:"question_order" gorm:"not null;index" validate:"required,min=1"`
	ScaleMin      int    `json:"scale_min" gorm:"not null;default:1"`
	ScaleMax      int    `json:"scale_max" gorm:"not null;default:5"`
	ScaleMinLabel string `json:"scale_min_label" gorm:"not null;size:50;default:'Poor'"`
	ScaleMaxLabel string `json:"scale_max_label" gorm:"not null;size:50;default:'Excellent'"`

	// Relationships
	Responses []Response `json:"responses,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SurveyQuestion
func (SurveyQuestion) TableName() string {
	return "survey_questions"
}

// DefaultQuestions returns the 3 predefined leadership questions seeded at
// bootstrap.
func DefaultQuestions() []SurveyQuestion {
	return []SurveyQuestion{
		{
			QuestionText:  "How effectively does your manager communicate expectations?",
			QuestionOrder: 1,
			ScaleMin:      1,
			ScaleMax:      5,
			ScaleMinLabel: "Poor",
			ScaleMaxLabel: "Excellent",
		},
		{
			QuestionText:  "How well does your manager support your professional development?",
			QuestionOrder: 2,
			ScaleMin:      1,
			ScaleMax:      5,
			ScaleMinLabel: "Poor",
			ScaleMaxLabel: "Excellent",
		},
		{
			QuestionText:  "How would you rate your manager's overall leadership effectiveness?",
			QuestionOrder: 3,
			ScaleMin:      1,
			ScaleMax:      5,
			ScaleMinLabel: "Poor",
			ScaleMaxLabel: "Excellent",
		},
	}
}
