package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds enforced both in the service layer and by the database check
// constraint.
const (
	RatingMin = 1
	RatingMax = 5
)

// Response represents one respondent's rating for one question
type Response struct {
	BaseModel
	TeamMemberID uuid.UUID `json:"team_member_id" gorm:"type:uuid;not null;index" validate:"required"`
	QuestionID   uuid.UUID `json:"question_id" gorm:"type:uuid;not null;index" validate:"required"`
	Rating       int       `json:"rating" gorm:"not null;check:chk_responses_rating,rating >= 1 AND rating <= 5" validate:"required,min=1,max=5"`
	SubmittedAt  time.Time `json:"submitted_at" gorm:"not null"`

	// Relationships
	TeamMember *TeamMember     `json:"team_member,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
	Question   *SurveyQuestion `json:"question,omitempty" gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Response
func (Response) TableName() string {
	return "responses"
}
