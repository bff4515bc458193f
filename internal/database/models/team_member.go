package models

import (
	"time"

	"github.com/google/uuid"
)

// TeamMember represents one survey respondent. Respondents are identified to
// the system only by their unique link token, which is the anonymity boundary.
type TeamMember struct {
	BaseModel
	SurveyID     uuid.UUID  `json:"survey_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name         string     `json:"name" gorm:"not null;size:255" validate:"required,max=255"`
	Email        string     `json:"email" gorm:"not null;size:255" validate:"required,email,max=255"`
	UniqueLink   string     `json:"unique_link" gorm:"uniqueIndex;not null;size:255"`
	HasCompleted bool       `json:"has_completed" gorm:"not null;default:false"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`

	// Relationships
	Survey    *Survey    `json:"survey,omitempty" gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE"`
	Responses []Response `json:"responses,omitempty" gorm:"foreignKey:TeamMemberID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TeamMember
func (TeamMember) TableName() string {
	return "team_members"
}
