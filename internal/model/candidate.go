package model

import (
	"time"

	"github.com/google/uuid"
)

// Candidate is the record-store snapshot fetched once per request. The
// external-facing TalentID is what clients send; ID is the store's own key.
type Candidate struct {
	ID          uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	TalentID    string    `gorm:"type:varchar(64);index" json:"talentId"`
	Name        string    `gorm:"type:varchar(255)" json:"name"`
	CareerStage string    `gorm:"type:varchar(50)" json:"careerStage"`
	Skills      []string  `gorm:"serializer:json;type:text" json:"skills"`
	Degrees     []string  `gorm:"serializer:json;type:text" json:"degrees"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Candidate) TableName() string {
	return "candidates"
}
