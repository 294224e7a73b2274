package model

import "time"

// Job is looked up directly by its store key. EmployerID is optional; a job
// without one degrades to the "not available" employer placeholder downstream.
type Job struct {
	ID               string    `gorm:"type:varchar(64);primaryKey" json:"id"`
	Title            string    `gorm:"type:varchar(255)" json:"title"`
	SeniorityLevel   string    `gorm:"type:varchar(100)" json:"seniorityLevel"`
	RequiredSkills   []string  `gorm:"serializer:json;type:text" json:"requiredSkills"`
	RequiredDegrees  []string  `gorm:"serializer:json;type:text" json:"requiredDegrees"`
	Responsibilities string    `gorm:"type:text" json:"responsibilities"`
	EmployerID       string    `gorm:"type:varchar(64)" json:"employerId"`
	Industry         string    `gorm:"type:varchar(100)" json:"industry"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (j *Job) TableName() string {
	return "jobs"
}
