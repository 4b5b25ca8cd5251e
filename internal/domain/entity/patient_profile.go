package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientStatus is the moderation status of a patient profile
type PatientStatus string

const (
	PatientStatusActive  PatientStatus = "active"
	PatientStatusBlocked PatientStatus = "blocked"
)

// IsValid reports whether the status is one of the known patient statuses
func (s PatientStatus) IsValid() bool {
	return s == PatientStatusActive || s == PatientStatusBlocked
}

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID        uuid.UUID     `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name          string        `gorm:"type:varchar(255)" json:"name,omitempty"`
	Age           int           `gorm:"default:0" json:"age,omitempty"`
	Gender        string        `gorm:"type:varchar(10)" json:"gender,omitempty"`
	Phone         string        `gorm:"type:varchar(20)" json:"phone,omitempty"`
	MedicalNotes  string        `gorm:"type:text" json:"medical_notes,omitempty"`
	ProfilePicURL string        `gorm:"type:text" json:"profile_pic_url,omitempty"`
	Status        PatientStatus `gorm:"type:varchar(20);not null;default:'active';index" json:"status"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
