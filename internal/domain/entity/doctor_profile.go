package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoctorStatus is the moderation status of a doctor profile.
// Approval is a precondition to being a bookable doctor in the wider system.
type DoctorStatus string

const (
	DoctorStatusPending  DoctorStatus = "pending"
	DoctorStatusApproved DoctorStatus = "approved"
	DoctorStatusRejected DoctorStatus = "rejected"
	DoctorStatusBlocked  DoctorStatus = "blocked"
	DoctorStatusActive   DoctorStatus = "active"
)

// IsValid reports whether the status is one of the known doctor statuses
func (s DoctorStatus) IsValid() bool {
	switch s {
	case DoctorStatusPending, DoctorStatusApproved, DoctorStatusRejected, DoctorStatusBlocked, DoctorStatusActive:
		return true
	}
	return false
}

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID       `gorm:"type:uuid;primaryKey" json:"user_id"`
	Name            string          `gorm:"type:varchar(255);not null" json:"name"`
	Phone           string          `gorm:"type:varchar(20);not null" json:"phone"`
	Specialization  string          `gorm:"type:varchar(100);not null;index" json:"specialization"`
	ExperienceYears int             `gorm:"not null;default:0" json:"experience_years"`
	Qualification   string          `gorm:"type:varchar(255)" json:"qualification,omitempty"`
	Bio             string          `gorm:"type:text" json:"bio,omitempty"`
	ClinicName      string          `gorm:"type:varchar(255)" json:"clinic_name,omitempty"`
	Address         string          `gorm:"type:text" json:"address,omitempty"`
	Fee             decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	ProfilePicURL   string          `gorm:"type:text" json:"profile_pic_url,omitempty"`
	Status          DoctorStatus    `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
