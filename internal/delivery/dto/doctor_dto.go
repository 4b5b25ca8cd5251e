package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

// UpsertDoctorProfileRequest carries the form fields of the multipart profile
// upload. The image itself travels alongside as a service.ProfileImage.
type UpsertDoctorProfileRequest struct {
	Name            string          `json:"name" validate:"omitempty,min=2"`
	Phone           string          `json:"phone" validate:"omitempty"`
	Specialization  string          `json:"specialization" validate:"omitempty"`
	ExperienceYears int             `json:"experience_years" validate:"gte=0,lte=80"`
	Qualification   string          `json:"qualification" validate:"omitempty"`
	Bio             string          `json:"bio" validate:"omitempty"`
	ClinicName      string          `json:"clinic_name" validate:"omitempty"`
	Address         string          `json:"address" validate:"omitempty"`
	Fee             decimal.Decimal `json:"fee" validate:"omitempty"`
}

// Response DTOs

type DoctorProfileResponse struct {
	UserID          uuid.UUID       `json:"user_id"`
	Name            string          `json:"name"`
	Phone           string          `json:"phone"`
	Specialization  string          `json:"specialization"`
	ExperienceYears int             `json:"experience_years"`
	Qualification   string          `json:"qualification,omitempty"`
	Bio             string          `json:"bio,omitempty"`
	ClinicName      string          `json:"clinic_name,omitempty"`
	Address         string          `json:"address,omitempty"`
	Fee             decimal.Decimal `json:"fee"`
	ProfilePicURL   string          `json:"profile_pic_url,omitempty"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type DoctorProfileListResponse struct {
	Doctors []DoctorProfileResponse `json:"doctors"`
	Total   int                     `json:"total"`
}
