package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type UpsertPatientProfileRequest struct {
	Name         string `json:"name" validate:"omitempty,min=2"`
	Age          int    `json:"age" validate:"gte=0,lte=150"`
	Gender       string `json:"gender" validate:"omitempty,oneof=male female other"`
	Phone        string `json:"phone" validate:"omitempty"`
	MedicalNotes string `json:"medical_notes" validate:"omitempty,max=5000"`
}

// Response DTOs

type PatientProfileResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	Name          string    `json:"name,omitempty"`
	Age           int       `json:"age,omitempty"`
	Gender        string    `json:"gender,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	MedicalNotes  string    `json:"medical_notes,omitempty"`
	ProfilePicURL string    `json:"profile_pic_url,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type PatientProfileListResponse struct {
	Patients []PatientProfileResponse `json:"patients"`
	Total    int                      `json:"total"`
}
