package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	DoctorID    uuid.UUID       `json:"doctor_id" validate:"required"`
	ScheduledAt time.Time       `json:"scheduled_at" validate:"required"`
	Symptoms    string          `json:"symptoms" validate:"omitempty,max=2000"`
	Fee         decimal.Decimal `json:"fee" validate:"omitempty"`
}

// Response DTOs

// PartyResponse is the display identity of a patient or doctor on an
// appointment. Secret fields never appear here.
type PartyResponse struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type AppointmentResponse struct {
	ID            uuid.UUID       `json:"id"`
	Status        string          `json:"status"`
	ScheduledAt   time.Time       `json:"scheduled_at"`
	Symptoms      string          `json:"symptoms,omitempty"`
	Fee           decimal.Decimal `json:"fee"`
	PaymentStatus string          `json:"payment_status"`
	ApprovedAt    *time.Time      `json:"approved_at,omitempty"`
	RejectedAt    *time.Time      `json:"rejected_at,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Patient       *PartyResponse  `json:"patient,omitempty"`
	Doctor        *PartyResponse  `json:"doctor,omitempty"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
