package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending  AppointmentStatus = "pending"
	AppointmentStatusApproved AppointmentStatus = "approved"
	AppointmentStatusRejected AppointmentStatus = "rejected"
)

// PaymentStatus represents whether the consultation fee has been settled
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

// Appointment links a patient to a doctor at a scheduled time.
// The status moves from pending to exactly one of approved or rejected;
// approved and rejected are terminal with respect to each other.
type Appointment struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID     uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID      uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	ScheduledAt   time.Time         `gorm:"not null" json:"scheduled_at"`
	Symptoms      string            `gorm:"type:text" json:"symptoms,omitempty"`
	Status        AppointmentStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	Fee           decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"fee"`
	PaymentStatus PaymentStatus     `gorm:"type:varchar(10);not null;default:'unpaid'" json:"payment_status"`
	ApprovedAt    *time.Time        `json:"approved_at,omitempty"`
	RejectedAt    *time.Time        `json:"rejected_at,omitempty"`
	CreatedAt     time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsPending checks if the appointment is still awaiting a decision
func (a *Appointment) IsPending() bool {
	return a.Status == AppointmentStatusPending
}

// IsApproved checks if the appointment has been approved
func (a *Appointment) IsApproved() bool {
	return a.Status == AppointmentStatusApproved
}

// IsRejected checks if the appointment has been rejected
func (a *Appointment) IsRejected() bool {
	return a.Status == AppointmentStatusRejected
}

// Approve marks the appointment approved at the given instant
func (a *Appointment) Approve(at time.Time) {
	a.Status = AppointmentStatusApproved
	a.ApprovedAt = &at
}

// Reject marks the appointment rejected at the given instant
func (a *Appointment) Reject(at time.Time) {
	a.Status = AppointmentStatusRejected
	a.RejectedAt = &at
}
