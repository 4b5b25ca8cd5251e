package repository

import (
	"time"

	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	// Approve transitions pending -> approved atomically.
	// Returns affected rows: 1 = success, 0 = the appointment was no longer pending.
	Approve(db *gorm.DB, id uuid.UUID, approvedAt time.Time) (int64, error)
	// Reject transitions pending -> rejected atomically, same contract as Approve.
	Reject(db *gorm.DB, id uuid.UUID, rejectedAt time.Time) (int64, error)
	DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error)
	Count(db *gorm.DB) (int64, error)
	CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error)
}
