package repository

import (
	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PatientProfileRepository interface {
	Create(db *gorm.DB, profile *entity.PatientProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error)
	FindAll(db *gorm.DB) ([]entity.PatientProfile, error)
	Update(db *gorm.DB, profile *entity.PatientProfile) error
	// UpdateStatus overwrites the moderation status unconditionally.
	// Returns affected rows: 0 means no such patient profile.
	UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.PatientStatus) (int64, error)
}
