package repository

import (
	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorProfileRepository interface {
	Create(db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error)
	FindAll(db *gorm.DB) ([]entity.DoctorProfile, error)
	Update(db *gorm.DB, profile *entity.DoctorProfile) error
	// UpdateStatus overwrites the moderation status unconditionally.
	// Returns affected rows: 0 means no such doctor profile.
	UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.DoctorStatus) (int64, error)
}
