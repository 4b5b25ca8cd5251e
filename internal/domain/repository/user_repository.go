package repository

import (
	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindAll(db *gorm.DB) ([]entity.User, error)
	FindAllByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	CountByRole(db *gorm.DB, role entity.Role) (int64, error)
}
