package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/service"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB builds a gorm handle backed by sqlmock. Repositories are mocked
// in these tests, so only transaction boundaries reach the driver.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mockDB, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mockDB
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// MockUserRepository is a mock implementation of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAll(db *gorm.DB) ([]entity.User, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) FindAllByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	args := m.Called(db, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.User), args.Error(1)
}

func (m *MockUserRepository) CountByRole(db *gorm.DB, role entity.Role) (int64, error) {
	args := m.Called(db, role)
	return args.Get(0).(int64), args.Error(1)
}

// MockAppointmentRepository is a mock implementation of repository.AppointmentRepository
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Approve(db *gorm.DB, id uuid.UUID, approvedAt time.Time) (int64, error) {
	args := m.Called(db, id, approvedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) Reject(db *gorm.DB, id uuid.UUID, rejectedAt time.Time) (int64, error) {
	args := m.Called(db, id, rejectedAt)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteByID(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) Count(db *gorm.DB) (int64, error) {
	args := m.Called(db)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAppointmentRepository) CountCreatedBetween(db *gorm.DB, start, end time.Time) (int64, error) {
	args := m.Called(db, start, end)
	return args.Get(0).(int64), args.Error(1)
}

// MockDoctorProfileRepository is a mock implementation of repository.DoctorProfileRepository
type MockDoctorProfileRepository struct {
	mock.Mock
}

func (m *MockDoctorProfileRepository) Create(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.DoctorProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) FindAll(db *gorm.DB) ([]entity.DoctorProfile, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.DoctorProfile), args.Error(1)
}

func (m *MockDoctorProfileRepository) Update(db *gorm.DB, profile *entity.DoctorProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockDoctorProfileRepository) UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.DoctorStatus) (int64, error) {
	args := m.Called(db, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockPatientProfileRepository is a mock implementation of repository.PatientProfileRepository
type MockPatientProfileRepository struct {
	mock.Mock
}

func (m *MockPatientProfileRepository) Create(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.PatientProfile, error) {
	args := m.Called(db, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) FindAll(db *gorm.DB) ([]entity.PatientProfile, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PatientProfile), args.Error(1)
}

func (m *MockPatientProfileRepository) Update(db *gorm.DB, profile *entity.PatientProfile) error {
	args := m.Called(db, profile)
	return args.Error(0)
}

func (m *MockPatientProfileRepository) UpdateStatus(db *gorm.DB, userID uuid.UUID, status entity.PatientStatus) (int64, error) {
	args := m.Called(db, userID, status)
	return args.Get(0).(int64), args.Error(1)
}

// MockAuditLogRepository is a mock implementation of repository.AuditLogRepository
type MockAuditLogRepository struct {
	mock.Mock
}

func (m *MockAuditLogRepository) Create(db *gorm.DB, auditLog *entity.AuditLog) error {
	args := m.Called(db, auditLog)
	return args.Error(0)
}

func (m *MockAuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AuditLog), args.Error(1)
}

func (m *MockAuditLogRepository) FindAll(db *gorm.DB) ([]entity.AuditLog, error) {
	args := m.Called(db)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.AuditLog), args.Error(1)
}

// MockAuditService is a mock implementation of service.AuditService
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *MockAuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}

// MockImageUploader is a mock implementation of service.ImageUploader
type MockImageUploader struct {
	mock.Mock
}

func (m *MockImageUploader) Upload(ctx context.Context, folder string, img *service.ProfileImage) (string, error) {
	args := m.Called(ctx, folder, img)
	return args.String(0), args.Error(1)
}
