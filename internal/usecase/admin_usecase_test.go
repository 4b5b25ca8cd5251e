package usecase

import (
	"testing"
	"time"

	"healthcare-appointment-api/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testAdmin() *entity.User {
	return &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleAdmin,
		Email:    "admin@example.com",
		FullName: "Ada Admin",
	}
}

func newAdminUsecaseForTest(t *testing.T) (AdminUsecase, *MockUserRepository, *MockAppointmentRepository, *MockDoctorProfileRepository, *MockPatientProfileRepository, *MockAuditService, sqlmock.Sqlmock) {
	db, mockDB := newTestDB(t)
	userRepo := new(MockUserRepository)
	appointmentRepo := new(MockAppointmentRepository)
	doctorRepo := new(MockDoctorProfileRepository)
	patientRepo := new(MockPatientProfileRepository)
	auditService := new(MockAuditService)

	u := NewAdminUsecase(db, newTestLogger(), userRepo, appointmentRepo, doctorRepo, patientRepo, auditService)
	return u, userRepo, appointmentRepo, doctorRepo, patientRepo, auditService, mockDB
}

func TestGetDashboard(t *testing.T) {
	u, userRepo, appointmentRepo, _, _, _, _ := newAdminUsecaseForTest(t)

	userRepo.On("CountByRole", mock.Anything, entity.RoleDoctor).Return(int64(4), nil)
	userRepo.On("CountByRole", mock.Anything, entity.RolePatient).Return(int64(25), nil)
	appointmentRepo.On("Count", mock.Anything).Return(int64(90), nil)
	appointmentRepo.On("CountCreatedBetween", mock.Anything, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time")).
		Run(func(args mock.Arguments) {
			start := args.Get(1).(time.Time)
			end := args.Get(2).(time.Time)

			// Window covers the whole local calendar day, inclusive ends
			now := time.Now()
			assert.Equal(t, 0, start.Hour())
			assert.Equal(t, 0, start.Minute())
			assert.Equal(t, 0, start.Second())
			assert.Equal(t, now.Day(), start.Day())
			assert.Equal(t, 24*time.Hour-time.Millisecond, end.Sub(start))
		}).
		Return(int64(7), nil)

	resp, err := u.GetDashboard(principalContext(testAdmin()))

	assert.NoError(t, err)
	assert.Equal(t, int64(4), resp.TotalDoctors)
	assert.Equal(t, int64(25), resp.TotalPatients)
	assert.Equal(t, int64(90), resp.TotalAppointments)
	assert.Equal(t, int64(7), resp.TodaysAppointments)
}

func TestGetAllUsers_EmptyIsSuccess(t *testing.T) {
	u, userRepo, _, _, _, _, _ := newAdminUsecaseForTest(t)

	userRepo.On("FindAll", mock.Anything).Return([]entity.User{}, nil)

	resp, err := u.GetAllUsers(principalContext(testAdmin()))

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Users)
}

func TestGetAllUsers(t *testing.T) {
	u, userRepo, _, _, _, _, _ := newAdminUsecaseForTest(t)

	userRepo.On("FindAll", mock.Anything).Return([]entity.User{
		{ID: uuid.New(), Role: entity.RoleDoctor, Email: "d@example.com", FullName: "Doc"},
		{ID: uuid.New(), Role: entity.RolePatient, Email: "p@example.com", FullName: "Pat"},
	}, nil)

	resp, err := u.GetAllUsers(principalContext(testAdmin()))

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "doctor", resp.Users[0].Role)
}

func TestGetAllDoctors(t *testing.T) {
	u, _, _, doctorRepo, _, _, _ := newAdminUsecaseForTest(t)

	doctorRepo.On("FindAll", mock.Anything).Return([]entity.DoctorProfile{
		{UserID: uuid.New(), Name: "Dr. A", Status: entity.DoctorStatusApproved},
		{UserID: uuid.New(), Name: "Dr. B", Status: entity.DoctorStatusPending},
	}, nil)

	resp, err := u.GetAllDoctors(principalContext(testAdmin()))

	assert.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "approved", resp.Doctors[0].Status)
}

func TestGetAllPatients_EmptyIsSuccess(t *testing.T) {
	u, _, _, _, patientRepo, _, _ := newAdminUsecaseForTest(t)

	patientRepo.On("FindAll", mock.Anything).Return([]entity.PatientProfile{}, nil)

	resp, err := u.GetAllPatients(principalContext(testAdmin()))

	assert.NoError(t, err)
	assert.Equal(t, 0, resp.Total)
	assert.NotNil(t, resp.Patients)
}

func TestSetDoctorStatus_Success(t *testing.T) {
	u, _, _, doctorRepo, _, auditService, mockDB := newAdminUsecaseForTest(t)

	admin := testAdmin()
	doctorID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	doctorRepo.On("UpdateStatus", mock.Anything, doctorID, entity.DoctorStatusBlocked).Return(int64(1), nil)
	doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.DoctorProfile{
		UserID: doctorID,
		Name:   "Dr. A",
		Status: entity.DoctorStatusBlocked,
	}, nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, &admin.ID, entity.AuditActionDoctorStatusChange, "doctor_profile", doctorID.String(), nil, entity.DoctorStatusBlocked).Return(nil)

	resp, err := u.SetDoctorStatus(principalContext(admin), doctorID, entity.DoctorStatusBlocked)

	assert.NoError(t, err)
	assert.Equal(t, "blocked", resp.Status)
	doctorRepo.AssertExpectations(t)
}

// The overwrite is unconditional: moving from blocked back to approved goes
// through the same path with no precondition on the current value.
func TestSetDoctorStatus_OverwritesUnconditionally(t *testing.T) {
	u, _, _, doctorRepo, _, auditService, mockDB := newAdminUsecaseForTest(t)

	admin := testAdmin()
	doctorID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	doctorRepo.On("UpdateStatus", mock.Anything, doctorID, entity.DoctorStatusApproved).Return(int64(1), nil)
	doctorRepo.On("FindByUserID", mock.Anything, doctorID).Return(&entity.DoctorProfile{
		UserID: doctorID,
		Status: entity.DoctorStatusApproved,
	}, nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, &admin.ID, entity.AuditActionDoctorStatusChange, "doctor_profile", doctorID.String(), nil, entity.DoctorStatusApproved).Return(nil)

	resp, err := u.SetDoctorStatus(principalContext(admin), doctorID, entity.DoctorStatusApproved)

	assert.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
}

func TestSetDoctorStatus_NotFound(t *testing.T) {
	u, _, _, doctorRepo, _, _, mockDB := newAdminUsecaseForTest(t)

	doctorID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectRollback()

	doctorRepo.On("UpdateStatus", mock.Anything, doctorID, entity.DoctorStatusActive).Return(int64(0), nil)

	_, err := u.SetDoctorStatus(principalContext(testAdmin()), doctorID, entity.DoctorStatusActive)

	assert.ErrorIs(t, err, ErrDoctorProfileNotFound)
}

func TestSetDoctorStatus_InvalidStatus(t *testing.T) {
	u, _, _, doctorRepo, _, _, _ := newAdminUsecaseForTest(t)

	_, err := u.SetDoctorStatus(principalContext(testAdmin()), uuid.New(), entity.DoctorStatus("suspended"))

	assert.ErrorIs(t, err, ErrInvalidDoctorStatus)
	doctorRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

// Pending is the registration default, not an admin decision
func TestSetDoctorStatus_PendingNotSettable(t *testing.T) {
	u, _, _, _, _, _, _ := newAdminUsecaseForTest(t)

	_, err := u.SetDoctorStatus(principalContext(testAdmin()), uuid.New(), entity.DoctorStatusPending)

	assert.ErrorIs(t, err, ErrInvalidDoctorStatus)
}

func TestSetPatientStatus_Success(t *testing.T) {
	u, _, _, _, patientRepo, auditService, mockDB := newAdminUsecaseForTest(t)

	admin := testAdmin()
	patientID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	patientRepo.On("UpdateStatus", mock.Anything, patientID, entity.PatientStatusBlocked).Return(int64(1), nil)
	patientRepo.On("FindByUserID", mock.Anything, patientID).Return(&entity.PatientProfile{
		UserID: patientID,
		Status: entity.PatientStatusBlocked,
	}, nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, &admin.ID, entity.AuditActionPatientStatusChange, "patient_profile", patientID.String(), nil, entity.PatientStatusBlocked).Return(nil)

	resp, err := u.SetPatientStatus(principalContext(admin), patientID, entity.PatientStatusBlocked)

	assert.NoError(t, err)
	assert.Equal(t, "blocked", resp.Status)
}

func TestSetPatientStatus_NotFound(t *testing.T) {
	u, _, _, _, patientRepo, _, mockDB := newAdminUsecaseForTest(t)

	patientID := uuid.New()

	mockDB.ExpectBegin()
	mockDB.ExpectRollback()

	patientRepo.On("UpdateStatus", mock.Anything, patientID, entity.PatientStatusActive).Return(int64(0), nil)

	_, err := u.SetPatientStatus(principalContext(testAdmin()), patientID, entity.PatientStatusActive)

	assert.ErrorIs(t, err, ErrPatientProfileNotFound)
}

func TestSetPatientStatus_InvalidStatus(t *testing.T) {
	u, _, _, _, patientRepo, _, _ := newAdminUsecaseForTest(t)

	_, err := u.SetPatientStatus(principalContext(testAdmin()), uuid.New(), entity.PatientStatus("approved"))

	assert.ErrorIs(t, err, ErrInvalidPatientStatus)
	patientRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}
