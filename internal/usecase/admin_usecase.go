package usecase

import (
	"context"
	"errors"
	"time"

	"healthcare-appointment-api/internal/converter"
	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/delivery/http/middleware"
	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/domain/repository"
	"healthcare-appointment-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorProfileNotFound  = errors.New("doctor not found")
	ErrPatientProfileNotFound = errors.New("patient not found")
	ErrInvalidDoctorStatus    = errors.New("invalid doctor status")
	ErrInvalidPatientStatus   = errors.New("invalid patient status")
)

type AdminUsecase interface {
	GetDashboard(ctx context.Context) (*dto.DashboardResponse, error)
	GetAllUsers(ctx context.Context) (*dto.UserListResponse, error)
	GetAllDoctors(ctx context.Context) (*dto.DoctorProfileListResponse, error)
	GetAllPatients(ctx context.Context) (*dto.PatientProfileListResponse, error)
	SetDoctorStatus(ctx context.Context, doctorID uuid.UUID, status entity.DoctorStatus) (*dto.DoctorProfileResponse, error)
	SetPatientStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) (*dto.PatientProfileResponse, error)
}

type adminUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	doctorRepo      repository.DoctorProfileRepository
	patientRepo     repository.PatientProfileRepository
	auditService    service.AuditService
}

func NewAdminUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	doctorRepo repository.DoctorProfileRepository,
	patientRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) AdminUsecase {
	return &adminUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		doctorRepo:      doctorRepo,
		patientRepo:     patientRepo,
		auditService:    auditService,
	}
}

// GetDashboard returns aggregate counts. "Today" is the current calendar day
// in the server's local time zone, inclusive on both ends.
func (u *adminUsecase) GetDashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	db := u.db.WithContext(ctx)

	totalDoctors, err := u.userRepo.CountByRole(db, entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to count doctors: %+v", err)
		return nil, err
	}

	totalPatients, err := u.userRepo.CountByRole(db, entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to count patients: %+v", err)
		return nil, err
	}

	totalAppointments, err := u.appointmentRepo.Count(db)
	if err != nil {
		u.log.Warnf("Failed to count appointments: %+v", err)
		return nil, err
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	endOfDay := startOfDay.Add(24*time.Hour - time.Millisecond)

	todaysAppointments, err := u.appointmentRepo.CountCreatedBetween(db, startOfDay, endOfDay)
	if err != nil {
		u.log.Warnf("Failed to count today's appointments: %+v", err)
		return nil, err
	}

	return &dto.DashboardResponse{
		TotalDoctors:       totalDoctors,
		TotalPatients:      totalPatients,
		TotalAppointments:  totalAppointments,
		TodaysAppointments: todaysAppointments,
	}, nil
}

// GetAllUsers lists every user minus secret fields. An empty result is a
// success with an empty slice, not an error.
func (u *adminUsecase) GetAllUsers(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return &dto.UserListResponse{
		Users: converter.UsersToResponses(users),
		Total: len(users),
	}, nil
}

func (u *adminUsecase) GetAllDoctors(ctx context.Context) (*dto.DoctorProfileListResponse, error) {
	profiles, err := u.doctorRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all doctor profiles: %+v", err)
		return nil, err
	}

	return &dto.DoctorProfileListResponse{
		Doctors: converter.DoctorProfilesToResponses(profiles),
		Total:   len(profiles),
	}, nil
}

func (u *adminUsecase) GetAllPatients(ctx context.Context) (*dto.PatientProfileListResponse, error) {
	profiles, err := u.patientRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all patient profiles: %+v", err)
		return nil, err
	}

	return &dto.PatientProfileListResponse{
		Patients: converter.PatientProfilesToResponses(profiles),
		Total:    len(profiles),
	}, nil
}

// SetDoctorStatus overwrites the doctor's moderation status unconditionally;
// any status is reachable from any other.
func (u *adminUsecase) SetDoctorStatus(ctx context.Context, doctorID uuid.UUID, status entity.DoctorStatus) (*dto.DoctorProfileResponse, error) {
	if !status.IsValid() || status == entity.DoctorStatusPending {
		return nil, ErrInvalidDoctorStatus
	}

	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.doctorRepo.UpdateStatus(tx, doctorID, status)
	if err != nil {
		u.log.Warnf("Failed to update doctor %s status: %+v", doctorID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrDoctorProfileNotFound
	}

	profile, err := u.doctorRepo.FindByUserID(tx, doctorID)
	if err != nil || profile == nil {
		u.log.Warnf("Failed to reload doctor profile %s: %+v", doctorID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionDoctorStatusChange, "doctor_profile", doctorID.String(), nil, status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor status changed: id=%s, status=%s, by=%s", doctorID, status, principal.ID)
	return converter.DoctorProfileToResponse(profile), nil
}

// SetPatientStatus is symmetric to SetDoctorStatus for patient profiles.
func (u *adminUsecase) SetPatientStatus(ctx context.Context, patientID uuid.UUID, status entity.PatientStatus) (*dto.PatientProfileResponse, error) {
	if !status.IsValid() {
		return nil, ErrInvalidPatientStatus
	}

	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.patientRepo.UpdateStatus(tx, patientID, status)
	if err != nil {
		u.log.Warnf("Failed to update patient %s status: %+v", patientID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrPatientProfileNotFound
	}

	profile, err := u.patientRepo.FindByUserID(tx, patientID)
	if err != nil || profile == nil {
		u.log.Warnf("Failed to reload patient profile %s: %+v", patientID, err)
		return nil, err
	}

	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionPatientStatusChange, "patient_profile", patientID.String(), nil, status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient status changed: id=%s, status=%s, by=%s", patientID, status, principal.ID)
	return converter.PatientProfileToResponse(profile), nil
}
