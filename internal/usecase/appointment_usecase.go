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
	ErrAppointmentNotFound        = errors.New("appointment not found")
	ErrAppointmentDoctorNotFound  = errors.New("doctor not found")
	ErrAppointmentNotOwned        = errors.New("appointment is not assigned to you")
	ErrAppointmentAlreadyApproved = errors.New("appointment already approved")
	ErrAppointmentAlreadyRejected = errors.New("appointment already rejected")
	ErrInvalidTransition          = errors.New("appointment is in a terminal state")
	ErrPrincipalMissing           = errors.New("user not found in context")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	ApproveAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	RejectAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error)
	DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error
	GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		auditService:    auditService,
	}
}

// CreateAppointment books a new pending appointment for the logged-in
// patient. The patient reference always comes from the principal, never from
// the request body, so a patient cannot book on behalf of someone else.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	// The target must exist AND hold the doctor role
	doctor, err := u.userRepo.FindByID(tx, req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, ErrAppointmentDoctorNotFound
	}

	appointment := &entity.Appointment{
		PatientID:     principal.ID,
		DoctorID:      req.DoctorID,
		ScheduledAt:   req.ScheduledAt,
		Symptoms:      req.Symptoms,
		Status:        entity.AppointmentStatusPending,
		Fee:           req.Fee,
		PaymentStatus: entity.PaymentStatusUnpaid,
	}

	if err := u.appointmentRepo.Create(tx, appointment); err != nil {
		// The doctor can disappear between the lookup above and the insert
		if isForeignKeyError(err, "appointments_doctor_id") {
			return nil, ErrAppointmentDoctorNotFound
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	if err := u.auditService.LogCreate(ctx, tx, &principal.ID, entity.AuditActionAppointmentCreate, "appointment", appointment.ID.String(), converter.AppointmentToResponse(appointment)); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
		// Don't fail the transaction for audit log errors
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	// Reload with patient/doctor info for the response
	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}

	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s", appointment.ID, principal.ID, req.DoctorID)
	return converter.AppointmentToResponse(full), nil
}

// ApproveAppointment transitions pending -> approved. Only the assigned
// doctor may approve; approved and rejected are terminal with respect to each
// other, and a repeated approve is reported as a conflict, not accepted
// silently.
func (u *appointmentUsecase) ApproveAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != principal.ID {
		return nil, ErrAppointmentNotOwned
	}

	if appointment.IsApproved() {
		return nil, ErrAppointmentAlreadyApproved
	}
	if appointment.IsRejected() {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	rows, err := u.appointmentRepo.Approve(tx, appointmentID, now)
	if err != nil {
		u.log.Warnf("Failed to approve appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		// Lost the race against a concurrent transition
		return nil, ErrAppointmentAlreadyApproved
	}

	oldStatus := appointment.Status
	appointment.Approve(now)

	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionAppointmentApprove, "appointment", appointmentID.String(), oldStatus, appointment.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment approved: id=%s, doctor=%s", appointmentID, principal.ID)
	return converter.AppointmentToResponse(appointment), nil
}

// RejectAppointment transitions pending -> rejected, symmetric to approve.
func (u *appointmentUsecase) RejectAppointment(ctx context.Context, appointmentID uuid.UUID) (*dto.AppointmentResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	appointment, err := u.appointmentRepo.FindByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if appointment.DoctorID != principal.ID {
		return nil, ErrAppointmentNotOwned
	}

	if appointment.IsRejected() {
		return nil, ErrAppointmentAlreadyRejected
	}
	if appointment.IsApproved() {
		return nil, ErrInvalidTransition
	}

	now := time.Now()
	rows, err := u.appointmentRepo.Reject(tx, appointmentID, now)
	if err != nil {
		u.log.Warnf("Failed to reject appointment %s: %+v", appointmentID, err)
		return nil, err
	}
	if rows == 0 {
		return nil, ErrAppointmentAlreadyRejected
	}

	oldStatus := appointment.Status
	appointment.Reject(now)

	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionAppointmentReject, "appointment", appointmentID.String(), oldStatus, appointment.Status); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Appointment rejected: id=%s, doctor=%s", appointmentID, principal.ID)
	return converter.AppointmentToResponse(appointment), nil
}

// DeleteAppointment removes the record from any state. Admin only; the role
// gate runs in the router, so only the existence check happens here.
func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, appointmentID uuid.UUID) error {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return ErrPrincipalMissing
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	rows, err := u.appointmentRepo.DeleteByID(tx, appointmentID)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", appointmentID, err)
		return err
	}
	if rows == 0 {
		return ErrAppointmentNotFound
	}

	if err := u.auditService.LogDelete(ctx, tx, &principal.ID, entity.AuditActionAppointmentDelete, "appointment", appointmentID.String(), nil); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	u.log.Infof("Appointment deleted: id=%s, by=%s", appointmentID, principal.ID)
	return nil
}

// GetAppointments returns appointments scoped to the principal's role:
// patients see their own, doctors see ones assigned to them, admins see all.
// Always ordered by creation time descending.
func (u *appointmentUsecase) GetAppointments(ctx context.Context) (*dto.AppointmentListResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	db := u.db.WithContext(ctx)

	var appointments []entity.Appointment
	var err error

	switch principal.Role {
	case entity.RolePatient:
		appointments, err = u.appointmentRepo.FindByPatientID(db, principal.ID)
	case entity.RoleDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(db, principal.ID)
	default:
		appointments, err = u.appointmentRepo.FindAll(db)
	}

	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", principal.ID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        len(appointments),
	}, nil
}
