package usecase

import (
	"context"
	"errors"

	"healthcare-appointment-api/internal/converter"
	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/delivery/http/middleware"
	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/domain/repository"
	"healthcare-appointment-api/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDoctorNotFound = errors.New("doctor profile not found")
	ErrImageRequired  = errors.New("profile picture is required")
)

type DoctorProfileUsecase interface {
	UpsertProfile(ctx context.Context, req *dto.UpsertDoctorProfileRequest, image *service.ProfileImage) (*dto.DoctorProfileResponse, error)
	GetProfile(ctx context.Context) (*dto.DoctorProfileResponse, error)
}

type doctorProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	doctorRepo   repository.DoctorProfileRepository
	uploader     service.ImageUploader
	uploadFolder string
	auditService service.AuditService
}

func NewDoctorProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorRepo repository.DoctorProfileRepository,
	uploader service.ImageUploader,
	uploadFolder string,
	auditService service.AuditService,
) DoctorProfileUsecase {
	return &doctorProfileUsecase{
		db:           db,
		log:          log,
		doctorRepo:   doctorRepo,
		uploader:     uploader,
		uploadFolder: uploadFolder,
		auditService: auditService,
	}
}

// UpsertProfile creates or updates the doctor profile owned by the logged-in
// doctor. A profile picture is mandatory and is validated (type, size) before
// the external upload is attempted. Supplied fields overwrite, omitted fields
// are left untouched; the owner reference never changes.
func (u *doctorProfileUsecase) UpsertProfile(ctx context.Context, req *dto.UpsertDoctorProfileRequest, image *service.ProfileImage) (*dto.DoctorProfileResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	if image == nil {
		return nil, ErrImageRequired
	}
	if err := service.ValidateProfileImage(image); err != nil {
		return nil, err
	}

	profilePicURL, err := u.uploader.Upload(ctx, u.uploadFolder, image)
	if err != nil {
		u.log.Warnf("Failed to upload doctor profile image: %+v", err)
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.doctorRepo.FindByUserID(tx, principal.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}

	created := profile == nil
	if created {
		profile = &entity.DoctorProfile{
			UserID: principal.ID,
			Status: entity.DoctorStatusPending,
		}
	}

	oldValue := converter.DoctorProfileToResponse(profile)

	// Partial overwrite: only supplied fields replace existing values
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.Specialization != "" {
		profile.Specialization = req.Specialization
	}
	if req.ExperienceYears > 0 {
		profile.ExperienceYears = req.ExperienceYears
	}
	if req.Qualification != "" {
		profile.Qualification = req.Qualification
	}
	if req.Bio != "" {
		profile.Bio = req.Bio
	}
	if req.ClinicName != "" {
		profile.ClinicName = req.ClinicName
	}
	if req.Address != "" {
		profile.Address = req.Address
	}
	if !req.Fee.IsZero() {
		profile.Fee = req.Fee
	}
	profile.ProfilePicURL = profilePicURL

	if created {
		err = u.doctorRepo.Create(tx, profile)
	} else {
		err = u.doctorRepo.Update(tx, profile)
	}
	if err != nil {
		u.log.Warnf("Failed to upsert doctor profile: %+v", err)
		return nil, err
	}

	newValue := converter.DoctorProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionDoctorProfileUpsert, "doctor_profile", principal.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Doctor profile upserted: user=%s, created=%t", principal.ID, created)
	return newValue, nil
}

func (u *doctorProfileUsecase) GetProfile(ctx context.Context) (*dto.DoctorProfileResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	profile, err := u.doctorRepo.FindByUserID(u.db.WithContext(ctx), principal.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorProfileToResponse(profile), nil
}
