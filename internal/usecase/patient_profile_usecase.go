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

var ErrPatientNotFound = errors.New("patient profile not found")

type PatientProfileUsecase interface {
	UpsertProfile(ctx context.Context, req *dto.UpsertPatientProfileRequest, image *service.ProfileImage) (*dto.PatientProfileResponse, error)
	GetProfile(ctx context.Context) (*dto.PatientProfileResponse, error)
}

type patientProfileUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	patientRepo  repository.PatientProfileRepository
	uploader     service.ImageUploader
	uploadFolder string
	auditService service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	patientRepo repository.PatientProfileRepository,
	uploader service.ImageUploader,
	uploadFolder string,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:           db,
		log:          log,
		patientRepo:  patientRepo,
		uploader:     uploader,
		uploadFolder: uploadFolder,
		auditService: auditService,
	}
}

// UpsertProfile creates or updates the patient profile owned by the logged-in
// patient. The image is optional; when omitted the previously stored picture
// URL is preserved. Supplied fields overwrite, omitted fields are left
// untouched; the owner reference never changes.
func (u *patientProfileUsecase) UpsertProfile(ctx context.Context, req *dto.UpsertPatientProfileRequest, image *service.ProfileImage) (*dto.PatientProfileResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	var profilePicURL string
	if image != nil {
		if err := service.ValidateProfileImage(image); err != nil {
			return nil, err
		}
		url, err := u.uploader.Upload(ctx, u.uploadFolder, image)
		if err != nil {
			u.log.Warnf("Failed to upload patient profile image: %+v", err)
			return nil, err
		}
		profilePicURL = url
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientRepo.FindByUserID(tx, principal.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}

	created := profile == nil
	if created {
		profile = &entity.PatientProfile{
			UserID: principal.ID,
			Status: entity.PatientStatusActive,
		}
	}

	oldValue := converter.PatientProfileToResponse(profile)

	// Partial overwrite: only supplied fields replace existing values
	if req.Name != "" {
		profile.Name = req.Name
	}
	if req.Age > 0 {
		profile.Age = req.Age
	}
	if req.Gender != "" {
		profile.Gender = req.Gender
	}
	if req.Phone != "" {
		profile.Phone = req.Phone
	}
	if req.MedicalNotes != "" {
		profile.MedicalNotes = req.MedicalNotes
	}
	if profilePicURL != "" {
		profile.ProfilePicURL = profilePicURL
	}

	if created {
		err = u.patientRepo.Create(tx, profile)
	} else {
		err = u.patientRepo.Update(tx, profile)
	}
	if err != nil {
		u.log.Warnf("Failed to upsert patient profile: %+v", err)
		return nil, err
	}

	newValue := converter.PatientProfileToResponse(profile)
	if err := u.auditService.LogUpdate(ctx, tx, &principal.ID, entity.AuditActionPatientProfileUpsert, "patient_profile", principal.ID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	u.log.Infof("Patient profile upserted: user=%s, created=%t", principal.ID, created)
	return newValue, nil
}

func (u *patientProfileUsecase) GetProfile(ctx context.Context) (*dto.PatientProfileResponse, error) {
	principal, ok := middleware.GetPrincipalFromContext(ctx)
	if !ok {
		return nil, ErrPrincipalMissing
	}

	profile, err := u.patientRepo.FindByUserID(u.db.WithContext(ctx), principal.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	return converter.PatientProfileToResponse(profile), nil
}
