package usecase

import (
	"testing"

	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertPatientProfile_CreatesWithActiveStatus(t *testing.T) {
	db, mockDB := newTestDB(t)
	patientRepo := new(MockPatientProfileRepository)
	uploader := new(MockImageUploader)
	auditService := new(MockAuditService)

	patient := testPatient()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	patientRepo.On("FindByUserID", mock.Anything, patient.ID).Return(nil, nil)
	patientRepo.On("Create", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, &patient.ID, entity.AuditActionPatientProfileUpsert, "patient_profile", patient.ID.String(), mock.Anything, mock.Anything).Return(nil)

	u := NewPatientProfileUsecase(db, newTestLogger(), patientRepo, uploader, "patient_profiles", auditService)

	// No image: allowed for patients
	resp, err := u.UpsertProfile(principalContext(patient), &dto.UpsertPatientProfileRequest{
		Name:   "Pat Patient",
		Age:    34,
		Gender: "female",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "active", resp.Status)
	assert.Equal(t, 34, resp.Age)
	assert.Empty(t, resp.ProfilePicURL)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

// Omitting the image keeps whatever picture was stored before
func TestUpsertPatientProfile_OmittedImagePreservesURL(t *testing.T) {
	db, mockDB := newTestDB(t)
	patientRepo := new(MockPatientProfileRepository)
	uploader := new(MockImageUploader)
	auditService := new(MockAuditService)

	patient := testPatient()

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	patientRepo.On("FindByUserID", mock.Anything, patient.ID).Return(&entity.PatientProfile{
		UserID:        patient.ID,
		Name:          "Pat Patient",
		Status:        entity.PatientStatusActive,
		ProfilePicURL: "https://img.example.com/kept.jpg",
	}, nil)
	patientRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := NewPatientProfileUsecase(db, newTestLogger(), patientRepo, uploader, "patient_profiles", auditService)

	resp, err := u.UpsertProfile(principalContext(patient), &dto.UpsertPatientProfileRequest{
		Phone: "555-0123",
	}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "https://img.example.com/kept.jpg", resp.ProfilePicURL)
	assert.Equal(t, "555-0123", resp.Phone)
	assert.Equal(t, "Pat Patient", resp.Name)
}

func TestUpsertPatientProfile_NewImageReplacesURL(t *testing.T) {
	db, mockDB := newTestDB(t)
	patientRepo := new(MockPatientProfileRepository)
	uploader := new(MockImageUploader)
	auditService := new(MockAuditService)

	patient := testPatient()
	image := jpegImage(2048)

	mockDB.ExpectBegin()
	mockDB.ExpectCommit()

	uploader.On("Upload", mock.Anything, "patient_profiles", image).Return("https://img.example.com/new.jpg", nil)
	patientRepo.On("FindByUserID", mock.Anything, patient.ID).Return(&entity.PatientProfile{
		UserID:        patient.ID,
		Status:        entity.PatientStatusActive,
		ProfilePicURL: "https://img.example.com/old.jpg",
	}, nil)
	patientRepo.On("Update", mock.Anything, mock.AnythingOfType("*entity.PatientProfile")).Return(nil)
	auditService.On("LogUpdate", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)

	u := NewPatientProfileUsecase(db, newTestLogger(), patientRepo, uploader, "patient_profiles", auditService)

	resp, err := u.UpsertProfile(principalContext(patient), &dto.UpsertPatientProfileRequest{}, image)

	assert.NoError(t, err)
	assert.Equal(t, "https://img.example.com/new.jpg", resp.ProfilePicURL)
}

// A supplied image still goes through the same validation as for doctors
func TestUpsertPatientProfile_InvalidImageRejected(t *testing.T) {
	db, _ := newTestDB(t)
	uploader := new(MockImageUploader)

	u := NewPatientProfileUsecase(db, newTestLogger(), new(MockPatientProfileRepository), uploader, "patient_profiles", new(MockAuditService))

	pdf := &service.ProfileImage{
		FileName:    "scan.pdf",
		ContentType: "application/pdf",
		Size:        1024,
	}

	_, err := u.UpsertProfile(principalContext(testPatient()), &dto.UpsertPatientProfileRequest{}, pdf)

	assert.ErrorIs(t, err, service.ErrImageTypeNotAllowed)
	uploader.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPatientProfile_NotFound(t *testing.T) {
	db, _ := newTestDB(t)
	patientRepo := new(MockPatientProfileRepository)

	patient := testPatient()
	patientRepo.On("FindByUserID", mock.Anything, patient.ID).Return(nil, nil)

	u := NewPatientProfileUsecase(db, newTestLogger(), patientRepo, new(MockImageUploader), "patient_profiles", new(MockAuditService))

	_, err := u.GetProfile(principalContext(patient))

	assert.ErrorIs(t, err, ErrPatientNotFound)
}
