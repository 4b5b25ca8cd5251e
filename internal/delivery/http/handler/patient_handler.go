package handler

import (
	"errors"
	"net/http"
	"strconv"

	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/service"
	"healthcare-appointment-api/internal/usecase"
	"healthcare-appointment-api/pkg/response"
	"healthcare-appointment-api/pkg/validator"
)

var errInvalidAge = errors.New("age must be a number")

type PatientHandler struct {
	patientProfileUsecase usecase.PatientProfileUsecase
	validator             *validator.CustomValidator
}

func NewPatientHandler(patientProfileUsecase usecase.PatientProfileUsecase, validator *validator.CustomValidator) *PatientHandler {
	return &PatientHandler{
		patientProfileUsecase: patientProfileUsecase,
		validator:             validator,
	}
}

// UpsertProfile creates or updates the logged-in patient's profile. The body
// is multipart/form-data; the profile picture is optional and the previous
// one is kept when no new image is sent.
func (h *PatientHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxProfileRequestSize)
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid multipart form", nil)
		return
	}

	req, err := h.parseProfileForm(r)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	if err := h.validator.Validate(req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	image, err := readProfileImage(r)
	if err != nil {
		switch err {
		case service.ErrImageTooLarge:
			response.Error(w, http.StatusBadRequest, "Profile picture must be at most 2MB", nil)
		default:
			response.Error(w, http.StatusBadRequest, "Failed to read profile picture", nil)
		}
		return
	}

	profile, err := h.patientProfileUsecase.UpsertProfile(r.Context(), req, image)
	if err != nil {
		switch err {
		case service.ErrImageTooLarge:
			response.Error(w, http.StatusBadRequest, "Profile picture must be at most 2MB", nil)
		case service.ErrImageTypeNotAllowed:
			response.Error(w, http.StatusBadRequest, "Only JPEG and PNG images are allowed", nil)
		default:
			response.InternalServerError(w, "Failed to save patient profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient profile saved", profile)
}

// GetProfile returns the logged-in patient's profile
func (h *PatientHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.patientProfileUsecase.GetProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient profile not found")
		default:
			response.InternalServerError(w, "Failed to fetch patient profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Patient profile retrieved successfully", profile)
}

func (h *PatientHandler) parseProfileForm(r *http.Request) (*dto.UpsertPatientProfileRequest, error) {
	req := &dto.UpsertPatientProfileRequest{
		Name:         r.FormValue("name"),
		Gender:       r.FormValue("gender"),
		Phone:        r.FormValue("phone"),
		MedicalNotes: r.FormValue("medical_notes"),
	}

	if v := r.FormValue("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidAge
		}
		req.Age = age
	}

	return req, nil
}
