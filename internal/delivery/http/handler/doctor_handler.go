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

	"github.com/shopspring/decimal"
)

var (
	errInvalidExperienceYears = errors.New("experience_years must be a number")
	errInvalidFee             = errors.New("fee must be a valid amount")
)

type DoctorHandler struct {
	doctorProfileUsecase usecase.DoctorProfileUsecase
	validator            *validator.CustomValidator
}

func NewDoctorHandler(doctorProfileUsecase usecase.DoctorProfileUsecase, validator *validator.CustomValidator) *DoctorHandler {
	return &DoctorHandler{
		doctorProfileUsecase: doctorProfileUsecase,
		validator:            validator,
	}
}

// UpsertProfile creates or updates the logged-in doctor's profile. The body is
// multipart/form-data and must include a JPEG or PNG profile picture.
func (h *DoctorHandler) UpsertProfile(w http.ResponseWriter, r *http.Request) {
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

	profile, err := h.doctorProfileUsecase.UpsertProfile(r.Context(), req, image)
	if err != nil {
		switch err {
		case usecase.ErrImageRequired:
			response.Error(w, http.StatusBadRequest, "Profile picture is required", nil)
		case service.ErrImageTooLarge:
			response.Error(w, http.StatusBadRequest, "Profile picture must be at most 2MB", nil)
		case service.ErrImageTypeNotAllowed:
			response.Error(w, http.StatusBadRequest, "Only JPEG and PNG images are allowed", nil)
		default:
			response.InternalServerError(w, "Failed to save doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile saved", profile)
}

// GetProfile returns the logged-in doctor's profile
func (h *DoctorHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.doctorProfileUsecase.GetProfile(r.Context())
	if err != nil {
		switch err {
		case usecase.ErrDoctorNotFound:
			response.NotFound(w, "Doctor profile not found")
		default:
			response.InternalServerError(w, "Failed to fetch doctor profile")
		}
		return
	}

	response.Success(w, http.StatusOK, "Doctor profile retrieved successfully", profile)
}

func (h *DoctorHandler) parseProfileForm(r *http.Request) (*dto.UpsertDoctorProfileRequest, error) {
	req := &dto.UpsertDoctorProfileRequest{
		Name:           r.FormValue("name"),
		Phone:          r.FormValue("phone"),
		Specialization: r.FormValue("specialization"),
		Qualification:  r.FormValue("qualification"),
		Bio:            r.FormValue("bio"),
		ClinicName:     r.FormValue("clinic_name"),
		Address:        r.FormValue("address"),
	}

	if v := r.FormValue("experience_years"); v != "" {
		years, err := strconv.Atoi(v)
		if err != nil {
			return nil, errInvalidExperienceYears
		}
		req.ExperienceYears = years
	}

	if v := r.FormValue("fee"); v != "" {
		fee, err := decimal.NewFromString(v)
		if err != nil {
			return nil, errInvalidFee
		}
		req.Fee = fee
	}

	return req, nil
}
