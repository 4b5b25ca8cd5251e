package handler

import (
	"net/http"

	"healthcare-appointment-api/internal/domain/entity"
	"healthcare-appointment-api/internal/usecase"
	"healthcare-appointment-api/pkg/response"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AdminHandler struct {
	adminUsecase usecase.AdminUsecase
}

func NewAdminHandler(adminUsecase usecase.AdminUsecase) *AdminHandler {
	return &AdminHandler{adminUsecase: adminUsecase}
}

// GetDashboard returns platform-wide counters for the admin dashboard
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.adminUsecase.GetDashboard(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch dashboard")
		return
	}

	response.Success(w, http.StatusOK, "Dashboard retrieved successfully", dashboard)
}

// GetAllUsers lists every registered account
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.adminUsecase.GetAllUsers(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch users")
		return
	}

	response.Success(w, http.StatusOK, "Users retrieved successfully", users)
}

// GetAllDoctors lists every doctor profile
func (h *AdminHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	doctors, err := h.adminUsecase.GetAllDoctors(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch doctors")
		return
	}

	response.Success(w, http.StatusOK, "Doctors retrieved successfully", doctors)
}

// GetAllPatients lists every patient profile
func (h *AdminHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	patients, err := h.adminUsecase.GetAllPatients(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch patients")
		return
	}

	response.Success(w, http.StatusOK, "Patients retrieved successfully", patients)
}

// ApproveDoctor marks a doctor profile as approved
func (h *AdminHandler) ApproveDoctor(w http.ResponseWriter, r *http.Request) {
	h.setDoctorStatus(w, r, entity.DoctorStatusApproved, "Doctor approved")
}

// RejectDoctor marks a doctor profile as rejected
func (h *AdminHandler) RejectDoctor(w http.ResponseWriter, r *http.Request) {
	h.setDoctorStatus(w, r, entity.DoctorStatusRejected, "Doctor rejected")
}

// BlockDoctor marks a doctor profile as blocked
func (h *AdminHandler) BlockDoctor(w http.ResponseWriter, r *http.Request) {
	h.setDoctorStatus(w, r, entity.DoctorStatusBlocked, "Doctor blocked")
}

// UnblockDoctor restores a doctor profile to active
func (h *AdminHandler) UnblockDoctor(w http.ResponseWriter, r *http.Request) {
	h.setDoctorStatus(w, r, entity.DoctorStatusActive, "Doctor unblocked")
}

// BlockPatient marks a patient profile as blocked
func (h *AdminHandler) BlockPatient(w http.ResponseWriter, r *http.Request) {
	h.setPatientStatus(w, r, entity.PatientStatusBlocked, "Patient blocked")
}

// UnblockPatient restores a patient profile to active
func (h *AdminHandler) UnblockPatient(w http.ResponseWriter, r *http.Request) {
	h.setPatientStatus(w, r, entity.PatientStatusActive, "Patient unblocked")
}

func (h *AdminHandler) setDoctorStatus(w http.ResponseWriter, r *http.Request, status entity.DoctorStatus, message string) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	doctor, err := h.adminUsecase.SetDoctorStatus(r.Context(), userID, status)
	if err != nil {
		switch err {
		case usecase.ErrDoctorProfileNotFound:
			response.NotFound(w, "Doctor not found")
		case usecase.ErrInvalidDoctorStatus:
			response.Error(w, http.StatusBadRequest, "Invalid doctor status", nil)
		default:
			response.InternalServerError(w, "Failed to update doctor status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, doctor)
}

func (h *AdminHandler) setPatientStatus(w http.ResponseWriter, r *http.Request, status entity.PatientStatus, message string) {
	userID, ok := pathUserID(w, r)
	if !ok {
		return
	}

	patient, err := h.adminUsecase.SetPatientStatus(r.Context(), userID, status)
	if err != nil {
		switch err {
		case usecase.ErrPatientProfileNotFound:
			response.NotFound(w, "Patient not found")
		case usecase.ErrInvalidPatientStatus:
			response.Error(w, http.StatusBadRequest, "Invalid patient status", nil)
		default:
			response.InternalServerError(w, "Failed to update patient status")
		}
		return
	}

	response.Success(w, http.StatusOK, message, patient)
}

func pathUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid user ID", nil)
		return uuid.Nil, false
	}
	return userID, true
}
