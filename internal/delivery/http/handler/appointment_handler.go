package handler

import (
	"encoding/json"
	"net/http"

	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/usecase"
	"healthcare-appointment-api/pkg/response"
	"healthcare-appointment-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
	validator          *validator.CustomValidator
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase, validator *validator.CustomValidator) *AppointmentHandler {
	return &AppointmentHandler{
		appointmentUsecase: appointmentUsecase,
		validator:          validator,
	}
}

// CreateAppointment books an appointment with a doctor for the logged-in patient
func (h *AppointmentHandler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointment, err := h.appointmentUsecase.CreateAppointment(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentDoctorNotFound:
			response.Error(w, http.StatusBadRequest, "Doctor not found", nil)
		default:
			response.InternalServerError(w, "Failed to create appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment created", appointment)
}

// ApproveAppointment lets the assigned doctor approve a pending appointment
func (h *AppointmentHandler) ApproveAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.ApproveAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrAppointmentAlreadyApproved:
			response.Conflict(w, "Appointment already approved")
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusBadRequest, "Cannot approve a rejected appointment", nil)
		default:
			response.InternalServerError(w, "Failed to approve appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment approved", appointment)
}

// RejectAppointment lets the assigned doctor reject a pending appointment
func (h *AppointmentHandler) RejectAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	appointment, err := h.appointmentUsecase.RejectAppointment(r.Context(), appointmentID)
	if err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		case usecase.ErrAppointmentNotOwned:
			response.Forbidden(w, "Appointment is not assigned to you")
		case usecase.ErrAppointmentAlreadyRejected:
			response.Conflict(w, "Appointment already rejected")
		case usecase.ErrInvalidTransition:
			response.Error(w, http.StatusBadRequest, "Cannot reject an approved appointment", nil)
		default:
			response.InternalServerError(w, "Failed to reject appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment rejected", appointment)
}

// DeleteAppointment removes an appointment in any state (admin only)
func (h *AppointmentHandler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, ok := h.appointmentID(w, r)
	if !ok {
		return
	}

	if err := h.appointmentUsecase.DeleteAppointment(r.Context(), appointmentID); err != nil {
		switch err {
		case usecase.ErrAppointmentNotFound:
			response.NotFound(w, "Appointment not found")
		default:
			response.InternalServerError(w, "Failed to delete appointment")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointment deleted", nil)
}

// GetAppointments returns the appointments visible to the logged-in user
func (h *AppointmentHandler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.GetAppointments(r.Context())
	if err != nil {
		response.InternalServerError(w, "Failed to fetch appointments")
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

func (h *AppointmentHandler) appointmentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	appointmentID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid appointment ID", nil)
		return uuid.Nil, false
	}
	return appointmentID, true
}
