package converter

import (
	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO.
// Patient and Doctor display identities are included only when the user
// relations were preloaded; secret fields never cross this boundary.
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:            appointment.ID,
		Status:        string(appointment.Status),
		ScheduledAt:   appointment.ScheduledAt,
		Symptoms:      appointment.Symptoms,
		Fee:           appointment.Fee,
		PaymentStatus: string(appointment.PaymentStatus),
		ApprovedAt:    appointment.ApprovedAt,
		RejectedAt:    appointment.RejectedAt,
		CreatedAt:     appointment.CreatedAt,
		UpdatedAt:     appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		response.Patient = userToParty(&appointment.Patient)
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = userToParty(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, *AppointmentToResponse(&appointments[i]))
	}
	return responses
}

func userToParty(user *entity.User) *dto.PartyResponse {
	return &dto.PartyResponse{
		ID:       user.ID,
		FullName: user.FullName,
		Email:    user.Email,
	}
}
