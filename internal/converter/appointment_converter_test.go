package converter

import (
	"testing"

	"healthcare-appointment-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAppointmentToResponse_IncludesPreloadedParties(t *testing.T) {
	patientID := uuid.New()
	doctorID := uuid.New()

	apt := &entity.Appointment{
		ID:        uuid.New(),
		PatientID: patientID,
		DoctorID:  doctorID,
		Status:    entity.AppointmentStatusPending,
		Patient: entity.User{
			ID:       patientID,
			FullName: "Pat Patient",
			Email:    "pat@example.com",
			Password: "bcrypt-hash",
		},
		Doctor: entity.User{
			ID:       doctorID,
			FullName: "Doc Doctor",
			Email:    "doc@example.com",
		},
	}

	resp := AppointmentToResponse(apt)

	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "Pat Patient", resp.Patient.FullName)
	assert.Equal(t, "pat@example.com", resp.Patient.Email)
	assert.Equal(t, "Doc Doctor", resp.Doctor.FullName)
}

// Without preloaded relations the party fields stay nil instead of carrying
// zero-value users.
func TestAppointmentToResponse_OmitsMissingParties(t *testing.T) {
	apt := &entity.Appointment{
		ID:     uuid.New(),
		Status: entity.AppointmentStatusApproved,
	}

	resp := AppointmentToResponse(apt)

	assert.Nil(t, resp.Patient)
	assert.Nil(t, resp.Doctor)
}

func TestAppointmentToResponse_Nil(t *testing.T) {
	assert.Nil(t, AppointmentToResponse(nil))
}

func TestAppointmentsToResponses(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: uuid.New(), Status: entity.AppointmentStatusPending},
		{ID: uuid.New(), Status: entity.AppointmentStatusRejected},
	}

	responses := AppointmentsToResponses(appointments)

	assert.Len(t, responses, 2)
	assert.Equal(t, "pending", responses[0].Status)
	assert.Equal(t, "rejected", responses[1].Status)
}

func TestUserToResponse_NeverExposesPassword(t *testing.T) {
	user := &entity.User{
		ID:       uuid.New(),
		Role:     entity.RoleDoctor,
		Email:    "doc@example.com",
		FullName: "Doc Doctor",
		Password: "bcrypt-hash",
	}

	resp := UserToResponse(user)

	assert.Equal(t, "doctor", resp.Role)
	assert.Equal(t, "doc@example.com", resp.Email)
}
