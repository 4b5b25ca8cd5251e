package converter

import (
	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity to its response DTO
func PatientProfileToResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:        profile.UserID,
		Name:          profile.Name,
		Age:           profile.Age,
		Gender:        profile.Gender,
		Phone:         profile.Phone,
		MedicalNotes:  profile.MedicalNotes,
		ProfilePicURL: profile.ProfilePicURL,
		Status:        string(profile.Status),
		CreatedAt:     profile.CreatedAt,
		UpdatedAt:     profile.UpdatedAt,
	}
}

// PatientProfilesToResponses converts a slice of PatientProfile entities
func PatientProfilesToResponses(profiles []entity.PatientProfile) []dto.PatientProfileResponse {
	responses := make([]dto.PatientProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *PatientProfileToResponse(&profiles[i]))
	}
	return responses
}
