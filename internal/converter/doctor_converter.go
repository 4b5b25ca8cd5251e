package converter

import (
	"healthcare-appointment-api/internal/delivery/dto"
	"healthcare-appointment-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to its response DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorProfileResponse{
		UserID:          profile.UserID,
		Name:            profile.Name,
		Phone:           profile.Phone,
		Specialization:  profile.Specialization,
		ExperienceYears: profile.ExperienceYears,
		Qualification:   profile.Qualification,
		Bio:             profile.Bio,
		ClinicName:      profile.ClinicName,
		Address:         profile.Address,
		Fee:             profile.Fee,
		ProfilePicURL:   profile.ProfilePicURL,
		Status:          string(profile.Status),
		CreatedAt:       profile.CreatedAt,
		UpdatedAt:       profile.UpdatedAt,
	}
}

// DoctorProfilesToResponses converts a slice of DoctorProfile entities
func DoctorProfilesToResponses(profiles []entity.DoctorProfile) []dto.DoctorProfileResponse {
	responses := make([]dto.DoctorProfileResponse, 0, len(profiles))
	for i := range profiles {
		responses = append(responses, *DoctorProfileToResponse(&profiles[i]))
	}
	return responses
}
