package converter

import (
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
)

const dateLayout = "2006-01-02"

// UserToResponse converts a User entity to UserResponse DTO.
// Doctor fields are included when the profile is loaded.
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	response := &dto.UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Phone:     user.Phone,
		Gender:    user.Gender,
		Role:      string(user.Role),
		Status:    string(user.Status),
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt,
	}
	if !user.DateOfBirth.IsZero() {
		response.DateOfBirth = user.DateOfBirth.Format(dateLayout)
	}

	if user.DoctorProfile != nil {
		verified := user.DoctorProfile.LicenseVerified
		response.Department = user.DoctorProfile.Department
		response.LicenseNumber = user.DoctorProfile.LicenseNumber
		response.LicenseVerified = &verified
		response.SignatureURL = user.DoctorProfile.SignatureURL
	}

	return response
}

// UsersToResponses converts a slice of User entities to UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	responses := make([]dto.UserResponse, len(users))
	for i := range users {
		responses[i] = *UserToResponse(&users[i])
	}
	return responses
}
