package converter

import (
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
)

func AppointmentToResponse(a *entity.Appointment) *dto.AppointmentResponse {
	if a == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:         a.ID,
		PatientID:  a.PatientID,
		DoctorID:   a.DoctorID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
		Email:      a.Email,
		Phone:      a.Phone,
		Gender:     a.Gender,
		Address:    a.Address,
		HasVisited: a.HasVisited,
		Department: a.Department,
		Doctor: dto.DoctorRef{
			FirstName: a.DoctorFirstName,
			LastName:  a.DoctorLastName,
		},
		AppointmentDate: a.AppointmentDate,
		Status:          string(a.Status),
		DoctorNotes:     a.DoctorNotes,
		CreatedAt:       a.CreatedAt,
	}
	if !a.DateOfBirth.IsZero() {
		response.DateOfBirth = a.DateOfBirth.Format(dateLayout)
	}

	return response
}

func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

func DoctorStatsToResponse(stats *entity.DoctorStats) *dto.DoctorStatsResponse {
	if stats == nil {
		return &dto.DoctorStatsResponse{}
	}
	return &dto.DoctorStatsResponse{
		TotalPatients:         stats.TotalPatients,
		AppointmentsToday:     stats.AppointmentsToday,
		PendingAppointments:   stats.PendingAppointments,
		CompletedAppointments: stats.CompletedAppointments,
	}
}
