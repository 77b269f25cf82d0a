package converter

import (
	"time"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
)

// PrescriptionToResponse converts a Prescription entity. Active is evaluated at now.
func PrescriptionToResponse(p *entity.Prescription, now time.Time) *dto.PrescriptionResponse {
	if p == nil {
		return nil
	}

	response := &dto.PrescriptionResponse{
		ID:             p.ID,
		PatientID:      p.PatientID,
		PrescribedBy:   p.PrescribedBy,
		MedicationName: p.MedicationName,
		Dosage:         p.Dosage,
		Frequency:      p.Frequency,
		Instructions:   p.Instructions,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Notes:          p.Notes,
		Active:         p.IsActive(now),
		CreatedAt:      p.CreatedAt,
	}
	if p.Prescriber != nil {
		response.PrescriberName = "Dr. " + p.Prescriber.FullName()
	}
	if p.Patient != nil {
		response.PatientName = p.Patient.FullName()
	}

	return response
}

func PrescriptionsToResponses(prescriptions []entity.Prescription, now time.Time) []dto.PrescriptionResponse {
	responses := make([]dto.PrescriptionResponse, len(prescriptions))
	for i := range prescriptions {
		responses[i] = *PrescriptionToResponse(&prescriptions[i], now)
	}
	return responses
}
