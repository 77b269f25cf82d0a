package converter

import (
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
)

func VitalsToResponse(v *entity.Vitals) *dto.VitalsResponse {
	if v == nil {
		return nil
	}
	return &dto.VitalsResponse{
		ID:         v.ID,
		PatientID:  v.PatientID,
		RecordedAt: v.RecordedAt,
		BloodPressure: dto.BloodPressureValue{
			Systolic:  v.Systolic,
			Diastolic: v.Diastolic,
		},
		HeartRate:        v.HeartRate,
		Temperature:      v.Temperature,
		RespiratoryRate:  v.RespiratoryRate,
		OxygenSaturation: v.OxygenSaturation,
		Cholesterol:      v.Cholesterol,
		HDLCholesterol:   v.HDLCholesterol,
		Weight:           v.Weight,
		Height:           v.Height,
		Notes:            v.Notes,
		RecordedBy:       v.RecordedBy,
	}
}

func VitalsListToResponses(vitals []entity.Vitals) []dto.VitalsResponse {
	responses := make([]dto.VitalsResponse, len(vitals))
	for i := range vitals {
		responses[i] = *VitalsToResponse(&vitals[i])
	}
	return responses
}
