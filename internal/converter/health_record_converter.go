package converter

import (
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
)

func HealthRecordToResponse(r *entity.HealthRecord) *dto.HealthRecordResponse {
	if r == nil {
		return nil
	}

	response := &dto.HealthRecordResponse{
		ID:          r.ID,
		PatientID:   r.PatientID,
		RecordType:  string(r.RecordType),
		FileURL:     r.FileURL,
		FileName:    r.FileName,
		ContentType: r.ContentType,
		Description: r.Description,
		CreatedBy:   r.CreatedBy,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
	if r.Creator != nil {
		response.CreatorName = r.Creator.FullName()
	}

	return response
}

func HealthRecordsToResponses(records []entity.HealthRecord) []dto.HealthRecordResponse {
	responses := make([]dto.HealthRecordResponse, len(records))
	for i := range records {
		responses[i] = *HealthRecordToResponse(&records[i])
	}
	return responses
}
