package converter

import (
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
)

func HeartDataToResponse(h *entity.HeartData) *dto.HeartDataResponse {
	if h == nil {
		return nil
	}
	return &dto.HeartDataResponse{
		ID:         h.ID,
		PatientID:  h.PatientID,
		RecordedBy: h.RecordedBy,
		Age:        h.Age,
		Sex:        h.Sex,
		CP:         h.CP,
		Trestbps:   h.Trestbps,
		Chol:       h.Chol,
		Fbs:        h.Fbs,
		Restecg:    h.Restecg,
		Thalach:    h.Thalach,
		Exang:      h.Exang,
		Oldpeak:    h.Oldpeak,
		Slope:      h.Slope,
		CA:         h.CA,
		Thal:       h.Thal,
		CreatedAt:  h.CreatedAt,
	}
}

// HeartFeaturesToEntity builds a HeartData from validated request features
func HeartFeaturesToEntity(f *dto.HeartFeatures, patientID, recordedBy uuid.UUID) *entity.HeartData {
	return &entity.HeartData{
		PatientID:  patientID,
		RecordedBy: recordedBy,
		Age:        deref(f.Age),
		Sex:        deref(f.Sex),
		CP:         deref(f.CP),
		Trestbps:   deref(f.Trestbps),
		Chol:       deref(f.Chol),
		Fbs:        deref(f.Fbs),
		Restecg:    deref(f.Restecg),
		Thalach:    deref(f.Thalach),
		Exang:      deref(f.Exang),
		Oldpeak:    deref(f.Oldpeak),
		Slope:      deref(f.Slope),
		CA:         deref(f.CA),
		Thal:       deref(f.Thal),
	}
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
