package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// HeartFeatures are the heart disease model inputs. Zero is a valid value for
// most of them, so presence is checked on the pointer.
type HeartFeatures struct {
	Age      *int     `json:"age" validate:"required,gte=0"`
	Sex      *int     `json:"sex" validate:"required,oneof=0 1"`
	CP       *int     `json:"cp" validate:"required,gte=0,lte=3"`
	Trestbps *int     `json:"trestbps" validate:"required,gte=0"`
	Chol     *int     `json:"chol" validate:"required,gte=0"`
	Fbs      *int     `json:"fbs" validate:"required,oneof=0 1"`
	Restecg  *int     `json:"restecg" validate:"required,gte=0,lte=2"`
	Thalach  *int     `json:"thalach" validate:"required,gte=0"`
	Exang    *int     `json:"exang" validate:"required,oneof=0 1"`
	Oldpeak  *float64 `json:"oldpeak" validate:"required,gte=0"`
	Slope    *int     `json:"slope" validate:"required,gte=0,lte=2"`
	CA       *int     `json:"ca" validate:"required,gte=0,lte=4"`
	Thal     *int     `json:"thal" validate:"required,gte=0,lte=3"`
}

type AddHeartDataRequest struct {
	PatientID string `json:"patient_id" validate:"required,uuid"`
	HeartFeatures
}

type HeartAdviceRequest struct {
	HeartData *HeartFeatures `json:"heart_data"`
}

// Response DTOs

type HeartDataResponse struct {
	ID         uuid.UUID `json:"id"`
	PatientID  uuid.UUID `json:"patient_id"`
	RecordedBy uuid.UUID `json:"recorded_by"`
	Age        int       `json:"age"`
	Sex        int       `json:"sex"`
	CP         int       `json:"cp"`
	Trestbps   int       `json:"trestbps"`
	Chol       int       `json:"chol"`
	Fbs        int       `json:"fbs"`
	Restecg    int       `json:"restecg"`
	Thalach    int       `json:"thalach"`
	Exang      int       `json:"exang"`
	Oldpeak    float64   `json:"oldpeak"`
	Slope      int       `json:"slope"`
	CA         int       `json:"ca"`
	Thal       int       `json:"thal"`
	CreatedAt  time.Time `json:"created_at"`
}
