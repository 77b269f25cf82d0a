package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type BloodPressure struct {
	Systolic  *int `json:"systolic" validate:"required,gte=0"`
	Diastolic *int `json:"diastolic" validate:"required,gte=0"`
}

type AddVitalsRequest struct {
	PatientID        string           `json:"patient_id" validate:"required,uuid"`
	BloodPressure    BloodPressure    `json:"blood_pressure"`
	HeartRate        *int             `json:"heart_rate" validate:"required,gte=0"`
	Temperature      *decimal.Decimal `json:"temperature"`
	RespiratoryRate  *int             `json:"respiratory_rate" validate:"omitempty,gte=0"`
	OxygenSaturation *int             `json:"oxygen_saturation" validate:"omitempty,gte=0,lte=100"`
	Cholesterol      *int             `json:"cholesterol" validate:"omitempty,gte=0"`
	HDLCholesterol   *int             `json:"hdl_cholesterol" validate:"omitempty,gte=0"`
	Weight           *decimal.Decimal `json:"weight"`
	Height           *decimal.Decimal `json:"height"`
	Notes            string           `json:"notes"`
	RecordedAt       string           `json:"recorded_at"`
}

type ChatMessage struct {
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

type AskRequest struct {
	Question    string        `json:"question" validate:"required"`
	ChatHistory []ChatMessage `json:"chat_history"`
}

type FraminghamRequest struct {
	Smoker   bool
	Diabetic bool
	OnMeds   bool
}

// Response DTOs

type VitalsResponse struct {
	ID               uuid.UUID           `json:"id"`
	PatientID        uuid.UUID           `json:"patient_id"`
	RecordedAt       time.Time           `json:"recorded_at"`
	BloodPressure    BloodPressureValue  `json:"blood_pressure"`
	HeartRate        int                 `json:"heart_rate"`
	Temperature      decimal.NullDecimal `json:"temperature"`
	RespiratoryRate  *int                `json:"respiratory_rate,omitempty"`
	OxygenSaturation *int                `json:"oxygen_saturation,omitempty"`
	Cholesterol      *int                `json:"cholesterol,omitempty"`
	HDLCholesterol   *int                `json:"hdl_cholesterol,omitempty"`
	Weight           decimal.NullDecimal `json:"weight"`
	Height           decimal.NullDecimal `json:"height"`
	Notes            string              `json:"notes,omitempty"`
	RecordedBy       string              `json:"recorded_by"`
}

type BloodPressureValue struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

type FraminghamResponse struct {
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	SystolicBP int    `json:"systolic_bp"`
	Smoker     bool   `json:"smoker"`
	Diabetic   bool   `json:"diabetic"`
	OnBPMeds   bool   `json:"on_bp_meds"`
	Points     int    `json:"points"`
	Risk       string `json:"risk"`
}
