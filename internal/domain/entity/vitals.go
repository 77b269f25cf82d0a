package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Who took a vitals measurement
const (
	RecordedByPatient = "Patient"
	RecordedByDoctor  = "Doctor"
	RecordedByNurse   = "Nurse"
)

// Vitals is one set of measurements for a patient
type Vitals struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID        uuid.UUID           `gorm:"type:uuid;not null;index" json:"patient_id"`
	RecordedAt       time.Time           `gorm:"not null;index" json:"recorded_at"`
	Systolic         int                 `gorm:"not null" json:"systolic"`
	Diastolic        int                 `gorm:"not null" json:"diastolic"`
	HeartRate        int                 `gorm:"not null" json:"heart_rate"`
	Temperature      decimal.NullDecimal `gorm:"type:numeric(4,1)" json:"temperature"`
	RespiratoryRate  *int                `json:"respiratory_rate,omitempty"`
	OxygenSaturation *int                `json:"oxygen_saturation,omitempty"`
	Cholesterol      *int                `json:"cholesterol,omitempty"`
	HDLCholesterol   *int                `gorm:"column:hdl_cholesterol" json:"hdl_cholesterol,omitempty"`
	Weight           decimal.NullDecimal `gorm:"type:numeric(5,1)" json:"weight"`
	Height           decimal.NullDecimal `gorm:"type:numeric(5,1)" json:"height"`
	Notes            string              `gorm:"type:text" json:"notes,omitempty"`
	RecordedBy       string              `gorm:"type:varchar(10);not null" json:"recorded_by"`
	RecorderID       *uuid.UUID          `gorm:"type:uuid" json:"recorder_id,omitempty"`
	CreatedAt        time.Time           `gorm:"autoCreateTime" json:"created_at"`
}

func (Vitals) TableName() string {
	return "vitals"
}
