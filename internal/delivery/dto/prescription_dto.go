package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreatePrescriptionRequest struct {
	PatientID      string `json:"patient_id" validate:"required,uuid"`
	MedicationName string `json:"medication_name" validate:"required"`
	Dosage         string `json:"dosage" validate:"required"`
	Frequency      string `json:"frequency" validate:"required"`
	Instructions   string `json:"instructions" validate:"required"`
	StartDate      string `json:"start_date" validate:"required"`
	EndDate        string `json:"end_date" validate:"required"`
	Notes          string `json:"notes"`
}

// UpdatePrescriptionRequest changes only the fields that are present
type UpdatePrescriptionRequest struct {
	MedicationName *string `json:"medication_name" validate:"omitempty,min=1"`
	Dosage         *string `json:"dosage" validate:"omitempty,min=1"`
	Frequency      *string `json:"frequency" validate:"omitempty,min=1"`
	Instructions   *string `json:"instructions" validate:"omitempty,min=1"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Notes          *string `json:"notes"`
}

// Response DTOs

type PrescriptionResponse struct {
	ID             uuid.UUID `json:"id"`
	PatientID      uuid.UUID `json:"patient_id"`
	PrescribedBy   uuid.UUID `json:"prescribed_by"`
	PrescriberName string    `json:"prescriber_name,omitempty"`
	PatientName    string    `json:"patient_name,omitempty"`
	MedicationName string    `json:"medication_name"`
	Dosage         string    `json:"dosage"`
	Frequency      string    `json:"frequency"`
	Instructions   string    `json:"instructions"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	Notes          string    `json:"notes,omitempty"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}
