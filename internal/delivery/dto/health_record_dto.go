package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// UploadHealthRecordRequest is read from multipart form fields
type UploadHealthRecordRequest struct {
	PatientID   string `json:"patient_id" validate:"required,uuid"`
	RecordType  string `json:"record_type" validate:"required,record_type"`
	Description string `json:"description"`
}

type UpdateHealthRecordRequest struct {
	RecordType  string `json:"record_type" validate:"omitempty,record_type"`
	Description string `json:"description"`
}

// Response DTOs

type HealthRecordResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientID   uuid.UUID `json:"patient_id"`
	RecordType  string    `json:"record_type"`
	FileURL     string    `json:"file_url"`
	FileName    string    `json:"file_name"`
	ContentType string    `json:"content_type"`
	Description string    `json:"description,omitempty"`
	CreatedBy   uuid.UUID `json:"created_by"`
	CreatorName string    `json:"creator_name,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
