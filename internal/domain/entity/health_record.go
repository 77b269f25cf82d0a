package entity

import (
	"time"

	"github.com/google/uuid"
)

type RecordType string

const (
	RecordTypeLabResults         RecordType = "Lab Results"
	RecordTypeXRay               RecordType = "X-Ray"
	RecordTypeMRI                RecordType = "MRI"
	RecordTypeCTScan             RecordType = "CT Scan"
	RecordTypePrescription       RecordType = "Prescription"
	RecordTypeVaccination        RecordType = "Vaccination"
	RecordTypeSurgeryReport      RecordType = "Surgery Report"
	RecordTypeDischargeSummary   RecordType = "Discharge Summary"
	RecordTypeMedicalCertificate RecordType = "Medical Certificate"
	RecordTypeOther              RecordType = "Other"
)

var recordTypes = []RecordType{
	RecordTypeLabResults, RecordTypeXRay, RecordTypeMRI, RecordTypeCTScan, RecordTypePrescription,
	RecordTypeVaccination, RecordTypeSurgeryReport, RecordTypeDischargeSummary,
	RecordTypeMedicalCertificate, RecordTypeOther,
}

func (t RecordType) Valid() bool {
	for _, known := range recordTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HealthRecord is an uploaded medical document
type HealthRecord struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"patient_id"`
	RecordType  RecordType `gorm:"type:varchar(30);not null" json:"record_type"`
	FileURL     string     `gorm:"type:text;not null" json:"file_url"`
	FileID      string     `gorm:"type:text;not null" json:"-"`
	FileName    string     `gorm:"type:varchar(255);not null" json:"file_name"`
	ContentType string     `gorm:"type:varchar(100);not null" json:"content_type"`
	Description string     `gorm:"type:text" json:"description,omitempty"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null" json:"created_by"`
	CreatedAt   time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Creator *User `gorm:"foreignKey:CreatedBy" json:"creator,omitempty"`
}

func (HealthRecord) TableName() string {
	return "health_records"
}
