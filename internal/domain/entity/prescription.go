package entity

import (
	"time"

	"github.com/google/uuid"
)

// Prescription is a medication order written by a doctor for a patient
type Prescription struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID      uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	PrescribedBy   uuid.UUID `gorm:"type:uuid;not null;index" json:"prescribed_by"`
	MedicationName string    `gorm:"type:varchar(255);not null" json:"medication_name"`
	Dosage         string    `gorm:"type:varchar(100);not null" json:"dosage"`
	Frequency      string    `gorm:"type:varchar(100);not null" json:"frequency"`
	Instructions   string    `gorm:"type:text;not null" json:"instructions"`
	StartDate      time.Time `gorm:"not null" json:"start_date"`
	EndDate        time.Time `gorm:"not null;index" json:"end_date"`
	Notes          string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient    *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Prescriber *User `gorm:"foreignKey:PrescribedBy" json:"prescriber,omitempty"`
}

func (Prescription) TableName() string {
	return "prescriptions"
}

// IsActive reports whether the prescription has not yet ended at now
func (p *Prescription) IsActive(now time.Time) bool {
	return !p.EndDate.Before(now)
}

// Deletable reports whether the prescription has expired at now
func (p *Prescription) Deletable(now time.Time) bool {
	return !p.EndDate.After(now)
}
