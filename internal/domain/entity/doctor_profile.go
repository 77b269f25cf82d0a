package entity

import "github.com/google/uuid"

// DoctorProfile represents doctor-specific profile data
type DoctorProfile struct {
	UserID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"user_id"`
	Department      string    `gorm:"type:varchar(100);not null;index" json:"department"`
	LicenseNumber   string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"license_number"`
	LicenseVerified bool      `gorm:"not null;default:false" json:"license_verified"`
	SignatureURL    string    `gorm:"type:text" json:"signature_url,omitempty"`
	SignatureID     string    `gorm:"type:text" json:"-"`
}

func (DoctorProfile) TableName() string {
	return "doctor_profiles"
}
