package entity

import (
	"time"

	"github.com/google/uuid"
)

// HeartData holds the clinical features used for heart disease risk advice
type HeartData struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	RecordedBy uuid.UUID `gorm:"type:uuid;not null" json:"recorded_by"`
	Age        int       `gorm:"not null" json:"age"`
	Sex        int       `gorm:"not null" json:"sex"`
	CP         int       `gorm:"column:cp;not null" json:"cp"`
	Trestbps   int       `gorm:"not null" json:"trestbps"`
	Chol       int       `gorm:"not null" json:"chol"`
	Fbs        int       `gorm:"not null" json:"fbs"`
	Restecg    int       `gorm:"not null" json:"restecg"`
	Thalach    int       `gorm:"not null" json:"thalach"`
	Exang      int       `gorm:"not null" json:"exang"`
	Oldpeak    float64   `gorm:"not null" json:"oldpeak"`
	Slope      int       `gorm:"not null" json:"slope"`
	CA         int       `gorm:"column:ca;not null" json:"ca"`
	Thal       int       `gorm:"not null" json:"thal"`
	CreatedAt  time.Time `gorm:"autoCreateTime;index" json:"created_at"`

	// Relationships
	Recorder *User `gorm:"foreignKey:RecordedBy" json:"recorder,omitempty"`
}

func (HeartData) TableName() string {
	return "heart_data"
}
