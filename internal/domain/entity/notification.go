package entity

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypeAppointment  NotificationType = "Appointment"
	NotificationTypeHealthRecord NotificationType = "HealthRecord"
	NotificationTypeVitals       NotificationType = "Vitals"
	NotificationTypePrescription NotificationType = "Prescription"
	NotificationTypeSystem       NotificationType = "System"
	NotificationTypeOther        NotificationType = "Other"
)

func (t NotificationType) Valid() bool {
	switch t {
	case NotificationTypeAppointment, NotificationTypeHealthRecord, NotificationTypeVitals,
		NotificationTypePrescription, NotificationTypeSystem, NotificationTypeOther:
		return true
	}
	return false
}

// Models a notification may point at through RelatedID
const (
	OnModelAppointment  = "Appointment"
	OnModelHealthRecord = "HealthRecord"
	OnModelVitals       = "Vitals"
	OnModelPrescription = "Prescription"
)

// Notification is a message addressed to a single user. RelatedID is a loose
// reference and may outlive the entity it names.
type Notification struct {
	ID        uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID    uuid.UUID        `gorm:"type:uuid;not null;index" json:"user_id"`
	Message   string           `gorm:"type:text;not null" json:"message"`
	Type      NotificationType `gorm:"type:varchar(20);not null;default:'System'" json:"type"`
	Read      bool             `gorm:"column:is_read;not null;default:false" json:"read"`
	RelatedID *uuid.UUID       `gorm:"type:uuid" json:"related_id,omitempty"`
	OnModel   string           `gorm:"type:varchar(20)" json:"on_model,omitempty"`
	CreatedAt time.Time        `gorm:"autoCreateTime;index" json:"created_at"`
}

func (Notification) TableName() string {
	return "notifications"
}
