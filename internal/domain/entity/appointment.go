package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusPending     AppointmentStatus = "Pending"
	AppointmentStatusAccepted    AppointmentStatus = "Accepted"
	AppointmentStatusCompleted   AppointmentStatus = "Completed"
	AppointmentStatusCancelled   AppointmentStatus = "Cancelled"
	AppointmentStatusRescheduled AppointmentStatus = "Rescheduled"
)

// Valid reports whether s is a known status. Any known status may follow any other.
func (s AppointmentStatus) Valid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusAccepted, AppointmentStatusCompleted,
		AppointmentStatusCancelled, AppointmentStatusRescheduled:
		return true
	}
	return false
}

// Appointment is a patient's request to see a doctor. The patient details are
// captured at booking time and do not follow later profile edits.
type Appointment struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	PatientID       uuid.UUID         `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"doctor_id"`
	FirstName       string            `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName        string            `gorm:"type:varchar(100);not null" json:"last_name"`
	Email           string            `gorm:"type:varchar(255);not null" json:"email"`
	Phone           string            `gorm:"type:varchar(20);not null" json:"phone"`
	DateOfBirth     time.Time         `gorm:"type:date;not null" json:"dob"`
	Gender          string            `gorm:"type:varchar(10);not null" json:"gender"`
	Address         string            `gorm:"type:text;not null" json:"address"`
	HasVisited      bool              `gorm:"not null;default:false" json:"has_visited"`
	Department      string            `gorm:"type:varchar(100);not null" json:"department"`
	DoctorFirstName string            `gorm:"type:varchar(100);not null" json:"doctor_first_name"`
	DoctorLastName  string            `gorm:"type:varchar(100);not null" json:"doctor_last_name"`
	AppointmentDate time.Time         `gorm:"not null;index" json:"appointment_date"`
	Status          AppointmentStatus `gorm:"type:varchar(20);not null;default:'Pending';index" json:"status"`
	DoctorNotes     string            `gorm:"type:text" json:"doctor_notes,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt       gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	Patient *User `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Doctor  *User `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// DoctorStats summarizes a doctor's caseload
type DoctorStats struct {
	TotalPatients         int64 `json:"total_patients"`
	AppointmentsToday     int64 `json:"appointments_today"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
}
