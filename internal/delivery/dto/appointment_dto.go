package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type BookAppointmentRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	DateOfBirth     string `json:"dob" validate:"required"`
	Gender          string `json:"gender" validate:"required,gender"`
	AppointmentDate string `json:"appointment_date" validate:"required"`
	Department      string `json:"department" validate:"required"`
	DoctorFirstName string `json:"doctor_first_name" validate:"required"`
	DoctorLastName  string `json:"doctor_last_name" validate:"required"`
	Address         string `json:"address" validate:"required"`
	HasVisited      bool   `json:"has_visited"`
}

type UpdateAppointmentStatusRequest struct {
	Status string `json:"status" validate:"required,appointment_status"`
}

type AddDoctorNotesRequest struct {
	Notes string `json:"notes" validate:"required"`
}

// Response DTOs

type AppointmentResponse struct {
	ID              uuid.UUID `json:"id"`
	PatientID       uuid.UUID `json:"patient_id"`
	DoctorID        uuid.UUID `json:"doctor_id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DateOfBirth     string    `json:"dob"`
	Gender          string    `json:"gender"`
	Address         string    `json:"address"`
	HasVisited      bool      `json:"has_visited"`
	Department      string    `json:"department"`
	Doctor          DoctorRef `json:"doctor"`
	AppointmentDate time.Time `json:"appointment_date"`
	Status          string    `json:"status"`
	DoctorNotes     string    `json:"doctor_notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type DoctorRef struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type BulkStatusUpdateResponse struct {
	Matched int `json:"matched"`
	Updated int `json:"updated"`
}

type DoctorStatsResponse struct {
	TotalPatients         int64 `json:"total_patients"`
	AppointmentsToday     int64 `json:"appointments_today"`
	PendingAppointments   int64 `json:"pending_appointments"`
	CompletedAppointments int64 `json:"completed_appointments"`
}
