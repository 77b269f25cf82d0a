package repository

import (
	"time"

	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AppointmentRepository interface {
	Create(db *gorm.DB, appointment *entity.Appointment) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error)
	FindAll(db *gorm.DB) ([]entity.Appointment, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindScheduledBetween(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error)
	UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error
	UpdateNotes(db *gorm.DB, id uuid.UUID, notes string) error
	CancelByDoctorID(db *gorm.DB, doctorID uuid.UUID, note string) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) error
	DoctorStats(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) (*entity.DoctorStats, error)
}
