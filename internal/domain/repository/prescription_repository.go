package repository

import (
	"time"

	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PrescriptionRepository interface {
	Create(db *gorm.DB, prescription *entity.Prescription) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error)
	FindAll(db *gorm.DB) ([]entity.Prescription, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error)
	FindActiveByPatientID(db *gorm.DB, patientID uuid.UUID, now time.Time) ([]entity.Prescription, error)
	FindEndingBetween(db *gorm.DB, from, to time.Time) ([]entity.Prescription, error)
	Update(db *gorm.DB, prescription *entity.Prescription) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
