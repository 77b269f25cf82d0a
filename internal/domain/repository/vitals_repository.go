package repository

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VitalsRepository interface {
	Create(db *gorm.DB, vitals *entity.Vitals) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vitals, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Vitals, error)
	FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.Vitals, error)
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
