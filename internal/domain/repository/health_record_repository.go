package repository

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HealthRecordRepository interface {
	Create(db *gorm.DB, record *entity.HealthRecord) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthRecord, error)
	FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.HealthRecord, error)
	Update(db *gorm.DB, record *entity.HealthRecord) error
	Delete(db *gorm.DB, id uuid.UUID) error
}
