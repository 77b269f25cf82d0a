package repository

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type HeartDataRepository interface {
	Create(db *gorm.DB, data *entity.HeartData) error
	FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.HeartData, error)
}
