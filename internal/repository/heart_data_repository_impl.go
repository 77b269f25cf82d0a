package repository

import (
	"errors"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type heartDataRepository struct{}

func NewHeartDataRepository() domainRepo.HeartDataRepository {
	return &heartDataRepository{}
}

func (r *heartDataRepository) Create(db *gorm.DB, data *entity.HeartData) error {
	return db.Omit("Recorder").Create(data).Error
}

func (r *heartDataRepository) FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.HeartData, error) {
	var data entity.HeartData
	err := db.Preload("Recorder").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		First(&data).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &data, nil
}
