package repository

import (
	"errors"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type vitalsRepository struct{}

func NewVitalsRepository() domainRepo.VitalsRepository {
	return &vitalsRepository{}
}

func (r *vitalsRepository) Create(db *gorm.DB, vitals *entity.Vitals) error {
	return db.Create(vitals).Error
}

func (r *vitalsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vitals, error) {
	var vitals entity.Vitals
	err := db.Where("id = ?", id).First(&vitals).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vitals, nil
}

func (r *vitalsRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Vitals, error) {
	var history []entity.Vitals
	err := db.Where("patient_id = ?", patientID).
		Order("recorded_at DESC").
		Find(&history).Error
	if err != nil {
		return nil, err
	}
	return history, nil
}

func (r *vitalsRepository) FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.Vitals, error) {
	var vitals entity.Vitals
	err := db.Where("patient_id = ?", patientID).
		Order("recorded_at DESC").
		First(&vitals).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vitals, nil
}

func (r *vitalsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Vitals{})
	return result.RowsAffected, result.Error
}
