package repository

import (
	"errors"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type healthRecordRepository struct{}

func NewHealthRecordRepository() domainRepo.HealthRecordRepository {
	return &healthRecordRepository{}
}

func (r *healthRecordRepository) Create(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Omit("Creator").Create(record).Error
}

func (r *healthRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthRecord, error) {
	var record entity.HealthRecord
	err := db.Preload("Creator").Where("id = ?", id).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

func (r *healthRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.HealthRecord, error) {
	var records []entity.HealthRecord
	err := db.Preload("Creator").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

func (r *healthRecordRepository) Update(db *gorm.DB, record *entity.HealthRecord) error {
	return db.Omit("Creator", "PatientID", "CreatedBy").Save(record).Error
}

func (r *healthRecordRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.HealthRecord{}).Error
}
