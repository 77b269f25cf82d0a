package repository

import (
	"errors"
	"time"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type prescriptionRepository struct{}

func NewPrescriptionRepository() domainRepo.PrescriptionRepository {
	return &prescriptionRepository{}
}

func (r *prescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit("Patient", "Prescriber").Create(prescription).Error
}

func (r *prescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	var prescription entity.Prescription
	err := db.Preload("Prescriber").Where("id = ?", id).First(&prescription).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &prescription, nil
}

func (r *prescriptionRepository) FindAll(db *gorm.DB) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Patient").Preload("Prescriber").
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Prescriber").
		Where("patient_id = ?", patientID).
		Order("created_at DESC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) FindActiveByPatientID(db *gorm.DB, patientID uuid.UUID, now time.Time) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Prescriber").
		Where("patient_id = ? AND end_date >= ?", patientID, now).
		Order("end_date ASC").
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

// FindEndingBetween returns prescriptions with from <= end_date <= to, with
// the patient loaded.
func (r *prescriptionRepository) FindEndingBetween(db *gorm.DB, from, to time.Time) ([]entity.Prescription, error) {
	var prescriptions []entity.Prescription
	err := db.Preload("Patient").
		Where("end_date >= ? AND end_date <= ?", from, to).
		Find(&prescriptions).Error
	if err != nil {
		return nil, err
	}
	return prescriptions, nil
}

func (r *prescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	return db.Omit("Patient", "Prescriber", "PatientID", "PrescribedBy").Save(prescription).Error
}

func (r *prescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Prescription{}).Error
}
