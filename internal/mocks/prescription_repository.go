package mocks

import (
	"time"

	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type PrescriptionRepository struct {
	mock.Mock
}

func (m *PrescriptionRepository) Create(db *gorm.DB, prescription *entity.Prescription) error {
	args := m.Called(db, prescription)
	return args.Error(0)
}

func (m *PrescriptionRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Prescription, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Prescription), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionRepository) FindAll(db *gorm.DB) ([]entity.Prescription, error) {
	args := m.Called(db)
	return prescriptionsOrNil(args.Get(0)), args.Error(1)
}

func (m *PrescriptionRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Prescription, error) {
	args := m.Called(db, patientID)
	return prescriptionsOrNil(args.Get(0)), args.Error(1)
}

func (m *PrescriptionRepository) FindActiveByPatientID(db *gorm.DB, patientID uuid.UUID, now time.Time) ([]entity.Prescription, error) {
	args := m.Called(db, patientID, now)
	return prescriptionsOrNil(args.Get(0)), args.Error(1)
}

func (m *PrescriptionRepository) FindEndingBetween(db *gorm.DB, from, to time.Time) ([]entity.Prescription, error) {
	args := m.Called(db, from, to)
	return prescriptionsOrNil(args.Get(0)), args.Error(1)
}

func (m *PrescriptionRepository) Update(db *gorm.DB, prescription *entity.Prescription) error {
	args := m.Called(db, prescription)
	return args.Error(0)
}

func (m *PrescriptionRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

func prescriptionsOrNil(v interface{}) []entity.Prescription {
	if v == nil {
		return nil
	}
	return v.([]entity.Prescription)
}
