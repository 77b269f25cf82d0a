package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type HealthRecordRepository struct {
	mock.Mock
}

func (m *HealthRecordRepository) Create(db *gorm.DB, record *entity.HealthRecord) error {
	args := m.Called(db, record)
	return args.Error(0)
}

func (m *HealthRecordRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.HealthRecord, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.HealthRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HealthRecordRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.HealthRecord, error) {
	args := m.Called(db, patientID)
	if v := args.Get(0); v != nil {
		return v.([]entity.HealthRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *HealthRecordRepository) Update(db *gorm.DB, record *entity.HealthRecord) error {
	args := m.Called(db, record)
	return args.Error(0)
}

func (m *HealthRecordRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}
