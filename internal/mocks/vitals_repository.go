package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type VitalsRepository struct {
	mock.Mock
}

func (m *VitalsRepository) Create(db *gorm.DB, vitals *entity.Vitals) error {
	args := m.Called(db, vitals)
	return args.Error(0)
}

func (m *VitalsRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Vitals, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vitals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Vitals, error) {
	args := m.Called(db, patientID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Vitals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsRepository) FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.Vitals, error) {
	args := m.Called(db, patientID)
	if v := args.Get(0); v != nil {
		return v.(*entity.Vitals), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}
