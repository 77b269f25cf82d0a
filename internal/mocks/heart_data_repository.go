package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type HeartDataRepository struct {
	mock.Mock
}

func (m *HeartDataRepository) Create(db *gorm.DB, data *entity.HeartData) error {
	args := m.Called(db, data)
	return args.Error(0)
}

func (m *HeartDataRepository) FindLatestByPatientID(db *gorm.DB, patientID uuid.UUID) (*entity.HeartData, error) {
	args := m.Called(db, patientID)
	if v := args.Get(0); v != nil {
		return v.(*entity.HeartData), args.Error(1)
	}
	return nil, args.Error(1)
}
