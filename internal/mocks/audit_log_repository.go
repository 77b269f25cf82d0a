package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type AuditLogRepository struct {
	mock.Mock
}

func (m *AuditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	args := m.Called(db, log)
	return args.Error(0)
}

func (m *AuditLogRepository) FindAll(db *gorm.DB, limit int) ([]entity.AuditLog, error) {
	args := m.Called(db, limit)
	if v := args.Get(0); v != nil {
		return v.([]entity.AuditLog), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.AuditLog), args.Error(1)
	}
	return nil, args.Error(1)
}
