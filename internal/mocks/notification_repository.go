package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type NotificationRepository struct {
	mock.Mock
}

func (m *NotificationRepository) Create(db *gorm.DB, notification *entity.Notification) error {
	args := m.Called(db, notification)
	return args.Error(0)
}

func (m *NotificationRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error) {
	args := m.Called(db, userID)
	if v := args.Get(0); v != nil {
		return v.([]entity.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *NotificationRepository) MarkRead(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

func (m *NotificationRepository) MarkAllRead(db *gorm.DB, userID uuid.UUID) (int64, error) {
	args := m.Called(db, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *NotificationRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}
