package repository

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NotificationRepository interface {
	Create(db *gorm.DB, notification *entity.Notification) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Notification, error)
	FindByUserID(db *gorm.DB, userID uuid.UUID) ([]entity.Notification, error)
	MarkRead(db *gorm.DB, id uuid.UUID) error
	MarkAllRead(db *gorm.DB, userID uuid.UUID) (int64, error)
	Delete(db *gorm.DB, id uuid.UUID) error
}
