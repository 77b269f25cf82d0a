package service

import (
	"context"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// NotifyInput describes a notification to write for one user
type NotifyInput struct {
	UserID    uuid.UUID
	Message   string
	Type      entity.NotificationType
	RelatedID *uuid.UUID
	OnModel   string
}

// Notifier writes notifications as side effects of other operations. A
// notification is written on its own connection, never inside the caller's
// transaction, so a failure here does not undo the caller's write.
type Notifier interface {
	Notify(ctx context.Context, in NotifyInput) (*entity.Notification, error)
}

// NotificationCounter receives one call per notification written
type NotificationCounter interface {
	NotificationCreated(notificationType string)
}

type notificationService struct {
	db               repository.Transactor
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	counter          NotificationCounter
}

func NewNotificationService(
	db repository.Transactor,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	counter NotificationCounter,
) Notifier {
	return &notificationService{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		counter:          counter,
	}
}

func (s *notificationService) Notify(ctx context.Context, in NotifyInput) (*entity.Notification, error) {
	notificationType := in.Type
	if notificationType == "" {
		notificationType = entity.NotificationTypeSystem
	}

	notification := &entity.Notification{
		UserID:    in.UserID,
		Message:   in.Message,
		Type:      notificationType,
		RelatedID: in.RelatedID,
		OnModel:   in.OnModel,
	}

	if err := s.notificationRepo.Create(s.db.Conn(ctx), notification); err != nil {
		s.log.Warnf("Failed to create notification: %+v", err)
		return nil, err
	}

	if s.counter != nil {
		s.counter.NotificationCreated(string(notificationType))
	}

	return notification, nil
}

// RelatedTo builds the loose reference stored on a notification
func RelatedTo(id uuid.UUID) *uuid.UUID {
	return &id
}
