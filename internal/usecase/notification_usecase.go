package usecase

import (
	"context"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type NotificationUsecase interface {
	GetMine(ctx context.Context, user *entity.User) (*dto.NotificationListResponse, error)
	MarkRead(ctx context.Context, user *entity.User, notificationID string) (*dto.NotificationResponse, error)
	MarkAllRead(ctx context.Context, user *entity.User) (int64, error)
	Delete(ctx context.Context, user *entity.User, notificationID string) error
	Create(ctx context.Context, actor *entity.User, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
}

type notificationUsecase struct {
	db               repository.Transactor
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	notifier         service.Notifier
	audit            service.AuditService
}

func NewNotificationUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	audit service.AuditService,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		audit:            audit,
	}
}

func (u *notificationUsecase) GetMine(ctx context.Context, user *entity.User) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.Conn(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to find notifications: %+v", err)
		return nil, err
	}

	unread := 0
	for _, n := range notifications {
		if !n.Read {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Unread:        unread,
	}, nil
}

func (u *notificationUsecase) MarkRead(ctx context.Context, user *entity.User, notificationID string) (*dto.NotificationResponse, error) {
	notification, err := u.findOwned(ctx, user, notificationID)
	if err != nil {
		return nil, err
	}

	if !notification.Read {
		if err := u.notificationRepo.MarkRead(u.db.Conn(ctx), notification.ID); err != nil {
			u.log.Warnf("Failed to mark notification read: %+v", err)
			return nil, err
		}
		notification.Read = true
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, user *entity.User) (int64, error) {
	n, err := u.notificationRepo.MarkAllRead(u.db.Conn(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to mark all notifications read: %+v", err)
		return 0, err
	}
	return n, nil
}

func (u *notificationUsecase) Delete(ctx context.Context, user *entity.User, notificationID string) error {
	notification, err := u.findOwned(ctx, user, notificationID)
	if err != nil {
		return err
	}

	if err := u.notificationRepo.Delete(u.db.Conn(ctx), notification.ID); err != nil {
		u.log.Warnf("Failed to delete notification: %+v", err)
		return err
	}
	return nil
}

// Create sends an administrative notification to any user
func (u *notificationUsecase) Create(ctx context.Context, actor *entity.User, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	userID, err := parseID(req.UserID, ErrUserNotFound)
	if err != nil {
		return nil, err
	}

	recipient, err := u.userRepo.FindByID(u.db.Conn(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, err
	}
	if recipient == nil {
		return nil, ErrUserNotFound
	}

	in := service.NotifyInput{
		UserID:  recipient.ID,
		Message: req.Message,
		Type:    entity.NotificationType(req.Type),
		OnModel: req.OnModel,
	}
	if req.RelatedID != "" {
		if relatedID, err := uuid.Parse(req.RelatedID); err == nil {
			in.RelatedID = &relatedID
		}
	}

	notification, err := u.notifier.Notify(ctx, in)
	if err != nil {
		return nil, err
	}

	if err := u.audit.LogCreate(ctx, u.db.Conn(ctx), &actor.ID, entity.AuditActionNotificationCreate, "notification",
		notification.ID.String(), req); err != nil {
		u.log.Warnf("Failed to audit notification: %+v", err)
	}

	return converter.NotificationToResponse(notification), nil
}

func (u *notificationUsecase) findOwned(ctx context.Context, user *entity.User, rawID string) (*entity.Notification, error) {
	id, err := parseID(rawID, ErrNotificationNotFound)
	if err != nil {
		return nil, err
	}

	notification, err := u.notificationRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find notification: %+v", err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if notification.UserID != user.ID {
		return nil, ErrForbidden
	}
	return notification, nil
}
