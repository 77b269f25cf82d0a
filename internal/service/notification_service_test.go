package service_test

import (
	"context"
	"errors"
	"io"
	"testing"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type countingMetrics struct {
	created map[string]int
}

func (c *countingMetrics) NotificationCreated(t string) {
	c.created[t]++
}

func TestNotify_DefaultsToSystemType(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := new(mocks.NotificationRepository)
	counter := &countingMetrics{created: map[string]int{}}
	notifier := service.NewNotificationService(&mocks.Transactor{}, log, repo, counter)

	userID := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(n *entity.Notification) bool {
		return n.UserID == userID && n.Type == entity.NotificationTypeSystem && n.Message == "hello" && !n.Read
	})).Return(nil)

	n, err := notifier.Notify(context.Background(), service.NotifyInput{UserID: userID, Message: "hello"})
	require.NoError(t, err)
	assert.Equal(t, entity.NotificationTypeSystem, n.Type)
	assert.Equal(t, 1, counter.created["System"])
}

func TestNotify_PropagatesRepositoryError(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := new(mocks.NotificationRepository)
	counter := &countingMetrics{created: map[string]int{}}
	notifier := service.NewNotificationService(&mocks.Transactor{}, log, repo, counter)

	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := notifier.Notify(context.Background(), service.NotifyInput{
		UserID:  uuid.New(),
		Message: "x",
		Type:    entity.NotificationTypeVitals,
	})
	assert.Error(t, err)
	assert.Empty(t, counter.created)
}
