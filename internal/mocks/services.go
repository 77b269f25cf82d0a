package mocks

import (
	"context"
	"time"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/infrastructure/llm"
	"healthcare-management-system/internal/infrastructure/mail"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, in service.NotifyInput) (*entity.Notification, error) {
	args := m.Called(ctx, in)
	if v := args.Get(0); v != nil {
		return v.(*entity.Notification), args.Error(1)
	}
	return nil, args.Error(1)
}

type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type TokenStore struct {
	mock.Mock
}

func (m *TokenStore) Save(ctx context.Context, userID uuid.UUID, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, userID, tokenID, ttl)
	return args.Error(0)
}

func (m *TokenStore) Exists(ctx context.Context, userID uuid.UUID, tokenID string) (bool, error) {
	args := m.Called(ctx, userID, tokenID)
	return args.Bool(0), args.Error(1)
}

func (m *TokenStore) Revoke(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

type FileStorage struct {
	mock.Mock
}

func (m *FileStorage) Save(ctx context.Context, folder, name string, data []byte) (*storage.StoredFile, error) {
	args := m.Called(ctx, folder, name, data)
	if v := args.Get(0); v != nil {
		return v.(*storage.StoredFile), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FileStorage) Open(ctx context.Context, id string) (afero.File, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(afero.File), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *FileStorage) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type LLMClient struct {
	mock.Mock
}

func (m *LLMClient) Generate(ctx context.Context, messages []llm.Message) (string, error) {
	args := m.Called(ctx, messages)
	return args.String(0), args.Error(1)
}

type AuditService struct {
	mock.Mock
}

func (m *AuditService) LogCreate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, newValue)
	return args.Error(0)
}

func (m *AuditService) LogUpdate(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue, newValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue, newValue)
	return args.Error(0)
}

func (m *AuditService) LogDelete(ctx context.Context, tx *gorm.DB, userID *uuid.UUID, action string, entityName string, entityID string, oldValue interface{}) error {
	args := m.Called(ctx, tx, userID, action, entityName, entityID, oldValue)
	return args.Error(0)
}
