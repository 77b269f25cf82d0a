package mocks

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(db *gorm.DB, user *entity.User) error {
	args := m.Called(db, user)
	return args.Error(0)
}

func (m *UserRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	args := m.Called(db, id)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	args := m.Called(db, email)
	return userOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	args := m.Called(db, role)
	return usersOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindDoctorsByDepartment(db *gorm.DB, department string) ([]entity.User, error) {
	args := m.Called(db, department)
	return usersOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindDoctorsByName(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error) {
	args := m.Called(db, firstName, lastName, department)
	return usersOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) FindDoctorsByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.User, error) {
	args := m.Called(db, status)
	return usersOrNil(args.Get(0)), args.Error(1)
}

func (m *UserRepository) UpdateVerification(db *gorm.DB, doctorID uuid.UUID, status entity.VerificationStatus, licenseVerified bool) error {
	args := m.Called(db, doctorID, status, licenseVerified)
	return args.Error(0)
}

func (m *UserRepository) UpdateAvatar(db *gorm.DB, userID uuid.UUID, url, fileID string) error {
	args := m.Called(db, userID, url, fileID)
	return args.Error(0)
}

func (m *UserRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	args := m.Called(db, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *UserRepository) Search(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error) {
	args := m.Called(db, filter)
	return usersOrNil(args.Get(0)), args.Error(1)
}

func userOrNil(v interface{}) *entity.User {
	if v == nil {
		return nil
	}
	return v.(*entity.User)
}

func usersOrNil(v interface{}) []entity.User {
	if v == nil {
		return nil
	}
	return v.([]entity.User)
}
