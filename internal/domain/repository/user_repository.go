package repository

import (
	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(db *gorm.DB, user *entity.User) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByEmail(db *gorm.DB, email string) (*entity.User, error)
	FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error)
	FindDoctorsByDepartment(db *gorm.DB, department string) ([]entity.User, error)
	FindDoctorsByName(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error)
	FindDoctorsByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.User, error)
	UpdateVerification(db *gorm.DB, doctorID uuid.UUID, status entity.VerificationStatus, licenseVerified bool) error
	UpdateAvatar(db *gorm.DB, userID uuid.UUID, url, fileID string) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
	Search(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error)
}
