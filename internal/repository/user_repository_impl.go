package repository

import (
	"errors"
	"strings"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var userSortColumns = map[string]string{
	"first_name": "users.first_name",
	"last_name":  "users.last_name",
	"email":      "users.email",
	"created_at": "users.created_at",
}

// likeEscaper makes user input literal inside an ILIKE pattern
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type userRepository struct{}

func NewUserRepository() domainRepo.UserRepository {
	return &userRepository{}
}

func (r *userRepository) Create(db *gorm.DB, user *entity.User) error {
	return db.Create(user).Error
}

func (r *userRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	var user entity.User
	err := db.Preload("DoctorProfile").Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(db *gorm.DB, email string) (*entity.User, error) {
	var user entity.User
	err := db.Preload("DoctorProfile").Where("LOWER(email) = ?", strings.ToLower(email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByRole(db *gorm.DB, role entity.Role) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("DoctorProfile").
		Where("role = ?", role).
		Order("created_at DESC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindDoctorsByDepartment(db *gorm.DB, department string) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("DoctorProfile").
		Joins("JOIN doctor_profiles ON doctor_profiles.user_id = users.id").
		Where("users.role = ? AND doctor_profiles.department = ?", entity.RoleDoctor, department).
		Order("users.first_name ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// FindDoctorsByName returns every doctor matching the exact name in the
// department. Callers decide what zero or several matches mean.
func (r *userRepository) FindDoctorsByName(db *gorm.DB, firstName, lastName, department string) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("DoctorProfile").
		Joins("JOIN doctor_profiles ON doctor_profiles.user_id = users.id").
		Where("users.role = ? AND users.first_name = ? AND users.last_name = ? AND doctor_profiles.department = ?",
			entity.RoleDoctor, firstName, lastName, department).
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) FindDoctorsByStatus(db *gorm.DB, status entity.VerificationStatus) ([]entity.User, error) {
	var users []entity.User
	err := db.Preload("DoctorProfile").
		Where("role = ? AND status = ?", entity.RoleDoctor, status).
		Order("created_at ASC").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateVerification(db *gorm.DB, doctorID uuid.UUID, status entity.VerificationStatus, licenseVerified bool) error {
	if err := db.Model(&entity.User{}).
		Where("id = ? AND role = ?", doctorID, entity.RoleDoctor).
		Update("status", status).Error; err != nil {
		return err
	}
	return db.Model(&entity.DoctorProfile{}).
		Where("user_id = ?", doctorID).
		Update("license_verified", licenseVerified).Error
}

func (r *userRepository) UpdateAvatar(db *gorm.DB, userID uuid.UUID, url, fileID string) error {
	return db.Model(&entity.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"avatar_url": url, "avatar_id": fileID}).Error
}

// Delete soft-deletes the user. Rows referencing the user are left in place.
func (r *userRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.User{})
	return result.RowsAffected, result.Error
}

func (r *userRepository) Search(db *gorm.DB, filter entity.UserFilter) ([]entity.User, error) {
	var users []entity.User
	query := db.Model(&entity.User{}).
		Preload("DoctorProfile").
		Joins("LEFT JOIN doctor_profiles ON doctor_profiles.user_id = users.id")

	if filter.Query != "" {
		like := "%" + likeEscaper.Replace(filter.Query) + "%"
		query = query.Where(
			`users.first_name ILIKE ? ESCAPE '\' OR users.last_name ILIKE ? ESCAPE '\' OR `+
				`users.email ILIKE ? ESCAPE '\' OR doctor_profiles.department ILIKE ? ESCAPE '\'`,
			like, like, like, like,
		)
	}
	if filter.Role != "" {
		query = query.Where("users.role = ?", filter.Role)
	}
	if filter.Department != "" {
		query = query.Where(`doctor_profiles.department ILIKE ? ESCAPE '\'`, likeEscaper.Replace(filter.Department))
	}
	if filter.Gender != "" {
		query = query.Where("users.gender = ?", filter.Gender)
	}

	column, ok := userSortColumns[filter.SortBy]
	if !ok {
		column = userSortColumns["created_at"]
	}
	direction := "DESC"
	if strings.EqualFold(filter.Order, "asc") {
		direction = "ASC"
	}

	if err := query.Order(column + " " + direction).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}
