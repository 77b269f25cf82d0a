package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VerificationStatus tracks admin approval of doctor accounts
type VerificationStatus string

const (
	StatusPendingVerification VerificationStatus = "PendingVerification"
	StatusVerified            VerificationStatus = "Verified"
	StatusRejected            VerificationStatus = "Rejected"
)

// Gender values accepted on profiles and bookings
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
	GenderOthers = "Others"
)

// User represents an account of any role
type User struct {
	ID          uuid.UUID          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	FirstName   string             `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName    string             `gorm:"type:varchar(100);not null" json:"last_name"`
	Email       string             `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string             `gorm:"type:varchar(20);not null" json:"phone"`
	DateOfBirth time.Time          `gorm:"type:date;not null" json:"date_of_birth"`
	Gender      string             `gorm:"type:varchar(10);not null" json:"gender"`
	Password    string             `gorm:"type:text;not null" json:"-"`
	Role        Role               `gorm:"type:varchar(20);not null;index" json:"role"`
	Status      VerificationStatus `gorm:"type:varchar(30);not null;default:'Verified'" json:"status"`
	AvatarURL   string             `gorm:"type:text" json:"avatar_url,omitempty"`
	AvatarID    string             `gorm:"type:text" json:"-"`
	CreatedAt   time.Time          `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time          `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt   gorm.DeletedAt     `gorm:"index" json:"-"`

	// Relationships
	DoctorProfile *DoctorProfile `gorm:"foreignKey:UserID" json:"doctor_profile,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// FullName joins first and last name
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// IsVerified reports whether the account may log in
func (u *User) IsVerified() bool {
	return u.Status == StatusVerified
}

// Department returns the doctor department, empty for other roles
func (u *User) Department() string {
	if u.DoctorProfile == nil {
		return ""
	}
	return u.DoctorProfile.Department
}

// AgeAt returns the age in whole years at t
func (u *User) AgeAt(t time.Time) int {
	if u.DateOfBirth.IsZero() {
		return 0
	}
	age := t.Year() - u.DateOfBirth.Year()
	if t.Month() < u.DateOfBirth.Month() || (t.Month() == u.DateOfBirth.Month() && t.Day() < u.DateOfBirth.Day()) {
		age--
	}
	return age
}
