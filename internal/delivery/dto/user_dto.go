package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type AddAdminRequest struct {
	FirstName   string `json:"first_name" validate:"required"`
	LastName    string `json:"last_name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required"`
	DateOfBirth string `json:"dob" validate:"required"`
	Gender      string `json:"gender" validate:"required,gender"`
	Password    string `json:"password" validate:"required,min=8"`
}

type AddDoctorRequest struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone" validate:"required"`
	DateOfBirth   string `json:"dob" validate:"required"`
	Gender        string `json:"gender" validate:"required,gender"`
	Password      string `json:"password" validate:"required,min=8"`
	Department    string `json:"doctor_department" validate:"required"`
	LicenseNumber string `json:"license_number" validate:"required"`
}

type VerifyDoctorRequest struct {
	Verified *bool `json:"verified" validate:"required"`
}

// Response DTOs

type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	FirstName       string    `json:"first_name"`
	LastName        string    `json:"last_name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	DateOfBirth     string    `json:"dob"`
	Gender          string    `json:"gender"`
	Role            string    `json:"role"`
	Status          string    `json:"status"`
	AvatarURL       string    `json:"avatar_url,omitempty"`
	Department      string    `json:"doctor_department,omitempty"`
	LicenseNumber   string    `json:"license_number,omitempty"`
	LicenseVerified *bool     `json:"license_verified,omitempty"`
	SignatureURL    string    `json:"signature_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
