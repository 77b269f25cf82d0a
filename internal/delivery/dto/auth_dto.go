package dto

// Request DTOs

type RegisterPatientRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	DateOfBirth     string `json:"dob" validate:"required"` // Format: YYYY-MM-DD
	Gender          string `json:"gender" validate:"required,gender"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

// RegisterDoctorRequest is read from a multipart form together with the signature file
type RegisterDoctorRequest struct {
	FirstName       string `json:"first_name" validate:"required"`
	LastName        string `json:"last_name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required"`
	DateOfBirth     string `json:"dob" validate:"required"`
	Gender          string `json:"gender" validate:"required,gender"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	Department      string `json:"doctor_department" validate:"required"`
	LicenseNumber   string `json:"license_number" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,role"`
}

// UploadedFile is a file received in a multipart request
type UploadedFile struct {
	Name string
	Data []byte
}

// Response DTOs

type AuthResponse struct {
	User      *UserResponse `json:"user"`
	Token     string        `json:"token"`
	ExpiresIn int64         `json:"expires_in"`
}
