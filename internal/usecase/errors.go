package usecase

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrEmailAlreadyExists   = errors.New("user already registered")
	ErrLicenseAlreadyExists = errors.New("license number already registered")
	ErrPasswordMismatch     = errors.New("password and confirm password do not match")
	ErrInvalidDateFormat    = errors.New("invalid date format")
	ErrInvalidDateRange     = errors.New("end date is before start date")
	ErrUserNotRegistered    = errors.New("user not registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrRoleMismatch         = errors.New("user with role not registered")
	ErrDoctorNotVerified    = errors.New("doctor not yet verified")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserNotFound         = errors.New("user not found")
	ErrFileRequired         = errors.New("file is required")
	ErrUnsupportedFile      = errors.New("unsupported file type")
	ErrFileTooLarge         = errors.New("file too large")
	ErrForbidden            = errors.New("not allowed")

	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrNoMatchingDoctor    = errors.New("no doctor matches name and department")
	ErrDoctorConflict      = errors.New("several doctors match name and department")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrNoAppointments      = errors.New("no appointments found")
	ErrInvalidStatus       = errors.New("invalid appointment status")
	ErrInvalidRole         = errors.New("invalid role")

	ErrNotificationNotFound   = errors.New("notification not found")
	ErrPrescriptionNotFound   = errors.New("prescription not found")
	ErrPrescriptionNotExpired = errors.New("prescription has not expired")
	ErrNoPrescriptions        = errors.New("no prescriptions found")
	ErrVitalsNotFound         = errors.New("vitals not found")
	ErrNoVitals               = errors.New("no vitals recorded")
	ErrHealthRecordNotFound   = errors.New("health record not found")
	ErrNoHeartData            = errors.New("no heart data found")
	ErrQueryRequired          = errors.New("search query is required")
	ErrAuditLogNotFound       = errors.New("audit log not found")
)

// isDuplicateKeyError checks if the error is a PostgreSQL unique violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		if pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName)) {
			return true
		}
	}
	return false
}
