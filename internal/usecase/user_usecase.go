package usecase

import (
	"context"
	"fmt"
	"strings"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const doctorUnavailableNote = "Doctor is no longer available"

type UserUsecase interface {
	AddAdmin(ctx context.Context, actor *entity.User, req *dto.AddAdminRequest) (*dto.UserResponse, error)
	AddDoctor(ctx context.Context, actor *entity.User, req *dto.AddDoctorRequest) (*dto.UserResponse, error)
	GetDoctors(ctx context.Context) ([]dto.UserResponse, error)
	GetDoctorsByDepartment(ctx context.Context, department string) ([]dto.UserResponse, error)
	GetPatients(ctx context.Context) ([]dto.UserResponse, error)
	GetUnverifiedDoctors(ctx context.Context) ([]dto.UserResponse, error)
	VerifyDoctor(ctx context.Context, actor *entity.User, doctorID string, verified bool) (*dto.UserResponse, error)
	DeletePatient(ctx context.Context, actor *entity.User, patientID string) error
	DeleteDoctor(ctx context.Context, actor *entity.User, doctorID string) (int, error)
	UpdateAvatar(ctx context.Context, actor *entity.User, file *dto.UploadedFile) (*dto.UserResponse, error)
}

type userUsecase struct {
	db              repository.Transactor
	log             *logrus.Logger
	userRepo        repository.UserRepository
	appointmentRepo repository.AppointmentRepository
	notifier        service.Notifier
	audit           service.AuditService
	files           storage.FileStorage
	now             Clock
}

func NewUserUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	appointmentRepo repository.AppointmentRepository,
	notifier service.Notifier,
	audit service.AuditService,
	files storage.FileStorage,
	now Clock,
) UserUsecase {
	return &userUsecase{
		db:              db,
		log:             log,
		userRepo:        userRepo,
		appointmentRepo: appointmentRepo,
		notifier:        notifier,
		audit:           audit,
		files:           files,
		now:             clockOrLocal(now),
	}
}

func (u *userUsecase) AddAdmin(ctx context.Context, actor *entity.User, req *dto.AddAdminRequest) (*dto.UserResponse, error) {
	admin := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(req.Email),
		Phone:     req.Phone,
		Gender:    req.Gender,
		Role:      entity.RoleAdmin,
		Status:    entity.StatusVerified,
	}

	if err := u.createUser(ctx, actor, admin, req.DateOfBirth, req.Password, entity.AuditActionAdminCreate); err != nil {
		return nil, err
	}

	return converter.UserToResponse(admin), nil
}

// AddDoctor creates a doctor that is verified from the start
func (u *userUsecase) AddDoctor(ctx context.Context, actor *entity.User, req *dto.AddDoctorRequest) (*dto.UserResponse, error) {
	doctor := &entity.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     strings.ToLower(req.Email),
		Phone:     req.Phone,
		Gender:    req.Gender,
		Role:      entity.RoleDoctor,
		Status:    entity.StatusVerified,
		DoctorProfile: &entity.DoctorProfile{
			Department:      req.Department,
			LicenseNumber:   req.LicenseNumber,
			LicenseVerified: true,
		},
	}

	if err := u.createUser(ctx, actor, doctor, req.DateOfBirth, req.Password, entity.AuditActionDoctorCreate); err != nil {
		return nil, err
	}

	return converter.UserToResponse(doctor), nil
}

func (u *userUsecase) createUser(ctx context.Context, actor *entity.User, user *entity.User, dob, password, action string) error {
	existing, err := u.userRepo.FindByEmail(u.db.Conn(ctx), user.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}

	if user.DateOfBirth, err = parseDate(dob, u.now().Location()); err != nil {
		return err
	}

	if user.Password, err = hashPassword(password); err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return err
	}

	err = u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.userRepo.Create(tx, user); err != nil {
			return err
		}
		return u.audit.LogCreate(ctx, tx, &actor.ID, action, "user", user.ID.String(), converter.UserToResponse(user))
	})
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license_number") {
			return ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return err
	}

	return nil
}

func (u *userUsecase) GetDoctors(ctx context.Context) ([]dto.UserResponse, error) {
	doctors, err := u.userRepo.FindByRole(u.db.Conn(ctx), entity.RoleDoctor)
	if err != nil {
		u.log.Warnf("Failed to find doctors: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(doctors), nil
}

func (u *userUsecase) GetDoctorsByDepartment(ctx context.Context, department string) ([]dto.UserResponse, error) {
	doctors, err := u.userRepo.FindDoctorsByDepartment(u.db.Conn(ctx), department)
	if err != nil {
		u.log.Warnf("Failed to find doctors by department: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(doctors), nil
}

func (u *userUsecase) GetPatients(ctx context.Context) ([]dto.UserResponse, error) {
	patients, err := u.userRepo.FindByRole(u.db.Conn(ctx), entity.RolePatient)
	if err != nil {
		u.log.Warnf("Failed to find patients: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(patients), nil
}

func (u *userUsecase) GetUnverifiedDoctors(ctx context.Context) ([]dto.UserResponse, error) {
	doctors, err := u.userRepo.FindDoctorsByStatus(u.db.Conn(ctx), entity.StatusPendingVerification)
	if err != nil {
		u.log.Warnf("Failed to find unverified doctors: %+v", err)
		return nil, err
	}
	return converter.UsersToResponses(doctors), nil
}

// VerifyDoctor records the admin decision on a doctor's license. The license
// number itself is never checked against an external registry.
func (u *userUsecase) VerifyDoctor(ctx context.Context, actor *entity.User, doctorID string, verified bool) (*dto.UserResponse, error) {
	doctor, err := u.findByRole(ctx, doctorID, entity.RoleDoctor, ErrDoctorNotFound)
	if err != nil {
		return nil, err
	}

	oldStatus := doctor.Status
	newStatus := entity.StatusRejected
	if verified {
		newStatus = entity.StatusVerified
	}

	err = u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.userRepo.UpdateVerification(tx, doctor.ID, newStatus, verified); err != nil {
			return err
		}
		return u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionDoctorVerify, "user", doctor.ID.String(), oldStatus, newStatus)
	})
	if err != nil {
		u.log.Warnf("Failed to update doctor verification: %+v", err)
		return nil, err
	}

	doctor.Status = newStatus
	if doctor.DoctorProfile != nil {
		doctor.DoctorProfile.LicenseVerified = verified
	}

	return converter.UserToResponse(doctor), nil
}

// DeletePatient soft deletes the patient. Their appointments are left in place.
func (u *userUsecase) DeletePatient(ctx context.Context, actor *entity.User, patientID string) error {
	patient, err := u.findByRole(ctx, patientID, entity.RolePatient, ErrPatientNotFound)
	if err != nil {
		return err
	}

	err = u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if _, err := u.userRepo.Delete(tx, patient.ID); err != nil {
			return err
		}
		return u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionPatientDelete, "user", patient.ID.String(), converter.UserToResponse(patient))
	})
	if err != nil {
		u.log.Warnf("Failed to delete patient: %+v", err)
		return err
	}

	u.removeFile(ctx, patient.AvatarID)
	return nil
}

// DeleteDoctor notifies every patient with an appointment, then cancels those
// appointments and deletes the doctor in one transaction. It returns the
// number of cancelled appointments.
func (u *userUsecase) DeleteDoctor(ctx context.Context, actor *entity.User, doctorID string) (int, error) {
	doctor, err := u.findByRole(ctx, doctorID, entity.RoleDoctor, ErrDoctorNotFound)
	if err != nil {
		return 0, err
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.Conn(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return 0, err
	}

	message := fmt.Sprintf("Your appointment with Dr. %s %s has been cancelled as the doctor is no longer available.",
		doctor.FirstName, doctor.LastName)
	for _, a := range appointments {
		if _, err := u.notifier.Notify(ctx, service.NotifyInput{
			UserID:    a.PatientID,
			Message:   message,
			Type:      entity.NotificationTypeAppointment,
			RelatedID: service.RelatedTo(a.ID),
			OnModel:   entity.OnModelAppointment,
		}); err != nil {
			u.log.Warnf("Failed to notify patient of cancelled appointment: %+v", err)
		}
	}

	var cancelled int64
	err = u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		n, err := u.appointmentRepo.CancelByDoctorID(tx, doctor.ID, doctorUnavailableNote)
		if err != nil {
			return err
		}
		cancelled = n
		if _, err := u.userRepo.Delete(tx, doctor.ID); err != nil {
			return err
		}
		return u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionDoctorDelete, "user", doctor.ID.String(), converter.UserToResponse(doctor))
	})
	if err != nil {
		u.log.Warnf("Failed to delete doctor: %+v", err)
		return 0, err
	}

	u.removeFile(ctx, doctor.AvatarID)
	if doctor.DoctorProfile != nil {
		u.removeFile(ctx, doctor.DoctorProfile.SignatureID)
	}

	return int(cancelled), nil
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, actor *entity.User, file *dto.UploadedFile) (*dto.UserResponse, error) {
	if file == nil || len(file.Data) == 0 {
		return nil, ErrFileRequired
	}
	if _, err := storage.DetectContentType(file.Data, storage.ImageTypes); err != nil {
		return nil, ErrUnsupportedFile
	}

	stored, err := u.files.Save(ctx, "avatars", file.Name, file.Data)
	if err != nil {
		u.log.Warnf("Failed to store avatar: %+v", err)
		return nil, err
	}

	if err := u.userRepo.UpdateAvatar(u.db.Conn(ctx), actor.ID, stored.URL, stored.ID); err != nil {
		u.log.Warnf("Failed to update avatar: %+v", err)
		u.removeFile(ctx, stored.ID)
		return nil, err
	}

	previous := actor.AvatarID
	updated := *actor
	updated.AvatarURL = stored.URL
	updated.AvatarID = stored.ID
	u.removeFile(ctx, previous)

	return converter.UserToResponse(&updated), nil
}

func (u *userUsecase) findByRole(ctx context.Context, rawID string, role entity.Role, notFound error) (*entity.User, error) {
	id, err := parseID(rawID, notFound)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, err
	}
	if user == nil || user.Role != role {
		return nil, notFound
	}
	return user, nil
}

// removeFile deletes a stored file. Failures are logged only.
func (u *userUsecase) removeFile(ctx context.Context, id string) {
	if id == "" {
		return
	}
	if err := u.files.Delete(ctx, id); err != nil {
		u.log.Warnf("Failed to delete stored file: %+v", err)
	}
}
