package usecase

import (
	"context"
	"strings"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/service"
	"healthcare-management-system/pkg/jwt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthUsecase interface {
	RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error)
	RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest, signature *dto.UploadedFile) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
	Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error)
}

type authUsecase struct {
	db         repository.Transactor
	log        *logrus.Logger
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	tokens     service.TokenStore
	files      storage.FileStorage
	now        Clock
}

func NewAuthUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	tokens service.TokenStore,
	files storage.FileStorage,
	now Clock,
) AuthUsecase {
	return &authUsecase{
		db:         db,
		log:        log,
		userRepo:   userRepo,
		jwtService: jwtService,
		tokens:     tokens,
		files:      files,
		now:        clockOrLocal(now),
	}
}

func (u *authUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	if err := u.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	dob, err := parseDate(req.DateOfBirth, u.now().Location())
	if err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	user := &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Password:    hashedPassword,
		Role:        entity.RolePatient,
		Status:      entity.StatusVerified,
	}

	if err := u.userRepo.Create(u.db.Conn(ctx), user); err != nil {
		if isDuplicateKeyError(err, "email") {
			return nil, ErrEmailAlreadyExists
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	return u.issueSession(ctx, user)
}

func (u *authUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest, signature *dto.UploadedFile) (*dto.UserResponse, error) {
	if signature == nil || len(signature.Data) == 0 {
		return nil, ErrFileRequired
	}
	if _, err := storage.DetectContentType(signature.Data, storage.SignatureTypes); err != nil {
		return nil, ErrUnsupportedFile
	}

	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	if err := u.ensureEmailFree(ctx, req.Email); err != nil {
		return nil, err
	}

	dob, err := parseDate(req.DateOfBirth, u.now().Location())
	if err != nil {
		return nil, err
	}

	hashedPassword, err := hashPassword(req.Password)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	stored, err := u.files.Save(ctx, "doctor_signatures", signature.Name, signature.Data)
	if err != nil {
		u.log.Warnf("Failed to store signature: %+v", err)
		return nil, err
	}

	doctor := &entity.User{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       strings.ToLower(req.Email),
		Phone:       req.Phone,
		DateOfBirth: dob,
		Gender:      req.Gender,
		Password:    hashedPassword,
		Role:        entity.RoleDoctor,
		Status:      entity.StatusPendingVerification,
		DoctorProfile: &entity.DoctorProfile{
			Department:    req.Department,
			LicenseNumber: req.LicenseNumber,
			SignatureURL:  stored.URL,
			SignatureID:   stored.ID,
		},
	}

	if err := u.createDoctor(ctx, doctor); err != nil {
		if delErr := u.files.Delete(ctx, stored.ID); delErr != nil {
			u.log.Warnf("Failed to delete orphaned signature: %+v", delErr)
		}
		return nil, err
	}

	return converter.UserToResponse(doctor), nil
}

// createDoctor inserts the user and its profile together
func (u *authUsecase) createDoctor(ctx context.Context, doctor *entity.User) error {
	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		return u.userRepo.Create(tx, doctor)
	})
	if err != nil {
		if isDuplicateKeyError(err, "email") {
			return ErrEmailAlreadyExists
		}
		if isDuplicateKeyError(err, "license_number") {
			return ErrLicenseAlreadyExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return err
	}
	return nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := u.userRepo.FindByEmail(u.db.Conn(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotRegistered
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if entity.Role(req.Role) != user.Role {
		return nil, ErrRoleMismatch
	}

	if user.Role == entity.RoleDoctor && !user.IsVerified() {
		return nil, ErrDoctorNotVerified
	}

	return u.issueSession(ctx, user)
}

func (u *authUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.tokens.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke session: %+v", err)
		return err
	}
	return nil
}

// Authenticate verifies the signature, expiry and live session of token and
// loads its user. Every rejection is reported as ErrInvalidToken.
func (u *authUsecase) Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error) {
	claims, err := u.jwtService.ValidateToken(token)
	if err != nil {
		return nil, nil, ErrInvalidToken
	}

	live, err := u.tokens.Exists(ctx, claims.UserID, claims.TokenID)
	if err != nil {
		u.log.Warnf("Failed to check session: %+v", err)
		return nil, nil, err
	}
	if !live {
		return nil, nil, ErrInvalidToken
	}

	user, err := u.userRepo.FindByID(u.db.Conn(ctx), claims.UserID)
	if err != nil {
		u.log.Warnf("Failed to find user by id: %+v", err)
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, ErrInvalidToken
	}

	return user, claims, nil
}

func (u *authUsecase) ensureEmailFree(ctx context.Context, email string) error {
	existing, err := u.userRepo.FindByEmail(u.db.Conn(ctx), email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return err
	}
	if existing != nil {
		return ErrEmailAlreadyExists
	}
	return nil
}

func (u *authUsecase) issueSession(ctx context.Context, user *entity.User) (*dto.AuthResponse, error) {
	token, tokenID, err := u.jwtService.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		u.log.Warnf("Failed to generate token: %+v", err)
		return nil, err
	}

	if err := u.tokens.Save(ctx, user.ID, tokenID, u.jwtService.GetExpiry()); err != nil {
		u.log.Warnf("Failed to store session: %+v", err)
		return nil, err
	}

	return &dto.AuthResponse{
		User:      converter.UserToResponse(user),
		Token:     token,
		ExpiresIn: int64(u.jwtService.GetExpiry().Seconds()),
	}, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}
