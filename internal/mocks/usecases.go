package mocks

import (
	"context"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthUsecase) RegisterDoctor(ctx context.Context, req *dto.RegisterDoctorRequest, signature *dto.UploadedFile) (*dto.UserResponse, error) {
	args := m.Called(ctx, req, signature)
	if v := args.Get(0); v != nil {
		return v.(*dto.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	args := m.Called(ctx, userID, tokenID)
	return args.Error(0)
}

func (m *AuthUsecase) Authenticate(ctx context.Context, token string) (*entity.User, *jwt.Claims, error) {
	args := m.Called(ctx, token)
	var user *entity.User
	if v := args.Get(0); v != nil {
		user = v.(*entity.User)
	}
	var claims *jwt.Claims
	if v := args.Get(1); v != nil {
		claims = v.(*jwt.Claims)
	}
	return user, claims, args.Error(2)
}

type AppointmentUsecase struct {
	mock.Mock
}

func (m *AppointmentUsecase) Book(ctx context.Context, patient *entity.User, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, patient, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentUsecase) UpdateStatus(ctx context.Context, actor *entity.User, appointmentID, status string) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, actor, appointmentID, status)
	if v := args.Get(0); v != nil {
		return v.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentUsecase) UpdateStatusForPatient(ctx context.Context, actor *entity.User, patientID, status string) (*dto.BulkStatusUpdateResponse, error) {
	args := m.Called(ctx, actor, patientID, status)
	if v := args.Get(0); v != nil {
		return v.(*dto.BulkStatusUpdateResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentUsecase) DeleteForPatient(ctx context.Context, actor *entity.User, patientID string) (int, error) {
	args := m.Called(ctx, actor, patientID)
	return args.Int(0), args.Error(1)
}

func (m *AppointmentUsecase) Delete(ctx context.Context, actor *entity.User, appointmentID string) error {
	args := m.Called(ctx, actor, appointmentID)
	return args.Error(0)
}

func (m *AppointmentUsecase) GetMine(ctx context.Context, patient *entity.User) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, patient)
	return appointments(args)
}

func (m *AppointmentUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, patientID)
	return appointments(args)
}

func (m *AppointmentUsecase) GetByDoctor(ctx context.Context, actor *entity.User, doctorID string) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx, actor, doctorID)
	return appointments(args)
}

func (m *AppointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	args := m.Called(ctx)
	return appointments(args)
}

func (m *AppointmentUsecase) GetDoctorStats(ctx context.Context, doctor *entity.User) (*dto.DoctorStatsResponse, error) {
	args := m.Called(ctx, doctor)
	if v := args.Get(0); v != nil {
		return v.(*dto.DoctorStatsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentUsecase) AddNotes(ctx context.Context, doctor *entity.User, appointmentID, notes string) (*dto.AppointmentResponse, error) {
	args := m.Called(ctx, doctor, appointmentID, notes)
	if v := args.Get(0); v != nil {
		return v.(*dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func appointments(args mock.Arguments) ([]dto.AppointmentResponse, error) {
	if v := args.Get(0); v != nil {
		return v.([]dto.AppointmentResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type PrescriptionUsecase struct {
	mock.Mock
}

func (m *PrescriptionUsecase) Create(ctx context.Context, doctor *entity.User, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	args := m.Called(ctx, doctor, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.PrescriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionUsecase) Update(ctx context.Context, doctor *entity.User, prescriptionID string, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	args := m.Called(ctx, doctor, prescriptionID, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.PrescriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionUsecase) Delete(ctx context.Context, patient *entity.User, prescriptionID string) error {
	args := m.Called(ctx, patient, prescriptionID)
	return args.Error(0)
}

func (m *PrescriptionUsecase) GetByPatient(ctx context.Context, patientID string, activeOnly bool) ([]dto.PrescriptionResponse, error) {
	args := m.Called(ctx, patientID, activeOnly)
	return prescriptions(args)
}

func (m *PrescriptionUsecase) GetMine(ctx context.Context, patient *entity.User, activeOnly bool) ([]dto.PrescriptionResponse, error) {
	args := m.Called(ctx, patient, activeOnly)
	return prescriptions(args)
}

func (m *PrescriptionUsecase) GetAll(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	args := m.Called(ctx)
	return prescriptions(args)
}

func (m *PrescriptionUsecase) Get(ctx context.Context, actor *entity.User, prescriptionID string) (*dto.PrescriptionResponse, error) {
	args := m.Called(ctx, actor, prescriptionID)
	if v := args.Get(0); v != nil {
		return v.(*dto.PrescriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *PrescriptionUsecase) RenderPDF(ctx context.Context, user *entity.User) ([]byte, error) {
	args := m.Called(ctx, user)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func prescriptions(args mock.Arguments) ([]dto.PrescriptionResponse, error) {
	if v := args.Get(0); v != nil {
		return v.([]dto.PrescriptionResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type VitalsUsecase struct {
	mock.Mock
}

func (m *VitalsUsecase) Add(ctx context.Context, doctor *entity.User, req *dto.AddVitalsRequest) (*dto.VitalsResponse, error) {
	args := m.Called(ctx, doctor, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.VitalsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsUsecase) History(ctx context.Context, patient *entity.User) ([]dto.VitalsResponse, error) {
	args := m.Called(ctx, patient)
	if v := args.Get(0); v != nil {
		return v.([]dto.VitalsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsUsecase) Get(ctx context.Context, patient *entity.User, vitalsID string) (*dto.VitalsResponse, error) {
	args := m.Called(ctx, patient, vitalsID)
	if v := args.Get(0); v != nil {
		return v.(*dto.VitalsResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *VitalsUsecase) Delete(ctx context.Context, doctor *entity.User, vitalsID string) error {
	args := m.Called(ctx, doctor, vitalsID)
	return args.Error(0)
}

func (m *VitalsUsecase) Summarize(ctx context.Context, patient *entity.User) (string, error) {
	args := m.Called(ctx, patient)
	return args.String(0), args.Error(1)
}

func (m *VitalsUsecase) Ask(ctx context.Context, patient *entity.User, req *dto.AskRequest) (string, error) {
	args := m.Called(ctx, patient, req)
	return args.String(0), args.Error(1)
}

func (m *VitalsUsecase) Framingham(ctx context.Context, patient *entity.User, req dto.FraminghamRequest) (*dto.FraminghamResponse, error) {
	args := m.Called(ctx, patient, req)
	if v := args.Get(0); v != nil {
		return v.(*dto.FraminghamResponse), args.Error(1)
	}
	return nil, args.Error(1)
}
