package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/llm"

	"github.com/sirupsen/logrus"
)

const (
	AdviceUnavailable      = "Could not get advice from the AI at this time."
	HeartAnswerUnavailable = "Could not get an answer from the AI at this time."
)

const heartAdvicePrompt = "Based on the following clinical data, which indicates a high likelihood of heart disease: %s, " +
	"explain in simple terms which factors likely contributed the most to this result and why. " +
	"Then, suggest clear and practical lifestyle changes (diet, exercise, and stress management) to reduce risk and improve heart health. " +
	"Keep the explanation patient-friendly and easy to understand."

type HeartDataUsecase interface {
	Add(ctx context.Context, doctor *entity.User, req *dto.AddHeartDataRequest) (*dto.HeartDataResponse, error)
	GetMine(ctx context.Context, patient *entity.User) (*dto.HeartDataResponse, error)
	Advice(ctx context.Context, patient *entity.User, req *dto.HeartAdviceRequest) (string, error)
	Ask(ctx context.Context, patient *entity.User, req *dto.AskRequest) (string, error)
}

type heartDataUsecase struct {
	db        repository.Transactor
	log       *logrus.Logger
	heartRepo repository.HeartDataRepository
	userRepo  repository.UserRepository
	llm       llm.Client
}

func NewHeartDataUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	heartRepo repository.HeartDataRepository,
	userRepo repository.UserRepository,
	llmClient llm.Client,
) HeartDataUsecase {
	return &heartDataUsecase{
		db:        db,
		log:       log,
		heartRepo: heartRepo,
		userRepo:  userRepo,
		llm:       llmClient,
	}
}

func (u *heartDataUsecase) Add(ctx context.Context, doctor *entity.User, req *dto.AddHeartDataRequest) (*dto.HeartDataResponse, error) {
	patientID, err := parseID(req.PatientID, ErrPatientNotFound)
	if err != nil {
		return nil, err
	}

	patient, err := u.userRepo.FindByID(u.db.Conn(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || patient.Role != entity.RolePatient {
		return nil, ErrPatientNotFound
	}

	data := converter.HeartFeaturesToEntity(&req.HeartFeatures, patient.ID, doctor.ID)
	if err := u.heartRepo.Create(u.db.Conn(ctx), data); err != nil {
		u.log.Warnf("Failed to create heart data: %+v", err)
		return nil, err
	}

	return converter.HeartDataToResponse(data), nil
}

func (u *heartDataUsecase) GetMine(ctx context.Context, patient *entity.User) (*dto.HeartDataResponse, error) {
	data, err := u.latest(ctx, patient)
	if err != nil {
		return nil, err
	}
	return converter.HeartDataToResponse(data), nil
}

// Advice explains the given features, or the patient's latest stored record
// when none are sent.
func (u *heartDataUsecase) Advice(ctx context.Context, patient *entity.User, req *dto.HeartAdviceRequest) (string, error) {
	var data *entity.HeartData
	if req != nil && req.HeartData != nil {
		data = converter.HeartFeaturesToEntity(req.HeartData, patient.ID, patient.ID)
	} else {
		latest, err := u.latest(ctx, patient)
		if err != nil {
			return "", err
		}
		data = latest
	}

	payload, err := json.Marshal(clinicalFields(data))
	if err != nil {
		return "", err
	}

	advice, err := u.llm.Generate(ctx, []llm.Message{{Role: "user", Text: fmt.Sprintf(heartAdvicePrompt, payload)}})
	if err != nil {
		u.log.Warnf("Failed to get heart advice: %+v", err)
		return AdviceUnavailable, nil
	}
	return advice, nil
}

func (u *heartDataUsecase) Ask(ctx context.Context, patient *entity.User, req *dto.AskRequest) (string, error) {
	answer, err := u.llm.Generate(ctx, conversation(req, ""))
	if err != nil {
		u.log.Warnf("Failed to answer heart question: %+v", err)
		return HeartAnswerUnavailable, nil
	}
	return answer, nil
}

func (u *heartDataUsecase) latest(ctx context.Context, patient *entity.User) (*entity.HeartData, error) {
	data, err := u.heartRepo.FindLatestByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find heart data: %+v", err)
		return nil, err
	}
	if data == nil {
		return nil, ErrNoHeartData
	}
	return data, nil
}

// clinicalFields keeps only the model inputs of a heart data record
func clinicalFields(h *entity.HeartData) map[string]any {
	return map[string]any{
		"age":      h.Age,
		"sex":      h.Sex,
		"cp":       h.CP,
		"trestbps": h.Trestbps,
		"chol":     h.Chol,
		"fbs":      h.Fbs,
		"restecg":  h.Restecg,
		"thalach":  h.Thalach,
		"exang":    h.Exang,
		"oldpeak":  h.Oldpeak,
		"slope":    h.Slope,
		"ca":       h.CA,
		"thal":     h.Thal,
	}
}
