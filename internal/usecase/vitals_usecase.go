package usecase

import (
	"context"
	"fmt"
	"strings"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/llm"
	"healthcare-management-system/internal/service"
	"healthcare-management-system/pkg/framingham"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

const (
	SummaryUnavailable = "Sorry, I couldn't summarize your vitals."
	AnswerUnavailable  = "Sorry, I couldn't answer that question."
)

// Framingham inputs used when the patient record lacks them
const (
	defaultRiskAge      = 40
	defaultRiskSystolic = 120
)

type VitalsUsecase interface {
	Add(ctx context.Context, doctor *entity.User, req *dto.AddVitalsRequest) (*dto.VitalsResponse, error)
	History(ctx context.Context, patient *entity.User) ([]dto.VitalsResponse, error)
	Get(ctx context.Context, patient *entity.User, vitalsID string) (*dto.VitalsResponse, error)
	Delete(ctx context.Context, doctor *entity.User, vitalsID string) error
	Summarize(ctx context.Context, patient *entity.User) (string, error)
	Ask(ctx context.Context, patient *entity.User, req *dto.AskRequest) (string, error)
	Framingham(ctx context.Context, patient *entity.User, req dto.FraminghamRequest) (*dto.FraminghamResponse, error)
}

type vitalsUsecase struct {
	db         repository.Transactor
	log        *logrus.Logger
	vitalsRepo repository.VitalsRepository
	userRepo   repository.UserRepository
	notifier   service.Notifier
	llm        llm.Client
	now        Clock
}

func NewVitalsUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	vitalsRepo repository.VitalsRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	llmClient llm.Client,
	now Clock,
) VitalsUsecase {
	return &vitalsUsecase{
		db:         db,
		log:        log,
		vitalsRepo: vitalsRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		llm:        llmClient,
		now:        clockOrLocal(now),
	}
}

// Add records a doctor's measurement for a patient and notifies the patient
func (u *vitalsUsecase) Add(ctx context.Context, doctor *entity.User, req *dto.AddVitalsRequest) (*dto.VitalsResponse, error) {
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

	recordedAt := u.now()
	if req.RecordedAt != "" {
		if recordedAt, err = parseDate(req.RecordedAt, u.now().Location()); err != nil {
			return nil, err
		}
	}

	recorderID := doctor.ID
	vitals := &entity.Vitals{
		PatientID:        patient.ID,
		RecordedAt:       recordedAt,
		Systolic:         *req.BloodPressure.Systolic,
		Diastolic:        *req.BloodPressure.Diastolic,
		HeartRate:        *req.HeartRate,
		Temperature:      nullDecimal(req.Temperature),
		RespiratoryRate:  req.RespiratoryRate,
		OxygenSaturation: req.OxygenSaturation,
		Cholesterol:      req.Cholesterol,
		HDLCholesterol:   req.HDLCholesterol,
		Weight:           nullDecimal(req.Weight),
		Height:           nullDecimal(req.Height),
		Notes:            req.Notes,
		RecordedBy:       entity.RecordedByDoctor,
		RecorderID:       &recorderID,
	}

	if err := u.vitalsRepo.Create(u.db.Conn(ctx), vitals); err != nil {
		u.log.Warnf("Failed to create vitals: %+v", err)
		return nil, err
	}

	if _, err := u.notifier.Notify(ctx, service.NotifyInput{
		UserID:    patient.ID,
		Message:   "Your vital signs were recorded by your doctor",
		Type:      entity.NotificationTypeVitals,
		RelatedID: service.RelatedTo(vitals.ID),
		OnModel:   entity.OnModelVitals,
	}); err != nil {
		u.log.Warnf("Failed to create vitals notification: %+v", err)
	}

	return converter.VitalsToResponse(vitals), nil
}

func (u *vitalsUsecase) History(ctx context.Context, patient *entity.User) ([]dto.VitalsResponse, error) {
	vitals, err := u.vitalsRepo.FindByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find vitals history: %+v", err)
		return nil, err
	}
	return converter.VitalsListToResponses(vitals), nil
}

func (u *vitalsUsecase) Get(ctx context.Context, patient *entity.User, vitalsID string) (*dto.VitalsResponse, error) {
	vitals, err := u.find(ctx, vitalsID)
	if err != nil {
		return nil, err
	}
	if vitals.PatientID != patient.ID {
		return nil, ErrForbidden
	}
	return converter.VitalsToResponse(vitals), nil
}

// Delete removes a record. A doctor may not delete another doctor's measurement.
func (u *vitalsUsecase) Delete(ctx context.Context, doctor *entity.User, vitalsID string) error {
	vitals, err := u.find(ctx, vitalsID)
	if err != nil {
		return err
	}
	if vitals.RecorderID != nil && *vitals.RecorderID != doctor.ID {
		return ErrForbidden
	}

	n, err := u.vitalsRepo.Delete(u.db.Conn(ctx), vitals.ID)
	if err != nil {
		u.log.Warnf("Failed to delete vitals: %+v", err)
		return err
	}
	if n == 0 {
		return ErrVitalsNotFound
	}
	return nil
}

// Summarize asks the language model to explain the latest vitals. Model
// failures come back as a canned apology, never as an error.
func (u *vitalsUsecase) Summarize(ctx context.Context, patient *entity.User) (string, error) {
	latest, err := u.vitalsRepo.FindLatestByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find latest vitals: %+v", err)
		return "", err
	}
	if latest == nil {
		return "", ErrNoVitals
	}

	prompt := fmt.Sprintf("Summarize these vital signs for a patient in plain language and point out anything "+
		"outside the normal range: %s. Keep it short and friendly, and remind the patient to consult their doctor.",
		describeVitals(latest))

	summary, err := u.llm.Generate(ctx, []llm.Message{{Role: "user", Text: prompt}})
	if err != nil {
		u.log.Warnf("Failed to summarize vitals: %+v", err)
		return SummaryUnavailable, nil
	}
	return summary, nil
}

func (u *vitalsUsecase) Ask(ctx context.Context, patient *entity.User, req *dto.AskRequest) (string, error) {
	var prefix string
	latest, err := u.vitalsRepo.FindLatestByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find latest vitals: %+v", err)
	} else if latest != nil {
		prefix = "My latest vital signs are: " + describeVitals(latest) + ". "
	}

	answer, err := u.llm.Generate(ctx, conversation(req, prefix))
	if err != nil {
		u.log.Warnf("Failed to answer vitals question: %+v", err)
		return AnswerUnavailable, nil
	}
	return answer, nil
}

// Framingham scores the patient's ten year coronary risk from their profile
// and latest systolic pressure.
func (u *vitalsUsecase) Framingham(ctx context.Context, patient *entity.User, req dto.FraminghamRequest) (*dto.FraminghamResponse, error) {
	age := patient.AgeAt(u.now())
	if age <= 0 {
		age = defaultRiskAge
	}

	gender := framingham.Male
	if patient.Gender == entity.GenderFemale {
		gender = framingham.Female
	}

	systolic := defaultRiskSystolic
	latest, err := u.vitalsRepo.FindLatestByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find latest vitals: %+v", err)
		return nil, err
	}
	if latest != nil && latest.Systolic > 0 {
		systolic = latest.Systolic
	}

	result := framingham.Calculate(framingham.Input{
		Age:        age,
		Gender:     gender,
		SystolicBP: systolic,
		OnBPMeds:   req.OnMeds,
		Smoker:     req.Smoker,
		Diabetic:   req.Diabetic,
	})

	genderName := entity.GenderMale
	if gender == framingham.Female {
		genderName = entity.GenderFemale
	}

	return &dto.FraminghamResponse{
		Age:        age,
		Gender:     genderName,
		SystolicBP: systolic,
		Smoker:     req.Smoker,
		Diabetic:   req.Diabetic,
		OnBPMeds:   req.OnMeds,
		Points:     result.Points,
		Risk:       result.Risk,
	}, nil
}

func (u *vitalsUsecase) find(ctx context.Context, rawID string) (*entity.Vitals, error) {
	id, err := parseID(rawID, ErrVitalsNotFound)
	if err != nil {
		return nil, err
	}

	vitals, err := u.vitalsRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find vitals: %+v", err)
		return nil, err
	}
	if vitals == nil {
		return nil, ErrVitalsNotFound
	}
	return vitals, nil
}

func describeVitals(v *entity.Vitals) string {
	parts := []string{
		fmt.Sprintf("blood pressure %d/%d mmHg", v.Systolic, v.Diastolic),
		fmt.Sprintf("heart rate %d bpm", v.HeartRate),
	}
	if v.Temperature.Valid {
		parts = append(parts, "temperature "+v.Temperature.Decimal.String()+" °C")
	}
	if v.OxygenSaturation != nil {
		parts = append(parts, fmt.Sprintf("oxygen saturation %d%%", *v.OxygenSaturation))
	}
	if v.RespiratoryRate != nil {
		parts = append(parts, fmt.Sprintf("respiratory rate %d/min", *v.RespiratoryRate))
	}
	if v.Weight.Valid {
		parts = append(parts, "weight "+v.Weight.Decimal.String()+" kg")
	}
	return strings.Join(parts, ", ")
}

// conversation turns a chat history and a new question into model messages.
// prefix is prepended to the question.
func conversation(req *dto.AskRequest, prefix string) []llm.Message {
	messages := make([]llm.Message, 0, len(req.ChatHistory)+1)
	for _, m := range req.ChatHistory {
		role := "model"
		if m.Sender == "user" {
			role = "user"
		}
		messages = append(messages, llm.Message{Role: role, Text: m.Text})
	}
	return append(messages, llm.Message{Role: "user", Text: prefix + req.Question})
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
