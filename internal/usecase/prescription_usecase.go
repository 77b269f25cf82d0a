package usecase

import (
	"context"
	"fmt"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/mail"
	"healthcare-management-system/internal/infrastructure/pdf"
	"healthcare-management-system/internal/service"

	"github.com/sirupsen/logrus"
)

type PrescriptionUsecase interface {
	Create(ctx context.Context, doctor *entity.User, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Update(ctx context.Context, doctor *entity.User, prescriptionID string, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error)
	Delete(ctx context.Context, patient *entity.User, prescriptionID string) error
	GetByPatient(ctx context.Context, patientID string, activeOnly bool) ([]dto.PrescriptionResponse, error)
	GetMine(ctx context.Context, patient *entity.User, activeOnly bool) ([]dto.PrescriptionResponse, error)
	GetAll(ctx context.Context) ([]dto.PrescriptionResponse, error)
	Get(ctx context.Context, actor *entity.User, prescriptionID string) (*dto.PrescriptionResponse, error)
	RenderPDF(ctx context.Context, user *entity.User) ([]byte, error)
}

type prescriptionUsecase struct {
	db               repository.Transactor
	log              *logrus.Logger
	prescriptionRepo repository.PrescriptionRepository
	userRepo         repository.UserRepository
	notifier         service.Notifier
	mailer           mail.Mailer
	now              Clock
}

func NewPrescriptionUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	prescriptionRepo repository.PrescriptionRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	mailer mail.Mailer,
	now Clock,
) PrescriptionUsecase {
	return &prescriptionUsecase{
		db:               db,
		log:              log,
		prescriptionRepo: prescriptionRepo,
		userRepo:         userRepo,
		notifier:         notifier,
		mailer:           mailer,
		now:              clockOrLocal(now),
	}
}

func (u *prescriptionUsecase) Create(ctx context.Context, doctor *entity.User, req *dto.CreatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	startDate, err := parseDate(req.StartDate, u.now().Location())
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate, u.now().Location())
	if err != nil {
		return nil, err
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	patient, err := u.findPatient(ctx, req.PatientID)
	if err != nil {
		return nil, err
	}

	prescription := &entity.Prescription{
		PatientID:      patient.ID,
		PrescribedBy:   doctor.ID,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		Instructions:   req.Instructions,
		StartDate:      startDate,
		EndDate:        endDate,
		Notes:          req.Notes,
	}

	if err := u.prescriptionRepo.Create(u.db.Conn(ctx), prescription); err != nil {
		u.log.Warnf("Failed to create prescription: %+v", err)
		return nil, err
	}
	prescription.Patient = patient
	prescription.Prescriber = doctor

	message := fmt.Sprintf("New prescription for %s has been added by Dr. %s %s",
		prescription.MedicationName, doctor.FirstName, doctor.LastName)
	u.notify(ctx, prescription, message)

	if patient.Email != "" {
		err := u.mailer.Send(ctx, mail.Message{
			To:      patient.Email,
			Subject: "MediCure: New Prescription Added",
			Body: fmt.Sprintf("A new prescription for %s has been added to your profile by Dr. %s %s.",
				prescription.MedicationName, doctor.FirstName, doctor.LastName),
		})
		if err != nil {
			u.log.Warnf("Failed to send prescription email: %+v", err)
		}
	}

	return converter.PrescriptionToResponse(prescription, u.now()), nil
}

// Update applies the present fields. Only the prescriber may change a
// prescription, and the patient hears about clinical changes.
func (u *prescriptionUsecase) Update(ctx context.Context, doctor *entity.User, prescriptionID string, req *dto.UpdatePrescriptionRequest) (*dto.PrescriptionResponse, error) {
	prescription, err := u.find(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if prescription.PrescribedBy != doctor.ID {
		return nil, ErrForbidden
	}

	changed := false
	apply := func(field *string, value *string) {
		if value != nil && *value != *field {
			*field = *value
			changed = true
		}
	}
	apply(&prescription.MedicationName, req.MedicationName)
	apply(&prescription.Dosage, req.Dosage)
	apply(&prescription.Frequency, req.Frequency)
	apply(&prescription.Instructions, req.Instructions)

	if req.Notes != nil {
		prescription.Notes = *req.Notes
	}
	if req.StartDate != nil {
		if prescription.StartDate, err = parseDate(*req.StartDate, u.now().Location()); err != nil {
			return nil, err
		}
	}
	if req.EndDate != nil {
		if prescription.EndDate, err = parseDate(*req.EndDate, u.now().Location()); err != nil {
			return nil, err
		}
	}
	if prescription.EndDate.Before(prescription.StartDate) {
		return nil, ErrInvalidDateRange
	}

	if err := u.prescriptionRepo.Update(u.db.Conn(ctx), prescription); err != nil {
		u.log.Warnf("Failed to update prescription: %+v", err)
		return nil, err
	}

	if changed {
		u.notify(ctx, prescription, fmt.Sprintf("Your prescription for %s has been updated", prescription.MedicationName))
	}

	return converter.PrescriptionToResponse(prescription, u.now()), nil
}

// Delete lets a patient remove one of their own prescriptions once its end
// date has passed.
func (u *prescriptionUsecase) Delete(ctx context.Context, patient *entity.User, prescriptionID string) error {
	prescription, err := u.find(ctx, prescriptionID)
	if err != nil {
		return err
	}
	if prescription.PatientID != patient.ID {
		return ErrForbidden
	}
	if !prescription.Deletable(u.now()) {
		return ErrPrescriptionNotExpired
	}

	if err := u.prescriptionRepo.Delete(u.db.Conn(ctx), prescription.ID); err != nil {
		u.log.Warnf("Failed to delete prescription: %+v", err)
		return err
	}
	return nil
}

func (u *prescriptionUsecase) GetByPatient(ctx context.Context, patientID string, activeOnly bool) ([]dto.PrescriptionResponse, error) {
	patient, err := u.findPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	return u.GetMine(ctx, patient, activeOnly)
}

func (u *prescriptionUsecase) GetMine(ctx context.Context, patient *entity.User, activeOnly bool) ([]dto.PrescriptionResponse, error) {
	now := u.now()

	var prescriptions []entity.Prescription
	var err error
	if activeOnly {
		prescriptions, err = u.prescriptionRepo.FindActiveByPatientID(u.db.Conn(ctx), patient.ID, now)
	} else {
		prescriptions, err = u.prescriptionRepo.FindByPatientID(u.db.Conn(ctx), patient.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to find patient prescriptions: %+v", err)
		return nil, err
	}

	return converter.PrescriptionsToResponses(prescriptions, now), nil
}

func (u *prescriptionUsecase) GetAll(ctx context.Context) ([]dto.PrescriptionResponse, error) {
	prescriptions, err := u.prescriptionRepo.FindAll(u.db.Conn(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all prescriptions: %+v", err)
		return nil, err
	}
	return converter.PrescriptionsToResponses(prescriptions, u.now()), nil
}

// Get returns one prescription. Patients may only read their own.
func (u *prescriptionUsecase) Get(ctx context.Context, actor *entity.User, prescriptionID string) (*dto.PrescriptionResponse, error) {
	prescription, err := u.find(ctx, prescriptionID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.Can(entity.CapViewPatientData) && prescription.PatientID != actor.ID {
		return nil, ErrForbidden
	}
	return converter.PrescriptionToResponse(prescription, u.now()), nil
}

// RenderPDF builds a PDF listing every prescription of user
func (u *prescriptionUsecase) RenderPDF(ctx context.Context, user *entity.User) ([]byte, error) {
	prescriptions, err := u.prescriptionRepo.FindByPatientID(u.db.Conn(ctx), user.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient prescriptions: %+v", err)
		return nil, err
	}
	if len(prescriptions) == 0 {
		return nil, ErrNoPrescriptions
	}

	document, err := pdf.RenderPrescriptions(user, prescriptions, u.now())
	if err != nil {
		u.log.Warnf("Failed to render prescriptions pdf: %+v", err)
		return nil, err
	}
	return document, nil
}

func (u *prescriptionUsecase) find(ctx context.Context, rawID string) (*entity.Prescription, error) {
	id, err := parseID(rawID, ErrPrescriptionNotFound)
	if err != nil {
		return nil, err
	}

	prescription, err := u.prescriptionRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find prescription: %+v", err)
		return nil, err
	}
	if prescription == nil {
		return nil, ErrPrescriptionNotFound
	}
	return prescription, nil
}

func (u *prescriptionUsecase) findPatient(ctx context.Context, rawID string) (*entity.User, error) {
	id, err := parseID(rawID, ErrPatientNotFound)
	if err != nil {
		return nil, err
	}

	patient, err := u.userRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient: %+v", err)
		return nil, err
	}
	if patient == nil || patient.Role != entity.RolePatient {
		return nil, ErrPatientNotFound
	}
	return patient, nil
}

func (u *prescriptionUsecase) notify(ctx context.Context, prescription *entity.Prescription, message string) {
	_, err := u.notifier.Notify(ctx, service.NotifyInput{
		UserID:    prescription.PatientID,
		Message:   message,
		Type:      entity.NotificationTypePrescription,
		RelatedID: service.RelatedTo(prescription.ID),
		OnModel:   entity.OnModelPrescription,
	})
	if err != nil {
		u.log.Warnf("Failed to create prescription notification: %+v", err)
	}
}
