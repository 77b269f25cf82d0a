package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/infrastructure/mail"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type prescriptionFixture struct {
	prescriptions *mocks.PrescriptionRepository
	users         *mocks.UserRepository
	notifier      *mocks.Notifier
	mailer        *mocks.Mailer
	uc            *prescriptionUsecase
	now           time.Time
}

func newPrescriptionFixture() *prescriptionFixture {
	f := &prescriptionFixture{
		prescriptions: new(mocks.PrescriptionRepository),
		users:         new(mocks.UserRepository),
		notifier:      new(mocks.Notifier),
		mailer:        new(mocks.Mailer),
		now:           time.Date(2026, 4, 20, 12, 0, 0, 0, time.UTC),
	}
	f.uc = NewPrescriptionUsecase(&mocks.Transactor{}, quietLogger(), f.prescriptions, f.users, f.notifier, f.mailer, nil).(*prescriptionUsecase)
	f.uc.now = func() time.Time { return f.now }
	return f
}

func TestPrescriptionCreate_NotifiesAndEmailsPatient(t *testing.T) {
	f := newPrescriptionFixture()
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor, FirstName: "Greg", LastName: "House"}
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient, Email: "jane@example.com"}

	f.users.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
	f.prescriptions.On("Create", mock.Anything, mock.MatchedBy(func(p *entity.Prescription) bool {
		return p.PatientID == patient.ID && p.PrescribedBy == doctor.ID && p.MedicationName == "Amoxicillin"
	})).Return(nil)
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.UserID == patient.ID &&
			in.Message == "New prescription for Amoxicillin has been added by Dr. Greg House" &&
			in.Type == entity.NotificationTypePrescription
	})).Return(&entity.Notification{}, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool {
		return m.To == "jane@example.com" && m.Subject == "MediCure: New Prescription Added"
	})).Return(errors.New("smtp down")).Once()

	res, err := f.uc.Create(context.Background(), doctor, &dto.CreatePrescriptionRequest{
		PatientID: patient.ID.String(), MedicationName: "Amoxicillin", Dosage: "500mg", Frequency: "3x daily",
		Instructions: "After meals", StartDate: "2026-04-20", EndDate: "2026-04-27",
	})
	require.NoError(t, err)
	assert.True(t, res.Active)
	f.notifier.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestPrescriptionCreate_EndBeforeStart(t *testing.T) {
	f := newPrescriptionFixture()

	_, err := f.uc.Create(context.Background(), &entity.User{}, &dto.CreatePrescriptionRequest{
		PatientID: uuid.NewString(), StartDate: "2026-04-20", EndDate: "2026-04-19",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestPrescriptionCreate_UnknownPatient(t *testing.T) {
	f := newPrescriptionFixture()
	id := uuid.New()
	f.users.On("FindByID", mock.Anything, id).Return(&entity.User{ID: id, Role: entity.RoleDoctor}, nil)

	_, err := f.uc.Create(context.Background(), &entity.User{}, &dto.CreatePrescriptionRequest{
		PatientID: id.String(), StartDate: "2026-04-20", EndDate: "2026-04-27",
	})
	assert.ErrorIs(t, err, ErrPatientNotFound)
}

func TestPrescriptionDelete_Rules(t *testing.T) {
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}

	t.Run("not expired", func(t *testing.T) {
		f := newPrescriptionFixture()
		p := &entity.Prescription{ID: uuid.New(), PatientID: patient.ID, EndDate: f.now.AddDate(0, 0, 1)}
		f.prescriptions.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		err := f.uc.Delete(context.Background(), patient, p.ID.String())
		assert.ErrorIs(t, err, ErrPrescriptionNotExpired)
		f.prescriptions.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("someone else's", func(t *testing.T) {
		f := newPrescriptionFixture()
		p := &entity.Prescription{ID: uuid.New(), PatientID: uuid.New(), EndDate: f.now.AddDate(0, 0, -1)}
		f.prescriptions.On("FindByID", mock.Anything, p.ID).Return(p, nil)

		err := f.uc.Delete(context.Background(), patient, p.ID.String())
		assert.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("expired", func(t *testing.T) {
		f := newPrescriptionFixture()
		p := &entity.Prescription{ID: uuid.New(), PatientID: patient.ID, EndDate: f.now.AddDate(0, 0, -1)}
		f.prescriptions.On("FindByID", mock.Anything, p.ID).Return(p, nil)
		f.prescriptions.On("Delete", mock.Anything, p.ID).Return(nil).Once()

		require.NoError(t, f.uc.Delete(context.Background(), patient, p.ID.String()))
		f.prescriptions.AssertExpectations(t)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := newPrescriptionFixture()
		err := f.uc.Delete(context.Background(), patient, "42")
		assert.ErrorIs(t, err, ErrPrescriptionNotFound)
	})
}

func TestPrescriptionUpdate_OnlyPrescriberAndNotifiesOnChange(t *testing.T) {
	f := newPrescriptionFixture()
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
	p := &entity.Prescription{
		ID: uuid.New(), PatientID: uuid.New(), PrescribedBy: doctor.ID, MedicationName: "Ibuprofen", Dosage: "200mg",
		StartDate: f.now, EndDate: f.now.AddDate(0, 0, 5),
	}
	f.prescriptions.On("FindByID", mock.Anything, p.ID).Return(p, nil)

	_, err := f.uc.Update(context.Background(), &entity.User{ID: uuid.New()}, p.ID.String(), &dto.UpdatePrescriptionRequest{})
	assert.ErrorIs(t, err, ErrForbidden)

	dosage := "400mg"
	f.prescriptions.On("Update", mock.Anything, p).Return(nil)
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.Message == "Your prescription for Ibuprofen has been updated"
	})).Return(&entity.Notification{}, nil).Once()

	res, err := f.uc.Update(context.Background(), doctor, p.ID.String(), &dto.UpdatePrescriptionRequest{Dosage: &dosage})
	require.NoError(t, err)
	assert.Equal(t, "400mg", res.Dosage)
	f.notifier.AssertExpectations(t)
}

func TestPrescriptionGet_PatientSeesOnlyOwn(t *testing.T) {
	f := newPrescriptionFixture()
	p := &entity.Prescription{ID: uuid.New(), PatientID: uuid.New(), EndDate: f.now}
	f.prescriptions.On("FindByID", mock.Anything, p.ID).Return(p, nil)

	_, err := f.uc.Get(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RolePatient}, p.ID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Get(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}, p.ID.String())
	assert.NoError(t, err)
}

func TestPrescriptionRenderPDF_NoPrescriptions(t *testing.T) {
	f := newPrescriptionFixture()
	user := &entity.User{ID: uuid.New()}
	f.prescriptions.On("FindByPatientID", mock.Anything, user.ID).Return([]entity.Prescription{}, nil)

	_, err := f.uc.RenderPDF(context.Background(), user)
	assert.ErrorIs(t, err, ErrNoPrescriptions)
}

func TestPrescriptionGetMine_ActiveOnlyUsesClock(t *testing.T) {
	f := newPrescriptionFixture()
	patient := &entity.User{ID: uuid.New()}
	f.prescriptions.On("FindActiveByPatientID", mock.Anything, patient.ID, f.now).
		Return([]entity.Prescription{{ID: uuid.New(), PatientID: patient.ID, EndDate: f.now.AddDate(0, 0, 2)}}, nil)

	res, err := f.uc.GetMine(context.Background(), patient, true)
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.True(t, res[0].Active)
}
