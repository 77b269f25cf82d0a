package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/infrastructure/mail"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reminderFixture struct {
	appointments  *mocks.AppointmentRepository
	prescriptions *mocks.PrescriptionRepository
	notifier      *mocks.Notifier
	mailer        *mocks.Mailer
	svc           service.ReminderService
	now           time.Time
}

func newReminderFixture(t *testing.T) *reminderFixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	f := &reminderFixture{
		appointments:  new(mocks.AppointmentRepository),
		prescriptions: new(mocks.PrescriptionRepository),
		notifier:      new(mocks.Notifier),
		mailer:        new(mocks.Mailer),
		now:           time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	f.svc = service.NewReminderService(&mocks.Transactor{}, log, f.appointments, f.prescriptions,
		f.notifier, f.mailer, nil, func() time.Time { return f.now })
	return f
}

func patient(email string) *entity.User {
	return &entity.User{ID: uuid.New(), FirstName: "Jane", LastName: "Doe", Email: email}
}

func TestRemindEndingPrescriptions_WindowAndMessages(t *testing.T) {
	f := newReminderFixture(t)
	p := patient("jane@example.com")
	prescription := entity.Prescription{ID: uuid.New(), PatientID: p.ID, MedicationName: "Metformin", Patient: p}

	f.prescriptions.On("FindEndingBetween", mock.Anything, f.now, f.now.Add(48*time.Hour)).
		Return([]entity.Prescription{prescription}, nil)
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.UserID == p.ID &&
			in.Message == "Your prescription for Metformin is ending soon." &&
			in.Type == entity.NotificationTypePrescription &&
			*in.RelatedID == prescription.ID &&
			in.OnModel == entity.OnModelPrescription
	})).Return(&entity.Notification{}, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool {
		return m.To == "jane@example.com" && m.Subject == "MediCure: Prescription Ending Soon"
	})).Return(nil).Once()

	result, err := f.svc.RemindEndingPrescriptions(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.ReminderResult{Matched: 1, Sent: 1}, result)
	f.notifier.AssertExpectations(t)
	f.mailer.AssertExpectations(t)
}

func TestRemindWeeklyAppointments_StartsAtMidnight(t *testing.T) {
	f := newReminderFixture(t)
	midnight := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	p := patient("jane@example.com")
	appointment := entity.Appointment{
		ID:              uuid.New(),
		PatientID:       p.ID,
		AppointmentDate: time.Date(2026, 3, 12, 14, 30, 0, 0, time.UTC),
		Patient:         p,
	}

	f.appointments.On("FindScheduledBetween", mock.Anything, midnight, midnight.Add(7*24*time.Hour)).
		Return([]entity.Appointment{appointment}, nil)
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.Message == "You have an appointment scheduled for Thu Mar 12 2026 14:30" &&
			in.Type == entity.NotificationTypeAppointment
	})).Return(&entity.Notification{}, nil)
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool {
		return m.Subject == "MediCure: Upcoming Appointment Reminder"
	})).Return(nil)

	result, err := f.svc.RemindWeeklyAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
}

func TestRemindWeeklyAppointments_UsesClockZone(t *testing.T) {
	f := newReminderFixture(t)
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)
	// Monday 08:00 in Kathmandu is still Sunday in UTC.
	f.now = time.Date(2026, 10, 19, 8, 0, 0, 0, kathmandu)
	midnight := time.Date(2026, 10, 19, 0, 0, 0, 0, kathmandu)
	p := patient("jane@example.com")
	appointment := entity.Appointment{
		ID:              uuid.New(),
		PatientID:       p.ID,
		AppointmentDate: time.Date(2026, 10, 20, 4, 15, 0, 0, time.UTC),
		Patient:         p,
	}

	f.appointments.On("FindScheduledBetween", mock.Anything,
		mock.MatchedBy(func(from time.Time) bool { return from.Equal(midnight) }),
		mock.MatchedBy(func(to time.Time) bool { return to.Equal(midnight.Add(7 * 24 * time.Hour)) }),
	).Return([]entity.Appointment{appointment}, nil).Once()
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.Message == "You have an appointment scheduled for Tue Oct 20 2026 10:00"
	})).Return(&entity.Notification{}, nil).Once()
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)

	result, err := f.svc.RemindWeeklyAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Sent)
	f.appointments.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestRemindImminentAppointments_FailuresDoNotAbort(t *testing.T) {
	f := newReminderFixture(t)
	noEmail := patient("")
	notifyFails := patient("fail@example.com")
	mailFails := patient("bounce@example.com")
	ok := patient("ok@example.com")

	at := f.now.Add(90 * time.Minute)
	appointments := []entity.Appointment{
		{ID: uuid.New(), PatientID: noEmail.ID, Patient: noEmail, AppointmentDate: at},
		{ID: uuid.New(), PatientID: notifyFails.ID, Patient: notifyFails, AppointmentDate: at},
		{ID: uuid.New(), PatientID: mailFails.ID, Patient: mailFails, AppointmentDate: at},
		{ID: uuid.New(), PatientID: ok.ID, AppointmentDate: at},
		{ID: uuid.New(), PatientID: ok.ID, Patient: ok, AppointmentDate: at},
	}

	f.appointments.On("FindScheduledBetween", mock.Anything, f.now, f.now.Add(2*time.Hour)).Return(appointments, nil)
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.UserID == notifyFails.ID
	})).Return(nil, errors.New("db down"))
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.UserID != notifyFails.ID && in.Message == "You have an appointment today at 10:30"
	})).Return(&entity.Notification{}, nil)
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool {
		return m.To == "bounce@example.com"
	})).Return(errors.New("smtp 550"))
	f.mailer.On("Send", mock.Anything, mock.MatchedBy(func(m mail.Message) bool {
		return m.To == "ok@example.com" && m.Subject == "MediCure: Appointment Reminder"
	})).Return(nil)

	result, err := f.svc.RemindImminentAppointments(context.Background())
	require.NoError(t, err)
	assert.Equal(t, service.ReminderResult{Matched: 5, Sent: 1, Skipped: 2, Failed: 2}, result)
	f.mailer.AssertNumberOfCalls(t, "Send", 2)
}

func TestRemindImminentAppointments_QueryError(t *testing.T) {
	f := newReminderFixture(t)
	f.appointments.On("FindScheduledBetween", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("timeout"))

	_, err := f.svc.RemindImminentAppointments(context.Background())
	assert.Error(t, err)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
