package service

import (
	"context"
	"fmt"
	"time"

	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/mail"

	"github.com/sirupsen/logrus"
)

// Reminder job names, also used as metric labels
const (
	JobPrescriptionEnding = "prescription_ending"
	JobAppointmentWeekly  = "appointment_weekly"
	JobAppointmentHourly  = "appointment_hourly"
)

const (
	prescriptionLookahead = 48 * time.Hour
	weeklyLookahead       = 7 * 24 * time.Hour
	imminentLookahead     = 2 * time.Hour
)

// ReminderResult counts what a single scan did
type ReminderResult struct {
	Matched int
	Sent    int
	Skipped int
	Failed  int
}

type ReminderCounter interface {
	ReminderSent(job string)
	ReminderFailed(job string)
}

type ReminderService interface {
	RemindEndingPrescriptions(ctx context.Context) (ReminderResult, error)
	RemindWeeklyAppointments(ctx context.Context) (ReminderResult, error)
	RemindImminentAppointments(ctx context.Context) (ReminderResult, error)
}

type reminderService struct {
	db               repository.Transactor
	log              *logrus.Logger
	appointmentRepo  repository.AppointmentRepository
	prescriptionRepo repository.PrescriptionRepository
	notifier         Notifier
	mailer           mail.Mailer
	counter          ReminderCounter
	now              func() time.Time
}

func NewReminderService(
	db repository.Transactor,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	prescriptionRepo repository.PrescriptionRepository,
	notifier Notifier,
	mailer mail.Mailer,
	counter ReminderCounter,
	now func() time.Time,
) ReminderService {
	if now == nil {
		now = time.Now
	}
	return &reminderService{
		db:               db,
		log:              log,
		appointmentRepo:  appointmentRepo,
		prescriptionRepo: prescriptionRepo,
		notifier:         notifier,
		mailer:           mailer,
		counter:          counter,
		now:              now,
	}
}

// reminder is one message to deliver as a notification and an email
type reminder struct {
	recipient *entity.User
	notify    NotifyInput
	subject   string
}

func (s *reminderService) RemindEndingPrescriptions(ctx context.Context) (ReminderResult, error) {
	now := s.now()
	prescriptions, err := s.prescriptionRepo.FindEndingBetween(s.db.Conn(ctx), now, now.Add(prescriptionLookahead))
	if err != nil {
		s.log.Warnf("Failed to find ending prescriptions: %+v", err)
		return ReminderResult{}, err
	}

	reminders := make([]reminder, 0, len(prescriptions))
	for _, p := range prescriptions {
		reminders = append(reminders, reminder{
			recipient: p.Patient,
			subject:   "MediCure: Prescription Ending Soon",
			notify: NotifyInput{
				UserID:    p.PatientID,
				Message:   fmt.Sprintf("Your prescription for %s is ending soon.", p.MedicationName),
				Type:      entity.NotificationTypePrescription,
				RelatedID: RelatedTo(p.ID),
				OnModel:   entity.OnModelPrescription,
			},
		})
	}

	return s.deliver(ctx, JobPrescriptionEnding, reminders), nil
}

func (s *reminderService) RemindWeeklyAppointments(ctx context.Context) (ReminderResult, error) {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	appointments, err := s.appointmentRepo.FindScheduledBetween(s.db.Conn(ctx), today, today.Add(weeklyLookahead))
	if err != nil {
		s.log.Warnf("Failed to find upcoming appointments: %+v", err)
		return ReminderResult{}, err
	}

	reminders := make([]reminder, 0, len(appointments))
	for _, a := range appointments {
		when := a.AppointmentDate.In(now.Location()).Format("Mon Jan 2 2006 15:04")
		reminders = append(reminders, appointmentReminder(a,
			"MediCure: Upcoming Appointment Reminder",
			fmt.Sprintf("You have an appointment scheduled for %s", when)))
	}

	return s.deliver(ctx, JobAppointmentWeekly, reminders), nil
}

func (s *reminderService) RemindImminentAppointments(ctx context.Context) (ReminderResult, error) {
	now := s.now()
	appointments, err := s.appointmentRepo.FindScheduledBetween(s.db.Conn(ctx), now, now.Add(imminentLookahead))
	if err != nil {
		s.log.Warnf("Failed to find imminent appointments: %+v", err)
		return ReminderResult{}, err
	}

	reminders := make([]reminder, 0, len(appointments))
	for _, a := range appointments {
		when := a.AppointmentDate.In(now.Location()).Format("15:04")
		reminders = append(reminders, appointmentReminder(a,
			"MediCure: Appointment Reminder",
			fmt.Sprintf("You have an appointment today at %s", when)))
	}

	return s.deliver(ctx, JobAppointmentHourly, reminders), nil
}

func appointmentReminder(a entity.Appointment, subject, message string) reminder {
	return reminder{
		recipient: a.Patient,
		subject:   subject,
		notify: NotifyInput{
			UserID:    a.PatientID,
			Message:   message,
			Type:      entity.NotificationTypeAppointment,
			RelatedID: RelatedTo(a.ID),
			OnModel:   entity.OnModelAppointment,
		},
	}
}

// deliver sends each reminder independently. Recipients without an email
// address are skipped; any failure is logged and the scan moves on.
func (s *reminderService) deliver(ctx context.Context, job string, reminders []reminder) ReminderResult {
	result := ReminderResult{Matched: len(reminders)}

	for _, r := range reminders {
		if r.recipient == nil || r.recipient.Email == "" {
			result.Skipped++
			continue
		}

		if _, err := s.notifier.Notify(ctx, r.notify); err != nil {
			s.log.WithField("job", job).Warnf("Failed to create reminder notification: %+v", err)
			s.fail(job, &result)
			continue
		}

		err := s.mailer.Send(ctx, mail.Message{
			To:      r.recipient.Email,
			Subject: r.subject,
			Body:    fmt.Sprintf("Dear %s,\n\n%s\n\nRegards,\nMediCure", r.recipient.FirstName, r.notify.Message),
		})
		if err != nil {
			s.log.WithField("job", job).Warnf("Failed to send reminder email: %+v", err)
			s.fail(job, &result)
			continue
		}

		result.Sent++
		if s.counter != nil {
			s.counter.ReminderSent(job)
		}
	}

	s.log.WithFields(logrus.Fields{
		"job":     job,
		"matched": result.Matched,
		"sent":    result.Sent,
		"skipped": result.Skipped,
		"failed":  result.Failed,
	}).Info("Reminder job finished")

	return result
}

func (s *reminderService) fail(job string, result *ReminderResult) {
	result.Failed++
	if s.counter != nil {
		s.counter.ReminderFailed(job)
	}
}
