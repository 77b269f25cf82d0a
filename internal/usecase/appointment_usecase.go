package usecase

import (
	"context"
	"fmt"
	"time"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type AppointmentUsecase interface {
	Book(ctx context.Context, patient *entity.User, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateStatus(ctx context.Context, actor *entity.User, appointmentID, status string) (*dto.AppointmentResponse, error)
	UpdateStatusForPatient(ctx context.Context, actor *entity.User, patientID, status string) (*dto.BulkStatusUpdateResponse, error)
	DeleteForPatient(ctx context.Context, actor *entity.User, patientID string) (int, error)
	Delete(ctx context.Context, actor *entity.User, appointmentID string) error
	GetMine(ctx context.Context, patient *entity.User) ([]dto.AppointmentResponse, error)
	GetByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error)
	GetByDoctor(ctx context.Context, actor *entity.User, doctorID string) ([]dto.AppointmentResponse, error)
	GetAll(ctx context.Context) ([]dto.AppointmentResponse, error)
	GetDoctorStats(ctx context.Context, doctor *entity.User) (*dto.DoctorStatsResponse, error)
	AddNotes(ctx context.Context, doctor *entity.User, appointmentID, notes string) (*dto.AppointmentResponse, error)
}

type appointmentUsecase struct {
	db              repository.Transactor
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	userRepo        repository.UserRepository
	notifier        service.Notifier
	audit           service.AuditService
	now             Clock
}

func NewAppointmentUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	audit service.AuditService,
	now Clock,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		notifier:        notifier,
		audit:           audit,
		now:             clockOrLocal(now),
	}
}

// Book creates a Pending appointment with the single doctor matching the
// requested name and department, then notifies that doctor.
func (u *appointmentUsecase) Book(ctx context.Context, patient *entity.User, req *dto.BookAppointmentRequest) (*dto.AppointmentResponse, error) {
	dob, err := parseDate(req.DateOfBirth, u.now().Location())
	if err != nil {
		return nil, err
	}
	appointmentDate, err := parseDate(req.AppointmentDate, u.now().Location())
	if err != nil {
		return nil, err
	}

	doctors, err := u.userRepo.FindDoctorsByName(u.db.Conn(ctx), req.DoctorFirstName, req.DoctorLastName, req.Department)
	if err != nil {
		u.log.Warnf("Failed to find doctors by name: %+v", err)
		return nil, err
	}
	switch {
	case len(doctors) == 0:
		return nil, ErrNoMatchingDoctor
	case len(doctors) > 1:
		return nil, ErrDoctorConflict
	}
	doctor := doctors[0]

	appointment := &entity.Appointment{
		PatientID:       patient.ID,
		DoctorID:        doctor.ID,
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		Email:           req.Email,
		Phone:           req.Phone,
		DateOfBirth:     dob,
		Gender:          req.Gender,
		Address:         req.Address,
		HasVisited:      req.HasVisited,
		Department:      req.Department,
		DoctorFirstName: req.DoctorFirstName,
		DoctorLastName:  req.DoctorLastName,
		AppointmentDate: appointmentDate,
		Status:          entity.AppointmentStatusPending,
	}

	if err := u.appointmentRepo.Create(u.db.Conn(ctx), appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.notify(ctx, doctor.ID, appointment,
		fmt.Sprintf("New appointment request from %s %s", req.FirstName, req.LastName))

	return converter.AppointmentToResponse(appointment), nil
}

// UpdateStatus sets any known status. The patient is notified only when the
// status actually changes.
func (u *appointmentUsecase) UpdateStatus(ctx context.Context, actor *entity.User, appointmentID, status string) (*dto.AppointmentResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	appointment, err := u.find(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	if appointment.Status == newStatus {
		return converter.AppointmentToResponse(appointment), nil
	}

	if err := u.changeStatus(ctx, actor, []entity.Appointment{*appointment}, newStatus); err != nil {
		return nil, err
	}

	appointment.Status = newStatus
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) UpdateStatusForPatient(ctx context.Context, actor *entity.User, patientID, status string) (*dto.BulkStatusUpdateResponse, error) {
	newStatus := entity.AppointmentStatus(status)
	if !newStatus.Valid() {
		return nil, ErrInvalidStatus
	}

	id, err := parseID(patientID, ErrNoAppointments)
	if err != nil {
		return nil, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}
	if len(appointments) == 0 {
		return nil, ErrNoAppointments
	}

	changed := make([]entity.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Status != newStatus {
			changed = append(changed, a)
		}
	}

	if err := u.changeStatus(ctx, actor, changed, newStatus); err != nil {
		return nil, err
	}

	return &dto.BulkStatusUpdateResponse{
		Matched: len(appointments),
		Updated: len(changed),
	}, nil
}

// changeStatus writes the new status for every appointment in one
// transaction, then sends one notification per appointment.
func (u *appointmentUsecase) changeStatus(ctx context.Context, actor *entity.User, appointments []entity.Appointment, status entity.AppointmentStatus) error {
	if len(appointments) == 0 {
		return nil
	}

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		for _, a := range appointments {
			if err := u.appointmentRepo.UpdateStatus(tx, a.ID, status); err != nil {
				return err
			}
			if err := u.audit.LogUpdate(ctx, tx, &actor.ID, entity.AuditActionAppointmentStatus, "appointment", a.ID.String(), a.Status, status); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		u.log.Warnf("Failed to update appointment status: %+v", err)
		return err
	}

	message := fmt.Sprintf("Your appointment status has been updated to %s", status)
	for i := range appointments {
		u.notify(ctx, appointments[i].PatientID, &appointments[i], message)
	}

	return nil
}

// DeleteForPatient removes every appointment of the patient. Each patient
// notification is written before its appointment is deleted.
func (u *appointmentUsecase) DeleteForPatient(ctx context.Context, actor *entity.User, patientID string) (int, error) {
	id, err := parseID(patientID, ErrNoAppointments)
	if err != nil {
		return 0, err
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return 0, err
	}
	if len(appointments) == 0 {
		return 0, ErrNoAppointments
	}

	for i := range appointments {
		if err := u.cancelAndDelete(ctx, actor, &appointments[i]); err != nil {
			return i, err
		}
	}

	return len(appointments), nil
}

func (u *appointmentUsecase) Delete(ctx context.Context, actor *entity.User, appointmentID string) error {
	appointment, err := u.find(ctx, appointmentID)
	if err != nil {
		return err
	}
	return u.cancelAndDelete(ctx, actor, appointment)
}

func (u *appointmentUsecase) cancelAndDelete(ctx context.Context, actor *entity.User, appointment *entity.Appointment) error {
	u.notify(ctx, appointment.PatientID, appointment, "Your appointment has been cancelled")

	err := u.db.WithinTransaction(ctx, func(tx *gorm.DB) error {
		if err := u.appointmentRepo.Delete(tx, appointment.ID); err != nil {
			return err
		}
		return u.audit.LogDelete(ctx, tx, &actor.ID, entity.AuditActionAppointmentDelete, "appointment",
			appointment.ID.String(), converter.AppointmentToResponse(appointment))
	})
	if err != nil {
		u.log.Warnf("Failed to delete appointment: %+v", err)
		return err
	}
	return nil
}

func (u *appointmentUsecase) GetMine(ctx context.Context, patient *entity.User) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find patient appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.AppointmentResponse, error) {
	id, err := parseID(patientID, ErrPatientNotFound)
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

	return u.GetMine(ctx, patient)
}

// GetByDoctor lists a doctor's appointments. Doctors may only read their own.
func (u *appointmentUsecase) GetByDoctor(ctx context.Context, actor *entity.User, doctorID string) ([]dto.AppointmentResponse, error) {
	id, err := parseID(doctorID, ErrDoctorNotFound)
	if err != nil {
		return nil, err
	}

	if !actor.Role.Can(entity.CapViewAnyDoctorAppointments) && actor.ID != id {
		return nil, ErrForbidden
	}

	doctor, err := u.userRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find doctor: %+v", err)
		return nil, err
	}
	if doctor == nil || doctor.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	appointments, err := u.appointmentRepo.FindByDoctorID(u.db.Conn(ctx), doctor.ID)
	if err != nil {
		u.log.Warnf("Failed to find doctor appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetAll(ctx context.Context) ([]dto.AppointmentResponse, error) {
	appointments, err := u.appointmentRepo.FindAll(u.db.Conn(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all appointments: %+v", err)
		return nil, err
	}
	return converter.AppointmentsToResponses(appointments), nil
}

func (u *appointmentUsecase) GetDoctorStats(ctx context.Context, doctor *entity.User) (*dto.DoctorStatsResponse, error) {
	now := u.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	stats, err := u.appointmentRepo.DoctorStats(u.db.Conn(ctx), doctor.ID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		u.log.Warnf("Failed to count doctor stats: %+v", err)
		return nil, err
	}
	return converter.DoctorStatsToResponse(stats), nil
}

func (u *appointmentUsecase) AddNotes(ctx context.Context, doctor *entity.User, appointmentID, notes string) (*dto.AppointmentResponse, error) {
	appointment, err := u.find(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment.DoctorID != doctor.ID {
		return nil, ErrForbidden
	}

	if err := u.appointmentRepo.UpdateNotes(u.db.Conn(ctx), appointment.ID, notes); err != nil {
		u.log.Warnf("Failed to update doctor notes: %+v", err)
		return nil, err
	}

	appointment.DoctorNotes = notes
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) find(ctx context.Context, rawID string) (*entity.Appointment, error) {
	id, err := parseID(rawID, ErrAppointmentNotFound)
	if err != nil {
		return nil, err
	}

	appointment, err := u.appointmentRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment: %+v", err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return appointment, nil
}

// notify writes an appointment notification. A failure leaves the
// appointment change in place and is only logged.
func (u *appointmentUsecase) notify(ctx context.Context, userID uuid.UUID, appointment *entity.Appointment, message string) {
	_, err := u.notifier.Notify(ctx, service.NotifyInput{
		UserID:    userID,
		Message:   message,
		Type:      entity.NotificationTypeAppointment,
		RelatedID: service.RelatedTo(appointment.ID),
		OnModel:   entity.OnModelAppointment,
	})
	if err != nil {
		u.log.Warnf("Failed to create appointment notification: %+v", err)
	}
}
