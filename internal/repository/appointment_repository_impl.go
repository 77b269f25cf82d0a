package repository

import (
	"errors"
	"time"

	"healthcare-management-system/internal/domain/entity"
	domainRepo "healthcare-management-system/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct{}

func NewAppointmentRepository() domainRepo.AppointmentRepository {
	return &appointmentRepository{}
}

func (r *appointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	return db.Create(appointment).Error
}

func (r *appointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	var appointment entity.Appointment
	err := db.Where("id = ?", id).First(&appointment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &appointment, nil
}

func (r *appointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Doctor").
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("patient_id = ?", patientID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Where("doctor_id = ?", doctorID).
		Order("appointment_date DESC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

// FindScheduledBetween returns appointments with from <= appointment_date < to,
// with the booking patient loaded.
func (r *appointmentRepository) FindScheduledBetween(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := db.Preload("Patient").
		Where("appointment_date >= ? AND appointment_date < ?", from, to).
		Order("appointment_date ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}

func (r *appointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *appointmentRepository) UpdateNotes(db *gorm.DB, id uuid.UUID, notes string) error {
	return db.Model(&entity.Appointment{}).
		Where("id = ?", id).
		Update("doctor_notes", notes).Error
}

// CancelByDoctorID cancels every appointment of the doctor that is not
// already cancelled. Returns affected rows.
func (r *appointmentRepository) CancelByDoctorID(db *gorm.DB, doctorID uuid.UUID, note string) (int64, error) {
	result := db.Model(&entity.Appointment{}).
		Where("doctor_id = ? AND status != ?", doctorID, entity.AppointmentStatusCancelled).
		Updates(map[string]interface{}{
			"status":       entity.AppointmentStatusCancelled,
			"doctor_notes": note,
		})
	return result.RowsAffected, result.Error
}

func (r *appointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	return db.Where("id = ?", id).Delete(&entity.Appointment{}).Error
}

func (r *appointmentRepository) DoctorStats(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) (*entity.DoctorStats, error) {
	var stats entity.DoctorStats
	base := func() *gorm.DB {
		return db.Model(&entity.Appointment{}).Where("doctor_id = ?", doctorID)
	}

	if err := base().Distinct("patient_id").Count(&stats.TotalPatients).Error; err != nil {
		return nil, err
	}
	if err := base().
		Where("appointment_date >= ? AND appointment_date < ?", dayStart, dayEnd).
		Count(&stats.AppointmentsToday).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", entity.AppointmentStatusPending).Count(&stats.PendingAppointments).Error; err != nil {
		return nil, err
	}
	if err := base().Where("status = ?", entity.AppointmentStatusCompleted).Count(&stats.CompletedAppointments).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}
