package mocks

import (
	"time"

	"healthcare-management-system/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type AppointmentRepository struct {
	mock.Mock
}

func (m *AppointmentRepository) Create(db *gorm.DB, appointment *entity.Appointment) error {
	args := m.Called(db, appointment)
	return args.Error(0)
}

func (m *AppointmentRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(db, id)
	if v := args.Get(0); v != nil {
		return v.(*entity.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AppointmentRepository) FindAll(db *gorm.DB) ([]entity.Appointment, error) {
	args := m.Called(db)
	return appointmentsOrNil(args.Get(0)), args.Error(1)
}

func (m *AppointmentRepository) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, patientID)
	return appointmentsOrNil(args.Get(0)), args.Error(1)
}

func (m *AppointmentRepository) FindByDoctorID(db *gorm.DB, doctorID uuid.UUID) ([]entity.Appointment, error) {
	args := m.Called(db, doctorID)
	return appointmentsOrNil(args.Get(0)), args.Error(1)
}

func (m *AppointmentRepository) FindScheduledBetween(db *gorm.DB, from, to time.Time) ([]entity.Appointment, error) {
	args := m.Called(db, from, to)
	return appointmentsOrNil(args.Get(0)), args.Error(1)
}

func (m *AppointmentRepository) UpdateStatus(db *gorm.DB, id uuid.UUID, status entity.AppointmentStatus) error {
	args := m.Called(db, id, status)
	return args.Error(0)
}

func (m *AppointmentRepository) UpdateNotes(db *gorm.DB, id uuid.UUID, notes string) error {
	args := m.Called(db, id, notes)
	return args.Error(0)
}

func (m *AppointmentRepository) CancelByDoctorID(db *gorm.DB, doctorID uuid.UUID, note string) (int64, error) {
	args := m.Called(db, doctorID, note)
	return args.Get(0).(int64), args.Error(1)
}

func (m *AppointmentRepository) Delete(db *gorm.DB, id uuid.UUID) error {
	args := m.Called(db, id)
	return args.Error(0)
}

func (m *AppointmentRepository) DoctorStats(db *gorm.DB, doctorID uuid.UUID, dayStart, dayEnd time.Time) (*entity.DoctorStats, error) {
	args := m.Called(db, doctorID, dayStart, dayEnd)
	if v := args.Get(0); v != nil {
		return v.(*entity.DoctorStats), args.Error(1)
	}
	return nil, args.Error(1)
}

func appointmentsOrNil(v interface{}) []entity.Appointment {
	if v == nil {
		return nil
	}
	return v.([]entity.Appointment)
}
