package usecase

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<<>>\nendobj\n%%EOF")

type healthRecordFixture struct {
	records  *mocks.HealthRecordRepository
	users    *mocks.UserRepository
	notifier *mocks.Notifier
	files    *mocks.FileStorage
	uc       HealthRecordUsecase
}

func newHealthRecordFixture() *healthRecordFixture {
	f := &healthRecordFixture{
		records:  new(mocks.HealthRecordRepository),
		users:    new(mocks.UserRepository),
		notifier: new(mocks.Notifier),
		files:    new(mocks.FileStorage),
	}
	f.uc = NewHealthRecordUsecase(&mocks.Transactor{}, quietLogger(), f.records, f.users, f.notifier, f.files)
	return f
}

func TestHealthRecordUpload_StoresAndNotifies(t *testing.T) {
	f := newHealthRecordFixture()
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}

	f.users.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
	f.files.On("Save", mock.Anything, "health_records", "scan.pdf", pdfBytes).
		Return(&storage.StoredFile{ID: "health_records/x.pdf", URL: "/uploads/health_records/x.pdf"}, nil)
	f.records.On("Create", mock.Anything, mock.MatchedBy(func(r *entity.HealthRecord) bool {
		return r.PatientID == patient.ID && r.CreatedBy == doctor.ID &&
			r.ContentType == "application/pdf" && r.FileID == "health_records/x.pdf"
	})).Return(nil).Once()
	f.notifier.On("Notify", mock.Anything, mock.MatchedBy(func(in service.NotifyInput) bool {
		return in.UserID == patient.ID &&
			in.Message == "A new Lab Results record has been added to your profile" &&
			in.Type == entity.NotificationTypeHealthRecord
	})).Return(&entity.Notification{}, nil).Once()

	res, err := f.uc.Upload(context.Background(), doctor,
		&dto.UploadHealthRecordRequest{PatientID: patient.ID.String(), RecordType: "Lab Results"},
		&dto.UploadedFile{Name: "scan.pdf", Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/health_records/x.pdf", res.FileURL)
	f.records.AssertExpectations(t)
	f.notifier.AssertExpectations(t)
}

func TestHealthRecordUpload_Rejections(t *testing.T) {
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
	req := &dto.UploadHealthRecordRequest{PatientID: uuid.NewString(), RecordType: "X-Ray"}

	tests := []struct {
		name  string
		actor *entity.User
		file  *dto.UploadedFile
		want  error
	}{
		{name: "patient uploader", actor: &entity.User{Role: entity.RolePatient}, file: &dto.UploadedFile{Data: pdfBytes}, want: ErrForbidden},
		{name: "missing file", actor: doctor, file: nil, want: ErrFileRequired},
		{name: "png", actor: doctor, file: &dto.UploadedFile{Data: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")}, want: ErrUnsupportedFile},
		{name: "too large", actor: doctor, file: &dto.UploadedFile{Data: append(append([]byte{}, pdfBytes...), bytes.Repeat([]byte{0}, MaxHealthRecordSize)...)}, want: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newHealthRecordFixture()
			_, err := f.uc.Upload(context.Background(), tt.actor, req, tt.file)
			assert.ErrorIs(t, err, tt.want)
			f.files.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestHealthRecordUpload_RemovesFileWhenInsertFails(t *testing.T) {
	f := newHealthRecordFixture()
	patient := &entity.User{ID: uuid.New(), Role: entity.RolePatient}

	f.users.On("FindByID", mock.Anything, patient.ID).Return(patient, nil)
	f.files.On("Save", mock.Anything, "health_records", "scan.pdf", pdfBytes).
		Return(&storage.StoredFile{ID: "health_records/x.pdf"}, nil)
	f.records.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
	f.files.On("Delete", mock.Anything, "health_records/x.pdf").Return(nil).Once()

	_, err := f.uc.Upload(context.Background(), &entity.User{Role: entity.RoleAdmin},
		&dto.UploadHealthRecordRequest{PatientID: patient.ID.String(), RecordType: "MRI"},
		&dto.UploadedFile{Name: "scan.pdf", Data: pdfBytes})
	require.Error(t, err)
	f.files.AssertExpectations(t)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestHealthRecordUpdate_ReplacesFileAfterSave(t *testing.T) {
	f := newHealthRecordFixture()
	record := &entity.HealthRecord{ID: uuid.New(), FileID: "health_records/old.pdf", RecordType: entity.RecordTypeMRI}

	f.records.On("FindByID", mock.Anything, record.ID).Return(record, nil)
	f.files.On("Save", mock.Anything, "health_records", "new.pdf", pdfBytes).
		Return(&storage.StoredFile{ID: "health_records/new.pdf", URL: "/uploads/health_records/new.pdf"}, nil)
	f.records.On("Update", mock.Anything, record).Return(nil)
	f.files.On("Delete", mock.Anything, "health_records/old.pdf").Return(errors.New("gone")).Once()

	res, err := f.uc.Update(context.Background(), &entity.User{Role: entity.RoleDoctor}, record.ID.String(),
		&dto.UpdateHealthRecordRequest{Description: "follow-up"}, &dto.UploadedFile{Name: "new.pdf", Data: pdfBytes})
	require.NoError(t, err)
	assert.Equal(t, "/uploads/health_records/new.pdf", res.FileURL)
	assert.Equal(t, "follow-up", res.Description)
	f.files.AssertExpectations(t)
}

func TestHealthRecordDelete_RemovesFile(t *testing.T) {
	f := newHealthRecordFixture()
	record := &entity.HealthRecord{ID: uuid.New(), FileID: "health_records/a.pdf"}

	f.records.On("FindByID", mock.Anything, record.ID).Return(record, nil)
	f.records.On("Delete", mock.Anything, record.ID).Return(nil).Once()
	f.files.On("Delete", mock.Anything, "health_records/a.pdf").Return(nil).Once()

	require.NoError(t, f.uc.Delete(context.Background(), &entity.User{Role: entity.RoleAdmin}, record.ID.String()))
	f.records.AssertExpectations(t)
	f.files.AssertExpectations(t)
}

func TestHealthRecordGet_PatientSeesOnlyOwn(t *testing.T) {
	f := newHealthRecordFixture()
	record := &entity.HealthRecord{ID: uuid.New(), PatientID: uuid.New()}
	f.records.On("FindByID", mock.Anything, record.ID).Return(record, nil)

	_, err := f.uc.Get(context.Background(), &entity.User{ID: uuid.New(), Role: entity.RolePatient}, record.ID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.uc.Get(context.Background(), &entity.User{ID: record.PatientID, Role: entity.RolePatient}, record.ID.String())
	assert.NoError(t, err)
}
