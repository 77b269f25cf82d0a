package usecase

import (
	"context"
	"fmt"

	"healthcare-management-system/internal/converter"
	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/domain/repository"
	"healthcare-management-system/internal/infrastructure/storage"
	"healthcare-management-system/internal/service"

	"github.com/sirupsen/logrus"
)

// MaxHealthRecordSize is the largest accepted upload, in bytes
const MaxHealthRecordSize = 5 << 20

type HealthRecordUsecase interface {
	Upload(ctx context.Context, actor *entity.User, req *dto.UploadHealthRecordRequest, file *dto.UploadedFile) (*dto.HealthRecordResponse, error)
	Update(ctx context.Context, actor *entity.User, recordID string, req *dto.UpdateHealthRecordRequest, file *dto.UploadedFile) (*dto.HealthRecordResponse, error)
	Delete(ctx context.Context, actor *entity.User, recordID string) error
	GetByPatient(ctx context.Context, patientID string) ([]dto.HealthRecordResponse, error)
	GetMine(ctx context.Context, patient *entity.User) ([]dto.HealthRecordResponse, error)
	Get(ctx context.Context, actor *entity.User, recordID string) (*dto.HealthRecordResponse, error)
}

type healthRecordUsecase struct {
	db         repository.Transactor
	log        *logrus.Logger
	recordRepo repository.HealthRecordRepository
	userRepo   repository.UserRepository
	notifier   service.Notifier
	files      storage.FileStorage
}

func NewHealthRecordUsecase(
	db repository.Transactor,
	log *logrus.Logger,
	recordRepo repository.HealthRecordRepository,
	userRepo repository.UserRepository,
	notifier service.Notifier,
	files storage.FileStorage,
) HealthRecordUsecase {
	return &healthRecordUsecase{
		db:         db,
		log:        log,
		recordRepo: recordRepo,
		userRepo:   userRepo,
		notifier:   notifier,
		files:      files,
	}
}

func (u *healthRecordUsecase) Upload(ctx context.Context, actor *entity.User, req *dto.UploadHealthRecordRequest, file *dto.UploadedFile) (*dto.HealthRecordResponse, error) {
	if !actor.Role.Can(entity.CapUploadHealthRecords) {
		return nil, ErrForbidden
	}

	contentType, err := checkRecordFile(file)
	if err != nil {
		return nil, err
	}

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

	stored, err := u.files.Save(ctx, "health_records", file.Name, file.Data)
	if err != nil {
		u.log.Warnf("Failed to store health record file: %+v", err)
		return nil, err
	}

	record := &entity.HealthRecord{
		PatientID:   patient.ID,
		RecordType:  entity.RecordType(req.RecordType),
		FileURL:     stored.URL,
		FileID:      stored.ID,
		FileName:    file.Name,
		ContentType: contentType,
		Description: req.Description,
		CreatedBy:   actor.ID,
	}

	if err := u.recordRepo.Create(u.db.Conn(ctx), record); err != nil {
		u.log.Warnf("Failed to create health record: %+v", err)
		u.removeFile(ctx, stored.ID)
		return nil, err
	}
	record.Creator = actor

	if _, err := u.notifier.Notify(ctx, service.NotifyInput{
		UserID:    patient.ID,
		Message:   fmt.Sprintf("A new %s record has been added to your profile", record.RecordType),
		Type:      entity.NotificationTypeHealthRecord,
		RelatedID: service.RelatedTo(record.ID),
		OnModel:   entity.OnModelHealthRecord,
	}); err != nil {
		u.log.Warnf("Failed to create health record notification: %+v", err)
	}

	return converter.HealthRecordToResponse(record), nil
}

// Update changes the metadata and, when file is given, swaps the stored
// document. The replaced file is removed after the row is saved.
func (u *healthRecordUsecase) Update(ctx context.Context, actor *entity.User, recordID string, req *dto.UpdateHealthRecordRequest, file *dto.UploadedFile) (*dto.HealthRecordResponse, error) {
	if !actor.Role.Can(entity.CapUploadHealthRecords) {
		return nil, ErrForbidden
	}

	record, err := u.find(ctx, recordID)
	if err != nil {
		return nil, err
	}

	if req.RecordType != "" {
		record.RecordType = entity.RecordType(req.RecordType)
	}
	if req.Description != "" {
		record.Description = req.Description
	}

	var previousFileID string
	if file != nil && len(file.Data) > 0 {
		contentType, err := checkRecordFile(file)
		if err != nil {
			return nil, err
		}

		stored, err := u.files.Save(ctx, "health_records", file.Name, file.Data)
		if err != nil {
			u.log.Warnf("Failed to store health record file: %+v", err)
			return nil, err
		}

		previousFileID = record.FileID
		record.FileID = stored.ID
		record.FileURL = stored.URL
		record.FileName = file.Name
		record.ContentType = contentType
	}

	if err := u.recordRepo.Update(u.db.Conn(ctx), record); err != nil {
		u.log.Warnf("Failed to update health record: %+v", err)
		if previousFileID != "" {
			u.removeFile(ctx, record.FileID)
		}
		return nil, err
	}

	if previousFileID != "" {
		u.removeFile(ctx, previousFileID)
	}

	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) Delete(ctx context.Context, actor *entity.User, recordID string) error {
	if !actor.Role.Can(entity.CapUploadHealthRecords) {
		return ErrForbidden
	}

	record, err := u.find(ctx, recordID)
	if err != nil {
		return err
	}

	if err := u.recordRepo.Delete(u.db.Conn(ctx), record.ID); err != nil {
		u.log.Warnf("Failed to delete health record: %+v", err)
		return err
	}

	u.removeFile(ctx, record.FileID)
	return nil
}

func (u *healthRecordUsecase) GetByPatient(ctx context.Context, patientID string) ([]dto.HealthRecordResponse, error) {
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

func (u *healthRecordUsecase) GetMine(ctx context.Context, patient *entity.User) ([]dto.HealthRecordResponse, error) {
	records, err := u.recordRepo.FindByPatientID(u.db.Conn(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find health records: %+v", err)
		return nil, err
	}
	return converter.HealthRecordsToResponses(records), nil
}

func (u *healthRecordUsecase) Get(ctx context.Context, actor *entity.User, recordID string) (*dto.HealthRecordResponse, error) {
	record, err := u.find(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.Can(entity.CapViewPatientData) && record.PatientID != actor.ID {
		return nil, ErrForbidden
	}
	return converter.HealthRecordToResponse(record), nil
}

func (u *healthRecordUsecase) find(ctx context.Context, rawID string) (*entity.HealthRecord, error) {
	id, err := parseID(rawID, ErrHealthRecordNotFound)
	if err != nil {
		return nil, err
	}

	record, err := u.recordRepo.FindByID(u.db.Conn(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find health record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrHealthRecordNotFound
	}
	return record, nil
}

func (u *healthRecordUsecase) removeFile(ctx context.Context, fileID string) {
	if fileID == "" {
		return
	}
	if err := u.files.Delete(ctx, fileID); err != nil {
		u.log.Warnf("Failed to delete health record file: %+v", err)
	}
}

// checkRecordFile validates an upload and returns its sniffed MIME type
func checkRecordFile(file *dto.UploadedFile) (string, error) {
	if file == nil || len(file.Data) == 0 {
		return "", ErrFileRequired
	}
	if len(file.Data) > MaxHealthRecordSize {
		return "", ErrFileTooLarge
	}
	contentType, err := storage.DetectContentType(file.Data, storage.HealthRecordTypes)
	if err != nil {
		return "", ErrUnsupportedFile
	}
	return contentType, nil
}
