package handler

import (
	"net/http"
	"testing"

	"healthcare-management-system/internal/delivery/dto"
	"healthcare-management-system/internal/domain/entity"
	"healthcare-management-system/internal/mocks"
	"healthcare-management-system/internal/usecase"
	"healthcare-management-system/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestPrescriptionPDF(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Role: entity.RolePatient}

	t.Run("document", func(t *testing.T) {
		uc := new(mocks.PrescriptionUsecase)
		uc.On("RenderPDF", mock.Anything, user).Return([]byte("%PDF-1.3 ..."), nil)
		h := NewPrescriptionHandler(uc, validator.NewValidator())

		rec := serve(http.MethodGet, "/prescriptions/pdf", "/prescriptions/pdf", nil, user, h.PDF)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
		assert.Equal(t, "%PDF-1.3 ...", rec.Body.String())
	})

	t.Run("nothing to render", func(t *testing.T) {
		uc := new(mocks.PrescriptionUsecase)
		uc.On("RenderPDF", mock.Anything, user).Return(nil, usecase.ErrNoPrescriptions)
		h := NewPrescriptionHandler(uc, validator.NewValidator())

		rec := serve(http.MethodGet, "/prescriptions/pdf", "/prescriptions/pdf", nil, user, h.PDF)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "No prescriptions found", decode(t, rec)["message"])
	})
}

func TestPrescriptionDelete_NotExpired(t *testing.T) {
	uc := new(mocks.PrescriptionUsecase)
	id := uuid.NewString()
	uc.On("Delete", mock.Anything, mock.Anything, id).Return(usecase.ErrPrescriptionNotExpired)
	h := NewPrescriptionHandler(uc, validator.NewValidator())

	rec := serve(http.MethodDelete, "/prescriptions/delete/{id}", "/prescriptions/delete/"+id, nil, &entity.User{ID: uuid.New()}, h.Delete)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Prescriptions can only be deleted after they have expired", decode(t, rec)["message"])
}

func TestPrescriptionGetMine_PassesActiveFlag(t *testing.T) {
	uc := new(mocks.PrescriptionUsecase)
	patient := &entity.User{ID: uuid.New()}
	uc.On("GetMine", mock.Anything, patient, true).Return([]dto.PrescriptionResponse{{ID: uuid.New(), Active: true}}, nil).Once()
	h := NewPrescriptionHandler(uc, validator.NewValidator())

	rec := serve(http.MethodGet, "/prescriptions/active/me", "/prescriptions/active/me", nil, patient, h.GetMine(true))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(1), decode(t, rec)["count"])
	uc.AssertExpectations(t)
}

func TestVitalsAdd_RequiresCoreSigns(t *testing.T) {
	uc := new(mocks.VitalsUsecase)
	h := NewVitalsHandler(uc, validator.NewValidator())

	rec := serve(http.MethodPost, "/vitals/add", "/vitals/add", map[string]interface{}{
		"patient_id":     uuid.NewString(),
		"blood_pressure": map[string]int{"systolic": 120},
		"heart_rate":     70,
	}, &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}, h.Add)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Please provide required vital signs and patient ID!", body["message"])
	uc.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestVitalsAdd_ZeroReadingsAreAccepted(t *testing.T) {
	uc := new(mocks.VitalsUsecase)
	doctor := &entity.User{ID: uuid.New(), Role: entity.RoleDoctor}
	uc.On("Add", mock.Anything, doctor, mock.MatchedBy(func(req *dto.AddVitalsRequest) bool {
		return *req.BloodPressure.Systolic == 0 && *req.HeartRate == 0
	})).Return(&dto.VitalsResponse{ID: uuid.New()}, nil).Once()
	h := NewVitalsHandler(uc, validator.NewValidator())

	rec := serve(http.MethodPost, "/vitals/add", "/vitals/add", map[string]interface{}{
		"patient_id":     uuid.NewString(),
		"blood_pressure": map[string]int{"systolic": 0, "diastolic": 0},
		"heart_rate":     0,
	}, doctor, h.Add)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Vitals recorded successfully!", decode(t, rec)["message"])
	uc.AssertExpectations(t)
}

func TestVitalsSummarize_ApologyIsStillOK(t *testing.T) {
	uc := new(mocks.VitalsUsecase)
	patient := &entity.User{ID: uuid.New()}
	uc.On("Summarize", mock.Anything, patient).Return(usecase.SummaryUnavailable, nil)
	h := NewVitalsHandler(uc, validator.NewValidator())

	rec := serve(http.MethodPost, "/vitals/summarize", "/vitals/summarize", nil, patient, h.Summarize)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Sorry, I couldn't summarize your vitals.", decode(t, rec)["summary"])
}

func TestVitalsFramingham_ReadsQueryFlags(t *testing.T) {
	uc := new(mocks.VitalsUsecase)
	patient := &entity.User{ID: uuid.New()}
	uc.On("Framingham", mock.Anything, patient, dto.FraminghamRequest{Smoker: true, OnMeds: true}).
		Return(&dto.FraminghamResponse{Points: 9, Risk: "5%"}, nil).Once()
	h := NewVitalsHandler(uc, validator.NewValidator())

	rec := serve(http.MethodGet, "/vitals/framingham", "/vitals/framingham?smoker=true&diabetic=maybe&on_meds=1", nil, patient, h.Framingham)

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}
