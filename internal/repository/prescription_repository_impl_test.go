package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindEndingBetween_InclusiveWindowWithPatient(t *testing.T) {
	db, mock := newMockDB(t)
	from := time.Date(2026, 4, 20, 9, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)
	patientID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "prescriptions" WHERE end_date >= \$1 AND end_date <= \$2`).
		WithArgs(from, to).
		WillReturnRows(sqlmock.NewRows([]string{"id", "patient_id", "medication_name", "end_date"}).
			AddRow(uuid.NewString(), patientID.String(), "Metformin", to))
	mock.ExpectQuery(`SELECT \* FROM "users" WHERE "users"\."id" = \$1 AND "users"\."deleted_at" IS NULL`).
		WithArgs(patientID.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(patientID.String(), "jane@example.com"))

	prescriptions, err := NewPrescriptionRepository().FindEndingBetween(db, from, to)
	require.NoError(t, err)
	require.Len(t, prescriptions, 1)
	assert.Equal(t, "Metformin", prescriptions[0].MedicationName)
	require.NotNil(t, prescriptions[0].Patient)
	assert.Equal(t, patientID, prescriptions[0].Patient.ID)
}
