package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := parseDate("1990-04-12", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 1990, d.Year())
	assert.Equal(t, time.April, d.Month())

	dt, err := parseDate("2026-03-10T14:30", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 14, dt.Hour())

	z, err := parseDate("2026-03-10T14:30:00Z", time.Local)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, z.Location())

	_, err = parseDate("10/03/2026", time.UTC)
	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestParseDate_ReadsWallTimeInGivenZone(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)

	d, err := parseDate("2026-10-20", kathmandu)
	require.NoError(t, err)
	assert.True(t, d.Equal(time.Date(2026, 10, 19, 18, 15, 0, 0, time.UTC)))
	assert.Equal(t, kathmandu, d.Location())
}

func TestClockIn(t *testing.T) {
	kathmandu := time.FixedZone("NPT", 5*3600+45*60)

	assert.Equal(t, kathmandu, ClockIn(kathmandu)().Location())
	assert.NotNil(t, clockOrLocal(nil)())
}

func TestParseID(t *testing.T) {
	_, err := parseID("not-a-uuid", ErrPatientNotFound)
	assert.ErrorIs(t, err, ErrPatientNotFound)
}
