package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ReadsDotenvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "APP_PORT=5000\nDB_HOST=db.internal\nJWT_SECRET=s3cret\nJWT_EXPIRY=2h\nREMINDER_ENABLED=false\nSMTP_PORT=2525\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "5000", cfg.App.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "s3cret", cfg.JWT.Secret)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiry)
	assert.False(t, cfg.Reminder.Enabled)
	assert.Equal(t, 2525, cfg.SMTP.Port)
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "4000", cfg.App.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
	assert.Equal(t, 7, cfg.Cookie.ExpireDays)
	assert.Equal(t, "0 9 * * *", cfg.Reminder.PrescriptionCron)
	assert.Equal(t, "0 8 * * 1", cfg.Reminder.WeeklyCron)
	assert.Equal(t, "0 * * * *", cfg.Reminder.HourlyCron)
	assert.True(t, cfg.Reminder.Enabled)
	assert.Equal(t, "gemini-1.5-flash", cfg.LLM.Model)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT=5000\n"), 0o600))
	t.Setenv("APP_PORT", "6000")
	t.Setenv("JWT_EXPIRY", "not-a-duration")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "6000", cfg.App.Port)
	assert.Equal(t, 7*24*time.Hour, cfg.JWT.Expiry)
}

func TestAppConfig_Location(t *testing.T) {
	assert.Equal(t, time.Local, AppConfig{}.Location())
	assert.Equal(t, time.Local, AppConfig{Timezone: "Not/AZone"}.Location())
	assert.Equal(t, "UTC", AppConfig{Timezone: "UTC"}.Location().String())
}
