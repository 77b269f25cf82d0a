package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	Redis    RedisConfig
	JWT      JWTConfig
	Cookie   CookieConfig
	SMTP     SMTPConfig
	LLM      LLMConfig
	Storage  StorageConfig
	Reminder ReminderConfig
}

type AppConfig struct {
	Port         string
	Env          string
	FrontendURL  string
	DashboardURL string
	Timezone     string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
}

type CookieConfig struct {
	ExpireDays int
	Secure     bool
}

type SMTPConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type LLMConfig struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

type StorageConfig struct {
	Dir     string
	BaseURL string
}

type ReminderConfig struct {
	Enabled          bool
	PrescriptionCron string
	WeeklyCron       string
	HourlyCron       string
}

// LoadConfig reads the dotenv file at path and overlays process environment
// variables. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Port:         v.GetString("APP_PORT"),
			Env:          v.GetString("APP_ENV"),
			FrontendURL:  v.GetString("FRONTEND_URL"),
			DashboardURL: v.GetString("DASHBOARD_URL"),
			Timezone:     v.GetString("TIMEZONE"),
		},
		DB: DBConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSLMODE"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetString("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Expiry: parseDuration(v.GetString("JWT_EXPIRY"), 7*24*time.Hour),
		},
		Cookie: CookieConfig{
			ExpireDays: v.GetInt("COOKIE_EXPIRE_DAYS"),
			Secure:     v.GetBool("COOKIE_SECURE"),
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			User:     v.GetString("SMTP_USER"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		LLM: LLMConfig{
			APIKey:  v.GetString("GEMINI_API_KEY"),
			Model:   v.GetString("GEMINI_MODEL"),
			BaseURL: v.GetString("GEMINI_BASE_URL"),
			Timeout: parseDuration(v.GetString("GEMINI_TIMEOUT"), 20*time.Second),
		},
		Storage: StorageConfig{
			Dir:     v.GetString("STORAGE_DIR"),
			BaseURL: v.GetString("STORAGE_BASE_URL"),
		},
		Reminder: ReminderConfig{
			Enabled:          v.GetBool("REMINDER_ENABLED"),
			PrescriptionCron: v.GetString("REMINDER_PRESCRIPTION_CRON"),
			WeeklyCron:       v.GetString("REMINDER_WEEKLY_CRON"),
			HourlyCron:       v.GetString("REMINDER_HOURLY_CRON"),
		},
	}

	return config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "4000")
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("TIMEZONE", "Local")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("REDIS_PORT", "6379")
	v.SetDefault("COOKIE_EXPIRE_DAYS", 7)
	v.SetDefault("SMTP_PORT", 587)
	v.SetDefault("GEMINI_MODEL", "gemini-1.5-flash")
	v.SetDefault("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/")
	v.SetDefault("STORAGE_DIR", "./uploads")
	v.SetDefault("STORAGE_BASE_URL", "/files")
	v.SetDefault("REMINDER_ENABLED", true)
	v.SetDefault("REMINDER_PRESCRIPTION_CRON", "0 9 * * *")
	v.SetDefault("REMINDER_WEEKLY_CRON", "0 8 * * 1")
	v.SetDefault("REMINDER_HOURLY_CRON", "0 * * * *")
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}

// Location resolves the configured timezone, falling back to time.Local.
func (c AppConfig) Location() *time.Location {
	if c.Timezone == "" || c.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
