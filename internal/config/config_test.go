package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SECRET_KEY", "DATABASE_PATH", "DB_DRIVER", "DATABASE_URL", "EMBASSY_NAME",
		"AVAILABLE_SLOTS_PER_DAY", "MEDICAL_EXAM_REQUIRED", "MEDICAL_EXAM_VALIDITY_DAYS",
		"APP_VERSION", "ENVIRONMENT", "PORT", "DEBUG", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "dev-secret-key-change-in-production", cfg.App.SecretKey)
	assert.Equal(t, "U.S. Embassy", cfg.App.EmbassyName)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "5000", cfg.Server.Port)
	assert.False(t, cfg.Server.Debug)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "appointments.db", cfg.Database.Path)
	assert.Equal(t, 20, cfg.Appointments.AvailableSlotsPerDay)
	assert.True(t, cfg.Appointments.MedicalExamRequired)
	assert.Equal(t, 180, cfg.Appointments.MedicalExamValidityDays)
	assert.Empty(t, cfg.CORS.AllowedOrigins)
	require.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("EMBASSY_NAME", "Embassy of Testland")
	t.Setenv("MEDICAL_EXAM_REQUIRED", "FALSE")
	t.Setenv("MEDICAL_EXAM_VALIDITY_DAYS", "90")
	t.Setenv("DEBUG", "True")
	t.Setenv("PORT", "8081")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test,,")

	cfg := LoadConfig()

	assert.Equal(t, "Embassy of Testland", cfg.App.EmbassyName)
	assert.False(t, cfg.Appointments.MedicalExamRequired)
	assert.Equal(t, 90, cfg.Appointments.MedicalExamValidityDays)
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfig_InvalidIntegerFallsBack(t *testing.T) {
	t.Setenv("AVAILABLE_SLOTS_PER_DAY", "many")
	t.Setenv("MEDICAL_EXAM_VALIDITY_DAYS", "six months")

	cfg := LoadConfig()

	assert.Equal(t, 20, cfg.Appointments.AvailableSlotsPerDay)
	assert.Equal(t, 180, cfg.Appointments.MedicalExamValidityDays)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "sqlite default", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: true},
		{name: "mysql without url", mutate: func(c *Config) { c.Database.Driver = "mysql" }, wantErr: true},
		{name: "postgres with url", mutate: func(c *Config) {
			c.Database.Driver = "postgres"
			c.Database.URL = "postgres://u:p@localhost:5432/embassy"
		}},
		{name: "negative window", mutate: func(c *Config) { c.Appointments.MedicalExamValidityDays = -1 }, wantErr: true},
		{name: "default secret in production", mutate: func(c *Config) { c.App.Environment = "production" }, wantErr: true},
		{name: "custom secret in production", mutate: func(c *Config) {
			c.App.Environment = "production"
			c.App.SecretKey = "s3cr3t"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				App:          AppConfig{SecretKey: defaultSecretKey, Environment: "development"},
				Database:     DatabaseConfig{Driver: "sqlite", Path: "appointments.db"},
				Appointments: AppointmentConfig{MedicalExamValidityDays: 180},
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
