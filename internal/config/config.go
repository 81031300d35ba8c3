package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App          AppConfig
	Server       ServerConfig
	Database     DatabaseConfig
	Appointments AppointmentConfig
	Log          LogConfig
	CORS         CORSConfig
}

type AppConfig struct {
	SecretKey   string
	EmbassyName string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port  string
	Debug bool
}

type DatabaseConfig struct {
	Driver string
	Path   string
	URL    string
}

// AppointmentConfig holds the booking rules handed to the appointment service.
type AppointmentConfig struct {
	AvailableSlotsPerDay    int
	MedicalExamRequired     bool
	MedicalExamValidityDays int
}

type LogConfig struct {
	Level  string
	Format string
}

type CORSConfig struct {
	AllowedOrigins []string
}

const defaultSecretKey = "dev-secret-key-change-in-production"

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			SecretKey:   getEnv("SECRET_KEY", defaultSecretKey),
			EmbassyName: getEnv("EMBASSY_NAME", "U.S. Embassy"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("ENVIRONMENT", "development"),
		},
		Server: ServerConfig{
			Port:  getEnv("PORT", "5000"),
			Debug: parseBool(getEnv("DEBUG", "false")),
		},
		Database: DatabaseConfig{
			Driver: strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
			Path:   getEnv("DATABASE_PATH", "appointments.db"),
			URL:    getEnv("DATABASE_URL", ""),
		},
		Appointments: AppointmentConfig{
			AvailableSlotsPerDay:    parseInt("AVAILABLE_SLOTS_PER_DAY", getEnv("AVAILABLE_SLOTS_PER_DAY", "20"), 20),
			MedicalExamRequired:     parseBool(getEnv("MEDICAL_EXAM_REQUIRED", "true")),
			MedicalExamValidityDays: parseInt("MEDICAL_EXAM_VALIDITY_DAYS", getEnv("MEDICAL_EXAM_VALIDITY_DAYS", "180"), 180),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "")),
		},
	}

	return config
}

// Validate rejects combinations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case "sqlite":
		if c.Database.Path == "" {
			return fmt.Errorf("DATABASE_PATH is required when DB_DRIVER is \"sqlite\"")
		}
	case "mysql", "postgres":
		if c.Database.URL == "" {
			return fmt.Errorf("DATABASE_URL is required when DB_DRIVER is %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("DB_DRIVER must be \"sqlite\", \"mysql\", or \"postgres\", got %q", c.Database.Driver)
	}

	if c.Appointments.MedicalExamValidityDays < 0 {
		return fmt.Errorf("MEDICAL_EXAM_VALIDITY_DAYS must not be negative, got %d", c.Appointments.MedicalExamValidityDays)
	}

	if c.IsProduction() && c.App.SecretKey == defaultSecretKey {
		return fmt.Errorf("SECRET_KEY must be changed from the default in production")
	}

	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseBool(s string) bool {
	return strings.ToLower(s) == "true"
}

func parseInt(key, s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		fmt.Printf("Warning: Invalid integer for %s '%s', using default %d\n", key, s, fallback)
		return fallback
	}
	return n
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
