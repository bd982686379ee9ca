package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Auth     AuthConfig
	Report   ReportConfig
}

// AuthConfig holds the API client credentials that may exchange for tokens
type AuthConfig struct {
	ClientID     string
	ClientSecret string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

// ReportConfig holds reconciliation run configuration
type ReportConfig struct {
	Workers                  int
	PunchConsolidationWindow int // minutes
}

func Load() (*Config, error) {
	// A missing .env file is fine in containerized deployments.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "attendance-recon"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	config.Auth = AuthConfig{
		ClientID:     getEnv("API_CLIENT_ID", ""),
		ClientSecret: getEnv("API_CLIENT_SECRET", ""),
	}

	// Report run configuration
	reportWorkers, err := strconv.Atoi(getEnv("REPORT_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid REPORT_WORKERS: %w", err)
	}

	consolidationWindow, err := strconv.Atoi(getEnv("PUNCH_CONSOLIDATION_WINDOW_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid PUNCH_CONSOLIDATION_WINDOW_MINUTES: %w", err)
	}

	config.Report = ReportConfig{
		Workers:                  reportWorkers,
		PunchConsolidationWindow: consolidationWindow,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Auth.ClientID == "" {
		return fmt.Errorf("API_CLIENT_ID is required")
	}
	if c.Auth.ClientSecret == "" {
		return fmt.Errorf("API_CLIENT_SECRET is required")
	}
	if c.Report.Workers < 1 {
		return fmt.Errorf("REPORT_WORKERS must be at least 1")
	}
	if c.Report.PunchConsolidationWindow < 0 {
		return fmt.Errorf("PUNCH_CONSOLIDATION_WINDOW_MINUTES must not be negative")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
