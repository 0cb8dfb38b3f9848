package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
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

// PayrollConfig holds the engine knobs: worker fan-out, whether
// not-yet-processed rent rows are withheld, and the statutory deduction rates
// standing in for the official withholding tables.
type PayrollConfig struct {
	Workers            int
	IncludePendingRent bool

	IncomeTaxRate           decimal.Decimal
	DependentAllowance      decimal.Decimal
	ResidentTaxRate         decimal.Decimal
	HealthInsuranceRate     decimal.Decimal
	PensionRate             decimal.Decimal
	EmploymentInsuranceRate decimal.Decimal
}

func Load() (*Config, error) {
	// Missing .env is fine in containers where everything comes from the
	// environment.
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
		Name:     getEnv("DB_NAME", "uns-staffing"),
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

	// Payroll configuration
	workers, err := strconv.Atoi(getEnv("PAYROLL_WORKERS", "8"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_WORKERS: %w", err)
	}

	config.Payroll = PayrollConfig{
		Workers:            workers,
		IncludePendingRent: getEnv("PAYROLL_INCLUDE_PENDING_RENT", "true") == "true",
	}

	for _, rate := range []struct {
		key      string
		fallback string
		dst      *decimal.Decimal
	}{
		{"PAYROLL_INCOME_TAX_RATE", "0.0510", &config.Payroll.IncomeTaxRate},
		{"PAYROLL_DEPENDENT_ALLOWANCE", "31667", &config.Payroll.DependentAllowance},
		{"PAYROLL_RESIDENT_TAX_RATE", "0.06", &config.Payroll.ResidentTaxRate},
		{"PAYROLL_HEALTH_INSURANCE_RATE", "0.0495", &config.Payroll.HealthInsuranceRate},
		{"PAYROLL_PENSION_RATE", "0.0915", &config.Payroll.PensionRate},
		{"PAYROLL_EMPLOYMENT_INSURANCE_RATE", "0.006", &config.Payroll.EmploymentInsuranceRate},
	} {
		v, err := decimal.NewFromString(getEnv(rate.key, rate.fallback))
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", rate.key, err)
		}
		*rate.dst = v
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
	if c.Payroll.Workers < 1 {
		return fmt.Errorf("PAYROLL_WORKERS must be at least 1")
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
