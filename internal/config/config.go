package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"bank-statement-generator/internal/models"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	RateLimit RateLimitConfig
	Generator GeneratorConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// GeneratorConfig holds the defaults stamped on generated statements
type GeneratorConfig struct {
	BankName          string
	RoutingNumber     string
	AccountHolder     string
	StatementCount    int
	TransferFrequency string
}

var routingNumberPattern = regexp.MustCompile(`^\d{9}$`)

// Load reads configuration from the environment, after applying an optional .env file
func Load() (*Config, error) {
	if err := loadDotEnv(getEnv("ENV_FILE", ".env")); err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getFloatEnv("RATE_LIMIT_PER_SECOND", 5),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 10),
		},
		Generator: GeneratorConfig{
			BankName:          getEnv("BANK_NAME", models.DefaultBankName),
			RoutingNumber:     getEnv("BANK_ROUTING_NUMBER", models.DefaultRoutingNumber),
			AccountHolder:     getEnv("DEFAULT_ACCOUNT_HOLDER", models.DefaultAccountHolder),
			StatementCount:    getIntEnv("DEFAULT_STATEMENT_COUNT", models.DefaultStatementCount),
			TransferFrequency: strings.ToLower(getEnv("DEFAULT_TRANSFER_FREQUENCY", models.TransferFrequencyMedium)),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks values that would otherwise fail later at request time
func (c *Config) Validate() error {
	var errs []error

	if !routingNumberPattern.MatchString(c.Generator.RoutingNumber) {
		errs = append(errs, fmt.Errorf("BANK_ROUTING_NUMBER must be 9 digits, got %q", c.Generator.RoutingNumber))
	}
	if c.Generator.StatementCount < models.MinStatementCount || c.Generator.StatementCount > models.MaxStatementCount {
		errs = append(errs, fmt.Errorf("DEFAULT_STATEMENT_COUNT must be between %d and %d", models.MinStatementCount, models.MaxStatementCount))
	}
	if !models.IsValidTransferFrequency(c.Generator.TransferFrequency) {
		errs = append(errs, fmt.Errorf("DEFAULT_TRANSFER_FREQUENCY must be none, low, medium or high, got %q", c.Generator.TransferFrequency))
	}
	if c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_SECOND and RATE_LIMIT_BURST must be positive"))
	}

	return errors.Join(errs...)
}

// Address returns the host:port the server listens on
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

// loadDotEnv applies a .env file if present; existing environment variables win
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	slog.Debug("loaded environment file", "path", path)
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production environment, defaulting to '*'")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}
