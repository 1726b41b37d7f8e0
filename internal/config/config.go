package config

import (
	"fmt"
	"os"
	"strconv"
)

// Storage backends for order and notification records.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Session  SessionConfig
	Orders   OrderConfig
	Notify   NotifyConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig selects where order and notification records live.
type StorageConfig struct {
	Backend string // "memory" or "postgres"
}

// DatabaseConfig holds database-related configuration. Only consulted when the
// postgres backend is selected.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// SessionConfig holds session cookie configuration.
type SessionConfig struct {
	TTLHours int
}

// OrderConfig holds order lifecycle tuning.
type OrderConfig struct {
	// CompletedAtSetOnce freezes completedAt on the first transition to
	// "completed". The default (false) recomputes it on every completed
	// transition, matching the historical behaviour.
	CompletedAtSetOnce bool
}

// NotifyConfig holds notification channel credentials. When Simulate is true
// every channel logs the message instead of calling its provider.
type NotifyConfig struct {
	Simulate        bool
	TimeoutSeconds  int
	WhatsAppToken   string
	WhatsAppPhoneID string
	SMSGatewayURL   string
	SMSAPIKey       string
	SMSSender       string
	SMTPHost        string
	SMTPPort        int
	SMTPUser        string
	SMTPPassword    string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", StorageMemory),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "gamecharge"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Session: SessionConfig{
			TTLHours: getEnvAsInt("SESSION_TTL_HOURS", 24),
		},
		Orders: OrderConfig{
			CompletedAtSetOnce: getEnvAsBool("ORDER_COMPLETED_AT_SET_ONCE", false),
		},
		Notify: NotifyConfig{
			Simulate:        getEnvAsBool("NOTIFY_SIMULATE", true),
			TimeoutSeconds:  getEnvAsInt("NOTIFY_TIMEOUT_SECONDS", 10),
			WhatsAppToken:   getEnv("WHATSAPP_TOKEN", ""),
			WhatsAppPhoneID: getEnv("WHATSAPP_PHONE_ID", ""),
			SMSGatewayURL:   getEnv("SMS_GATEWAY_URL", ""),
			SMSAPIKey:       getEnv("SMS_API_KEY", ""),
			SMSSender:       getEnv("SMS_SENDER", "GameCharge"),
			SMTPHost:        getEnv("SMTP_HOST", ""),
			SMTPPort:        getEnvAsInt("SMTP_PORT", 465),
			SMTPUser:        getEnv("SMTP_USER", ""),
			SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Storage.Backend != StorageMemory && c.Storage.Backend != StoragePostgres {
		return fmt.Errorf("invalid storage backend: %s (must be memory or postgres)", c.Storage.Backend)
	}

	if c.Storage.Backend == StoragePostgres {
		if c.Database.Host == "" {
			return fmt.Errorf("database host is required")
		}

		if c.Database.Port < 1 || c.Database.Port > 65535 {
			return fmt.Errorf("invalid database port: %d", c.Database.Port)
		}

		if c.Database.User == "" {
			return fmt.Errorf("database user is required")
		}

		if c.Database.Database == "" {
			return fmt.Errorf("database name is required")
		}

		if c.Database.MaxConnections < 1 {
			return fmt.Errorf("database max connections must be at least 1")
		}

		if c.Database.MinConnections < 1 {
			return fmt.Errorf("database min connections must be at least 1")
		}

		if c.Database.MinConnections > c.Database.MaxConnections {
			return fmt.Errorf("database min connections cannot exceed max connections")
		}
	}

	if c.Session.TTLHours < 1 {
		return fmt.Errorf("session TTL must be at least 1 hour")
	}

	if c.Notify.TimeoutSeconds < 1 {
		return fmt.Errorf("notification timeout must be at least 1 second")
	}

	if !c.Notify.Simulate {
		if c.Notify.WhatsAppToken == "" || c.Notify.WhatsAppPhoneID == "" {
			return fmt.Errorf("WhatsApp credentials are required when notification simulation is disabled")
		}
		if c.Notify.SMSGatewayURL == "" || c.Notify.SMSAPIKey == "" {
			return fmt.Errorf("SMS gateway credentials are required when notification simulation is disabled")
		}
		if c.Notify.SMTPHost == "" || c.Notify.SMTPUser == "" {
			return fmt.Errorf("SMTP credentials are required when notification simulation is disabled")
		}
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
