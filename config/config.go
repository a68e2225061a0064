// Package config provides application configuration management.
// It loads configuration from environment variables with sensible defaults.
package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all agent configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Remote   RemoteConfig
	Sync     SyncConfig
	Redis    RedisConfig
	Locale   LocaleConfig
	AI       AIConfig
}

// ServerConfig holds the loopback HTTP API configuration.
type ServerConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Environment  string
}

// DatabaseConfig holds local database configuration.
type DatabaseConfig struct {
	Driver          string // "sqlite" (default) or "postgres"
	Path            string // sqlite file path
	URL             string // postgres connection URL
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// RemoteConfig holds the dashboard API configuration.
type RemoteConfig struct {
	BaseURL string
	Timeout time.Duration
}

// SyncConfig holds sync worker configuration.
type SyncConfig struct {
	PollInterval  time.Duration
	ItemTimeout   time.Duration
	ProbeInterval time.Duration
}

// RedisConfig holds the optional event-bridge configuration.
type RedisConfig struct {
	Enabled  bool
	Addr     string
	Password string
	DB       int
	Channel  string
}

// LocaleConfig holds display-string formatting configuration.
type LocaleConfig struct {
	CurrencySymbol string
	IndianGrouping bool
}

// AIConfig holds the online classifier fallback configuration.
type AIConfig struct {
	GeminiAPIKey string
}

// Load loads configuration from environment variables.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "127.0.0.1"),
			Port:         getEnvAsInt("SERVER_PORT", 8090),
			ReadTimeout:  getEnvAsDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getEnvAsDuration("SERVER_WRITE_TIMEOUT", 15*time.Second),
			Environment:  getEnv("ENV", "development"),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", "sqlite"),
			Path:            getEnv("DB_PATH", "finance-dashboard.db"),
			URL:             getEnv("DATABASE_URL", ""),
			MaxOpenConns:    getEnvAsInt("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getEnvAsInt("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getEnvAsDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),
		},
		Remote: RemoteConfig{
			BaseURL: getEnv("REMOTE_BASE_URL", "http://localhost:3000"),
			Timeout: getEnvAsDuration("REMOTE_TIMEOUT", 10*time.Second),
		},
		Sync: SyncConfig{
			PollInterval:  getEnvAsDuration("SYNC_POLL_INTERVAL", 60*time.Second),
			ItemTimeout:   getEnvAsDuration("SYNC_ITEM_TIMEOUT", 10*time.Second),
			ProbeInterval: getEnvAsDuration("SYNC_PROBE_INTERVAL", 15*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getEnvAsBool("REDIS_EVENTS_ENABLED", false),
			Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
			Channel:  getEnv("REDIS_EVENT_CHANNEL", "finance-dashboard.events"),
		},
		Locale: LocaleConfig{
			CurrencySymbol: getEnv("CURRENCY_SYMBOL", "₹"),
			IndianGrouping: getEnvAsBool("CURRENCY_INDIAN_GROUPING", true),
		},
		AI: AIConfig{
			GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		},
	}
}

// Helper functions for environment variable parsing

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
