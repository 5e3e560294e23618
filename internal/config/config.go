// Package config handles application configuration loading and management.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/unifiedui/docstore-service/internal/core/docdb"
)

// ServiceName identifies this service in logs and metrics.
const ServiceName = "docstore-service"

// Config holds all configuration for the application.
type Config struct {
	Server  ServerConfig
	DocDB   DocDBConfig
	Log     LogConfig
	Metrics MetricsConfig
	CORS    CORSConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host            string
	Port            int
	GinMode         string
	ShutdownTimeout time.Duration
}

// Address returns the server address in host:port format.
func (c ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DocDBConfig holds document database configuration.
type DocDBConfig struct {
	Type           string
	Host           string
	Port           int
	ConnectTimeout time.Duration
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string
	Format string
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool
}

// CORSConfig holds the allowed browser origins.
type CORSConfig struct {
	AllowOrigins []string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnvAsInt("SERVER_PORT", 8080),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: time.Duration(getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		DocDB: DocDBConfig{
			Type:           getEnv("DOCDB_TYPE", string(docdb.TypeMongoDB)),
			Host:           getEnv("MONGODB_HOST", "localhost"),
			Port:           getEnvAsInt("MONGODB_PORT", 27017),
			ConnectTimeout: time.Duration(getEnvAsInt("MONGODB_CONNECT_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Metrics: MetricsConfig{
			Enabled: getEnvAsBool("METRICS_ENABLED", true),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid SERVER_PORT: %d", c.Server.Port)
	}
	if c.DocDB.Port <= 0 || c.DocDB.Port > 65535 {
		return fmt.Errorf("invalid MONGODB_PORT: %d", c.DocDB.Port)
	}
	if docdb.Type(c.DocDB.Type) != docdb.TypeMongoDB {
		return fmt.Errorf("unsupported DOCDB_TYPE: %s", c.DocDB.Type)
	}
	if c.DocDB.Host == "" {
		return fmt.Errorf("MONGODB_HOST cannot be empty")
	}
	return nil
}

// getEnv gets an environment variable with a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer with a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as a boolean with a default value.
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsSlice splits a comma separated environment variable.
func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
