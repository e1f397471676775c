package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	Typesense  TypesenseConfig
	Auth       AuthConfig
	Conditions ConditionsConfig
	OTEL       OTELConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Environment string
}

// IsDevelopment reports whether the app runs in a development environment
func (c *AppConfig) IsDevelopment() bool {
	return c.Environment != "production"
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// TypesenseConfig holds Typesense configuration
type TypesenseConfig struct {
	URL    string
	APIKey string
}

// AuthConfig holds identity-provider configuration
type AuthConfig struct {
	// BaseURL is the GoTrue-compatible auth endpoint of the hosted backend
	BaseURL string
	// APIKey is the public (anon) key sent with every auth request
	APIKey string
	// RedirectURL is where the provider redirects after OAuth completion
	RedirectURL string
	// Flow selects the OAuth callback strategy: "implicit" or "pkce"
	Flow string
	// ResolveTimeout bounds the post-redirect session resolution race
	ResolveTimeout time.Duration
}

// ConditionsConfig holds weather and stream-flow provider configuration
type ConditionsConfig struct {
	Provider      string
	WeatherURL    string
	StreamFlowURL string
	APIKey        string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "flyfishing"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Typesense: TypesenseConfig{
			URL:    getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey: getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		Auth: AuthConfig{
			BaseURL:        getEnv("AUTH_BASE_URL", "http://localhost:9999"),
			APIKey:         getEnv("AUTH_API_KEY", ""),
			RedirectURL:    getEnv("AUTH_REDIRECT_URL", "http://localhost:8080/auth/callback"),
			Flow:           getEnv("AUTH_FLOW", "implicit"),
			ResolveTimeout: getEnvAsDuration("AUTH_RESOLVE_TIMEOUT", 8*time.Second),
		},
		Conditions: ConditionsConfig{
			Provider:      getEnv("CONDITIONS_PROVIDER", "mock"),
			WeatherURL:    getEnv("WEATHER_API_URL", "https://api.open-meteo.com/v1/forecast"),
			StreamFlowURL: getEnv("STREAMFLOW_API_URL", "https://waterservices.usgs.gov/nwis/iv"),
			APIKey:        getEnv("CONDITIONS_API_KEY", ""),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "flyfishing-companion"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
