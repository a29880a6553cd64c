// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"solar_lead_backend/platform/validator"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSOrigins() []string
	GetShutdownTimeout() time.Duration
}

// CustomerAPIConfig provides settings for the downstream customer API client.
type CustomerAPIConfig interface {
	GetCustomerAPIURL() string
	GetCustomerAPIToken() string
	GetCustomerAPITimeout() time.Duration
}

// OwnerClassifierConfig provides settings for the language-model owner classifier.
type OwnerClassifierConfig interface {
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetOpenAIModel() string
	GetOwnerClassifierTimeout() time.Duration
	IsOwnerClassifierEnabled() bool
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                    string        `validate:"required"`
	HTTPAddr               string        `validate:"required"`
	CORSOrigins            []string
	ShutdownTimeout        time.Duration `validate:"gt=0"`
	UserID                 string        `validate:"required"`
	CustomerAPIBaseURL     string        `validate:"required,url"`
	CustomerAPIToken       string        `validate:"required"`
	CustomerAPITimeout     time.Duration `validate:"gt=0"`
	OpenAIAPIKey           string
	OpenAIBaseURL          string        `validate:"required,url"`
	OpenAIModel            string        `validate:"required"`
	OwnerClassifierTimeout time.Duration `validate:"gt=0"`
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string               { return c.HTTPAddr }
func (c *Config) GetCORSOrigins() []string          { return c.CORSOrigins }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }

// CustomerAPIConfig implementation
func (c *Config) GetCustomerAPIURL() string {
	return strings.TrimRight(c.CustomerAPIBaseURL, "/") + "/" + c.UserID + "/"
}
func (c *Config) GetCustomerAPIToken() string          { return c.CustomerAPIToken }
func (c *Config) GetCustomerAPITimeout() time.Duration { return c.CustomerAPITimeout }

// OwnerClassifierConfig implementation
func (c *Config) GetOpenAIAPIKey() string                  { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIBaseURL() string                 { return c.OpenAIBaseURL }
func (c *Config) GetOpenAIModel() string                   { return c.OpenAIModel }
func (c *Config) GetOwnerClassifierTimeout() time.Duration { return c.OwnerClassifierTimeout }
func (c *Config) IsOwnerClassifierEnabled() bool           { return c.OpenAIAPIKey != "" }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv(os.LookupEnv)
}

// FromEnv builds and validates a Config from the given lookup function.
func FromEnv(lookup func(string) (string, bool)) (*Config, error) {
	getEnv := func(key, fallback string) string {
		if val, ok := lookup(key); ok {
			return val
		}
		return fallback
	}

	httpAddr := getEnv("HTTP_ADDR", "")
	if httpAddr == "" {
		httpAddr = ":" + getEnv("PORT", "3000")
	}

	cfg := &Config{
		Env:                    getEnv("APP_ENV", "development"),
		HTTPAddr:               httpAddr,
		CORSOrigins:            splitCSV(getEnv("CORS_ORIGINS", "")),
		ShutdownTimeout:        mustDuration(getEnv("SHUTDOWN_TIMEOUT", "10s")),
		UserID:                 strings.TrimSpace(getEnv("USER_ID", "")),
		CustomerAPIBaseURL:     getEnv("CUSTOMER_API_BASE_URL", "https://contactapi.static.fyi/lead/receive/fake"),
		CustomerAPIToken:       getEnv("FAKE_CUSTOMER_TOKEN", ""),
		CustomerAPITimeout:     mustDuration(getEnv("CUSTOMER_API_TIMEOUT", "15s")),
		OpenAIAPIKey:           getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OwnerClassifierTimeout: mustDuration(getEnv("OWNER_CLASSIFIER_TIMEOUT", "10s")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}
