package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	// Server configuration
	Port        int    `json:"port"`
	Environment string `json:"environment"`

	// API key required on /v1 routes; empty disables the check
	APIKey string `json:"api_key"`

	// Tracing configuration
	TracingEnabled  bool   `json:"tracing_enabled"`
	TracingEndpoint string `json:"tracing_endpoint"`

	// Advice delegation configuration (OpenAI-compatible endpoint)
	AdviceBaseURL string        `json:"advice_base_url"`
	AdviceAPIKey  string        `json:"advice_api_key"`
	AdviceModel   string        `json:"advice_model"`
	AdviceTimeout time.Duration `json:"advice_timeout"`

	// Reminder configuration
	DefaultSnooze time.Duration `json:"default_snooze"`
}

var (
	AppConfig *Config
)

// LoadConfig loads configuration from environment variables
func LoadConfig() error {
	port, err := strconv.Atoi(getEnvOrDefault("PORT", "8080"))
	if err != nil {
		return fmt.Errorf("invalid PORT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnvOrDefault("TRACING_ENABLED", "false"))
	if err != nil {
		return fmt.Errorf("invalid TRACING_ENABLED: %w", err)
	}

	adviceTimeout, err := time.ParseDuration(getEnvOrDefault("ADVICE_TIMEOUT", "8s"))
	if err != nil {
		return fmt.Errorf("invalid ADVICE_TIMEOUT: %w", err)
	}

	defaultSnooze, err := time.ParseDuration(getEnvOrDefault("DEFAULT_SNOOZE", "10m"))
	if err != nil {
		return fmt.Errorf("invalid DEFAULT_SNOOZE: %w", err)
	}

	AppConfig = &Config{
		// Server configuration
		Port:        port,
		Environment: getEnvOrDefault("ENVIRONMENT", "development"),

		APIKey: getEnvOrDefault("API_KEY", ""),

		// Tracing configuration
		TracingEnabled:  tracingEnabled,
		TracingEndpoint: getEnvOrDefault("TRACING_ENDPOINT", "localhost:4317"),

		// Advice delegation configuration
		AdviceBaseURL: getEnvOrDefault("ADVICE_BASE_URL", "https://api.groq.com/openai/v1"),
		AdviceAPIKey:  getEnvOrDefault("ADVICE_API_KEY", ""),
		AdviceModel:   getEnvOrDefault("ADVICE_MODEL", "llama-3.1-8b-instant"),
		AdviceTimeout: adviceTimeout,

		// Reminder configuration
		DefaultSnooze: defaultSnooze,
	}

	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
