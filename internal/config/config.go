package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration loaded from environment variables.
type Config struct {
	Port           string
	Env            string
	BackendBaseURL string
	BackendTimeout time.Duration
	GeminiAPIKey   string
	GeminiModel    string
	OpenAIAPIKey   string
	OpenAIModel    string
	PatientID      int
	DatabaseURL    string
}

// Load reads configuration from the environment, applying defaults for
// anything unset.  It never fails; components validate the values they need.
func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "production"),
		BackendBaseURL: getEnv("BACKEND_BASE_URL", "http://localhost:8080/api"),
		BackendTimeout: getEnvAsDuration("BACKEND_TIMEOUT", 10*time.Second),
		GeminiAPIKey:   getEnv("GEMINI_API_KEY", ""),
		GeminiModel:    getEnv("GEMINI_MODEL", "gemini-pro"),
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL_CHAT", "gpt-4o-mini"),
		PatientID:      getEnvAsInt("PATIENT_ID", 15),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
	}
}

// IsDevelopment reports whether the process runs with development settings.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, err := strconv.Atoi(getEnv(key, "")); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
