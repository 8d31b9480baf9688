package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/parables-of-the-word-api/pkg/llm"
)

// Config holds all application configuration
type Config struct {
	// API Settings
	APITitle   string
	APIVersion string
	APIPrefix  string
	Port       string

	// CORS
	CORSOrigins []string

	// Logging: level is debug/info/warn/error, format is "json" or "console"
	LogLevel  string
	LogFormat string

	// Generative model backend: "vertex" or "gemini"
	LLMProvider     string
	GeminiModel     string
	GCPProjectID    string
	GeminiLocation  string
	APIKey          string
	CredentialsFile string

	// Model request supervision
	RequestTimeout time.Duration
	MaxRetries     int
}

var (
	config *Config
	once   sync.Once
)

// GetConfig returns the singleton configuration instance
func GetConfig() *Config {
	once.Do(func() {
		config = loadConfig()
	})
	return config
}

func loadConfig() *Config {
	return &Config{
		APITitle:    getEnv("API_TITLE", "Parables of the Word API"),
		APIVersion:  getEnv("API_VERSION", "1.0.0"),
		APIPrefix:   getEnv("API_PREFIX", "/api/v1"),
		Port:        getEnv("PORT", "8081"),
		CORSOrigins: parseCORSOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173,http://localhost:3000")),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),

		LLMProvider:     getEnv("LLM_PROVIDER", llm.ProviderVertex),
		GeminiModel:     getEnv("GEMINI_MODEL", llm.DefaultModel),
		GCPProjectID:    getEnv("GCP_PROJECT_ID", ""),
		GeminiLocation:  getEnv("GEMINI_LOCATION", "global"), // gemini-3 models require global location
		APIKey:          getEnv("API_KEY", getEnv("GEMINI_API_KEY", "")),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS_FILE", ""),

		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 45*time.Second),
		MaxRetries:     getEnvInt("MAX_RETRIES", 1),
	}
}

// LLMConfig returns the settings for the generative model backend
func (c *Config) LLMConfig() llm.Config {
	return llm.Config{
		Provider:        c.LLMProvider,
		Model:           c.GeminiModel,
		ProjectID:       c.GCPProjectID,
		Location:        c.GeminiLocation,
		APIKey:          c.APIKey,
		CredentialsFile: c.CredentialsFile,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err != nil || i < 0 {
			return defaultValue
		}
		return i
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		d, err := time.ParseDuration(value)
		if err != nil || d <= 0 {
			return defaultValue
		}
		return d
	}
	return defaultValue
}

func parseCORSOrigins(value string) []string {
	var origins []string
	if err := json.Unmarshal([]byte(value), &origins); err == nil {
		return origins
	}
	parts := strings.Split(value, ",")
	origins = make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
