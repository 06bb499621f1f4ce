package config

import (
	"os"

	"github.com/joho/godotenv"
)

const (
	// Default model and endpoint used by the original PromptMaster app.
	DefaultGeminiModel   = "gemini-2.5-flash-preview-09-2025"
	DefaultGeminiBaseURL = "https://generativelanguage.googleapis.com"
)

// Config holds all application configuration.
type Config struct {
	Port string

	// Gemini API
	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string
}

// Load reads configuration from environment variables.
// It automatically loads a .env file if present.
func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:          getEnv("PORT", "8080"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   getEnv("GEMINI_MODEL", DefaultGeminiModel),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", DefaultGeminiBaseURL),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
