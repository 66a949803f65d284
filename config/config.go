package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var ErrMissingAPIKey = errors.New("GOOGLE_API_KEY not found in environment or .env file")

type Config struct {
	Port          string
	GeminiAPIKey  string
	ModelName     string
	GeminiAPIBase string
	DBPath        string
	DBReadOnly    bool
	LogLevel      string
	LogPretty     bool
	GinMode       string
}

// GetConfig reads the configuration from the process environment, after
// merging a .env file from the working directory if one exists. Variables
// already set in the environment win over the file.
func GetConfig() Config {
	_ = godotenv.Load()

	return Config{
		Port:          getEnv("PORT", "8501"),
		GeminiAPIKey:  getEnv("GOOGLE_API_KEY", ""),
		ModelName:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiAPIBase: getEnv("GEMINI_API_BASE", "https://generativelanguage.googleapis.com/v1beta"),
		DBPath:        getEnv("DB_PATH", "student.db"),
		DBReadOnly:    getBool("DB_READ_ONLY", true),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogPretty:     getBool("LOG_PRETTY", true),
		GinMode:       getEnv("GIN_MODE", "release"),
	}
}

// Load is GetConfig plus the startup checks the server needs.
func Load() (Config, error) {
	cfg := GetConfig()
	if cfg.GeminiAPIKey == "" {
		return cfg, ErrMissingAPIKey
	}
	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
