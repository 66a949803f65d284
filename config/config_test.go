package config

import (
	"errors"
	"testing"
)

func TestLoadRequiresAPIKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := Load()
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("Load() error = %v, want ErrMissingAPIKey", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "test-key")
	t.Setenv("PORT", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("DB_READ_ONLY", "")
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("api key = %q", cfg.GeminiAPIKey)
	}
	if cfg.Port != "8501" || cfg.DBPath != "student.db" || cfg.ModelName != "gemini-2.0-flash" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if !cfg.DBReadOnly {
		t.Fatal("database should be read-only by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "k")
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/other.db")
	t.Setenv("DB_READ_ONLY", "false")
	t.Setenv("LOG_PRETTY", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != "9090" || cfg.DBPath != "/tmp/other.db" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.DBReadOnly || cfg.LogPretty {
		t.Fatalf("bool overrides not applied: %+v", cfg)
	}
}
