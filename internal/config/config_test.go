package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "http://localhost:8080/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.Timeout)
	}
	if cfg.CredentialsFile == "" {
		t.Error("CredentialsFile empty, want a default path")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("CANDIDATRACK_API_URL", "https://tracker.example.com/api")
	t.Setenv("CANDIDATRACK_TIMEOUT", "3s")
	t.Setenv("CANDIDATRACK_CREDENTIALS_FILE", "/tmp/creds.json")
	t.Setenv("CANDIDATRACK_RATE_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	if cfg.APIBaseURL != "https://tracker.example.com/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.Timeout != 3*time.Second {
		t.Errorf("Timeout = %v, want 3s", cfg.Timeout)
	}
	if cfg.CredentialsFile != "/tmp/creds.json" {
		t.Errorf("CredentialsFile = %q", cfg.CredentialsFile)
	}
	if cfg.RateLimit != 5 {
		t.Errorf("RateLimit = %v, want 5", cfg.RateLimit)
	}
}
