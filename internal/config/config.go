package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the client settings, parsed from environment variables.
type Config struct {
	APIBaseURL      string        `env:"CANDIDATRACK_API_URL" envDefault:"http://localhost:8080/api"`
	Timeout         time.Duration `env:"CANDIDATRACK_TIMEOUT" envDefault:"10s"`
	CredentialsFile string        `env:"CANDIDATRACK_CREDENTIALS_FILE"`
	RateLimit       float64       `env:"CANDIDATRACK_RATE_LIMIT" envDefault:"0"`
	Env             string        `env:"ENV" envDefault:"development"`
}

// Load parses configuration from the environment, filling in the
// default credentials path when none is set.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.CredentialsFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve config dir: %w", err)
		}
		cfg.CredentialsFile = filepath.Join(dir, "candidatrack", "credentials.json")
	}

	return cfg, nil
}
