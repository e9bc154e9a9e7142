package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds gradebook settings read from the environment.
type Config struct {
	// DBPath defaults to ~/.gradebook/gradebook.db when unset.
	DBPath string `env:"GRADEBOOK_DB"`

	// TranscriptOrder is the default for the transcript --order flag. It is
	// not validated here; an invalid value falls back at render time.
	TranscriptOrder string `env:"GRADEBOOK_TRANSCRIPT_ORDER" envDefault:"ascending"`

	LogUseCases bool       `env:"GRADEBOOK_LOG_USE_CASES"`
	LogLevel    slog.Level `env:"GRADEBOOK_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment and resolves the default database path.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		cfg.DBPath = filepath.Join(home, ".gradebook", "gradebook.db")
	}

	return cfg, nil
}
