package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds defaults for the CLI. Command-line flags take precedence.
type Config struct {
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"console"`
	Format      string `env:"FORMAT" envDefault:"table"`
	RosterPath  string `env:"ROSTER_PATH"`
	Seed        uint64 `env:"SEED" envDefault:"0"`
	Workers     int    `env:"WORKERS" envDefault:"4"`
	MetricsFile string `env:"METRICS_FILE"`
}

const Prefix = "ATTRISK_"

// Load reads dotenv files (".env" when none are given) into the process
// environment, then parses ATTRISK_* variables. Missing dotenv files are not
// an error.
func Load(dotenv ...string) (*Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: Prefix}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("%sWORKERS must be at least 1, got %d", Prefix, cfg.Workers)
	}
	return &cfg, nil
}
