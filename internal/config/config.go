package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the exporter command.
type Config struct {
	LogLevel       string `env:"LOG_LEVEL" envDefault:"info"`
	ExporterConfig string `env:"EXPORTER_CONFIG" envDefault:"exporter.toml"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	// DatabaseMaxConns caps the pool; an export reads one locale at a time.
	DatabaseMaxConns int32 `env:"DATABASE_MAX_CONNS" envDefault:"2"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	// .env is optional when variables come from the environment (Docker, CI, ...).
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Level maps LogLevel to a slog level; validate has already rejected unknown names.
func (c *Config) Level() slog.Level {
	var lvl slog.Level
	_ = lvl.UnmarshalText([]byte(c.LogLevel))
	return lvl
}

func (c *Config) validate() error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("config: LOG_LEVEL %q is not a log level", c.LogLevel)
	}

	if strings.TrimSpace(c.ExporterConfig) == "" {
		return fmt.Errorf("config: EXPORTER_CONFIG is required and cannot be empty")
	}

	if c.DatabaseMaxConns < 1 {
		return fmt.Errorf("config: DATABASE_MAX_CONNS must be at least 1, got %d", c.DatabaseMaxConns)
	}

	if c.DatabaseURL == "" {
		return nil
	}
	parsed, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): %w", c.DatabaseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("config: invalid DATABASE_URL (%q): missing scheme or host", c.DatabaseURL)
	}

	return nil
}
