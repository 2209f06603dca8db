package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"creative-pulse/internal/config/configs"
)

// Config aggregates all configuration sections for the dashboard service.
// Fields are populated from environment variables using caarlos0/env; the
// nested structs are tagged with envPrefix so their fields are parsed with
// the given prefix. See the configs package for defaults.
type Config struct {
	// Env names the deployment environment (e.g. prod, dev). It is only
	// attached to the startup log line.
	Env string `env:"ENV" envDefault:"prod"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Seed      configs.Seed      `envPrefix:"SEED_"`
	Todo      configs.Todo      `envPrefix:"TODO_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Sheets    configs.Sheets
	RateLimit configs.RateLimit `envPrefix:"RATE_LIMIT_"`
	Metrics   configs.Metrics   `envPrefix:"METRICS_"`
}

// Load reads configuration from environment variables into a Config and
// validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects combinations the service cannot start with.
func (c Config) Validate() error {
	switch c.Todo.Backend {
	case configs.TodoBackendMemory, configs.TodoBackendPostgres:
	default:
		return fmt.Errorf("unknown TODO_BACKEND %q", c.Todo.Backend)
	}
	if c.Seed.Creatives < 0 {
		return fmt.Errorf("SEED_CREATIVES must not be negative, got %d", c.Seed.Creatives)
	}
	if c.Seed.Days < 0 {
		return fmt.Errorf("SEED_DAYS must not be negative, got %d", c.Seed.Days)
	}
	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate limit requires positive RATE_LIMIT_RPS and RATE_LIMIT_BURST")
	}
	return nil
}
