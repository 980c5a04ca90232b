package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the runtime configuration of the ludo CLI.
type Config struct {
	Players    []string `env:"LUDO_PLAYERS" envSeparator:","`
	Humans     []string `env:"LUDO_HUMANS" envSeparator:","`
	Seed       int64    `env:"LUDO_SEED" envDefault:"0"`
	BotLevel   string   `env:"LUDO_BOT_LEVEL" envDefault:"smart"`
	DBPath     string   `env:"LUDO_DB_PATH"`
	LogLevel   string   `env:"LUDO_LOG_LEVEL" envDefault:"info"`
	MaxTurns   int      `env:"LUDO_MAX_TURNS" envDefault:"10000"`
	RosterFile string   `env:"LUDO_ROSTER_FILE"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxTurns <= 0 {
		return Config{}, fmt.Errorf("LUDO_MAX_TURNS must be positive, got %d", cfg.MaxTurns)
	}
	return cfg, nil
}
