// internal/config/config.go
//
// Process configuration and logger setup.
// Gameplay has no settings; configuration only covers ambient concerns.
//
// Environment variables:
//   LOG_LEVEL=debug|info|warn|error|disabled   (default: warn)
//
// A `.env` file in the working directory is loaded first when present.

package config

import (
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config holds settings parsed from the environment.
type Config struct {
	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
}

// Load reads an optional .env file and parses the environment into a Config.
func Load() (Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SetupLogging points the global logger at w with a console format and applies the level.
// Unknown levels keep the current global level and are reported as an error.
func SetupLogging(cfg Config, w io.Writer) error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		With().
		Timestamp().
		Logger()

	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
