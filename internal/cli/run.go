// Package cli wires configuration, logging and the terminal into a game session.
// Both binaries call Run; they differ only in whether scoring is on.
package cli

import (
	"os"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog/log"

	"github.com/jackb1434/GuessingGame/internal/config"
	"github.com/jackb1434/GuessingGame/internal/console"
	"github.com/jackb1434/GuessingGame/internal/phrases"
	"github.com/jackb1434/GuessingGame/internal/session"
)

// Run plays a session on stdin/stdout. Failures are logged, never fatal.
func Run(scored bool) {
	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("load config, using defaults")
		cfg = config.Config{LogLevel: "warn"}
	}
	if err := config.SetupLogging(cfg, colorable.NewColorableStderr()); err != nil {
		log.Warn().Err(err).Msg("invalid log level")
	}

	if scored {
		if err := phrases.Init(); err != nil {
			log.Warn().Err(err).Msg("load phrases, using fallback")
		}
	}

	out, clr := console.Terminal(os.Stdout)
	s := session.New(session.Options{
		In:      os.Stdin,
		Out:     out,
		Clearer: clr,
		Scored:  scored,
	})
	if err := s.Run(); err != nil {
		log.Error().Err(err).Msg("session ended early")
	}
}
