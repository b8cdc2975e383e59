// internal/session/session.go
//
// Session loop for the terminal guessing game.
// Responsibilities:
//   - Run rounds back to back: banner, guesses with feedback, success report.
//   - Award points and pick a congratulatory phrase when scoring is enabled.
//   - Ask whether to play again, clear the display, and print the farewell.
//
// Notes:
//   - One loop serves both variants; Options.Scored switches scoring on.
//   - The random source is created once per session and shared by the secret
//     draw and the phrase picker. Nothing reseeds it.
//   - End of input finishes the session as if the player answered "no".

package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/jackb1434/GuessingGame/internal/console"
	"github.com/jackb1434/GuessingGame/internal/game"
	"github.com/jackb1434/GuessingGame/internal/phrases"
	"github.com/jackb1434/GuessingGame/internal/store"
)

// Options configures a Session. Zero values fall back to sensible defaults.
type Options struct {
	In      io.Reader       // Player input (required).
	Out     io.Writer       // Game output (required).
	Clearer console.Clearer // Display clear after each round; defaults to a no-op.
	Source  game.Source     // Random source; defaults to game.NewSource().
	History store.History   // Round history; defaults to an in-memory history.
	Scored  bool            // Enables points and congratulatory phrases.

	// MaxRetries caps consecutive invalid guesses; 0 means unbounded.
	MaxRetries int
}

// Session holds the state of one process-lifetime game session.
type Session struct {
	out      io.Writer
	prompter *console.Prompter
	clearer  console.Clearer
	src      game.Source
	history  store.History
	scored   bool

	score game.Score
}

// New constructs a Session from opts.
func New(opts Options) *Session {
	s := &Session{
		out:      opts.Out,
		prompter: console.NewPrompter(opts.In, opts.Out),
		clearer:  opts.Clearer,
		src:      opts.Source,
		history:  opts.History,
		scored:   opts.Scored,
	}
	s.prompter.MaxRetries = opts.MaxRetries
	if s.clearer == nil {
		s.clearer = console.NopClearer{}
	}
	if s.src == nil {
		s.src = game.NewSource()
	}
	if s.history == nil {
		s.history = store.NewMemoryHistory()
	}
	return s
}

// Score reports the cumulative points earned so far.
func (s *Session) Score() game.Score { return s.score }

// History exposes the rounds completed so far.
func (s *Session) History() store.History { return s.history }

// Run plays rounds until the player declines another one or input ends.
// Returns nil for a normal finish; other errors still print the farewell first.
func (s *Session) Run() error {
	log.Debug().Bool("scored", s.scored).Msg("session started")

	var runErr error
	for {
		if err := s.playRound(); err != nil {
			if !errors.Is(err, io.EOF) {
				runErr = err
			}
			break
		}

		again, err := s.prompter.ReadAnswer()
		s.clearer.Clear()
		if err != nil {
			log.Warn().Err(err).Msg("play again answer")
			break
		}
		if !again {
			break
		}
	}

	s.farewell()
	sum := s.history.Summary()
	log.Info().
		Int("rounds", sum.Rounds).
		Int("bestAttempts", sum.BestAttempts).
		Int("score", int(s.score)).
		Msg("session finished")
	return runErr
}

// playRound draws a secret and reads guesses until it is found.
func (s *Session) playRound() error {
	r := game.NewRound(game.Draw(s.src))
	log.Debug().Msg("round started")

	s.banner()
	for !r.Finished {
		guess, err := s.prompter.ReadGuess()
		if err != nil {
			return err
		}
		outcome, err := r.ApplyGuess(guess)
		if err != nil {
			return fmt.Errorf("apply guess: %w", err)
		}
		switch outcome {
		case game.OutcomeTooHigh:
			fmt.Fprintln(s.out, "Too high! Try again.")
		case game.OutcomeTooLow:
			fmt.Fprintln(s.out, "Too low! Try again.")
		}
	}
	return s.complete(r)
}

// complete reports a won round and, when scored, awards points.
func (s *Session) complete(r *game.Round) error {
	res := store.Result{Secret: r.Secret, Attempts: r.Attempts}

	if !s.scored {
		fmt.Fprintf(s.out, "Congratulations! You guessed the correct number in %d attempts.\n", r.Attempts)
	} else {
		score, points, err := game.Award(s.score, r.Attempts)
		if err != nil {
			return err
		}
		s.score = score
		res.Points = points
		res.Phrase = phrases.Pick(s.src)

		fmt.Fprintf(s.out, "%s You guessed the correct number in %d attempts.\n", res.Phrase, r.Attempts)
		fmt.Fprintf(s.out, "You won %d points!\n", points)
		fmt.Fprintf(s.out, "Total score: %d\n", s.score)
	}

	res, err := s.history.Record(res)
	if err != nil {
		log.Warn().Err(err).Msg("record round")
	}
	log.Debug().
		Int("round", res.Number).
		Int("attempts", res.Attempts).
		Int("points", res.Points).
		Msg("round complete")
	return nil
}

func (s *Session) banner() {
	fmt.Fprintln(s.out, "Welcome to the Number Guessing Game!")
	fmt.Fprintln(s.out, "Try to guess the number from 1 to 100.")
}

func (s *Session) farewell() {
	if s.scored {
		fmt.Fprintf(s.out, "Final Score: %d points.\n", s.score)
	}
	fmt.Fprintln(s.out, "Thank you for playing!")
}
