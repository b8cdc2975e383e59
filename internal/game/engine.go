// internal/game/engine.go
//
// Core game engine for a single guessing round.
// Responsibilities:
//   - Create new rounds around a secret in [MinValue, MaxValue].
//   - Validate and apply guesses, counting attempts.
//   - Track state transitions: awaiting guess → complete.
//
// Notes:
//   - Secrets come from Draw (random.go) or are fixed by tests.
//   - Range checks live here so every layer shares one definition.
package game

import (
	"errors"
	"fmt"
)

const (
	MinValue = 1
	MaxValue = 100
)

var (
	ErrOutOfRange    = errors.New("guess out of range")
	ErrRoundFinished = errors.New("round finished")
)

// NewRound constructs a round around secret.
// Panics if the secret itself is out of range; that is a programming error.
func NewRound(secret int) *Round {
	if !InRange(secret) {
		panic(fmt.Sprintf("game: secret %d outside [%d, %d]", secret, MinValue, MaxValue))
	}
	return &Round{Secret: secret}
}

// ApplyGuess compares a guess with the secret, mutating the round state.
//
// Validation rules:
//   - Round must not be finished.
//   - Guess must satisfy MinValue <= guess <= MaxValue.
//
// Rejected guesses leave Attempts unchanged.
func (r *Round) ApplyGuess(guess int) (Outcome, error) {
	if r.Finished {
		return "", ErrRoundFinished
	}
	if !InRange(guess) {
		return "", fmt.Errorf("%w: %d", ErrOutOfRange, guess)
	}

	r.Attempts++
	switch {
	case guess > r.Secret:
		return OutcomeTooHigh, nil
	case guess < r.Secret:
		return OutcomeTooLow, nil
	default:
		r.Finished = true
		return OutcomeCorrect, nil
	}
}

// InRange reports whether v is an acceptable secret or guess.
func InRange(v int) bool { return v >= MinValue && v <= MaxValue }
