// internal/game/types.go
//
// Core type definitions for the guessing game engine.
// Defines:
//   - Outcome: result of comparing one guess against the secret.
//   - Round:   state for a single in-progress or finished round.
//   - Score:   cumulative points carried across rounds of a session.

package game

// Outcome represents the evaluation result for a single guess.
// Possible values:
//   - "too_high": guess is greater than the secret.
//   - "too_low":  guess is less than the secret.
//   - "correct":  guess matches the secret and finishes the round.
type Outcome string

const (
	OutcomeTooHigh Outcome = "too_high"
	OutcomeTooLow  Outcome = "too_low"
	OutcomeCorrect Outcome = "correct"
)

// Round holds the state of a single play-through, from secret draw to a correct guess.
type Round struct {
	Secret   int  // Number to guess, always within [MinValue, MaxValue].
	Attempts int  // Validated guesses applied so far.
	Finished bool // True once the secret has been guessed.
}

// Score is the running point total of a session.
// It is a plain value: Award takes one and returns the next.
type Score int
