// internal/store/memory.go
//
// In-memory round history for a single session.
// This is a lightweight record of completed rounds, used for the end-of-session
// summary log. Nothing is persisted; history is lost when the process exits.
//
// Characteristics:
//   - Stores game results in completion order.
//   - Not safe for concurrent use; a session runs on one goroutine.
//   - Rounds are numbered from 1 by the store.

package store

import (
	"errors"

	"github.com/jackb1434/GuessingGame/internal/game"
)

// Result describes one completed round.
type Result struct {
	Number   int    // 1-based round number within the session.
	Secret   int    // The number that was guessed.
	Attempts int    // Validated guesses it took.
	Points   int    // Points awarded (0 when unscored).
	Phrase   string // Congratulatory phrase shown (empty when unscored).
}

// Summary aggregates a session's history.
type Summary struct {
	Rounds       int
	BestAttempts int // Fewest attempts in any round; 0 when no rounds.
	TotalPoints  int
}

// History defines the record of finished rounds.
type History interface {
	// Record appends a finished round and returns it with Number assigned.
	Record(r Result) (Result, error)

	// All returns the recorded rounds in order.
	All() []Result

	// Summary aggregates everything recorded so far.
	Summary() Summary
}

// memory is a slice-backed History implementation.
type memory struct {
	rounds []Result
}

// NewMemoryHistory constructs an empty in-memory History.
func NewMemoryHistory() History {
	return &memory{}
}

// Record validates and appends r.
func (m *memory) Record(r Result) (Result, error) {
	if r.Attempts < 1 {
		return r, errors.New("store: round without attempts")
	}
	if !game.InRange(r.Secret) {
		return r, errors.New("store: secret out of range")
	}
	r.Number = len(m.rounds) + 1
	m.rounds = append(m.rounds, r)
	return r, nil
}

// All returns a copy so callers cannot rewrite history.
func (m *memory) All() []Result {
	return append([]Result(nil), m.rounds...)
}

// Summary walks the recorded rounds once.
func (m *memory) Summary() Summary {
	s := Summary{Rounds: len(m.rounds)}
	for _, r := range m.rounds {
		if s.BestAttempts == 0 || r.Attempts < s.BestAttempts {
			s.BestAttempts = r.Attempts
		}
		s.TotalPoints += r.Points
	}
	return s
}
