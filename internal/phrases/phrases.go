// internal/phrases/phrases.go
//
// Congratulatory phrases for the scored variant.
//
// Responsibilities:
//   - Load the fixed, ordered phrase list from the embedded assets once.
//   - Pick one phrase uniformly using the session's random source.
//
// Constraints:
//   • The list is read-only after Init.
//   • Pick never reseeds; the caller owns the single seeded source.

package phrases

import (
	"errors"
	"sync"

	"github.com/jackb1434/GuessingGame/assets"
	"github.com/jackb1434/GuessingGame/internal/game"
)

// Fallback is returned by Pick when no phrases could be loaded.
const Fallback = "Congratulations!"

var (
	initOnce   sync.Once
	phrases    []string
	initialErr error
)

// Init loads the phrase list exactly once.
// Returns an error if the list cannot be read or ends up empty.
func Init() error {
	initOnce.Do(func() {
		list, err := assets.PhraseList()
		if err != nil {
			initialErr = err
			return
		}
		phrases = list
		if len(phrases) == 0 {
			initialErr = errors.New("phrases: list is empty")
		}
	})
	return initialErr
}

// All returns a copy of the loaded phrases in order.
func All() []string {
	_ = Init()
	return append([]string(nil), phrases...)
}

// Pick returns a uniformly chosen phrase drawn from src.
func Pick(src game.Source) string {
	if err := Init(); err != nil || len(phrases) == 0 {
		return Fallback
	}
	return phrases[src.IntN(len(phrases))]
}
