package game

import (
	"errors"
	"fmt"
)

// MaxPoints is awarded for a first-try guess; later wins earn MaxPoints / attempts.
const MaxPoints = 250

var ErrNoAttempts = errors.New("no attempts recorded")

// Award computes the points for a round won in attempts guesses and adds them to s.
// Returns the new score and the points for this round.
func Award(s Score, attempts int) (Score, int, error) {
	if attempts < 1 {
		return s, 0, fmt.Errorf("award: %w (attempts=%d)", ErrNoAttempts, attempts)
	}
	points := MaxPoints / attempts
	return s + Score(points), points, nil
}
