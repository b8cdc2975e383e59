package game

import (
	"math/rand/v2"
	"time"
)

// Source is the random generator shared by a session.
// *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// NewSource returns a generator seeded once from the current time.
func NewSource() *rand.Rand {
	seed := uint64(time.Now().UnixNano())
	return rand.New(rand.NewPCG(seed, seed>>32|seed<<32))
}

// Draw returns a number uniformly distributed over [MinValue, MaxValue].
func Draw(src Source) int {
	return src.IntN(MaxValue-MinValue+1) + MinValue
}

// FixedSecret is a Source whose draws always produce Secret.
// Useful for scripted sessions.
type FixedSecret struct {
	Secret int
}

// IntN maps Secret back into [0, n) so Draw yields it unchanged.
func (f FixedSecret) IntN(n int) int {
	v := f.Secret - MinValue
	if v < 0 || v >= n {
		return 0
	}
	return v
}
