package quiz

import (
	"math/rand"
	"time"
)

// Rand supplies the draws used to pick questions and distractor options.
type Rand interface {
	// Intn returns a uniform value in [0, n). n must be positive.
	Intn(n int) int
}

// NewRand returns a seeded random source. Seed 0 derives a seed from the
// clock, so repeated runs differ unless a seed is pinned.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
