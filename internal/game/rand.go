package game

import (
	"math/rand"
	"time"
)

// Rand is the source of randomness for shuffles, the coin flip, and the AI's
// probability draws. Tests substitute a scripted implementation to make full
// games reproducible.
type Rand interface {
	// Intn returns a uniform int in [0, n).
	Intn(n int) int
	// Float64 returns a uniform float64 in [0.0, 1.0).
	Float64() float64
}

// NewRand returns a Rand seeded with the given seed, or with the current time
// when seed is 0.
func NewRand(seed int64) Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
