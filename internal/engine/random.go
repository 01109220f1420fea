package engine

import (
	"math/rand"
	"time"
)

// Random is the source of tile kinds. *rand.Rand satisfies it.
type Random interface {
	// Intn returns an int in [0, n).
	Intn(n int) int
}

// NewRandom returns a math/rand source for the seed.
// A zero seed means "use the current time".
func NewRandom(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// maxDrawAttempts bounds the retry loop of differentKind for sources that
// keep returning the excluded kind.
const maxDrawAttempts = 64

// randomKind draws a kind uniformly from [0, variety).
func randomKind(rng Random, variety int) TileKind {
	return TileKind(rng.Intn(variety))
}

// differentKind draws kinds until one differs from current.
func differentKind(rng Random, variety int, current TileKind) TileKind {
	for range maxDrawAttempts {
		if k := randomKind(rng, variety); k != current {
			return k
		}
	}
	return TileKind((int(current) + 1) % variety)
}
