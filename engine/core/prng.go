package core

import (
	"math/rand"
	"time"
)

// PRNG wraps math/rand so a whole run can be replayed from one seed
type PRNG struct {
	seed int64
	rng  *rand.Rand
}

// NewPRNG creates a generator. A zero seed picks one from the clock.
func NewPRNG(seed int64) *PRNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNG{
		seed: seed,
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Seed returns the seed actually in use
func (p *PRNG) Seed() int64 { return p.seed }

// Intn returns a number in [0, n)
func (p *PRNG) Intn(n int) int { return p.rng.Intn(n) }
