package core

import "math/rand/v2"

// Bernoulli is the random source consumed by the simulation core. Each call
// is one trial with success probability p.
type Bernoulli interface {
	Bernoulli(p float64) bool
}

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bernoulli reports the outcome of a single trial with success probability p.
// p <= 0 never succeeds and p >= 1 always does; neither consumes randomness.
func (r *RNG) Bernoulli(p float64) bool {
	switch {
	case p <= 0:
		return false
	case p >= 1:
		return true
	}
	return r.r.Float64() < p
}

// FillBernoulli fills buf with independent 0/1 draws of probability p.
func FillBernoulli(src Bernoulli, p float64, buf []uint8) {
	for i := range buf {
		buf[i] = 0
		if src.Bernoulli(p) {
			buf[i] = 1
		}
	}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }
