package core

import (
	"math/rand"
	"time"
)

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// NewSeededSampler creates a sampler for a render run. A zero seed picks a
// non-deterministic one from the clock.
func NewSeededSampler(seed int64) *RandomSampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return NewRandomSampler(rand.New(rand.NewSource(seed)))
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// Int63 returns a non-negative random int64, used to seed child samplers
func (r *RandomSampler) Int63() int64 {
	return r.random.Int63()
}

// ConstantSampler always returns the same value. Useful for deterministic tests
// and for rendering pixel centers.
type ConstantSampler float64

// Get1D returns the constant value
func (c ConstantSampler) Get1D() float64 {
	return float64(c)
}
