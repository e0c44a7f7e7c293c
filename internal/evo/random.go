package evo

import (
	"math/rand"
	"time"
)

// Source is the randomness consumed by selection and crossover gating.
// Each concurrent run needs its own instance.
type Source interface {
	// Float64 returns a value in [0, 1).
	Float64() float64
	// Uniform returns a value in [lo, hi].
	Uniform(lo, hi float64) float64
	// Intn returns a value in [0, n).
	Intn(n int) int
}

type randSource struct {
	rng *rand.Rand
}

// NewSource returns a Source backed by a math/rand generator seeded with seed.
func NewSource(seed int64) Source {
	return FromRand(rand.New(rand.NewSource(seed)))
}

// FromRand adapts an existing generator.
func FromRand(rng *rand.Rand) Source {
	return randSource{rng: rng}
}

func (s randSource) Float64() float64 {
	return s.rng.Float64()
}

func (s randSource) Uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*s.rng.Float64()
}

func (s randSource) Intn(n int) int {
	return s.rng.Intn(n)
}

func defaultSource() Source {
	return NewSource(time.Now().UnixNano())
}
