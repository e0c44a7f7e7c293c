// Package genetic exposes a pluggable genetic-algorithm engine: roulette-wheel
// selection, rate-gated crossover and generational replacement driven by
// caller-supplied fitness, crossover and mutation functions.
package genetic

import "genetic/internal/evo"

type (
	Chromosome[L any]    = evo.Chromosome[L]
	Population[L any]    = evo.Population[L]
	FitnessFunc[L any]   = evo.FitnessFunc[L]
	CrossoverFunc[L any] = evo.CrossoverFunc[L]
	MutateFunc[L any]    = evo.MutateFunc[L]
	Engine[L any]        = evo.Engine[L]
	EngineConfig[L any]  = evo.EngineConfig[L]
	Source               = evo.Source
	Observer             = evo.Observer
)

var (
	ErrInvalidDistribution = evo.ErrInvalidDistribution
	ErrConfiguration       = evo.ErrConfiguration
)

// NewSource returns a deterministic randomness source for seed.
func NewSource(seed int64) Source {
	return evo.NewSource(seed)
}

func NewEngine[L any](cfg EngineConfig[L]) (*Engine[L], error) {
	return evo.NewEngine(cfg)
}

// Advance runs one generation. See evo.Advance for the odd-size policy.
func Advance[L any](rng Source, population Population[L], fitness FitnessFunc[L], crossover CrossoverFunc[L], crossoverRate float64, mutate MutateFunc[L]) (Population[L], error) {
	return evo.Advance(rng, population, fitness, crossover, crossoverRate, mutate)
}

func SelectOne[L any](rng Source, population Population[L], fitnesses []float64) (Chromosome[L], error) {
	return evo.SelectOne(rng, population, fitnesses)
}

func SelectMany[L any](rng Source, population Population[L], fitnesses []float64, k int) ([]Chromosome[L], error) {
	return evo.SelectMany(rng, population, fitnesses, k)
}

func MaybeCrossover[L any](rng Source, a, b Chromosome[L], crossover CrossoverFunc[L], rate float64) (Chromosome[L], Chromosome[L], error) {
	return evo.MaybeCrossover(rng, a, b, crossover, rate)
}
