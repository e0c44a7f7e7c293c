package evo

import (
	"errors"
	"fmt"
)

// Advance runs one generation and returns a new population of the same size.
//
// Fitness is evaluated once per individual before any randomness is drawn.
// Parents are always selected from the input population. Offspring are
// produced in pairs, so for an odd-sized population the final pair overshoots
// by one; the surplus offspring is dropped and the result always has exactly
// len(population) members. The input population is not modified.
//
// Errors from fitness, crossover or mutate are returned unchanged.
func Advance[L any](
	rng Source,
	population Population[L],
	fitness FitnessFunc[L],
	crossover CrossoverFunc[L],
	crossoverRate float64,
	mutate MutateFunc[L],
) (Population[L], error) {
	return advance(rng, population, fitness, crossover, crossoverRate, mutate, nil)
}

func advance[L any](
	rng Source,
	population Population[L],
	fitness FitnessFunc[L],
	crossover CrossoverFunc[L],
	crossoverRate float64,
	mutate MutateFunc[L],
	observe Observer,
) (Population[L], error) {
	if err := ValidateRate("crossover rate", crossoverRate); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("random source is required")
	}
	if fitness == nil || crossover == nil || mutate == nil {
		return nil, errors.New("fitness, crossover and mutate operators are required")
	}
	if len(population) == 0 {
		return nil, fmt.Errorf("%w: empty population", ErrInvalidDistribution)
	}

	fitnesses, err := Evaluate(population, fitness)
	if err != nil {
		return nil, err
	}
	if observe != nil {
		observe(fitnesses)
	}

	target := len(population)
	next := make(Population[L], 0, target+1)
	for len(next) < target {
		parents, err := SelectMany(rng, population, fitnesses, 2)
		if err != nil {
			return nil, err
		}
		childA, childB, err := MaybeCrossover(rng, parents[0], parents[1], crossover, crossoverRate)
		if err != nil {
			return nil, err
		}
		for _, child := range [2]Chromosome[L]{childA, childB} {
			mutated, err := mutate(child)
			if err != nil {
				return nil, err
			}
			next = append(next, mutated)
		}
	}
	return next[:target], nil
}

// Evaluate scores every individual, returning fitnesses aligned with population.
func Evaluate[L any](population Population[L], fitness FitnessFunc[L]) ([]float64, error) {
	fitnesses := make([]float64, len(population))
	for i, chromosome := range population {
		f, err := fitness(chromosome)
		if err != nil {
			return nil, err
		}
		fitnesses[i] = f
	}
	return fitnesses, nil
}

// EngineConfig bundles the problem-specific operators for an Engine.
type EngineConfig[L any] struct {
	Fitness       FitnessFunc[L]
	Crossover     CrossoverFunc[L]
	Mutate        MutateFunc[L]
	CrossoverRate float64
	// Source defaults to a time-seeded generator when nil.
	Source Source
	// Observer, when set, sees each generation's fitness sequence.
	Observer Observer
}

// Engine applies Advance with a fixed set of operators. It keeps no state
// between generations beyond its randomness source.
type Engine[L any] struct {
	cfg EngineConfig[L]
}

func NewEngine[L any](cfg EngineConfig[L]) (*Engine[L], error) {
	if err := ValidateRate("crossover rate", cfg.CrossoverRate); err != nil {
		return nil, err
	}
	if cfg.Fitness == nil || cfg.Crossover == nil || cfg.Mutate == nil {
		return nil, errors.New("fitness, crossover and mutate operators are required")
	}
	if cfg.Source == nil {
		cfg.Source = defaultSource()
	}
	return &Engine[L]{cfg: cfg}, nil
}

func (e *Engine[L]) Advance(population Population[L]) (Population[L], error) {
	return advance(e.cfg.Source, population, e.cfg.Fitness, e.cfg.Crossover, e.cfg.CrossoverRate, e.cfg.Mutate, e.cfg.Observer)
}

// Evolve advances population the given number of generations.
func (e *Engine[L]) Evolve(population Population[L], generations int) (Population[L], error) {
	if generations < 0 {
		return nil, fmt.Errorf("%w: negative generation count %d", ErrConfiguration, generations)
	}
	current := population
	for i := 0; i < generations; i++ {
		next, err := e.Advance(current)
		if err != nil {
			return nil, err
		}
		current = next
	}
	return current, nil
}
