// Package maxones is a demonstration problem for the evolution engine: evolve
// bit strings toward all ones.
package maxones

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"

	"genetic/internal/evo"
)

const (
	Name = "max-ones"

	DefaultGenerations      = 50
	DefaultPopulationSize   = 100
	DefaultChromosomeLength = 20
	DefaultCrossoverRate    = 0.7
	DefaultMutationRate     = 0.001
	DefaultRuns             = 20
)

type Chromosome = evo.Chromosome[int]

type Population = evo.Population[int]

func RandomChromosome(rng evo.Source, length int) Chromosome {
	chromosome := make(Chromosome, length)
	for i := range chromosome {
		chromosome[i] = int(math.Round(rng.Float64()))
	}
	return chromosome
}

func NewPopulation(rng evo.Source, size, length int) Population {
	population := make(Population, size)
	for i := range population {
		population[i] = RandomChromosome(rng, length)
	}
	return population
}

// Crossover returns a single-point crossover operator. The cut point is drawn
// from [0, len], so either offspring may be a copy of one parent.
func Crossover(rng evo.Source) evo.CrossoverFunc[int] {
	return func(a, b Chromosome) (Chromosome, Chromosome, error) {
		if len(a) != len(b) {
			return nil, nil, fmt.Errorf("crossover length mismatch: %d != %d", len(a), len(b))
		}
		point := rng.Intn(len(a) + 1)
		offspringA := append(slices.Clone(a[:point]), b[point:]...)
		offspringB := append(slices.Clone(b[:point]), a[point:]...)
		return offspringA, offspringB, nil
	}
}

// MutateLocus flips a bit with probability rate.
func MutateLocus(rng evo.Source, locus int, rate float64) int {
	if rng.Float64() < rate {
		return 1 ^ locus
	}
	return locus
}

// Mutator applies MutateLocus to every locus of a copy of the chromosome.
func Mutator(rng evo.Source, rate float64) evo.MutateFunc[int] {
	return func(c Chromosome) (Chromosome, error) {
		mutated := slices.Clone(c)
		for i, locus := range mutated {
			mutated[i] = MutateLocus(rng, locus, rate)
		}
		return mutated, nil
	}
}

// CountOnes scores a chromosome by its number of set bits.
func CountOnes(c Chromosome) (float64, error) {
	ones := 0
	for _, locus := range c {
		ones += locus
	}
	return float64(ones), nil
}

// EngineConfig wires the max-ones operators into an engine configuration.
func EngineConfig(rng evo.Source, crossoverRate, mutationRate float64) (evo.EngineConfig[int], error) {
	if err := evo.ValidateRate("mutation rate", mutationRate); err != nil {
		return evo.EngineConfig[int]{}, err
	}
	return evo.EngineConfig[int]{
		Fitness:       CountOnes,
		Crossover:     Crossover(rng),
		Mutate:        Mutator(rng, mutationRate),
		CrossoverRate: crossoverRate,
		Source:        rng,
	}, nil
}

// Run evolves population for the given number of generations.
func Run(rng evo.Source, population Population, generations int, crossoverRate, mutationRate float64) (Population, error) {
	cfg, err := EngineConfig(rng, crossoverRate, mutationRate)
	if err != nil {
		return nil, err
	}
	engine, err := evo.NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return engine.Evolve(population, generations)
}
