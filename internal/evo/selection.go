package evo

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// SelectOne picks one chromosome with probability proportional to its
// fitness (roulette wheel, with replacement).
//
// A draw r in [0, total] lands on the first slot whose cumulative fitness is
// strictly greater than r, so a boundary value belongs to the slice that
// starts there. Zero-width slices are never hit. A draw equal to the total
// falls past the end and is clamped to the last individual with non-zero
// fitness.
func SelectOne[L any](rng Source, population Population[L], fitnesses []float64) (Chromosome[L], error) {
	idx, err := selectIndex(rng, fitnesses, len(population))
	if err != nil {
		return nil, err
	}
	return population[idx], nil
}

// SelectMany performs k independent SelectOne draws. The same chromosome may
// appear more than once.
func SelectMany[L any](rng Source, population Population[L], fitnesses []float64, k int) ([]Chromosome[L], error) {
	if k < 0 {
		return nil, fmt.Errorf("%w: negative selection count %d", ErrConfiguration, k)
	}
	selected := make([]Chromosome[L], 0, k)
	for i := 0; i < k; i++ {
		chosen, err := SelectOne(rng, population, fitnesses)
		if err != nil {
			return nil, err
		}
		selected = append(selected, chosen)
	}
	return selected, nil
}

func selectIndex(rng Source, fitnesses []float64, size int) (int, error) {
	if rng == nil {
		return 0, errors.New("random source is required")
	}
	cumulative, last, err := cumulativeFitness(fitnesses, size)
	if err != nil {
		return 0, err
	}

	total := cumulative[len(cumulative)-1]
	r := rng.Uniform(0, total)
	idx := sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > r
	})
	if idx > last {
		idx = last
	}
	return idx, nil
}

// cumulativeFitness returns the running sum of fitnesses and the index of the
// last individual with positive fitness.
func cumulativeFitness(fitnesses []float64, size int) ([]float64, int, error) {
	if size == 0 {
		return nil, 0, fmt.Errorf("%w: empty population", ErrInvalidDistribution)
	}
	if len(fitnesses) != size {
		return nil, 0, fmt.Errorf("%w: %d fitness values for %d individuals", ErrInvalidDistribution, len(fitnesses), size)
	}

	cumulative := make([]float64, len(fitnesses))
	last := -1
	sum := 0.0
	for i, f := range fitnesses {
		if f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, 0, fmt.Errorf("%w: fitness %v at index %d", ErrInvalidDistribution, f, i)
		}
		if f > 0 {
			last = i
		}
		sum += f
		cumulative[i] = sum
	}
	if last < 0 {
		return nil, 0, fmt.Errorf("%w: all fitness values are zero", ErrInvalidDistribution)
	}
	return cumulative, last, nil
}
