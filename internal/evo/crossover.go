package evo

import (
	"errors"
	"fmt"
	"math"
)

// MaybeCrossover recombines a and b with probability rate. Otherwise the
// parents are returned as they are, sharing their backing arrays.
func MaybeCrossover[L any](rng Source, a, b Chromosome[L], crossover CrossoverFunc[L], rate float64) (Chromosome[L], Chromosome[L], error) {
	if err := ValidateRate("crossover rate", rate); err != nil {
		return nil, nil, err
	}
	if rng == nil {
		return nil, nil, errors.New("random source is required")
	}
	if crossover == nil {
		return nil, nil, errors.New("crossover operator is required")
	}

	if rng.Float64() < rate {
		return crossover(a, b)
	}
	return a, b, nil
}

// ValidateRate checks that a probability lies in [0, 1].
func ValidateRate(name string, rate float64) error {
	if math.IsNaN(rate) || rate < 0 || rate > 1 {
		return fmt.Errorf("%w: %s %v outside [0, 1]", ErrConfiguration, name, rate)
	}
	return nil
}
