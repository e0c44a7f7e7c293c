package evo

// fixedSource returns the same draw for every call.
type fixedSource struct {
	uniform float64
	float   float64
}

func (s fixedSource) Float64() float64 { return s.float }

func (s fixedSource) Uniform(_, _ float64) float64 { return s.uniform }

func (fixedSource) Intn(_ int) int { return 0 }

// midpointSource always draws the middle of the requested range.
type midpointSource struct{}

func (midpointSource) Float64() float64 { return 0.5 }

func (midpointSource) Uniform(lo, hi float64) float64 { return (lo + hi) / 2 }

func (midpointSource) Intn(n int) int { return n / 2 }

func letters(s string) Population[rune] {
	population := make(Population[rune], 0, len(s))
	for _, r := range s {
		population = append(population, Chromosome[rune]{r})
	}
	return population
}

func identityCrossover[L any](a, b Chromosome[L]) (Chromosome[L], Chromosome[L], error) {
	return a, b, nil
}

func identityMutate[L any](c Chromosome[L]) (Chromosome[L], error) {
	return c, nil
}

func constantFitness[L any](Chromosome[L]) (float64, error) {
	return 1, nil
}
