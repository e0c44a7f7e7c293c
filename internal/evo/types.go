package evo

// Chromosome is a fixed-length sequence of loci. The engine never inspects
// the locus type; problem code chooses it.
type Chromosome[L any] []L

// Population is an ordered set of chromosomes. Order only matters for
// alignment with a fitness sequence of the same length.
type Population[L any] []Chromosome[L]

// FitnessFunc scores a chromosome. Scores must be non-negative.
type FitnessFunc[L any] func(Chromosome[L]) (float64, error)

// CrossoverFunc recombines two parents into two offspring of the same length.
type CrossoverFunc[L any] func(a, b Chromosome[L]) (Chromosome[L], Chromosome[L], error)

// MutateFunc returns a mutated copy of a chromosome with the same length.
type MutateFunc[L any] func(Chromosome[L]) (Chromosome[L], error)

// Observer receives the fitness sequence evaluated at the start of a generation.
type Observer func(fitnesses []float64)
