package genetic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genetic/pkg/genetic"
)

func TestAdvanceWithStringLoci(t *testing.T) {
	population := genetic.Population[string]{
		{"a", "a"},
		{"b", "b"},
		{"c", "c"},
	}
	fitness := func(c genetic.Chromosome[string]) (float64, error) {
		if c[0] == "b" {
			return 0, nil
		}
		return 1, nil
	}
	swapTails := func(a, b genetic.Chromosome[string]) (genetic.Chromosome[string], genetic.Chromosome[string], error) {
		return genetic.Chromosome[string]{a[0], b[1]}, genetic.Chromosome[string]{b[0], a[1]}, nil
	}
	identity := func(c genetic.Chromosome[string]) (genetic.Chromosome[string], error) {
		return c, nil
	}

	next, err := genetic.Advance(genetic.NewSource(8), population, fitness, swapTails, 0.9, identity)
	require.NoError(t, err)
	require.Len(t, next, len(population))
	for _, c := range next {
		assert.NotContains(t, c, "b", "zero-fitness individual must not reproduce")
	}
}

func TestSelectOneReportsInvalidDistribution(t *testing.T) {
	_, err := genetic.SelectOne(genetic.NewSource(1), genetic.Population[int]{{1}, {2}}, []float64{0, 0})
	assert.ErrorIs(t, err, genetic.ErrInvalidDistribution)
}

func TestMaybeCrossoverReportsConfigurationError(t *testing.T) {
	identity := func(a, b genetic.Chromosome[int]) (genetic.Chromosome[int], genetic.Chromosome[int], error) {
		return a, b, nil
	}
	_, _, err := genetic.MaybeCrossover(genetic.NewSource(1), genetic.Chromosome[int]{1}, genetic.Chromosome[int]{2}, identity, 2)
	assert.ErrorIs(t, err, genetic.ErrConfiguration)
}

func TestEngineEvolve(t *testing.T) {
	engine, err := genetic.NewEngine(genetic.EngineConfig[int]{
		Fitness: func(c genetic.Chromosome[int]) (float64, error) { return float64(c[0]), nil },
		Crossover: func(a, b genetic.Chromosome[int]) (genetic.Chromosome[int], genetic.Chromosome[int], error) {
			return a, b, nil
		},
		Mutate:        func(c genetic.Chromosome[int]) (genetic.Chromosome[int], error) { return c, nil },
		CrossoverRate: 0.5,
		Source:        genetic.NewSource(4),
	})
	require.NoError(t, err)

	out, err := engine.Evolve(genetic.Population[int]{{1}, {2}, {3}, {4}, {5}}, 10)
	require.NoError(t, err)
	assert.Len(t, out, 5)

	selected, err := genetic.SelectMany(genetic.NewSource(2), out, []float64{1, 1, 1, 1, 1}, 4)
	require.NoError(t, err)
	assert.Len(t, selected, 4)
}
