package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genetic/pkg/genetic"
)

func TestLoadRunRequestFromJSONConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"population": 40,
		"chromosome_length": 16,
		"generations": 12,
		"crossover_rate": 0.6,
		"mutation_rate": 0.01,
		"seed": 77,
		"runs": 3
	}`), 0o644))

	req, err := loadRunRequestFromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "max-ones", req.Problem)
	assert.Equal(t, 40, req.PopulationSize)
	assert.Equal(t, 16, req.ChromosomeLength)
	assert.Equal(t, 12, req.Generations)
	assert.Equal(t, 0.6, req.CrossoverRate)
	assert.Equal(t, 0.01, req.MutationRate)
	assert.Equal(t, int64(77), req.Seed)
	assert.Equal(t, 3, req.Runs)
}

func TestLoadRunRequestFromYAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("population: 30\ngenerations: 5\ncrossover_rate: 1\nseed: 4\n"), 0o644))

	req, err := loadRunRequestFromConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 30, req.PopulationSize)
	assert.Equal(t, 5, req.Generations)
	assert.Equal(t, 1.0, req.CrossoverRate)
	assert.Equal(t, int64(4), req.Seed)
	assert.Equal(t, genetic.DefaultRunRequest().ChromosomeLength, req.ChromosomeLength)
}

func TestLoadRunRequestRejectsMalformedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"population":`), 0o644))

	_, err := loadRunRequestFromConfig(path)
	assert.Error(t, err)
}

func TestOverrideFromFlagsOnlyTouchesSetFlags(t *testing.T) {
	req := genetic.DefaultRunRequest()
	err := overrideFromFlags(&req, map[string]bool{"pop": true, "seed": true}, map[string]any{
		"pop":  8,
		"gens": 999,
		"seed": int64(3),
	})
	require.NoError(t, err)
	assert.Equal(t, 8, req.PopulationSize)
	assert.Equal(t, int64(3), req.Seed)
	assert.Equal(t, genetic.DefaultRunRequest().Generations, req.Generations)
}
