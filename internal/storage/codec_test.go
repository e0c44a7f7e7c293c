package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genetic/internal/model"
)

func TestDecodeRunFixture(t *testing.T) {
	fixture := []byte(`{
		"schema_version": 1,
		"codec_version": 1,
		"id": "run-7",
		"created_at": "2026-01-02T03:04:05Z",
		"parameters": {"problem": "max-ones", "population_size": 4, "chromosome_length": 3, "generations": 1, "crossover_rate": 0.7, "mutation_rate": 0.001, "seed": 7},
		"diagnostics": [{"generation": 0, "best_fitness": 3, "mean_fitness": 1.5, "min_fitness": 0, "population": 4}],
		"final_best_fitness": 3,
		"evaluations": 8
	}`)

	run, err := DecodeRun(fixture)
	require.NoError(t, err)
	assert.Equal(t, "run-7", run.ID)
	assert.Equal(t, 4, run.Parameters.PopulationSize)
	require.Len(t, run.Diagnostics, 1)
	assert.Equal(t, 1.5, run.Diagnostics[0].MeanFitness)
	assert.True(t, run.CreatedAt.Equal(time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)))
}

func TestRunCodecRoundTrip(t *testing.T) {
	input := sampleRun("run-1", time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC))
	data, err := EncodeRun(input)
	require.NoError(t, err)

	output, err := DecodeRun(data)
	require.NoError(t, err)
	assert.Equal(t, input, output)
}

func TestDecodeRunRejectsVersionMismatch(t *testing.T) {
	input := sampleRun("run-1", time.Unix(1, 0))
	input.VersionedRecord = model.VersionedRecord{SchemaVersion: 2, CodecVersion: 1}
	data, err := EncodeRun(input)
	require.NoError(t, err)

	_, err = DecodeRun(data)
	assert.ErrorIs(t, err, ErrVersionMismatch)
}
