package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genetic/internal/model"
)

func sampleRun(id string, createdAt time.Time) model.RunRecord {
	return model.RunRecord{
		VersionedRecord: CurrentVersion(),
		ID:              id,
		CreatedAt:       createdAt,
		Parameters: model.RunParameters{
			Problem:          "max-ones",
			PopulationSize:   10,
			ChromosomeLength: 8,
			Generations:      2,
			CrossoverRate:    0.7,
			MutationRate:     0.01,
			Seed:             5,
		},
		Diagnostics: []model.GenerationDiagnostics{
			{Generation: 0, BestFitness: 6, MeanFitness: 4, MinFitness: 1, Population: 10},
			{Generation: 1, BestFitness: 7, MeanFitness: 5, MinFitness: 2, Population: 10},
		},
		FinalBestFitness: 8,
		Evaluations:      30,
	}
}

func TestMemoryStoreRunRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	input := sampleRun("run-1", time.Unix(100, 0))
	require.NoError(t, store.SaveRun(ctx, input))

	output, ok, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, input, output)

	output.Diagnostics[0].BestFitness = 99
	again, _, err := store.GetRun(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, 6.0, again.Diagnostics[0].BestFitness, "stored diagnostics must be copied")

	_, ok, err = store.GetRun(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreListRunsNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Init(ctx))

	require.NoError(t, store.SaveRun(ctx, sampleRun("old", time.Unix(100, 0))))
	require.NoError(t, store.SaveRun(ctx, sampleRun("new", time.Unix(300, 0))))
	require.NoError(t, store.SaveRun(ctx, sampleRun("mid", time.Unix(200, 0))))

	runs, err := store.ListRuns(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 3)
	assert.Equal(t, []string{"new", "mid", "old"}, []string{runs[0].ID, runs[1].ID, runs[2].ID})

	limited, err := store.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestMemoryStoreRequiresInit(t *testing.T) {
	store := NewMemoryStore()
	assert.Error(t, store.SaveRun(context.Background(), sampleRun("run-1", time.Unix(1, 0))))
}
