package genetic_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"genetic/pkg/genetic"
)

func TestClientRunAndRuns(t *testing.T) {
	ctx := context.Background()
	client, err := genetic.New(ctx, genetic.Options{StoreKind: "memory"})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = client.Close()
	})

	req := genetic.DefaultRunRequest()
	req.PopulationSize = 11
	req.Generations = 5
	req.Seed = 9
	req.Runs = 2

	summaries, err := client.Run(ctx, req)
	require.NoError(t, err)
	require.Len(t, summaries, 2)
	for i, summary := range summaries {
		assert.Equal(t, int64(9+i), summary.Seed)
		assert.Len(t, summary.BestByGeneration, req.Generations+1)
		assert.Len(t, summary.FinalPopulation, req.PopulationSize)
	}

	items, err := client.Runs(ctx, genetic.RunsRequest{})
	require.NoError(t, err)
	assert.Len(t, items, 2)

	record, err := client.Show(ctx, summaries[0].RunID)
	require.NoError(t, err)
	assert.Equal(t, summaries[0].FinalBestFitness, record.FinalBestFitness)

	_, err = client.Show(ctx, "missing")
	assert.Error(t, err)
}

func TestClientRejectsUnknownStore(t *testing.T) {
	_, err := genetic.New(context.Background(), genetic.Options{StoreKind: "badger"})
	assert.Error(t, err)
}
