package genetic

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"genetic/internal/model"
	"genetic/internal/platform"
	"genetic/internal/storage"
)

const defaultDBPath = "genetic.db"

type Options struct {
	StoreKind string
	DBPath    string
	Logger    *zap.Logger
}

// Client runs the bundled max-ones problem and reads back recorded runs.
type Client struct {
	store  storage.Store
	runner *platform.Runner
}

type RunRequest struct {
	Problem          string
	PopulationSize   int
	ChromosomeLength int
	Generations      int
	CrossoverRate    float64
	MutationRate     float64
	Seed             int64
	Runs             int
}

// DefaultRunRequest returns the max-ones defaults for a single run.
func DefaultRunRequest() RunRequest {
	cfg := platform.DefaultRunConfig()
	return RunRequest{
		Problem:          cfg.Problem,
		PopulationSize:   cfg.PopulationSize,
		ChromosomeLength: cfg.ChromosomeLength,
		Generations:      cfg.Generations,
		CrossoverRate:    cfg.CrossoverRate,
		MutationRate:     cfg.MutationRate,
		Runs:             1,
	}
}

type RunSummary struct {
	RunID            string
	Seed             int64
	BestByGeneration []float64
	FinalBestFitness float64
	FinalPopulation  [][]int
}

type RunsRequest struct {
	Limit int
}

type RunItem struct {
	RunID            string
	CreatedAtUTC     string
	Problem          string
	Seed             int64
	Population       int
	Generations      int
	FinalBestFitness float64
	Evaluations      int
}

func New(ctx context.Context, opts Options) (*Client, error) {
	storeKind := opts.StoreKind
	if storeKind == "" {
		storeKind = storage.DefaultStoreKind()
	}
	dbPath := opts.DBPath
	if dbPath == "" {
		dbPath = defaultDBPath
	}

	store, err := storage.NewStore(storeKind, dbPath)
	if err != nil {
		return nil, err
	}
	if err := store.Init(ctx); err != nil {
		_ = storage.CloseIfSupported(store)
		return nil, err
	}

	return &Client{
		store:  store,
		runner: platform.NewRunner(platform.Config{Store: store, Logger: opts.Logger}),
	}, nil
}

func (c *Client) Close() error {
	return storage.CloseIfSupported(c.store)
}

// Run performs req.Runs independent runs (at least one) and returns one
// summary per run.
func (c *Client) Run(ctx context.Context, req RunRequest) ([]RunSummary, error) {
	cfg := platform.RunConfig{
		Problem:          req.Problem,
		PopulationSize:   req.PopulationSize,
		ChromosomeLength: req.ChromosomeLength,
		Generations:      req.Generations,
		CrossoverRate:    req.CrossoverRate,
		MutationRate:     req.MutationRate,
		Seed:             req.Seed,
	}
	runs := req.Runs
	if runs <= 0 {
		runs = 1
	}

	results, err := c.runner.RunMany(ctx, cfg, runs)
	if err != nil {
		return nil, err
	}
	out := make([]RunSummary, 0, len(results))
	for _, result := range results {
		best := make([]float64, 0, len(result.Record.Diagnostics))
		for _, diag := range result.Record.Diagnostics {
			best = append(best, diag.BestFitness)
		}
		final := make([][]int, 0, len(result.Final))
		for _, chromosome := range result.Final {
			final = append(final, []int(chromosome))
		}
		out = append(out, RunSummary{
			RunID:            result.Record.ID,
			Seed:             result.Record.Parameters.Seed,
			BestByGeneration: best,
			FinalBestFitness: result.Record.FinalBestFitness,
			FinalPopulation:  final,
		})
	}
	return out, nil
}

func (c *Client) Runs(ctx context.Context, req RunsRequest) ([]RunItem, error) {
	if req.Limit <= 0 {
		req.Limit = 20
	}
	records, err := c.runner.Runs(ctx, req.Limit)
	if err != nil {
		return nil, err
	}
	out := make([]RunItem, 0, len(records))
	for _, record := range records {
		out = append(out, RunItem{
			RunID:            record.ID,
			CreatedAtUTC:     record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
			Problem:          record.Parameters.Problem,
			Seed:             record.Parameters.Seed,
			Population:       record.Parameters.PopulationSize,
			Generations:      record.Parameters.Generations,
			FinalBestFitness: record.FinalBestFitness,
			Evaluations:      record.Evaluations,
		})
	}
	return out, nil
}

// Show returns the full record of one run.
func (c *Client) Show(ctx context.Context, runID string) (model.RunRecord, error) {
	record, ok, err := c.runner.Get(ctx, runID)
	if err != nil {
		return model.RunRecord{}, err
	}
	if !ok {
		return model.RunRecord{}, fmt.Errorf("run not found: %s", runID)
	}
	return record, nil
}
