package platform

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"genetic/internal/evo"
	"genetic/internal/maxones"
	"genetic/internal/model"
	"genetic/internal/storage"
)

// Config wires the runner's collaborators. Store may be nil, in which case
// runs are not recorded.
type Config struct {
	Store  storage.Store
	Logger *zap.Logger
	Now    func() time.Time
}

type RunConfig struct {
	Problem          string
	PopulationSize   int
	ChromosomeLength int
	Generations      int
	CrossoverRate    float64
	MutationRate     float64
	// Seed 0 picks a time-based seed; the chosen seed is recorded.
	Seed int64
}

// DefaultRunConfig mirrors the max-ones demonstration defaults.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Problem:          maxones.Name,
		PopulationSize:   maxones.DefaultPopulationSize,
		ChromosomeLength: maxones.DefaultChromosomeLength,
		Generations:      maxones.DefaultGenerations,
		CrossoverRate:    maxones.DefaultCrossoverRate,
		MutationRate:     maxones.DefaultMutationRate,
	}
}

func (c RunConfig) Validate() error {
	if c.Problem != "" && c.Problem != maxones.Name {
		return fmt.Errorf("%w: unsupported problem %q", evo.ErrConfiguration, c.Problem)
	}
	if c.PopulationSize <= 0 {
		return fmt.Errorf("%w: population size must be positive, got %d", evo.ErrConfiguration, c.PopulationSize)
	}
	if c.ChromosomeLength <= 0 {
		return fmt.Errorf("%w: chromosome length must be positive, got %d", evo.ErrConfiguration, c.ChromosomeLength)
	}
	if c.Generations < 0 {
		return fmt.Errorf("%w: generations must not be negative, got %d", evo.ErrConfiguration, c.Generations)
	}
	if err := evo.ValidateRate("crossover rate", c.CrossoverRate); err != nil {
		return err
	}
	return evo.ValidateRate("mutation rate", c.MutationRate)
}

type RunResult struct {
	Record model.RunRecord
	Final  evo.Population[int]
}

// Runner drives the engine for a fixed number of generations and records
// per-generation diagnostics.
type Runner struct {
	store  storage.Store
	logger *zap.Logger
	now    func() time.Time
}

func NewRunner(cfg Config) *Runner {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &Runner{store: cfg.Store, logger: logger, now: now}
}

func (r *Runner) Run(ctx context.Context, cfg RunConfig) (RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return RunResult{}, err
	}
	if cfg.Problem == "" {
		cfg.Problem = maxones.Name
	}
	if cfg.Seed == 0 {
		cfg.Seed = r.now().UnixNano()
	}

	runID := uuid.NewString()
	logger := r.logger.With(zap.String("run_id", runID), zap.String("problem", cfg.Problem), zap.Int64("seed", cfg.Seed))

	rng := evo.NewSource(cfg.Seed)
	population := maxones.NewPopulation(rng, cfg.PopulationSize, cfg.ChromosomeLength)

	engineCfg, err := maxones.EngineConfig(rng, cfg.CrossoverRate, cfg.MutationRate)
	if err != nil {
		return RunResult{}, err
	}
	var (
		diagnostics = make([]model.GenerationDiagnostics, 0, cfg.Generations+1)
		evaluations int
		generation  int
	)
	engineCfg.Observer = func(fitnesses []float64) {
		diagnostics = append(diagnostics, evo.Summarize(generation, fitnesses))
		evaluations += len(fitnesses)
	}
	engine, err := evo.NewEngine(engineCfg)
	if err != nil {
		return RunResult{}, err
	}

	logger.Info("run started",
		zap.Int("population", cfg.PopulationSize),
		zap.Int("generations", cfg.Generations),
		zap.Float64("crossover_rate", cfg.CrossoverRate),
		zap.Float64("mutation_rate", cfg.MutationRate),
	)
	for generation = 0; generation < cfg.Generations; generation++ {
		if err := ctx.Err(); err != nil {
			return RunResult{}, err
		}
		population, err = engine.Advance(population)
		if err != nil {
			logger.Error("generation failed", zap.Int("generation", generation), zap.Error(err))
			return RunResult{}, err
		}
		last := diagnostics[len(diagnostics)-1]
		logger.Debug("generation evaluated",
			zap.Int("generation", generation),
			zap.Float64("best", last.BestFitness),
			zap.Float64("mean", last.MeanFitness),
		)
	}

	finalFitness, err := evo.Evaluate(population, maxones.CountOnes)
	if err != nil {
		return RunResult{}, err
	}
	final := evo.Summarize(cfg.Generations, finalFitness)
	diagnostics = append(diagnostics, final)
	evaluations += len(finalFitness)

	record := model.RunRecord{
		VersionedRecord: storage.CurrentVersion(),
		ID:              runID,
		CreatedAt:       r.now().UTC(),
		Parameters: model.RunParameters{
			Problem:          cfg.Problem,
			PopulationSize:   cfg.PopulationSize,
			ChromosomeLength: cfg.ChromosomeLength,
			Generations:      cfg.Generations,
			CrossoverRate:    cfg.CrossoverRate,
			MutationRate:     cfg.MutationRate,
			Seed:             cfg.Seed,
		},
		Diagnostics:      diagnostics,
		FinalBestFitness: final.BestFitness,
		Evaluations:      evaluations,
	}
	if r.store != nil {
		if err := r.store.SaveRun(ctx, record); err != nil {
			return RunResult{}, fmt.Errorf("save run %s: %w", runID, err)
		}
	}
	logger.Info("run finished",
		zap.Float64("final_best", final.BestFitness),
		zap.Float64("final_mean", final.MeanFitness),
		zap.Int("evaluations", evaluations),
	)
	return RunResult{Record: record, Final: population}, nil
}

// RunMany performs independent runs with consecutive seeds starting at
// cfg.Seed.
func (r *Runner) RunMany(ctx context.Context, cfg RunConfig, runs int) ([]RunResult, error) {
	if runs <= 0 {
		return nil, fmt.Errorf("%w: run count must be positive, got %d", evo.ErrConfiguration, runs)
	}
	if cfg.Seed == 0 {
		cfg.Seed = r.now().UnixNano()
	}
	results := make([]RunResult, 0, runs)
	for i := 0; i < runs; i++ {
		runCfg := cfg
		runCfg.Seed = cfg.Seed + int64(i)
		result, err := r.Run(ctx, runCfg)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}
	return results, nil
}

func (r *Runner) Runs(ctx context.Context, limit int) ([]model.RunRecord, error) {
	if r.store == nil {
		return nil, errors.New("run store is not configured")
	}
	return r.store.ListRuns(ctx, limit)
}

func (r *Runner) Get(ctx context.Context, id string) (model.RunRecord, bool, error) {
	if r.store == nil {
		return model.RunRecord{}, false, errors.New("run store is not configured")
	}
	return r.store.GetRun(ctx, id)
}
