package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"genetic/internal/storage"
	"genetic/pkg/genetic"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return usageError("missing command")
	}

	switch args[0] {
	case "run":
		return runRun(ctx, args[1:], stdout)
	case "runs":
		return runRuns(ctx, args[1:], stdout)
	case "show":
		return runShow(ctx, args[1:], stdout)
	default:
		return usageError(fmt.Sprintf("unknown command: %s", args[0]))
	}
}

type commonFlags struct {
	storeKind *string
	dbPath    *string
	logLevel  *string
	logFormat *string
	asJSON    *bool
}

func registerCommonFlags(fs *flag.FlagSet) commonFlags {
	return commonFlags{
		storeKind: fs.String("store", storage.DefaultStoreKind(), "store backend: memory|sqlite"),
		dbPath:    fs.String("db-path", "genetic.db", "sqlite database path"),
		logLevel:  fs.String("log-level", "warn", "log level: debug|info|warn|error"),
		logFormat: fs.String("log-format", "console", "log format: console|json"),
		asJSON:    fs.Bool("json", false, "emit JSON lines even on a terminal"),
	}
}

func (c commonFlags) open(ctx context.Context) (*genetic.Client, *zap.Logger, error) {
	logger, err := newLogger(*c.logLevel, *c.logFormat)
	if err != nil {
		return nil, nil, err
	}
	client, err := genetic.New(ctx, genetic.Options{
		StoreKind: *c.storeKind,
		DBPath:    *c.dbPath,
		Logger:    logger,
	})
	if err != nil {
		_ = logger.Sync()
		return nil, nil, err
	}
	return client, logger, nil
}

func runRun(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	common := registerCommonFlags(fs)
	configPath := fs.String("config", "", "optional run config path (.json, .yaml or .yml)")
	problem := fs.String("problem", "max-ones", "problem name")
	population := fs.Int("pop", 100, "population size")
	length := fs.Int("length", 20, "chromosome length")
	generations := fs.Int("gens", 50, "generation count")
	crossoverRate := fs.Float64("crossover-rate", 0.7, "probability that a selected pair recombines")
	mutationRate := fs.Float64("mutation-rate", 0.001, "per-locus mutation probability")
	seed := fs.Int64("seed", 0, "rng seed (0 picks a time-based seed)")
	runs := fs.Int("runs", 1, "number of independent runs")
	printPopulation := fs.Bool("print-population", false, "include the final population in the output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setFlags := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	req := genetic.DefaultRunRequest()
	if *configPath != "" {
		loaded, err := loadRunRequestFromConfig(*configPath)
		if err != nil {
			return fmt.Errorf("load config %s: %w", *configPath, err)
		}
		req = loaded
	} else {
		for _, name := range []string{"problem", "pop", "length", "gens", "crossover-rate", "mutation-rate", "seed", "runs"} {
			setFlags[name] = true
		}
	}
	if err := overrideFromFlags(&req, setFlags, map[string]any{
		"problem":        *problem,
		"pop":            *population,
		"length":         *length,
		"gens":           *generations,
		"crossover-rate": *crossoverRate,
		"mutation-rate":  *mutationRate,
		"seed":           *seed,
		"runs":           *runs,
	}); err != nil {
		return err
	}

	client, logger, err := common.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
		_ = logger.Sync()
	}()

	summaries, err := client.Run(ctx, req)
	if err != nil {
		if errors.Is(err, genetic.ErrConfiguration) {
			return usageError(err.Error())
		}
		return err
	}
	return newPrinter(stdout, *common.asJSON).runSummaries(summaries, *printPopulation)
}

func runRuns(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("runs", flag.ContinueOnError)
	common := registerCommonFlags(fs)
	limit := fs.Int("limit", 20, "maximum number of runs to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	client, logger, err := common.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
		_ = logger.Sync()
	}()

	items, err := client.Runs(ctx, genetic.RunsRequest{Limit: *limit})
	if err != nil {
		return err
	}
	return newPrinter(stdout, *common.asJSON).runItems(items)
}

func runShow(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	common := registerCommonFlags(fs)
	runID := fs.String("run-id", "", "run id to show")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *runID == "" {
		return usageError("show requires --run-id")
	}

	client, logger, err := common.open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = client.Close()
		_ = logger.Sync()
	}()

	record, err := client.Show(ctx, *runID)
	if err != nil {
		return err
	}
	return newPrinter(stdout, *common.asJSON).runRecord(record)
}

func newLogger(level, format string) (*zap.Logger, error) {
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, usageError(fmt.Sprintf("invalid log level: %s", level))
	}

	var cfg zap.Config
	switch format {
	case "json":
		cfg = zap.NewProductionConfig()
	case "console":
		cfg = zap.NewDevelopmentConfig()
	default:
		return nil, usageError(fmt.Sprintf("invalid log format: %s", format))
	}
	cfg.Level = zap.NewAtomicLevelAt(parsed)
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}

func usageError(msg string) error {
	return fmt.Errorf("%s\nusage: geneticctl <run|runs|show> [flags]", msg)
}
