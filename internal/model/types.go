package model

import "time"

// VersionedRecord captures schema and codec evolution for persistent data.
type VersionedRecord struct {
	SchemaVersion int `json:"schema_version"`
	CodecVersion  int `json:"codec_version"`
}

type GenerationDiagnostics struct {
	Generation  int     `json:"generation"`
	BestFitness float64 `json:"best_fitness"`
	MeanFitness float64 `json:"mean_fitness"`
	MinFitness  float64 `json:"min_fitness"`
	Population  int     `json:"population"`
}

// RunParameters are the knobs a run was started with.
type RunParameters struct {
	Problem          string  `json:"problem"`
	PopulationSize   int     `json:"population_size"`
	ChromosomeLength int     `json:"chromosome_length"`
	Generations      int     `json:"generations"`
	CrossoverRate    float64 `json:"crossover_rate"`
	MutationRate     float64 `json:"mutation_rate"`
	Seed             int64   `json:"seed"`
}

// RunRecord summarizes a finished run. Populations themselves are not stored.
type RunRecord struct {
	VersionedRecord
	ID               string                  `json:"id"`
	CreatedAt        time.Time               `json:"created_at"`
	Parameters       RunParameters           `json:"parameters"`
	Diagnostics      []GenerationDiagnostics `json:"diagnostics"`
	FinalBestFitness float64                 `json:"final_best_fitness"`
	Evaluations      int                     `json:"evaluations"`
}
