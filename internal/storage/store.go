package storage

import (
	"context"

	"genetic/internal/model"
)

// Store persists run summaries. Populations are never stored.
type Store interface {
	Init(ctx context.Context) error
	SaveRun(ctx context.Context, run model.RunRecord) error
	GetRun(ctx context.Context, id string) (model.RunRecord, bool, error)
	// ListRuns returns runs newest first; limit <= 0 means no limit.
	ListRuns(ctx context.Context, limit int) ([]model.RunRecord, error)
}
