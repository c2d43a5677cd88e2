// Package store persists collection runs and their accepted records.
package store

import (
	"context"

	"github.com/sells-group/profile-scout/internal/model"
)

// Store defines the persistence interface for collection runs.
type Store interface {
	// Runs
	CreateRun(ctx context.Context, provider, destination string) (*model.Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status model.RunStatus) error
	CompleteRun(ctx context.Context, runID string, result *model.RunResult) error
	ListRuns(ctx context.Context, limit int) ([]model.Run, error)

	// Records
	AppendRecord(ctx context.Context, runID string, rec model.Record) error
	ListRecords(ctx context.Context, runID string, limit int) ([]model.Record, error)

	// SeenKeys returns every distinct profile URL across all runs, for
	// seeding the dedup set on resumed runs.
	SeenKeys(ctx context.Context) ([]string, error)

	// Lifecycle
	Migrate(ctx context.Context) error
	Close() error
}
