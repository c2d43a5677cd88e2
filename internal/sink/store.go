package sink

import (
	"context"

	"github.com/sells-group/profile-scout/internal/model"
)

// RecordAppender is the slice of the store the sink needs.
type RecordAppender interface {
	AppendRecord(ctx context.Context, runID string, rec model.Record) error
}

// StoreSink appends accepted records to a run in the store.
type StoreSink struct {
	store RecordAppender
	runID string
}

// NewStoreSink binds a store to a run ID.
func NewStoreSink(store RecordAppender, runID string) *StoreSink {
	return &StoreSink{store: store, runID: runID}
}

// Append persists one record under the sink's run.
func (s *StoreSink) Append(ctx context.Context, rec model.Record) error {
	return s.store.AppendRecord(ctx, s.runID, rec)
}
