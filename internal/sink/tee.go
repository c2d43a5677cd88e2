package sink

import (
	"context"

	"github.com/sells-group/profile-scout/internal/collect"
	"github.com/sells-group/profile-scout/internal/model"
)

// Tee fans one append out to several sinks in order. The first failure stops
// the append and propagates, so a record is only considered accepted when
// every sink took it.
type Tee struct {
	sinks []collect.Sink
}

// NewTee combines sinks into one.
func NewTee(sinks ...collect.Sink) *Tee {
	return &Tee{sinks: sinks}
}

// Append writes the record to each sink in order.
func (t *Tee) Append(ctx context.Context, rec model.Record) error {
	for _, s := range t.sinks {
		if err := s.Append(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}
