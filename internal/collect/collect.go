// Package collect implements the quota-driven collection engine: a strictly
// sequential two-phase sweep of a search provider that deduplicates results
// and persists them until per-category quotas are met.
package collect

import (
	"context"

	"github.com/sells-group/profile-scout/internal/model"
)

// Item is one raw search result as returned by a provider. The engine never
// interprets its fields directly; a Parser extracts the identity key and
// display name.
type Item struct {
	URL     string
	Title   string
	Snippet string
}

// Page is one page of results for a query. HasMore reflects the provider's
// own continuation signal; an empty Items slice always ends the query
// regardless of HasMore.
type Page struct {
	Items   []Item
	HasMore bool
}

// Provider issues a single page of results for a query. Page indexes start at
// zero; offset and page-size arithmetic belong to the adapter, not here.
// Errors are returned as-is and abort the run; the engine never retries.
type Provider interface {
	Search(ctx context.Context, query string, page int) (*Page, error)
}

// Sink durably appends one accepted record. A failed append aborts the run:
// the record is treated as never accepted.
type Sink interface {
	Append(ctx context.Context, rec model.Record) error
}

// Parser extracts the identity key and display name from a raw item. ok=false
// means the item carries no usable identity and is skipped silently.
type Parser func(Item) (key, name string, ok bool)
