// Package search adapts concrete search API clients to the collection
// engine's Provider interface and owns result-field extraction. Page-size and
// offset arithmetic for each API lives here, not in the engine.
package search

import (
	"context"

	"github.com/sells-group/profile-scout/internal/collect"
	"github.com/sells-group/profile-scout/pkg/brave"
	"github.com/sells-group/profile-scout/pkg/gcse"
)

// bravePageSize is the maximum results per page the Brave API supports.
const bravePageSize = 20

// gcsePageSize is the maximum results per page Custom Search supports.
const gcsePageSize = 10

// BraveProvider adapts a brave.Client. Brave paginates by absolute result
// offset, so page N starts at N*pageSize.
type BraveProvider struct {
	client brave.Client
}

// NewBraveProvider wraps a Brave client as a collect.Provider.
func NewBraveProvider(c brave.Client) *BraveProvider {
	return &BraveProvider{client: c}
}

func (p *BraveProvider) Search(ctx context.Context, query string, page int) (*collect.Page, error) {
	resp, err := p.client.WebSearch(ctx, query, bravePageSize, page*bravePageSize)
	if err != nil {
		return nil, err
	}

	items := make([]collect.Item, 0, len(resp.Web.Results))
	for _, r := range resp.Web.Results {
		items = append(items, collect.Item{
			URL:     r.URL,
			Title:   r.Title,
			Snippet: r.Description,
		})
	}
	return &collect.Page{Items: items, HasMore: resp.Query.MoreResultsAvailable}, nil
}

// GoogleProvider adapts a gcse.Client. Custom Search uses a 1-based start
// index, so page N starts at N*pageSize+1.
type GoogleProvider struct {
	client gcse.Client
}

// NewGoogleProvider wraps a Custom Search client as a collect.Provider.
func NewGoogleProvider(c gcse.Client) *GoogleProvider {
	return &GoogleProvider{client: c}
}

func (p *GoogleProvider) Search(ctx context.Context, query string, page int) (*collect.Page, error) {
	resp, err := p.client.Search(ctx, query, gcsePageSize, page*gcsePageSize+1)
	if err != nil {
		return nil, err
	}

	items := make([]collect.Item, 0, len(resp.Items))
	for _, it := range resp.Items {
		items = append(items, collect.Item{
			URL:     it.Link,
			Title:   it.Title,
			Snippet: it.Snippet,
		})
	}
	return &collect.Page{Items: items, HasMore: len(resp.Queries.NextPage) > 0}, nil
}
