package collect

import (
	"context"

	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"
)

// Pager drives successive pages of a single query against a provider. It
// stops at the first empty page, at the provider's has-more signal, at the
// configured page-index ceiling, or when the visitor declines more pages.
// The shared limiter paces provider calls at the fixed inter-page interval;
// no wait is added after a query's final page.
type Pager struct {
	provider Provider
	limiter  *rate.Limiter
	maxPage  int
}

// NewPager creates a pager. limiter may be nil to disable pacing; maxPage is
// the highest page index that will be requested.
func NewPager(provider Provider, limiter *rate.Limiter, maxPage int) *Pager {
	return &Pager{provider: provider, limiter: limiter, maxPage: maxPage}
}

// Each fetches pages from index 0 and hands each non-empty page to visit.
// visit returns whether more pages are wanted. Provider errors propagate
// unchanged; there are no retries here.
func (p *Pager) Each(ctx context.Context, query string, visit func(*Page) (bool, error)) error {
	for page := 0; page <= p.maxPage; page++ {
		if p.limiter != nil {
			if err := p.limiter.Wait(ctx); err != nil {
				return eris.Wrap(err, "pager: rate limit wait")
			}
		}

		pg, err := p.provider.Search(ctx, query, page)
		if err != nil {
			return err
		}

		// An empty page means the query is exhausted, whatever HasMore says.
		if len(pg.Items) == 0 {
			return nil
		}

		more, err := visit(pg)
		if err != nil {
			return err
		}
		if !more || !pg.HasMore {
			return nil
		}
	}
	return nil
}
