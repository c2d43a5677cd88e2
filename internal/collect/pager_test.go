package collect

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

// scriptedProvider returns pre-built pages per page index and records calls.
type scriptedProvider struct {
	pages []*Page
	calls int
	err   error
}

func (p *scriptedProvider) Search(_ context.Context, _ string, page int) (*Page, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if page >= len(p.pages) {
		return &Page{}, nil
	}
	return p.pages[page], nil
}

func onePage(n int) *Page {
	pg := &Page{HasMore: true}
	for i := 0; i < n; i++ {
		pg.Items = append(pg.Items, Item{URL: "u"})
	}
	return pg
}

func visitAll(*Page) (bool, error) { return true, nil }

func TestPager_StopsOnEmptyPage(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(3)}}
	pager := NewPager(p, nil, 9)

	err := pager.Each(context.Background(), "q", visitAll)
	require.NoError(t, err)
	// Non-empty page 0, empty page 1: exactly two calls.
	assert.Equal(t, 2, p.calls)
}

func TestPager_StopsAtCeiling(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(1), onePage(1), onePage(1), onePage(1)}}
	pager := NewPager(p, nil, 2)

	err := pager.Each(context.Background(), "q", visitAll)
	require.NoError(t, err)
	assert.Equal(t, 3, p.calls) // pages 0, 1, 2
}

func TestPager_StopsOnProviderEndSignal(t *testing.T) {
	pg := onePage(1)
	pg.HasMore = false
	p := &scriptedProvider{pages: []*Page{pg, onePage(1)}}
	pager := NewPager(p, nil, 9)

	err := pager.Each(context.Background(), "q", visitAll)
	require.NoError(t, err)
	assert.Equal(t, 1, p.calls)
}

func TestPager_StopsWhenVisitorDeclines(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(1), onePage(1)}}
	pager := NewPager(p, nil, 9)

	err := pager.Each(context.Background(), "q", func(*Page) (bool, error) { return false, nil })
	require.NoError(t, err)
	assert.Equal(t, 1, p.calls)
}

func TestPager_PropagatesProviderError(t *testing.T) {
	boom := errors.New("provider down")
	p := &scriptedProvider{err: boom}
	pager := NewPager(p, nil, 9)

	err := pager.Each(context.Background(), "q", visitAll)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, p.calls)
}

func TestPager_PropagatesVisitorError(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(1)}}
	pager := NewPager(p, nil, 9)

	boom := errors.New("visit failed")
	err := pager.Each(context.Background(), "q", func(*Page) (bool, error) { return false, boom })
	assert.ErrorIs(t, err, boom)
}

func TestPager_WaitsOnLimiter(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(1), onePage(1)}}
	limiter := rate.NewLimiter(rate.Every(10*time.Millisecond), 1)
	pager := NewPager(p, limiter, 9)

	start := time.Now()
	err := pager.Each(context.Background(), "q", visitAll)
	require.NoError(t, err)
	assert.Equal(t, 3, p.calls)
	// Two paced fetches after the first free one.
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
}

func TestPager_LimiterWaitCancelled(t *testing.T) {
	p := &scriptedProvider{pages: []*Page{onePage(1), onePage(1)}}
	limiter := rate.NewLimiter(rate.Every(time.Hour), 1)
	pager := NewPager(p, limiter, 9)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := pager.Each(ctx, "q", visitAll)
	assert.Error(t, err)
}
