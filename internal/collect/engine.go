package collect

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/profile-scout/internal/model"
)

// Config holds the resolved, immutable settings for one engine run.
type Config struct {
	// CategoryTarget is the number of records to collect per category.
	CategoryTarget int
	// TargetCap bounds acceptances per target during the targeted phase.
	TargetCap int
	// MaxPageIndex is the provider's pagination ceiling (inclusive).
	MaxPageIndex int
	// PageDelay is the fixed interval between successive provider calls.
	PageDelay time.Duration
	// Site restricts every query to a domain path, e.g. "linkedin.com/in".
	Site string
	// Scope is an optional phrase anchored to every query, e.g. a school name.
	Scope string
	// Destination identifies the run's output for reporting, e.g. a file name.
	Destination string
}

// Result is the outcome of a run: every accepted record in acceptance order
// plus per-category totals.
type Result struct {
	Destination string
	Records     []model.Record
	PerCategory map[string]int
}

// Engine sweeps the catalog against a provider, one query at a time. All
// state (dedup set, quota trackers) is owned by the single run goroutine.
type Engine struct {
	cfg     Config
	catalog []model.Category
	parse   Parser
	sink    Sink
	pager   *Pager
	seen    *Seen
}

// NewEngine builds an engine over the given provider, sink, and catalog.
func NewEngine(provider Provider, sink Sink, parse Parser, catalog []model.Category, cfg Config) *Engine {
	var limiter *rate.Limiter
	if cfg.PageDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.PageDelay), 1)
	}
	return &Engine{
		cfg:     cfg,
		catalog: catalog,
		parse:   parse,
		sink:    sink,
		pager:   NewPager(provider, limiter, cfg.MaxPageIndex),
		seen:    NewSeen(),
	}
}

// Seed pre-loads identity keys from prior output so re-runs skip them.
func (e *Engine) Seed(keys []string) {
	e.seen.Seed(keys)
}

// Run processes every category in catalog order: the broad keyword sweep
// first, then the targeted sweep when quota remains and targets exist. The
// first provider or sink failure aborts the whole run.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	log := zap.L().With(zap.String("component", "collect.engine"))
	res := &Result{
		Destination: e.cfg.Destination,
		PerCategory: make(map[string]int, len(e.catalog)),
	}

	for _, cat := range e.catalog {
		tracker := NewTracker(e.cfg.CategoryTarget)
		log.Info("category start",
			zap.String("category", cat.Name),
			zap.Int("quota", e.cfg.CategoryTarget),
		)

		if err := e.broadSweep(ctx, cat, tracker, res); err != nil {
			return nil, err
		}
		if tracker.Remaining() > 0 && len(cat.Targets) > 0 {
			if err := e.targetedSweep(ctx, cat, tracker, res); err != nil {
				return nil, err
			}
		}

		log.Info("category done",
			zap.String("category", cat.Name),
			zap.Int("accepted", res.PerCategory[cat.Name]),
			zap.Int("unmet", tracker.Remaining()),
		)
	}

	log.Info("run complete",
		zap.Int("total", len(res.Records)),
		zap.String("destination", res.Destination),
	)
	return res, nil
}

// broadSweep iterates the category's keyword variants in order, stopping as
// soon as the category quota is met.
func (e *Engine) broadSweep(ctx context.Context, cat model.Category, tracker *Tracker, res *Result) error {
	for _, kw := range cat.Keywords {
		if tracker.Remaining() <= 0 {
			return nil
		}
		query := e.buildQuery(kw, "")
		if err := e.sweepQuery(ctx, query, kw, cat.Name, "", tracker, res); err != nil {
			return err
		}
	}
	return nil
}

// targetedSweep combines each target with every keyword variant. A target is
// done when its cap or the category quota is exhausted, or when all keywords
// are spent; partial fill is normal.
func (e *Engine) targetedSweep(ctx context.Context, cat model.Category, tracker *Tracker, res *Result) error {
	for _, target := range cat.Targets {
		if tracker.Remaining() <= 0 {
			return nil
		}
		tracker.InitTarget(target, e.cfg.TargetCap)

		for _, kw := range cat.Keywords {
			if tracker.Remaining() <= 0 || tracker.TargetRemaining(target) <= 0 {
				break
			}
			query := e.buildQuery(kw, target)
			label := kw + " + " + target
			if err := e.sweepQuery(ctx, query, label, cat.Name, target, tracker, res); err != nil {
				return err
			}
		}
	}
	return nil
}

// sweepQuery drains one query through the pager, accepting unseen items until
// the relevant quota scope runs out.
func (e *Engine) sweepQuery(ctx context.Context, query, keyword, category, target string, tracker *Tracker, res *Result) error {
	return e.pager.Each(ctx, query, func(pg *Page) (bool, error) {
		for _, it := range pg.Items {
			key, name, ok := e.parse(it)
			if !ok {
				continue
			}
			if e.seen.Contains(key) {
				continue
			}
			if tracker.Remaining() <= 0 {
				break
			}
			if target != "" && tracker.TargetRemaining(target) <= 0 {
				break
			}

			rec := model.Record{
				Name:       name,
				ProfileURL: key,
				Keyword:    keyword,
				Category:   category,
				Target:     target,
			}
			if err := e.sink.Append(ctx, rec); err != nil {
				return false, eris.Wrapf(err, "collect: append record %s", key)
			}

			e.seen.Add(key)
			tracker.Decrement()
			if target != "" {
				tracker.DecrementTarget(target)
			}
			res.Records = append(res.Records, rec)
			res.PerCategory[category]++
		}

		if tracker.Remaining() <= 0 {
			return false, nil
		}
		if target != "" && tracker.TargetRemaining(target) <= 0 {
			return false, nil
		}
		return true, nil
	})
}

// buildQuery composes the provider query. Keyword and target are quoted as
// atomic phrases; the scope phrase and site restriction apply to every query.
func (e *Engine) buildQuery(keyword, target string) string {
	parts := make([]string, 0, 4)
	if e.cfg.Site != "" {
		parts = append(parts, "site:"+e.cfg.Site)
	}
	if e.cfg.Scope != "" {
		parts = append(parts, quote(e.cfg.Scope))
	}
	parts = append(parts, quote(keyword))
	if target != "" {
		parts = append(parts, quote(target))
	}
	return strings.Join(parts, " ")
}

func quote(s string) string {
	return `"` + s + `"`
}
