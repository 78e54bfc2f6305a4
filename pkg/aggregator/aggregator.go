package aggregator

import (
	"context"
	"errors"
	"sort"

	"github.com/go-pkgz/lgr"
	"golang.org/x/sync/errgroup"

	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/fetcher.go -pkg mocks -skip-ensure -fmt goimports . Fetcher

// Fetcher resolves a single source into normalized feed items
type Fetcher interface {
	Fetch(ctx context.Context, src domain.Source) ([]domain.FeedItem, error)
}

// ErrAllSourcesFailed reports that not a single source produced items. The
// per-source failures are still available as warnings on the result.
var ErrAllSourcesFailed = errors.New("all sources failed")

// Aggregator fans a fetch out over all configured sources, isolating
// per-source failures from each other
type Aggregator struct {
	fetcher    Fetcher
	maxWorkers int
}

// New creates an aggregator running at most maxWorkers concurrent fetches
func New(fetcher Fetcher, maxWorkers int) *Aggregator {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &Aggregator{fetcher: fetcher, maxWorkers: maxWorkers}
}

// LoadAll fetches every source concurrently and independently, merging all
// successes into one collection sorted newest first. A failed source becomes
// a warning, never an error; only the case where the merged collection comes
// out empty is escalated as ErrAllSourcesFailed, with the partial result
// still returned alongside it.
func (a *Aggregator) LoadAll(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
	type outcome struct {
		items   []domain.FeedItem
		warning *domain.Warning
	}
	outcomes := make([]outcome, len(sources))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.maxWorkers)

	for i, src := range sources {
		g.Go(func() error {
			lgr.Printf("[INFO] fetching source %s", src.Name)
			items, err := a.fetcher.Fetch(gctx, src)
			if err != nil {
				lgr.Printf("[WARN] source %s failed: %v", src.Name, err)
				outcomes[i] = outcome{warning: &domain.Warning{SourceName: src.Name, Message: err.Error()}}
				return nil
			}
			lgr.Printf("[INFO] fetched %d items from %s", len(items), src.Name)
			outcomes[i] = outcome{items: items}
			return nil
		})
	}

	_ = g.Wait() // workers never return errors, failures land in outcomes

	result := &domain.LoadResult{
		Items:    []domain.FeedItem{},
		Warnings: []domain.Warning{},
	}
	for _, o := range outcomes {
		if o.warning != nil {
			result.Warnings = append(result.Warnings, *o.warning)
			continue
		}
		result.Items = append(result.Items, o.items...)
	}

	sortItems(result.Items)

	lgr.Printf("[INFO] merged %d items from %d sources, %d warnings",
		len(result.Items), len(sources), len(result.Warnings))

	if len(result.Items) == 0 && len(sources) > 0 {
		return result, ErrAllSourcesFailed
	}
	return result, nil
}

// sortItems orders items by publish date descending. Items with unparseable
// dates have a zero publish time and consistently sort last, after the
// oldest dated item.
func sortItems(items []domain.FeedItem) {
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Published, items[j].Published
		if pi.IsZero() || pj.IsZero() {
			return !pi.IsZero() && pj.IsZero()
		}
		return pi.After(pj)
	})
}
