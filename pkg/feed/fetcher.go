package feed

import (
	"context"
	"fmt"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/domain"
)

// SourceFetcher resolves a single source into normalized items by trying an
// ordered list of proxy strategies until one succeeds. Feed proxies are
// third-party and rate-limited, so a second independent proxy is a cheap way
// to keep a source alive when the first misbehaves.
type SourceFetcher struct {
	strategies []Strategy
}

// NewSourceFetcher creates a fetcher with strategies in priority order
func NewSourceFetcher(strategies ...Strategy) *SourceFetcher {
	return &SourceFetcher{strategies: strategies}
}

// Fetch tries each strategy in order, strictly sequentially, and returns the
// first successful result. When every strategy fails, the most recently
// recorded error is returned, wrapped with the source name.
func (f *SourceFetcher) Fetch(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
	var lastErr error
	for _, strategy := range f.strategies {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		items, err := strategy.Fetch(ctx, src)
		if err != nil {
			lgr.Printf("[DEBUG] strategy %s failed for source %s: %v", strategy.Name(), src.Name, err)
			lastErr = err
			continue
		}

		lgr.Printf("[DEBUG] strategy %s returned %d items for source %s", strategy.Name(), len(items), src.Name)
		return items, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("source unreachable")
	}
	return nil, fmt.Errorf("fetch source %s: %w", src.Name, lastErr)
}
