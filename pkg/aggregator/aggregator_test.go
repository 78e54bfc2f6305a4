package aggregator

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/aggregator/mocks"
	"github.com/umputun/newsdeck/pkg/domain"
)

func TestAggregator_LoadAll(t *testing.T) {
	sources := []domain.Source{
		{ID: "bbc", Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/rss.xml"},
		{ID: "guardian", Name: "The Guardian", URL: "https://www.theguardian.com/world/rss"},
		{ID: "verge", Name: "The Verge", URL: "https://www.theverge.com/rss/index.xml"},
	}

	t.Run("merges successes and records failures as warnings", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
				switch src.ID {
				case "bbc":
					return []domain.FeedItem{
						{ID: "bbc-1", SourceID: "bbc", Published: time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)},
					}, nil
				case "guardian":
					return nil, errors.New("fetch source The Guardian: proxy down")
				case "verge":
					return []domain.FeedItem{
						{ID: "verge-1", SourceID: "verge", Published: time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)},
						{ID: "verge-2", SourceID: "verge", Published: time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)},
					}, nil
				}
				return nil, errors.New("unexpected source")
			},
		}

		agg := New(fetcher, 4)
		res, err := agg.LoadAll(context.Background(), sources)
		require.NoError(t, err)
		require.NotNil(t, res)

		require.Len(t, res.Items, 3)
		assert.Equal(t, "verge-1", res.Items[0].ID, "newest first")
		assert.Equal(t, "bbc-1", res.Items[1].ID)
		assert.Equal(t, "verge-2", res.Items[2].ID)

		require.Len(t, res.Warnings, 1)
		assert.Equal(t, "The Guardian", res.Warnings[0].SourceName)
		assert.Contains(t, res.Warnings[0].Message, "proxy down")

		assert.Len(t, fetcher.FetchCalls(), 3)
	})

	t.Run("unparseable dates sort after the oldest dated item", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
				return []domain.FeedItem{
					{ID: src.ID + "-undated", SourceID: src.ID},
					{ID: src.ID + "-dated", SourceID: src.ID, Published: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)},
				}, nil
			},
		}

		agg := New(fetcher, 1)
		res, err := agg.LoadAll(context.Background(), sources[:1])
		require.NoError(t, err)
		require.Len(t, res.Items, 2)
		assert.Equal(t, "bbc-dated", res.Items[0].ID)
		assert.Equal(t, "bbc-undated", res.Items[1].ID)
	})

	t.Run("all sources failed returns partial result with error", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
				return nil, errors.New("proxy down")
			},
		}

		agg := New(fetcher, 4)
		res, err := agg.LoadAll(context.Background(), sources)
		require.ErrorIs(t, err, ErrAllSourcesFailed)
		require.NotNil(t, res, "partial result returned alongside the error")
		assert.Empty(t, res.Items)
		assert.Len(t, res.Warnings, 3)
	})

	t.Run("no sources is empty but not a failure", func(t *testing.T) {
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
				return nil, errors.New("should not be called")
			},
		}

		agg := New(fetcher, 4)
		res, err := agg.LoadAll(context.Background(), nil)
		require.NoError(t, err)
		assert.Empty(t, res.Items)
		assert.Empty(t, res.Warnings)
		assert.Empty(t, fetcher.FetchCalls())
	})

	t.Run("respects worker limit", func(t *testing.T) {
		var current, peak int32
		var mu sync.Mutex
		fetcher := &mocks.FetcherMock{
			FetchFunc: func(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
				n := atomic.AddInt32(&current, 1)
				mu.Lock()
				if n > peak {
					peak = n
				}
				mu.Unlock()
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt32(&current, -1)
				return []domain.FeedItem{{ID: src.ID + "-1", SourceID: src.ID}}, nil
			},
		}

		agg := New(fetcher, 2)
		res, err := agg.LoadAll(context.Background(), sources)
		require.NoError(t, err)
		assert.Len(t, res.Items, 3)
		mu.Lock()
		defer mu.Unlock()
		assert.LessOrEqual(t, peak, int32(2))
	})
}
