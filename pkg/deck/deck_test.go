package deck

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/newsdeck/pkg/deck/mocks"
	"github.com/umputun/newsdeck/pkg/domain"
)

var testSources = []domain.Source{
	{ID: "bbc", Name: "BBC News", URL: "https://feeds.bbci.co.uk/news/rss.xml"},
	{ID: "wired", Name: "Wired", URL: "https://www.wired.com/feed/rss"},
}

func staticLoader(items []domain.FeedItem, warnings []domain.Warning, err error) *mocks.LoaderMock {
	return &mocks.LoaderMock{
		LoadAllFunc: func(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
			return &domain.LoadResult{Items: items, Warnings: warnings}, err
		},
	}
}

func TestDeck_Refresh(t *testing.T) {
	t.Run("loads items and selects the first", func(t *testing.T) {
		loader := staticLoader([]domain.FeedItem{
			{ID: "bbc-1", SourceID: "bbc", Title: "First"},
			{ID: "wired-1", SourceID: "wired", Title: "Second"},
		}, nil, nil)

		d := New(loader, testSources)
		require.NoError(t, d.Refresh(context.Background()))

		assert.Len(t, d.Items(), 2)
		sel, ok := d.Selected()
		require.True(t, ok)
		assert.Equal(t, "bbc-1", sel.ID)
		assert.False(t, d.LastRefreshed().IsZero())
		assert.False(t, d.AllFailed())
	})

	t.Run("selection survives when the id is still present", func(t *testing.T) {
		batch := []domain.FeedItem{
			{ID: "bbc-1", SourceID: "bbc"},
			{ID: "wired-1", SourceID: "wired"},
		}
		loader := staticLoader(batch, nil, nil)

		d := New(loader, testSources)
		require.NoError(t, d.Refresh(context.Background()))
		require.NoError(t, d.Select("wired-1"))

		require.NoError(t, d.Refresh(context.Background()))
		sel, ok := d.Selected()
		require.True(t, ok)
		assert.Equal(t, "wired-1", sel.ID)
	})

	t.Run("selection falls back to first when the id is gone", func(t *testing.T) {
		var calls int32
		loader := &mocks.LoaderMock{
			LoadAllFunc: func(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
				if atomic.AddInt32(&calls, 1) == 1 {
					return &domain.LoadResult{Items: []domain.FeedItem{
						{ID: "bbc-1", SourceID: "bbc"},
						{ID: "wired-1", SourceID: "wired"},
					}}, nil
				}
				return &domain.LoadResult{Items: []domain.FeedItem{
					{ID: "bbc-2", SourceID: "bbc"},
				}}, nil
			},
		}

		d := New(loader, testSources)
		require.NoError(t, d.Refresh(context.Background()))
		require.NoError(t, d.Select("wired-1"))

		require.NoError(t, d.Refresh(context.Background()))
		sel, ok := d.Selected()
		require.True(t, ok)
		assert.Equal(t, "bbc-2", sel.ID)
	})

	t.Run("empty batch clears selection", func(t *testing.T) {
		var calls int32
		loader := &mocks.LoaderMock{
			LoadAllFunc: func(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
				if atomic.AddInt32(&calls, 1) == 1 {
					return &domain.LoadResult{Items: []domain.FeedItem{{ID: "bbc-1", SourceID: "bbc"}}}, nil
				}
				return &domain.LoadResult{Items: []domain.FeedItem{}}, nil
			},
		}

		d := New(loader, testSources)
		require.NoError(t, d.Refresh(context.Background()))
		require.NoError(t, d.Refresh(context.Background()))

		_, ok := d.Selected()
		assert.False(t, ok)
		assert.Empty(t, d.Items())
	})

	t.Run("all sources failed keeps warnings and flags the state", func(t *testing.T) {
		warnings := []domain.Warning{
			{SourceName: "BBC News", Message: "proxy down"},
			{SourceName: "Wired", Message: "proxy down"},
		}
		loader := staticLoader([]domain.FeedItem{}, warnings, errors.New("all sources failed"))

		d := New(loader, testSources)
		err := d.Refresh(context.Background())
		require.Error(t, err)

		assert.True(t, d.AllFailed())
		assert.Len(t, d.Warnings(), 2)
		assert.Empty(t, d.Items())
	})

	t.Run("nil result is a hard failure", func(t *testing.T) {
		loader := &mocks.LoaderMock{
			LoadAllFunc: func(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
				return nil, errors.New("context deadline exceeded")
			},
		}

		d := New(loader, testSources)
		err := d.Refresh(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load sources")
	})

	t.Run("stale refresh is discarded", func(t *testing.T) {
		firstStarted := make(chan struct{})
		releaseFirst := make(chan struct{})
		var calls int32
		loader := &mocks.LoaderMock{
			LoadAllFunc: func(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error) {
				if atomic.AddInt32(&calls, 1) == 1 {
					close(firstStarted)
					<-releaseFirst
					return &domain.LoadResult{Items: []domain.FeedItem{{ID: "stale-1", SourceID: "bbc"}}}, nil
				}
				return &domain.LoadResult{Items: []domain.FeedItem{{ID: "fresh-1", SourceID: "bbc"}}}, nil
			},
		}

		d := New(loader, testSources)

		firstDone := make(chan error)
		go func() { firstDone <- d.Refresh(context.Background()) }()
		<-firstStarted

		require.NoError(t, d.Refresh(context.Background())) // supersedes the in-flight one
		close(releaseFirst)
		require.NoError(t, <-firstDone)

		items := d.Items()
		require.Len(t, items, 1)
		assert.Equal(t, "fresh-1", items[0].ID, "stale batch must not overwrite the fresh one")
	})
}

func TestDeck_Visible(t *testing.T) {
	items := []domain.FeedItem{
		{ID: "bbc-1", SourceID: "bbc", Title: "Economy shrinks", Summary: "The GDP figures disappoint"},
		{ID: "wired-1", SourceID: "wired", Title: "New gadget", Summary: "A review of the economy model"},
		{ID: "bbc-2", SourceID: "bbc", Title: "Weather update", Summary: "Rain expected"},
	}

	newLoaded := func(t *testing.T) *Deck {
		d := New(staticLoader(items, nil, nil), testSources)
		require.NoError(t, d.Refresh(context.Background()))
		return d
	}

	t.Run("everything visible by default", func(t *testing.T) {
		d := newLoaded(t)
		assert.Len(t, d.Visible(), 3)
	})

	t.Run("disabled source filtered out", func(t *testing.T) {
		d := newLoaded(t)
		require.NoError(t, d.SetSourceEnabled("bbc", false))

		visible := d.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "wired-1", visible[0].ID)

		require.NoError(t, d.SetSourceEnabled("bbc", true))
		assert.Len(t, d.Visible(), 3)
	})

	t.Run("unknown source toggle rejected", func(t *testing.T) {
		d := newLoaded(t)
		assert.Error(t, d.SetSourceEnabled("nope", false))
	})

	t.Run("query matches title and summary, case-insensitive", func(t *testing.T) {
		d := newLoaded(t)
		d.SetQuery("ECONOMY")
		assert.Equal(t, "ECONOMY", d.Query())

		visible := d.Visible()
		require.Len(t, visible, 2)
		assert.Equal(t, "bbc-1", visible[0].ID, "merged order preserved")
		assert.Equal(t, "wired-1", visible[1].ID)
	})

	t.Run("query combined with source toggle", func(t *testing.T) {
		d := newLoaded(t)
		d.SetQuery("economy")
		require.NoError(t, d.SetSourceEnabled("wired", false))

		visible := d.Visible()
		require.Len(t, visible, 1)
		assert.Equal(t, "bbc-1", visible[0].ID)
	})

	t.Run("blank query matches everything", func(t *testing.T) {
		d := newLoaded(t)
		d.SetQuery("   ")
		assert.Len(t, d.Visible(), 3)
	})

	t.Run("no matches yields empty", func(t *testing.T) {
		d := newLoaded(t)
		d.SetQuery("zebra")
		assert.Empty(t, d.Visible())
	})
}

func TestDeck_SelectAndSources(t *testing.T) {
	items := []domain.FeedItem{
		{ID: "bbc-1", SourceID: "bbc", Title: "One"},
		{ID: "wired-1", SourceID: "wired", Title: "Two"},
	}
	d := New(staticLoader(items, nil, nil), testSources)
	require.NoError(t, d.Refresh(context.Background()))

	t.Run("select known item", func(t *testing.T) {
		require.NoError(t, d.Select("wired-1"))
		sel, ok := d.Selected()
		require.True(t, ok)
		assert.Equal(t, "Two", sel.Title)
	})

	t.Run("select unknown item rejected", func(t *testing.T) {
		err := d.Select("missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")

		sel, ok := d.Selected()
		require.True(t, ok, "previous selection untouched")
		assert.Equal(t, "wired-1", sel.ID)
	})

	t.Run("sources report toggles in configured order", func(t *testing.T) {
		require.NoError(t, d.SetSourceEnabled("wired", false))
		states := d.Sources()
		require.Len(t, states, 2)
		assert.Equal(t, "bbc", states[0].ID)
		assert.True(t, states[0].Enabled)
		assert.Equal(t, "wired", states[1].ID)
		assert.False(t, states[1].Enabled)
	})
}

func TestDeck_BeforeFirstRefresh(t *testing.T) {
	d := New(staticLoader(nil, nil, nil), testSources)

	assert.Empty(t, d.Items())
	assert.Empty(t, d.Visible())
	assert.True(t, d.LastRefreshed().IsZero())
	_, ok := d.Selected()
	assert.False(t, ok)
	assert.Error(t, d.Select("anything"))
}

func TestDeck_RefreshTimestamp(t *testing.T) {
	d := New(staticLoader([]domain.FeedItem{{ID: "bbc-1", SourceID: "bbc"}}, nil, nil), testSources)

	before := time.Now()
	require.NoError(t, d.Refresh(context.Background()))
	after := time.Now()

	refreshed := d.LastRefreshed()
	assert.False(t, refreshed.Before(before))
	assert.False(t, refreshed.After(after))
}
