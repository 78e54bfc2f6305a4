package deck

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"

	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/loader.go -pkg mocks -skip-ensure -fmt goimports . Loader

// Loader loads all configured sources into one merged result. A non-nil
// result with a non-nil error means every source failed; the warnings on
// the result describe the per-source failures.
type Loader interface {
	LoadAll(ctx context.Context, sources []domain.Source) (*domain.LoadResult, error)
}

// SourceState pairs a source with its filter toggle
type SourceState struct {
	domain.Source
	Enabled bool `json:"enabled"`
}

// Deck holds the two-pane browsing state: the merged item collection with
// per-source warnings, the search query, the per-source filter toggles and
// the current selection. All methods are safe for concurrent use.
type Deck struct {
	loader  Loader
	sources []domain.Source

	mu         sync.RWMutex
	items      []domain.FeedItem
	warnings   []domain.Warning
	selectedID string
	query      string
	enabled    map[string]bool
	generation int
	allFailed  bool
	refreshed  time.Time
}

// New creates a deck over the given immutable source list, with every
// source enabled and nothing loaded yet
func New(loader Loader, sources []domain.Source) *Deck {
	enabled := make(map[string]bool, len(sources))
	for _, src := range sources {
		enabled[src.ID] = true
	}
	return &Deck{
		loader:  loader,
		sources: sources,
		enabled: enabled,
	}
}

// Refresh replaces the item collection with a freshly loaded batch. The
// previous collection is fully discarded. The selection survives the
// refresh when the selected item's id is still present in the new batch;
// otherwise it falls back to the first item, or to nothing when the batch
// is empty. Results of a refresh that was superseded by a newer one while
// in flight are dropped rather than applied.
func (d *Deck) Refresh(ctx context.Context) error {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.mu.Unlock()

	res, err := d.loader.LoadAll(ctx, d.sources)
	if res == nil {
		return fmt.Errorf("load sources: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if gen != d.generation {
		lgr.Printf("[DEBUG] discarding stale refresh, generation %d superseded by %d", gen, d.generation)
		return nil
	}

	d.items = res.Items
	d.warnings = res.Warnings
	d.allFailed = err != nil
	d.refreshed = time.Now()

	if !d.hasItem(d.selectedID) {
		if len(d.items) > 0 {
			d.selectedID = d.items[0].ID
		} else {
			d.selectedID = ""
		}
	}

	return err
}

// Items returns the full merged collection, unfiltered
func (d *Deck) Items() []domain.FeedItem {
	d.mu.RLock()
	defer d.mu.RUnlock()
	items := make([]domain.FeedItem, len(d.items))
	copy(items, d.items)
	return items
}

// Visible returns the items passing the current source toggles and search
// query, preserving the merged sort order. The search matches title and
// summary, case-insensitively.
func (d *Deck) Visible() []domain.FeedItem {
	d.mu.RLock()
	defer d.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(d.query))
	visible := make([]domain.FeedItem, 0, len(d.items))
	for _, item := range d.items {
		if !d.enabled[item.SourceID] {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(item.Title), query) &&
			!strings.Contains(strings.ToLower(item.Summary), query) {
			continue
		}
		visible = append(visible, item)
	}
	return visible
}

// Warnings returns the per-source failures of the last refresh
func (d *Deck) Warnings() []domain.Warning {
	d.mu.RLock()
	defer d.mu.RUnlock()
	warnings := make([]domain.Warning, len(d.warnings))
	copy(warnings, d.warnings)
	return warnings
}

// AllFailed reports whether the last refresh failed for every source
func (d *Deck) AllFailed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.allFailed
}

// LastRefreshed returns the time of the last applied refresh, zero before
// the first one
func (d *Deck) LastRefreshed() time.Time {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.refreshed
}

// Select marks the item with the given id as selected
func (d *Deck) Select(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasItem(id) {
		return fmt.Errorf("item %s not found", id)
	}
	d.selectedID = id
	return nil
}

// Selected returns the currently selected item, if any
func (d *Deck) Selected() (domain.FeedItem, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, item := range d.items {
		if item.ID == d.selectedID {
			return item, true
		}
	}
	return domain.FeedItem{}, false
}

// SetQuery updates the search query filtering the visible collection
func (d *Deck) SetQuery(query string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.query = query
}

// Query returns the current search query
func (d *Deck) Query() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.query
}

// SetSourceEnabled toggles one source's visibility filter
func (d *Deck) SetSourceEnabled(id string, enabled bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.enabled[id]; !ok {
		return fmt.Errorf("source %s not found", id)
	}
	d.enabled[id] = enabled
	return nil
}

// Sources returns the configured sources with their current toggles
func (d *Deck) Sources() []SourceState {
	d.mu.RLock()
	defer d.mu.RUnlock()
	states := make([]SourceState, len(d.sources))
	for i, src := range d.sources {
		states[i] = SourceState{Source: src, Enabled: d.enabled[src.ID]}
	}
	return states
}

// hasItem checks the current collection for an id, callers must hold the lock
func (d *Deck) hasItem(id string) bool {
	if id == "" {
		return false
	}
	for _, item := range d.items {
		if item.ID == id {
			return true
		}
	}
	return false
}
