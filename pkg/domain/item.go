package domain

import "time"

// Source is one configured publisher feed. The source list is loaded once
// at startup and never mutated afterwards.
type Source struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// FeedItem is a normalized article record, the common shape produced by
// every parser regardless of the original feed format.
type FeedItem struct {
	ID          string    `json:"id"`
	SourceID    string    `json:"source_id"`
	SourceName  string    `json:"source_name"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	ImageURL    string    `json:"image_url,omitempty"`
	Link        string    `json:"link"`
	PublishedAt string    `json:"published_at"`        // raw date string as given by the feed
	Published   time.Time `json:"published,omitempty"` // best-effort parsed form, zero when unparseable
}

// Warning reports a non-fatal per-source fetch failure
type Warning struct {
	SourceName string `json:"source_name"`
	Message    string `json:"message"`
}

// LoadResult is the outcome of loading all configured sources: successfully
// fetched items merged together plus one warning per failed source
type LoadResult struct {
	Items    []FeedItem `json:"items"`
	Warnings []Warning  `json:"warnings"`
}
