package feed

import (
	"time"
)

// placeholders for fields a feed may leave out entirely
const (
	placeholderTitle = "Untitled"
	placeholderLink  = "#"
)

// Normalizer converts raw feed entries of any supported format into the
// common FeedItem shape. The zero value is usable and applies the default
// summary length.
type Normalizer struct {
	SummaryLength int
}

// DefaultSummaryLength bounds the display summary when no length is configured
const DefaultSummaryLength = 160

// summarize strips markup from raw HTML and truncates to the display length
func (n *Normalizer) summarize(rawHTML string) string {
	maxLen := n.SummaryLength
	if maxLen <= 0 {
		maxLen = DefaultSummaryLength
	}
	return Truncate(StripHTML(rawHTML), maxLen)
}

// itemID derives a stable identity from the best unique token the feed
// offers: guid, else link, else title. Deterministic per source+item so
// unchanged items keep their id across refreshes. Best effort, not a hash.
func itemID(sourceID, guid, link, title string) string {
	return sourceID + "-" + firstNonEmpty(guid, link, title)
}

// dateLayouts covers the date formats the configured publishers and proxies
// are known to emit
var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	time.RFC3339,
	time.RFC822Z,
	time.RFC822,
	"2006-01-02 15:04:05", // rss2json normalized form
	"2006-01-02T15:04:05",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"Mon, 2 Jan 2006 15:04:05 MST",
}

// parseDate parses a feed date string on a best-effort basis, returning the
// zero time when no known layout matches. Invalid dates are tolerated; they
// sort after everything else.
func parseDate(s string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
