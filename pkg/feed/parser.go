package feed

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/umputun/newsdeck/pkg/domain"
)

// FromXML parses a raw RSS or Atom document and maps its entries into
// normalized FeedItems. Format detection (item vs entry nodes) and the Atom
// rel="alternate" link preference are handled by gofeed. A malformed
// document is a hard parse failure; a well-formed document with no items
// yields an empty result, which the orchestrator treats as a fallback
// condition rather than an error.
func (n *Normalizer) FromXML(src domain.Source, body io.Reader) ([]domain.FeedItem, error) {
	parser := gofeed.NewParser()
	parsed, err := parser.Parse(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	items := make([]domain.FeedItem, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		// summary candidates in priority order: description, content
		rawSummary := firstNonEmpty(it.Description, it.Content)

		title := it.Title
		if title == "" {
			title = placeholderTitle
		}
		link := it.Link
		if link == "" {
			link = placeholderLink
		}

		// keep the raw date string, prefer published over updated
		rawDate := firstNonEmpty(it.Published, it.Updated)
		var published time.Time
		if it.PublishedParsed != nil {
			published = *it.PublishedParsed
		} else if it.UpdatedParsed != nil {
			published = *it.UpdatedParsed
		}

		items = append(items, domain.FeedItem{
			ID:          itemID(src.ID, it.GUID, it.Link, it.Title),
			SourceID:    src.ID,
			SourceName:  src.Name,
			Title:       title,
			Summary:     n.summarize(rawSummary),
			ImageURL:    xmlImage(it, rawSummary),
			Link:        link,
			PublishedAt: rawDate,
			Published:   published,
		})
	}

	return items, nil
}

// xmlImage resolves an item image via the priority chain: media-namespaced
// content and thumbnail attributes, then enclosures, then the item image,
// then the first <img> embedded in the raw summary HTML
func xmlImage(it *gofeed.Item, rawSummary string) string {
	if media, ok := it.Extensions["media"]; ok {
		for _, name := range []string{"content", "thumbnail"} {
			for _, e := range media[name] {
				if u := e.Attrs["url"]; u != "" {
					return u
				}
			}
		}
	}

	for _, enc := range it.Enclosures {
		if enc == nil || enc.URL == "" {
			continue
		}
		if enc.Type == "" || strings.HasPrefix(enc.Type, "image/") {
			return enc.URL
		}
	}

	if it.Image != nil && it.Image.URL != "" {
		return it.Image.URL
	}

	return ImageFromHTML(rawSummary)
}
