package feed

import (
	"github.com/umputun/newsdeck/pkg/domain"
)

// Envelope is the wrapper object returned by the JSON-wrapping proxy,
// carrying a status and message alongside the item list
type Envelope struct {
	Status  string         `json:"status"`
	Message string         `json:"message"`
	Items   []EnvelopeItem `json:"items"`
}

// EnvelopeItem is one article object inside the JSON proxy envelope
type EnvelopeItem struct {
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Content        string    `json:"content"`
	ContentSnippet string    `json:"contentSnippet"`
	Thumbnail      string    `json:"thumbnail"`
	Enclosure      Enclosure `json:"enclosure"`
	Link           string    `json:"link"`
	GUID           string    `json:"guid"`
	PubDate        string    `json:"pubDate"`
}

// Enclosure is a media attachment reference inside an envelope item
type Enclosure struct {
	Link string `json:"link"`
	Type string `json:"type"`
}

// OK reports whether the envelope carries a usable item list. The status
// field is optional, an absent status is treated as success.
func (e *Envelope) OK() bool {
	return e.Status == "" || e.Status == "ok"
}

// FromEnvelope maps all envelope items into normalized FeedItems for the
// given source. The envelope is trusted at face value, an empty item list
// maps to an empty result.
func (n *Normalizer) FromEnvelope(src domain.Source, env *Envelope) []domain.FeedItem {
	items := make([]domain.FeedItem, 0, len(env.Items))
	for _, it := range env.Items {
		rawSummary := firstNonEmpty(it.Description, it.Content, it.ContentSnippet)

		// image: explicit thumbnail first, then enclosure link
		image := firstNonEmpty(it.Thumbnail, it.Enclosure.Link)
		if image == "" {
			image = ImageFromHTML(rawSummary)
		}

		title := it.Title
		if title == "" {
			title = placeholderTitle
		}
		link := it.Link
		if link == "" {
			link = placeholderLink
		}

		items = append(items, domain.FeedItem{
			ID:          itemID(src.ID, it.GUID, it.Link, it.Title),
			SourceID:    src.ID,
			SourceName:  src.Name,
			Title:       title,
			Summary:     n.summarize(rawSummary),
			ImageURL:    image,
			Link:        link,
			PublishedAt: it.PubDate,
			Published:   parseDate(it.PubDate),
		})
	}
	return items
}
