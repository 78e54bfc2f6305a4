package content

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
)

// Preview is the readable form of an article, shown in the preview pane
// instead of embedding the publisher's page
type Preview struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// HTTPExtractor produces article previews by fetching the page and running
// it through trafilatura
type HTTPExtractor struct {
	client        *http.Client
	userAgent     string
	minTextLength int
}

// NewHTTPExtractor creates a preview extractor. Extractions shorter than
// minTextLength characters are rejected as failed, boilerplate-only pages.
func NewHTTPExtractor(timeout time.Duration, userAgent string, minTextLength int) *HTTPExtractor {
	return &HTTPExtractor{
		client:        &http.Client{Timeout: timeout},
		userAgent:     userAgent,
		minTextLength: minTextLength,
	}
}

// Extract retrieves the article at the given URL and returns its readable
// title and text
func (e *HTTPExtractor) Extract(ctx context.Context, urlStr string) (*Preview, error) {
	// validate URL
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid URL: %s", urlStr)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", e.userAgent)

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch URL %s: %w", urlStr, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d for URL %s", resp.StatusCode, urlStr)
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		Deduplicate:     true,
		OriginalURL:     parsedURL,
	}

	result, err := trafilatura.Extract(resp.Body, opts)
	if err != nil {
		return nil, fmt.Errorf("extract content from %s: %w", urlStr, err)
	}
	if result == nil {
		return nil, fmt.Errorf("no content extracted from %s", urlStr)
	}

	text := strings.TrimSpace(result.ContentText)
	if len(text) < e.minTextLength {
		return nil, fmt.Errorf("extracted text too short for %s: %d chars", urlStr, len(text))
	}

	return &Preview{Title: result.Metadata.Title, Text: text}, nil
}
