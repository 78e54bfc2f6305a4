package feed

import (
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
)

// Ellipsis is appended to truncated summaries
const Ellipsis = "…"

// stripPolicy removes every tag and attribute, leaving text content only
var stripPolicy = bluemonday.StrictPolicy()

// StripHTML returns the plain text content of an HTML fragment, with all
// markup removed and entities decoded. Malformed input degrades to whatever
// text survives, never an error.
func StripHTML(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(stripPolicy.Sanitize(s)))
}

// Truncate shortens s to at most max runes. Short input is returned
// unchanged, longer input is cut to max-1 runes, trimmed of trailing
// whitespace and terminated with a single ellipsis rune.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return strings.TrimRight(string(runes[:max-1]), " \t\r\n") + Ellipsis
}

// ImageFromHTML returns the src of the first image element found in an HTML
// fragment, or empty string when there is none or the fragment can't be parsed.
func ImageFromHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return ""
	}
	src, _ := doc.Find("img").First().Attr("src")
	return src
}

// firstNonEmpty returns the first candidate with non-empty trimmed content
func firstNonEmpty(candidates ...string) string {
	for _, c := range candidates {
		if trimmed := strings.TrimSpace(c); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
