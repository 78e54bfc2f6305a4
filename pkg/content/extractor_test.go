package content

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPExtractor_Extract(t *testing.T) {
	article := `<!DOCTYPE html>
<html>
<head><title>Test Article Title</title></head>
<body>
<article>
<h1>Test Article Title</h1>
<p>This is the first paragraph of the article body. It carries enough real
text for the extractor to consider the page meaningful content.</p>
<p>The second paragraph continues the story with more substance, giving the
readability heuristics something to hold on to during extraction.</p>
<p>A third paragraph closes out the piece so the total extracted text is
comfortably above any reasonable minimum length threshold.</p>
</article>
</body>
</html>`

	t.Run("extracts readable text", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test-agent", r.Header.Get("User-Agent"))
			w.Header().Set("Content-Type", "text/html")
			w.Write([]byte(article))
		}))
		defer ts.Close()

		e := NewHTTPExtractor(5*time.Second, "test-agent", 100)
		preview, err := e.Extract(context.Background(), ts.URL+"/article")
		require.NoError(t, err)
		require.NotNil(t, preview)
		assert.Contains(t, preview.Text, "first paragraph of the article body")
		assert.NotContains(t, preview.Text, "<p>")
	})

	t.Run("rejects too short extraction", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`<html><body><article><p>Tiny.</p></article></body></html>`))
		}))
		defer ts.Close()

		e := NewHTTPExtractor(5*time.Second, "test-agent", 500)
		_, err := e.Extract(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too short")
	})

	t.Run("rejects non-200 response", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.NotFound(w, r)
		}))
		defer ts.Close()

		e := NewHTTPExtractor(5*time.Second, "test-agent", 0)
		_, err := e.Extract(context.Background(), ts.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 404")
	})

	t.Run("rejects invalid url", func(t *testing.T) {
		e := NewHTTPExtractor(5*time.Second, "test-agent", 0)
		_, err := e.Extract(context.Background(), "not-a-url")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid URL")
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(time.Second)
		}))
		defer ts.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		e := NewHTTPExtractor(5*time.Second, "test-agent", 0)
		_, err := e.Extract(ctx, ts.URL)
		require.Error(t, err)
		assert.True(t, strings.Contains(err.Error(), "context deadline exceeded") ||
			strings.Contains(err.Error(), "Client.Timeout"))
	})
}
