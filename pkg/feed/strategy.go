package feed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/go-pkgz/repeater/v2"

	"github.com/umputun/newsdeck/pkg/domain"
)

// ErrEmptyFeed indicates a well-formed feed that carries no items. The
// orchestrator treats it like any other per-strategy failure and falls
// back to the next strategy.
var ErrEmptyFeed = errors.New("feed has no items")

//go:generate moq -out mocks/strategy.go -pkg mocks -skip-ensure -fmt goimports . Strategy

// Strategy is one proxy-specific way to retrieve and normalize a source feed
type Strategy interface {
	Name() string
	Fetch(ctx context.Context, src domain.Source) ([]domain.FeedItem, error)
}

// StrategyOpts holds the knobs shared by all proxy strategies
type StrategyOpts struct {
	Endpoint  string // proxy URL template, %s is replaced with the url-encoded feed URL
	Timeout   time.Duration
	Attempts  int // HTTP attempts per request before the strategy gives up
	UserAgent string
}

// proxyClient issues GET requests against a proxy endpoint template
type proxyClient struct {
	endpoint  string
	client    *http.Client
	userAgent string
	attempts  int
	accept    string
}

func newProxyClient(opts StrategyOpts, accept string) *proxyClient {
	timeout := opts.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}
	attempts := opts.Attempts
	if attempts < 1 {
		attempts = 1
	}
	return &proxyClient{
		endpoint: opts.Endpoint,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		userAgent: opts.UserAgent,
		attempts:  attempts,
		accept:    accept,
	}
}

// get requests the proxy for the given feed URL and returns the response
// body. With more than one configured attempt, transient failures are
// retried with backoff before the strategy reports the error.
func (p *proxyClient) get(ctx context.Context, feedURL string) ([]byte, error) {
	reqURL := fmt.Sprintf(p.endpoint, url.QueryEscape(feedURL))

	var body []byte
	retrier := repeater.NewBackoff(p.attempts, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	err := retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("User-Agent", p.userAgent)
		req.Header.Set("Accept", p.accept)
		req.Header.Set("Cache-Control", "no-cache")

		resp, err := p.client.Do(req)
		if err != nil {
			return fmt.Errorf("request proxy: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		body, err = io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return body, nil
}

// JSONProxyStrategy fetches a feed through the JSON-wrapping proxy. The
// proxy parses the feed itself and returns an envelope with pre-digested
// items, so the envelope is trusted at face value, even when empty.
type JSONProxyStrategy struct {
	client     *proxyClient
	normalizer *Normalizer
}

// NewJSONProxyStrategy creates a strategy for the JSON-wrapping proxy
func NewJSONProxyStrategy(opts StrategyOpts, normalizer *Normalizer) *JSONProxyStrategy {
	return &JSONProxyStrategy{
		client:     newProxyClient(opts, "application/json"),
		normalizer: normalizer,
	}
}

// Name identifies the strategy in logs and errors
func (s *JSONProxyStrategy) Name() string { return "json-proxy" }

// Fetch retrieves the envelope and maps its items
func (s *JSONProxyStrategy) Fetch(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
	body, err := s.client.get(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("json proxy: %w", err)
	}

	var env Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if !env.OK() {
		msg := env.Message
		if msg == "" {
			msg = env.Status
		}
		return nil, fmt.Errorf("envelope status not ok: %s", msg)
	}

	return s.normalizer.FromEnvelope(src, &env), nil
}

// XMLProxyStrategy fetches the origin feed bytes through a raw passthrough
// proxy and parses them as RSS or Atom. Unlike the JSON proxy, an empty but
// well-formed document is reported as ErrEmptyFeed so the orchestrator can
// keep falling back.
type XMLProxyStrategy struct {
	client     *proxyClient
	normalizer *Normalizer
}

// NewXMLProxyStrategy creates a strategy for the raw-XML passthrough proxy
func NewXMLProxyStrategy(opts StrategyOpts, normalizer *Normalizer) *XMLProxyStrategy {
	return &XMLProxyStrategy{
		client:     newProxyClient(opts, "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5"),
		normalizer: normalizer,
	}
}

// Name identifies the strategy in logs and errors
func (s *XMLProxyStrategy) Name() string { return "xml-proxy" }

// Fetch retrieves the raw document and parses it
func (s *XMLProxyStrategy) Fetch(ctx context.Context, src domain.Source) ([]domain.FeedItem, error) {
	body, err := s.client.get(ctx, src.URL)
	if err != nil {
		return nil, fmt.Errorf("xml proxy: %w", err)
	}

	items, err := s.normalizer.FromXML(src, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("xml proxy: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyFeed
	}
	return items, nil
}
