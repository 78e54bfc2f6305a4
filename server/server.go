package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/newsdeck/pkg/content"
	"github.com/umputun/newsdeck/pkg/deck"
	"github.com/umputun/newsdeck/pkg/domain"
)

//go:generate moq -out mocks/deck.go -pkg mocks -skip-ensure -fmt goimports . Deck
//go:generate moq -out mocks/extractor.go -pkg mocks -skip-ensure -fmt goimports . Extractor
//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider

// Server represents HTTP server instance
type Server struct {
	config    ConfigProvider
	deck      Deck
	extractor Extractor
	version   string
	debug     bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Deck is the browsing state driven by the handlers
type Deck interface {
	Refresh(ctx context.Context) error
	Visible() []domain.FeedItem
	Warnings() []domain.Warning
	AllFailed() bool
	LastRefreshed() time.Time
	Select(id string) error
	Selected() (domain.FeedItem, bool)
	SetQuery(query string)
	Query() string
	SetSourceEnabled(id string, enabled bool) error
	Sources() []deck.SourceState
}

// Extractor produces article previews for the preview pane. Optional, the
// preview endpoint reports unavailable when nil.
type Extractor interface {
	Extract(ctx context.Context, url string) (*content.Preview, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, d Deck, extractor Extractor, version string, debug bool) *Server {
	s := &Server{
		config:    cfg,
		deck:      d,
		extractor: extractor,
		version:   version,
		debug:     debug,
		router:    routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:         listen,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(rest.AppInfo("newsdeck", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/v1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)
		r.HandleFunc("GET /items", s.itemsHandler)
		r.HandleFunc("POST /refresh", s.refreshHandler)
		r.HandleFunc("POST /select/{id}", s.selectHandler)
		r.HandleFunc("POST /search", s.searchHandler)
		r.HandleFunc("GET /sources", s.sourcesHandler)
		r.HandleFunc("POST /sources/{id}/enable", s.enableSourceHandler)
		r.HandleFunc("POST /sources/{id}/disable", s.disableSourceHandler)
		r.HandleFunc("GET /preview", s.previewHandler)
	})
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
