package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/umputun/newsdeck/pkg/deck"
	"github.com/umputun/newsdeck/pkg/domain"
)

// statePayload is the browsing state returned by the items and refresh
// endpoints: the filtered collection plus everything the two-pane UI needs
// to render the list and the warning banner
type statePayload struct {
	Items       []domain.FeedItem  `json:"items"`
	Warnings    []domain.Warning   `json:"warnings"`
	AllFailed   bool               `json:"all_failed"`
	SelectedID  string             `json:"selected_id,omitempty"`
	Query       string             `json:"query,omitempty"`
	Sources     []deck.SourceState `json:"sources"`
	RefreshedAt time.Time          `json:"refreshed_at,omitempty"`
}

// state assembles the current browsing state payload
func (s *Server) state() statePayload {
	payload := statePayload{
		Items:     s.deck.Visible(),
		Warnings:  s.deck.Warnings(),
		AllFailed: s.deck.AllFailed(),
		Query:     s.deck.Query(),
		Sources:   s.deck.Sources(),
	}
	if selected, ok := s.deck.Selected(); ok {
		payload.SelectedID = selected.ID
	}
	if refreshed := s.deck.LastRefreshed(); !refreshed.IsZero() {
		payload.RefreshedAt = refreshed
	}
	return payload
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// itemsHandler returns the current browsing state without refetching
func (s *Server) itemsHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.state())
}

// refreshHandler reloads all sources and returns the new browsing state.
// Partial failures come back as warnings with full results; only the case
// where every source failed turns the all_failed flag on.
func (s *Server) refreshHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.deck.Refresh(r.Context()); err != nil {
		// per-source failures are already reflected in the state payload,
		// the refresh itself is not an HTTP error
		log.Printf("[WARN] refresh: %v", err)
	}
	renderJSON(w, r, http.StatusOK, s.state())
}

// selectHandler marks an item as selected
func (s *Server) selectHandler(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := s.deck.Select(id); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, s.state())
}

// searchHandler updates the search query filtering the visible collection
func (s *Server) searchHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		renderError(w, r, fmt.Errorf("invalid form data"), http.StatusBadRequest)
		return
	}
	s.deck.SetQuery(r.FormValue("q"))
	renderJSON(w, r, http.StatusOK, s.state())
}

// sourcesHandler lists the configured sources with their toggles
func (s *Server) sourcesHandler(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, r, http.StatusOK, s.deck.Sources())
}

// enableSourceHandler turns a source's visibility filter on
func (s *Server) enableSourceHandler(w http.ResponseWriter, r *http.Request) {
	s.updateSourceStatus(w, r, true)
}

// disableSourceHandler turns a source's visibility filter off
func (s *Server) disableSourceHandler(w http.ResponseWriter, r *http.Request) {
	s.updateSourceStatus(w, r, false)
}

// updateSourceStatus updates one source's filter toggle
func (s *Server) updateSourceStatus(w http.ResponseWriter, r *http.Request, enabled bool) {
	id := r.PathValue("id")
	if err := s.deck.SetSourceEnabled(id, enabled); err != nil {
		renderError(w, r, err, http.StatusNotFound)
		return
	}
	renderJSON(w, r, http.StatusOK, s.state())
}

// previewHandler returns the extracted readable preview for the selected item
func (s *Server) previewHandler(w http.ResponseWriter, r *http.Request) {
	if s.extractor == nil {
		renderError(w, r, fmt.Errorf("preview extraction disabled"), http.StatusNotImplemented)
		return
	}

	selected, ok := s.deck.Selected()
	if !ok {
		renderError(w, r, fmt.Errorf("no item selected"), http.StatusNotFound)
		return
	}

	preview, err := s.extractor.Extract(r.Context(), selected.Link)
	if err != nil {
		log.Printf("[WARN] failed to extract preview for %s: %v", selected.Link, err)
		renderError(w, r, err, http.StatusBadGateway)
		return
	}

	renderJSON(w, r, http.StatusOK, preview)
}
