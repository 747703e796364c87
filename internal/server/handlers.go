package server

import (
	"bytes"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/ghprofile/pkg/lookup"
	"github.com/matzehuels/ghprofile/pkg/profile"
)

// handleIndex renders the search page. With a username query parameter the
// lookup runs first and the page shows its outcome.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	var state profile.ViewState
	if q := r.URL.Query(); q.Has("username") {
		var err error
		state, _, err = lookup.Resolve(r.Context(), s.runner, q.Get("username"))
		if err != nil {
			s.logger.Debug("lookup failed", "query", state.Query, "error", err)
		}
	}

	var buf bytes.Buffer
	if err := profile.Render(&buf, state); err != nil {
		s.logger.Error("render page", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleUser(w http.ResponseWriter, r *http.Request) {
	res, err := s.runner.Execute(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		s.logger.Debug("lookup failed", "username", chi.URLParam(r, "username"), "error", err)
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, res.Profile)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
