package http

import (
	"net/http"

	"fintrack/internal/core"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.sessions != nil && !s.sessions.Bootstrapped() {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte("loading"))
		return
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	profile, ok := s.store.Profile()
	if !ok {
		ErrorResponse(http.StatusNotFound, "profile not loaded").Write(w)
		return
	}
	NewJSONResponse().Data("profile", profile).Write(w)
}

func (s *Server) handleSection(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}

	var req struct {
		Section string `json:"section"`
	}
	if err := decodeJSON(r, &req); err != nil {
		BadRequestError("invalid request body").Write(w)
		return
	}

	section := core.Section(sanitizeInput(req.Section))
	if !section.IsValid() {
		UnprocessableEntityError("unknown section").Write(w)
		return
	}

	s.store.SetActiveSection(section)
	NewJSONResponse().Data("section", section).Write(w)
}

func (s *Server) handleActiveView(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	NewJSONResponse().
		Data("view", s.composer.Active(parseShowAll(r))).
		Header("X-Active-Section", string(s.store.ActiveSection())).
		Write(w)
}
