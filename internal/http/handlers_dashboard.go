package http

import (
	"net/http"
)

func dashboardCacheKey(showAll bool) string {
	if showAll {
		return "dashboard:all"
	}
	return "dashboard:recent"
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}

	showAll := parseShowAll(r)
	key := dashboardCacheKey(showAll)

	if view, found := s.dashboardCache.Get(key); found {
		s.logger.DebugContext(r.Context(), "Dashboard cache hit")
		NewJSONResponse().Data("dashboard", view).Write(w)
		return
	}

	view := s.composer.Dashboard(showAll)
	s.dashboardCache.Set(key, view)
	NewJSONResponse().Data("dashboard", view).Write(w)
}
