package http

import (
	"net/http"

	"fintrack/internal/core"
)

const expensesCacheKey = "expenses"

func (s *Server) handleExpenses(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleExpensesView(w, r)
	case http.MethodPost:
		s.handleSubmitEntry(w, r, core.DirectionExpense)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) handleExpensesView(w http.ResponseWriter, r *http.Request) {
	if view, found := s.expensesCache.Get(expensesCacheKey); found {
		s.logger.DebugContext(r.Context(), "Expenses view cache hit")
		NewJSONResponse().Data("expenses", view).Write(w)
		return
	}

	view := s.composer.Expenses()
	s.expensesCache.Set(expensesCacheKey, view)
	NewJSONResponse().Data("expenses", view).Write(w)
}
