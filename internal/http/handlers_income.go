package http

import (
	"errors"
	"net/http"

	"fintrack/internal/core"
	"fintrack/internal/entry"
	"fintrack/internal/gateway"
	"fintrack/internal/log"
)

const incomeCacheKey = "income"

func (s *Server) handleIncome(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleIncomeView(w, r)
	case http.MethodPost:
		s.handleSubmitEntry(w, r, core.DirectionIncome)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) handleIncomeView(w http.ResponseWriter, r *http.Request) {
	if view, found := s.incomeCache.Get(incomeCacheKey); found {
		s.logger.DebugContext(r.Context(), "Income view cache hit")
		NewJSONResponse().Data("income", view).Write(w)
		return
	}

	view := s.composer.Income()
	s.incomeCache.Set(incomeCacheKey, view)
	NewJSONResponse().Data("income", view).Write(w)
}

type entryRequest struct {
	Source string `json:"source"`
	Amount string `json:"amount"`
	Date   string `json:"date"`
	Icon   string `json:"icon"`
}

// handleSubmitEntry runs the draft workflow shared by the income and expense
// endpoints: validate, persist through the gateway, then append locally.
func (s *Server) handleSubmitEntry(w http.ResponseWriter, r *http.Request, dir core.Direction) {
	var req entryRequest
	if err := decodeJSON(r, &req); err != nil {
		s.logger.WarnContext(r.Context(), "Malformed entry request",
			log.FieldError, err,
			log.FieldDirection, string(dir))
		BadRequestError("invalid request body").Write(w)
		return
	}

	draft := entry.NewDraft(dir)
	draft.SetSource(sanitizeInput(req.Source))
	draft.SetAmount(sanitizeInput(req.Amount))
	draft.SetDate(sanitizeInput(req.Date))
	if icon := sanitizeInput(req.Icon); icon != "" {
		draft.SetIcon(icon)
	}

	tx, err := draft.Submit(r.Context(), s.gw, s.store)
	if err != nil {
		switch {
		case errors.Is(err, entry.ErrValidation):
			errs := draft.Errors()
			UnprocessableEntityError("invalid fields").
				FieldErrors(map[string]bool{
					"source": errs.Source,
					"amount": errs.Amount,
					"date":   errs.Date,
				}).
				Write(w)
		case errors.Is(err, gateway.ErrRejected):
			s.logger.WarnContext(r.Context(), "Entry rejected by backend",
				log.FieldError, err,
				log.FieldDirection, string(dir),
				log.FieldSource, req.Source)
			// Echo the entered fields so the client can restore the form.
			BadGatewayError(err.Error()).Data("draft", req).Write(w)
		default:
			s.logger.ErrorContext(r.Context(), "Entry submit failed",
				log.FieldError, err,
				log.FieldDirection, string(dir),
				log.FieldSource, req.Source)
			BadGatewayError("could not reach the persistence backend").Data("draft", req).Write(w)
		}
		return
	}

	s.invalidateViewCaches()
	s.logger.InfoContext(r.Context(), "Entry recorded",
		log.FieldDirection, string(dir),
		log.FieldSource, tx.Source,
		log.FieldAmount, tx.Amount)
	NewJSONResponse().
		Status(http.StatusCreated).
		Message("entry recorded").
		Data("transaction", tx).
		Write(w)
}
