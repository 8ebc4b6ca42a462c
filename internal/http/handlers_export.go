package http

import (
	"net/http"

	"fintrack/internal/amqp"
	"fintrack/internal/core"
	"fintrack/internal/log"
)

func (s *Server) handleExportIncome(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, core.DirectionIncome)
}

func (s *Server) handleExportExpenses(w http.ResponseWriter, r *http.Request) {
	s.handleExport(w, r, core.DirectionExpense)
}

// handleExport enqueues an export request when a broker is configured,
// otherwise serializes synchronously from the current snapshot.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request, dir core.Direction) {
	if r.Method != http.MethodPost {
		MethodNotAllowedError("POST").Write(w)
		return
	}

	requestedBy := ""
	if profile, ok := s.store.Profile(); ok {
		requestedBy = profile.Email
	}

	if s.publisher != nil {
		msg := amqp.NewExportRequestMessage(dir, requestedBy)
		if err := s.publisher.PublishExportRequest(r.Context(), msg); err != nil {
			s.logger.ErrorContext(r.Context(), "Export publish failed",
				log.FieldError, err,
				log.FieldDirection, string(dir))
			InternalServerError("could not enqueue export").Write(w)
			return
		}
		s.logger.InfoContext(r.Context(), "Export enqueued",
			log.FieldDirection, string(dir),
			log.FieldOperation, log.OpExport)
		NewJSONResponse().
			Status(http.StatusAccepted).
			Message("export enqueued").
			Write(w)
		return
	}

	if s.serializer == nil {
		ServiceUnavailableError("export backend not configured").Write(w)
		return
	}

	count, err := s.serializer.Export(r.Context(), s.store.Transactions(), dir)
	if err != nil {
		s.logger.ErrorContext(r.Context(), "Export failed",
			log.FieldError, err,
			log.FieldDirection, string(dir))
		InternalServerError("export failed").Write(w)
		return
	}

	s.logger.InfoContext(r.Context(), "Export completed",
		log.FieldDirection, string(dir),
		log.FieldCount, count)
	NewJSONResponse().
		Message("export completed").
		Data("rows", count).
		Write(w)
}
