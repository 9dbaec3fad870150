package handlers

import (
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// apiFunc is a handler that reports failure instead of writing it
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// wrap is the single place where handler errors become responses: the
// error is logged with the request context and the client only sees a 500
// carrying the static message.
func wrap(log *slog.Logger, message string, fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			log.Error(message,
				"error", err,
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", chimiddleware.GetReqID(r.Context()),
			)
			WriteError(w, http.StatusInternalServerError, message, log)
		}
	}
}
