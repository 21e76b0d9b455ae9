package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"teamdocs/internal/domain"
	"teamdocs/internal/httputil"
)

// handleError converts domain errors to plain-text HTTP responses.
// Unexpected errors are logged and answered with a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	var httpErr domain.HTTPError

	switch {
	case errors.As(err, &httpErr):
		httputil.RespondText(w, httpErr.StatusCode(), httpErr.Error())
	case errors.Is(err, domain.ErrValidation):
		httputil.RespondText(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondText(w, http.StatusNotFound, "Not Found")
	case errors.Is(err, domain.ErrUnauthorized):
		httputil.RespondText(w, http.StatusUnauthorized, "Unauthorized")
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondText(w, http.StatusForbidden, "Forbidden")
	default:
		logger.Error("request failed",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
			"request_id", httputil.GetRequestID(r.Context()),
		)
		httputil.RespondText(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
