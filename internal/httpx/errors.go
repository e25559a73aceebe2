package httpx

import (
	"log/slog"
	"net/http"

	"circulation/internal/apperr"
)

// StatusFor maps a ledger failure kind to an HTTP status.
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindPolicyViolation:
		return http.StatusUnprocessableEntity
	case apperr.KindConflict, apperr.KindAlreadyClosed:
		return http.StatusConflict
	case apperr.KindInvalidArgument:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err. Typed ledger failures keep their message; anything
// else is logged and reported as an internal error.
func WriteError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, err error) {
	kind := apperr.KindOf(err)
	if kind == apperr.KindUnknown {
		if logger != nil {
			logger.ErrorContext(r.Context(), "request failed",
				"method", r.Method,
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r),
				"error", err,
			)
		}
		JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}

	writeJSON(w, StatusFor(kind), ErrorResponse{
		Success: false,
		Error: ErrorResponseBody{
			Code:    kind.String(),
			Message: err.Error(),
			Reason:  apperr.ReasonOf(err),
		},
		Meta: buildMeta(r, nil),
	})
}
