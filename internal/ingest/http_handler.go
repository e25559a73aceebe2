package ingest

import (
	"log/slog"
	"net/http"

	"circulation/internal/apperr"
	"circulation/internal/httpx"
)

type HTTPHandler struct {
	svc    *Service
	logger *slog.Logger
}

func NewHTTPHandler(svc *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{svc: svc, logger: logger}
}

type importReq struct {
	ISBNs []string `json:"isbns" validate:"required,min=1,max=500,dive,isbn"`
}

// Import handles POST /books/import
// @Summary Import books from Open Library
// @Description Add books to the catalog by ISBN
// @Tags catalog
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 502 {object} httpx.ErrorResponse
// @Router /books/import [post]
func (h *HTTPHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	report, err := h.svc.Import(r.Context(), req.ISBNs)
	if err != nil {
		if apperr.KindOf(err) != apperr.KindUnknown {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		h.logger.ErrorContext(r.Context(), "catalog import failed", "error", err)
		httpx.JSONError(w, r, http.StatusBadGateway, "IMPORT_FAILED", "Catalog source unavailable", nil)
		return
	}

	httpx.JSONSuccess(w, r, report, map[string]any{
		"imported": len(report.Imported),
		"existing": len(report.Existing),
		"missing":  len(report.Missing),
	})
}
