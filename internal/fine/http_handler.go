package fine

import (
	"log/slog"
	"net/http"
	"strconv"

	"circulation/internal/apperr"
	"circulation/internal/httpx"
)

type HTTPHandler struct {
	service *Service
	logger  *slog.Logger
}

func NewHTTPHandler(service *Service, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// Refresh handles POST /fines/refresh[?loan_id=]
func (h *HTTPHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("loan_id")
	if raw == "" {
		n, err := h.service.RefreshAll(r.Context())
		if err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		httpx.JSONSuccess(w, r, map[string]int{"refreshed": n}, nil)
		return
	}

	loanID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		httpx.WriteError(w, r, h.logger, apperr.InvalidArgument("loan_id must be an integer"))
		return
	}
	amount, err := h.service.Refresh(r.Context(), loanID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, map[string]any{"loan_id": loanID, "amount": amount.StringFixed(2)}, nil)
}

type payRequest struct {
	CardID int64 `json:"card_id" validate:"required,gt=0"`
}

// Pay handles POST /fines/pay
func (h *HTTPHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	st, err := h.service.Pay(r.Context(), req.CardID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, st, nil)
}

// List handles GET /fines[?card_id=]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		rows []Outstanding
		err  error
	)
	if raw := r.URL.Query().Get("card_id"); raw != "" {
		cardID, perr := strconv.ParseInt(raw, 10, 64)
		if perr != nil {
			httpx.WriteError(w, r, h.logger, apperr.InvalidArgument("card_id must be an integer"))
			return
		}
		rows, err = h.service.OutstandingForBorrower(r.Context(), cardID)
	} else {
		rows, err = h.service.ListOutstanding(r.Context())
	}
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, rows, map[string]any{"count": len(rows)})
}

// Balances handles GET /fines/balances
func (h *HTTPHandler) Balances(w http.ResponseWriter, r *http.Request) {
	rows, err := h.service.BalancesByBorrower(r.Context())
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, rows, nil)
}
