package loan

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

type CheckoutRequest struct {
	ISBN   string `json:"isbn" validate:"required,isbn"`
	CardID int64  `json:"card_id" validate:"required,gt=0"`
}

// Checkout handles POST /loans
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	id, err := h.service.Checkout(r.Context(), req.ISBN, req.CardID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	h.writeCreated(w, r, id)
}

// writeCreated responds with the stored loan, falling back to its id.
func (h *HTTPHandler) writeCreated(w http.ResponseWriter, r *http.Request, id int64) {
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.WarnContext(r.Context(), "reload created loan", "loan_id", id, "error", err)
		httpx.JSONCreated(w, r, map[string]int64{"loan_id": id})
		return
	}
	httpx.JSONCreated(w, r, l)
}

// Find handles GET /loans?isbn=&card_id=&name=
func (h *HTTPHandler) Find(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := Filter{ISBN: q.Get("isbn"), Name: q.Get("name")}
	if raw := q.Get("card_id"); raw != "" {
		cardID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			httpx.WriteError(w, r, h.logger, apperr.InvalidArgument("card_id must be an integer"))
			return
		}
		f.CardID = cardID
	}

	loans, err := h.service.FindOpen(r.Context(), f)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, loans, map[string]any{"count": len(loans)})
}

// Get handles GET /loans/{id}
func (h *HTTPHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.loanID(w, r)
	if !ok {
		return
	}
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}

// Checkin handles POST /loans/{id}/checkin
func (h *HTTPHandler) Checkin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.loanID(w, r)
	if !ok {
		return
	}
	if err := h.service.Checkin(r.Context(), id); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	l, err := h.service.Get(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, l, nil)
}

type checkinManyRequest struct {
	LoanIDs []int64 `json:"loan_ids" validate:"required,min=1,dive,gt=0"`
}

// CheckinMany handles POST /loans/checkin. The response always lists every
// requested id; meta.complete is false when the batch stopped early.
func (h *HTTPHandler) CheckinMany(w http.ResponseWriter, r *http.Request) {
	var req checkinManyRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	res, err := h.service.CheckinMany(r.Context(), req.LoanIDs)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	if ferr := res.Err(); ferr != nil && apperr.KindOf(ferr) == apperr.KindUnknown {
		h.logger.ErrorContext(r.Context(), "batch checkin failed", "error", ferr)
	}
	httpx.JSONSuccess(w, r, res, map[string]any{
		"checked_in": res.CheckedIn(),
		"complete":   res.Err() == nil,
	})
}

func (h *HTTPHandler) loanID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, r, h.logger, apperr.InvalidArgument("loan id must be an integer"))
		return 0, false
	}
	return id, true
}
