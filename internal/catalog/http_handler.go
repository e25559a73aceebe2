package catalog

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

// SearchBooks handles GET /books
func (h *HTTPHandler) SearchBooks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page, _ := strconv.Atoi(query.Get("page"))
	pageSize, _ := strconv.Atoi(query.Get("page_size"))
	q := BookQuery{
		Q:        query.Get("q"),
		Status:   query.Get("status"),
		Page:     page,
		PageSize: pageSize,
	}.normalized()

	books, total, err := h.service.SearchBooks(r.Context(), q)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, books, map[string]any{
		"page":        q.Page,
		"page_size":   q.PageSize,
		"total":       total,
		"total_pages": (total + q.PageSize - 1) / q.PageSize,
	})
}

// GetBook handles GET /books/{isbn}
func (h *HTTPHandler) GetBook(w http.ResponseWriter, r *http.Request) {
	book, err := h.service.BookByISBN(r.Context(), r.PathValue("isbn"))
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, book, nil)
}

// CreateBorrower handles POST /borrowers
func (h *HTTPHandler) CreateBorrower(w http.ResponseWriter, r *http.Request) {
	var req NewBorrower
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	cardID, err := h.service.CreateBorrower(r.Context(), req)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONCreated(w, r, map[string]int64{"card_id": cardID})
}

// GetBorrower handles GET /borrowers/{card}
func (h *HTTPHandler) GetBorrower(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseCardID(w, r)
	if !ok {
		return
	}
	b, err := h.service.BorrowerByCard(r.Context(), cardID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

type updateContactRequest struct {
	Address string `json:"address" validate:"required,max=500"`
	Phone   string `json:"phone" validate:"omitempty,max=32"`
}

// UpdateContact handles PATCH /borrowers/{card}
func (h *HTTPHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	cardID, ok := parseCardID(w, r)
	if !ok {
		return
	}
	var req updateContactRequest
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	if err := h.service.UpdateContact(r.Context(), cardID, req.Address, req.Phone); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONNoContent(w)
}

func parseCardID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	cardID, err := strconv.ParseInt(r.PathValue("card"), 10, 64)
	if err != nil {
		httpx.WriteError(w, r, nil, apperr.InvalidArgument("card id must be an integer"))
		return 0, false
	}
	return cardID, true
}
