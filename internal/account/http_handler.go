package account

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"circulation/internal/apperr"
	"circulation/internal/fine"
	"circulation/internal/httpx"
	"circulation/internal/loan"
	"circulation/internal/platform/crypto"
)

// LoanDesk is the part of the loan ledger used by self-service routes.
type LoanDesk interface {
	Checkout(ctx context.Context, isbn string, cardID int64) (int64, error)
	FindOpen(ctx context.Context, f loan.Filter) ([]loan.OpenLoan, error)
	Get(ctx context.Context, loanID int64) (loan.Loan, error)
}

// FineDesk is the part of the fine ledger used by self-service routes.
type FineDesk interface {
	OutstandingForBorrower(ctx context.Context, cardID int64) ([]fine.Outstanding, error)
}

type HTTPHandler struct {
	service  *Service
	loans    LoanDesk
	fines    FineDesk
	secret   string
	tokenTTL time.Duration
	logger   *slog.Logger
}

func NewHTTPHandler(service *Service, loans LoanDesk, fines FineDesk, secret string, tokenTTL time.Duration, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{
		service:  service,
		loans:    loans,
		fines:    fines,
		secret:   secret,
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

type LoginReq struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /auth/login
// @Summary Account login
// @Description Authenticate and receive a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginReq true "Login request"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /auth/login [post]
func (h *HTTPHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	a, err := h.service.Authenticate(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid username or password", nil)
			return
		}
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	token, _, err := crypto.GenerateToken(h.secret, strconv.FormatInt(a.ID, 10), a.Role(), h.tokenTTL)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	httpx.JSONSuccess(w, r, map[string]any{
		"access_token": token,
		"token_type":   "Bearer",
		"expires_in":   int(h.tokenTTL.Seconds()),
		"account":      a,
	}, nil)
}

type RegisterReq struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=4"`
	CardID   *int64 `json:"card_id" validate:"omitempty,gt=0"`
}

// Register handles POST /auth/register
// @Summary Register account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterReq true "Registration request"
// @Success 201 {object} httpx.SuccessResponse
// @Failure 409 {object} httpx.ErrorResponse
// @Router /auth/register [post]
func (h *HTTPHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	a, err := h.service.Register(r.Context(), req.Username, req.Password, req.CardID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONCreated(w, r, a)
}

// Logout handles POST /auth/logout. The presented token stays revoked until
// it would have expired.
func (h *HTTPHandler) Logout(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}
	token, _ := httpx.BearerToken(r)
	claims, err := crypto.ParseToken(h.secret, token)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return
	}

	expiresAt := time.Now().Add(h.tokenTTL)
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	if err := h.service.Logout(r.Context(), id, claims.ID, expiresAt); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONNoContent(w)
}

type meResponse struct {
	Account  Account            `json:"account"`
	Loans    []loan.OpenLoan    `json:"loans"`
	Fines    []fine.Outstanding `json:"fines"`
	FinesDue decimal.Decimal    `json:"fines_due"`
}

// Me handles GET /me
func (h *HTTPHandler) Me(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}
	ctx := r.Context()

	a, err := h.service.Get(ctx, id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}

	resp := meResponse{Account: a, Loans: []loan.OpenLoan{}, Fines: []fine.Outstanding{}, FinesDue: decimal.Zero}
	if a.CardID != nil {
		if resp.Loans, err = h.loans.FindOpen(ctx, loan.Filter{CardID: *a.CardID}); err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		if resp.Fines, err = h.fines.OutstandingForBorrower(ctx, *a.CardID); err != nil {
			httpx.WriteError(w, r, h.logger, err)
			return
		}
		for _, f := range resp.Fines {
			resp.FinesDue = resp.FinesDue.Add(f.Amount)
		}
	}
	httpx.JSONSuccess(w, r, resp, nil)
}

type selfCheckoutReq struct {
	ISBN string `json:"isbn" validate:"required,isbn"`
}

// CheckoutForMe handles POST /me/loans
func (h *HTTPHandler) CheckoutForMe(w http.ResponseWriter, r *http.Request) {
	id, ok := h.accountID(w, r)
	if !ok {
		return
	}
	var req selfCheckoutReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}

	cardID, err := h.service.ResolveBorrower(r.Context(), id)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	loanID, err := h.loans.Checkout(r.Context(), req.ISBN, cardID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	l, err := h.loans.Get(r.Context(), loanID)
	if err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONCreated(w, r, l)
}

type linkReq struct {
	CardID int64 `json:"card_id" validate:"required,gt=0"`
}

// LinkCard handles PATCH /accounts/{id}/card
func (h *HTTPHandler) LinkCard(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		httpx.WriteError(w, r, h.logger, apperr.InvalidArgument("account id must be an integer"))
		return
	}
	var req linkReq
	if !httpx.DecodeJSON(w, r, &req) {
		return
	}
	if err := h.service.LinkBorrower(r.Context(), id, req.CardID); err != nil {
		httpx.WriteError(w, r, h.logger, err)
		return
	}
	httpx.JSONNoContent(w)
}

func (h *HTTPHandler) accountID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(httpx.AccountIDFrom(r), 10, 64)
	if err != nil {
		httpx.JSONError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "Unauthorized", nil)
		return 0, false
	}
	return id, true
}
