package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"circulation/internal/account"
	"circulation/internal/catalog"
	"circulation/internal/config"
	"circulation/internal/fine"
	"circulation/internal/httpx"
	"circulation/internal/ingest"
	"circulation/internal/loan"
	"circulation/internal/platform/crypto"
	"circulation/internal/platform/logging"
	"circulation/internal/testutil"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

// newTestRouter wires real handlers. Only the catalog service is backed by a
// mock; the other services are never reached by these requests.
func newTestRouter(t *testing.T, db pinger) (http.Handler, *catalog.MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := catalog.NewMockRepository(ctrl)

	logger := logging.Discard()
	cfg := config.Config{
		JWTSecret:      testutil.TestSecret,
		RateLimitRPS:   1000,
		RateLimitBurst: 1000,
	}
	h := handlers{
		catalog:  catalog.NewHTTPHandler(catalog.NewService(repo), logger),
		loans:    loan.NewHTTPHandler(nil, logger),
		fines:    fine.NewHTTPHandler(nil, logger),
		accounts: account.NewHTTPHandler(nil, nil, nil, cfg.JWTSecret, 0, logger),
		importer: ingest.NewHTTPHandler(nil, logger),
	}
	limiter := httpx.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, false)
	return newRouter(h, cfg, db, nil, limiter, logger), repo
}

func TestRouter_Health(t *testing.T) {
	router, _ := newTestRouter(t, stubPinger{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-Id"))

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ReadyzReportsDatabase(t *testing.T) {
	router, _ := newTestRouter(t, stubPinger{err: errors.New("connection refused")})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestRouter_Guards(t *testing.T) {
	router, _ := newTestRouter(t, stubPinger{})
	userToken := testutil.GenerateTestToken(testutil.TestSecret, "7", crypto.RoleUser)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"books need a token", http.MethodGet, "/books", "", http.StatusUnauthorized},
		{"logout needs a token", http.MethodPost, "/auth/logout", "", http.StatusUnauthorized},
		{"me needs a token", http.MethodGet, "/me", "", http.StatusUnauthorized},
		{"expired token", http.MethodGet, "/loans", testutil.GenerateExpiredToken(testutil.TestSecret, "7", crypto.RoleUser), http.StatusUnauthorized},
		{"checkout is admin only", http.MethodPost, "/loans", userToken, http.StatusForbidden},
		{"checkin is admin only", http.MethodPost, "/loans/1/checkin", userToken, http.StatusForbidden},
		{"batch checkin is admin only", http.MethodPost, "/loans/checkin", userToken, http.StatusForbidden},
		{"catalog import is admin only", http.MethodPost, "/books/import", userToken, http.StatusForbidden},
		{"borrowers are admin only", http.MethodPost, "/borrowers", userToken, http.StatusForbidden},
		{"fines are admin only", http.MethodGet, "/fines", userToken, http.StatusForbidden},
		{"fine payment is admin only", http.MethodPost, "/fines/pay", userToken, http.StatusForbidden},
		{"card linking is admin only", http.MethodPatch, "/accounts/1/card", userToken, http.StatusForbidden},
		{"unknown method", http.MethodDelete, "/loans", userToken, http.StatusMethodNotAllowed},
		{"unknown path", http.MethodGet, "/v1/books", userToken, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, testutil.NewRequestWithAuth(tt.method, tt.path, nil, tt.token))
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestRouter_UserReachesCatalog(t *testing.T) {
	router, repo := newTestRouter(t, stubPinger{})
	repo.EXPECT().SearchBooks(gomock.Any(), gomock.Any()).
		Return([]catalog.Book{{ISBN: "0451524934", Title: "1984", Availability: catalog.AvailabilityIn}}, 1, nil)

	token := testutil.GenerateTestToken(testutil.TestSecret, "7", crypto.RoleUser)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, testutil.NewRequestWithAuth(http.MethodGet, "/books?q=1984", nil, token))

	resp := testutil.RecordHTTPResponse(w)
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "nosniff", resp.Header.Get("X-Content-Type-Options"))
}
