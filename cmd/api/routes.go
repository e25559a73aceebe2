package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"circulation/internal/account"
	"circulation/internal/catalog"
	"circulation/internal/config"
	"circulation/internal/fine"
	"circulation/internal/httpx"
	"circulation/internal/ingest"
	"circulation/internal/loan"
)

const maxRequestBytes = 1 << 20

type handlers struct {
	catalog  *catalog.HTTPHandler
	loans    *loan.HTTPHandler
	fines    *fine.HTTPHandler
	accounts *account.HTTPHandler
	importer *ingest.HTTPHandler
}

type pinger interface {
	Ping(ctx context.Context) error
}

func newRouter(h handlers, cfg config.Config, db pinger, revoked httpx.RevocationChecker, limiter *httpx.RateLimiter, logger *slog.Logger) http.Handler {
	authenticated := httpx.AuthMiddleware(cfg.JWTSecret, revoked)
	user := func(fn http.HandlerFunc) http.Handler {
		return authenticated(fn)
	}
	admin := func(fn http.HandlerFunc) http.Handler {
		return authenticated(httpx.RequireAdmin(fn))
	}

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("POST /auth/login", h.accounts.Login)
	router.HandleFunc("POST /auth/register", h.accounts.Register)
	router.Handle("POST /auth/logout", user(h.accounts.Logout))
	router.Handle("GET /me", user(h.accounts.Me))
	router.Handle("POST /me/loans", user(h.accounts.CheckoutForMe))
	router.Handle("PATCH /accounts/{id}/card", admin(h.accounts.LinkCard))

	router.Handle("GET /books", user(h.catalog.SearchBooks))
	router.Handle("GET /books/{isbn}", user(h.catalog.GetBook))
	router.Handle("POST /books/import", admin(h.importer.Import))
	router.Handle("POST /borrowers", admin(h.catalog.CreateBorrower))
	router.Handle("GET /borrowers/{card}", admin(h.catalog.GetBorrower))
	router.Handle("PATCH /borrowers/{card}", admin(h.catalog.UpdateContact))

	router.Handle("POST /loans", admin(h.loans.Checkout))
	router.Handle("GET /loans", user(h.loans.Find))
	router.Handle("GET /loans/{id}", user(h.loans.Get))
	router.Handle("POST /loans/{id}/checkin", admin(h.loans.Checkin))
	router.Handle("POST /loans/checkin", admin(h.loans.CheckinMany))

	router.Handle("POST /fines/refresh", admin(h.fines.Refresh))
	router.Handle("POST /fines/pay", admin(h.fines.Pay))
	router.Handle("GET /fines", admin(h.fines.List))
	router.Handle("GET /fines/balances", admin(h.fines.Balances))

	return httpx.Chain(router,
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(logger),
		httpx.RecoveryMiddleware(logger),
		limiter.Middleware,
		httpx.CORSMiddleware(cfg.CORSOrigins),
		httpx.SecurityHeadersMiddleware,
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	)
}
