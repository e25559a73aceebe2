package httpx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestCORSMiddleware_AllowedOrigin(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:3000", "http://localhost:5173"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Errorf("Expected CORS header for allowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
	if w.Header().Get("Access-Control-Allow-Credentials") != "true" {
		t.Errorf("Expected credentials header, got %s", w.Header().Get("Access-Control-Allow-Credentials"))
	}
}

func TestCORSMiddleware_DisallowedOrigin(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://evil.com")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Errorf("Expected no CORS header for disallowed origin, got %s", w.Header().Get("Access-Control-Allow-Origin"))
	}
}

func TestCORSMiddleware_Wildcard(t *testing.T) {
	handler := CORSMiddleware([]string{"*"})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.Header.Set("Origin", "http://anything.test")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://anything.test" {
		t.Errorf("Expected origin echoed for wildcard, got %s", got)
	}
}

func TestCORSMiddleware_OPTIONSRequest(t *testing.T) {
	handler := CORSMiddleware([]string{"http://localhost:3000"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/loans", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("Expected 204 for OPTIONS request, got %d", w.Code)
	}
	methods := w.Header().Get("Access-Control-Allow-Methods")
	if !strings.Contains(methods, "POST") || !strings.Contains(methods, "PATCH") {
		t.Errorf("Expected methods header to include POST and PATCH, got %s", methods)
	}
	if !strings.Contains(w.Header().Get("Access-Control-Allow-Headers"), "Authorization") {
		t.Error("Expected Authorization in allowed headers")
	}
}

func TestSecurityHeadersMiddleware_HeadersSet(t *testing.T) {
	handler := SecurityHeadersMiddleware(okHandler())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	expected := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Content-Security-Policy": "default-src 'none'",
		"Cache-Control":           "no-store",
	}
	for header, want := range expected {
		if got := w.Header().Get(header); got != want {
			t.Errorf("Expected %s header to be %s, got %s", header, want, got)
		}
	}
}

func TestRequestSizeLimitMiddleware(t *testing.T) {
	tests := []struct {
		name     string
		limit    int64
		bodySize int
		want     int
	}{
		{"under limit", 1024, 512, http.StatusOK},
		{"at limit", 1024, 1024, http.StatusOK},
		{"over limit", 1024, 2048, http.StatusRequestEntityTooLarge},
		{"small limit", 100, 150, http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := RequestSizeLimitMiddleware(tt.limit)(okHandler())
			req := httptest.NewRequest(http.MethodPost, "/loans", bytes.NewBuffer(make([]byte, tt.bodySize)))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			if w.Code != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, w.Code)
			}
		})
	}
}

func TestRequestIDMiddleware(t *testing.T) {
	var seen string
	handler := RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	t.Run("generates id", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		if seen == "" {
			t.Fatal("Expected generated request id in context")
		}
		if w.Header().Get("X-Request-Id") != seen {
			t.Errorf("Expected response header %q, got %q", seen, w.Header().Get("X-Request-Id"))
		}
	})

	t.Run("propagates incoming id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "abc-123")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		if seen != "abc-123" {
			t.Errorf("Expected abc-123, got %q", seen)
		}
	})
	t.Run("replaces malformed id", func(t *testing.T) {
		for _, bad := range []string{"abc 123\nlevel=ERROR", strings.Repeat("a", 65)} {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("X-Request-Id", bad)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			if _, err := uuid.Parse(seen); err != nil {
				t.Errorf("Expected a generated UUID for %q, got %q", bad, seen)
			}
			if w.Header().Get("X-Request-Id") != seen {
				t.Errorf("Expected response header %q, got %q", seen, w.Header().Get("X-Request-Id"))
			}
		}
	})
}

func TestRecoveryMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := Chain(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { panic("boom") }),
		AccessLogMiddleware(logger),
		RecoveryMiddleware(logger),
	)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("Expected 500 after panic, got %d", w.Code)
	}
}

func TestChain_Order(t *testing.T) {
	var order []string
	mw := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	Chain(okHandler(), mw("a"), mw("b"), mw("c")).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	if strings.Join(order, ",") != "a,b,c" {
		t.Errorf("Expected a,b,c, got %v", order)
	}
}

func rateLimitedRequest(h http.Handler, remoteAddr, forwardedFor string) int {
	req := httptest.NewRequest(http.MethodGet, "/books", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_BurstThenLimited(t *testing.T) {
	handler := NewRateLimiter(1, 2, false).Middleware(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		// Source ports differ; the client is still the same host.
		codes = append(codes, rateLimitedRequest(handler, fmt.Sprintf("10.0.0.1:%d", 1234+i), ""))
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Errorf("Expected burst of 2 to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Errorf("Expected third request to be limited, got %d", codes[2])
	}
}

func TestRateLimiter_IgnoresForwardedForByDefault(t *testing.T) {
	handler := NewRateLimiter(1, 1, false).Middleware(okHandler())

	passed := 0
	for i := 0; i < 20; i++ {
		if rateLimitedRequest(handler, "10.0.0.1:1234", fmt.Sprintf("203.0.113.%d", i)) == http.StatusOK {
			passed++
		}
	}
	if passed != 1 {
		t.Errorf("Expected rotating X-Forwarded-For to share one bucket, %d of 20 passed", passed)
	}
}

func TestRateLimiter_TrustedProxyUsesFirstForwardedAddress(t *testing.T) {
	handler := NewRateLimiter(1, 1, true).Middleware(okHandler())

	if code := rateLimitedRequest(handler, "10.0.0.1:1234", "203.0.113.7, 10.0.0.1"); code != http.StatusOK {
		t.Fatalf("Expected first client to pass, got %d", code)
	}
	if code := rateLimitedRequest(handler, "10.0.0.1:1234", "203.0.113.7"); code != http.StatusTooManyRequests {
		t.Errorf("Expected same forwarded client to be limited, got %d", code)
	}
	if code := rateLimitedRequest(handler, "10.0.0.1:1234", "203.0.113.8"); code != http.StatusOK {
		t.Errorf("Expected another forwarded client to pass, got %d", code)
	}
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	handler := rl.Middleware(okHandler())

	rateLimitedRequest(handler, "10.0.0.1:1", "")
	now = now.Add(clientIdleTTL / 2)
	rateLimitedRequest(handler, "10.0.0.2:1", "")

	now = now.Add(clientIdleTTL/2 + time.Second)
	rl.evictIdle()

	if n := rl.clientCount(); n != 1 {
		t.Errorf("Expected only the recent client to remain, got %d", n)
	}
}

func TestRateLimiter_RunStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(1, 1, false)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- rl.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Expected nil error, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
