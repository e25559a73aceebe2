package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circulation/internal/platform/crypto"
)

const testSecret = "test-secret"

func TestAuthMiddleware(t *testing.T) {
	var gotID, gotRole string
	handler := AuthMiddleware(testSecret, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, gotRole = AccountIDFrom(r), RoleFrom(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("missing header", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := crypto.GenerateToken("other", "1", crypto.RoleUser, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		token, _, err := crypto.GenerateToken(testSecret, "42", crypto.RoleAdmin, time.Hour)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "42", gotID)
		assert.Equal(t, crypto.RoleAdmin, gotRole)
	})
}

type revokedSet map[string]bool

func (s revokedSet) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s[jti], nil
}

func TestAuthMiddleware_RevokedToken(t *testing.T) {
	token, jti, err := crypto.GenerateToken(testSecret, "42", crypto.RoleUser, time.Hour)
	require.NoError(t, err)
	other, _, err := crypto.GenerateToken(testSecret, "42", crypto.RoleUser, time.Hour)
	require.NoError(t, err)

	handler := AuthMiddleware(testSecret, revokedSet{jti: true})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+other)
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(okHandler())

	req := httptest.NewRequest(http.MethodPost, "/fines/refresh", nil)
	req = req.WithContext(ContextWithAccount(req.Context(), "7", crypto.RoleUser))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = req.WithContext(ContextWithAccount(req.Context(), "1", crypto.RoleAdmin))
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
