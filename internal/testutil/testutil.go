package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"circulation/internal/platform/crypto"

	"github.com/golang-jwt/jwt/v5"
)

const TestSecret = "test-secret"

// GenerateTestToken generates a JWT token for testing
func GenerateTestToken(secret, accountID, role string) string {
	token, _, _ := crypto.GenerateToken(secret, accountID, role, time.Hour)
	return token
}

// GenerateExpiredToken generates an expired JWT token for testing
func GenerateExpiredToken(secret, accountID, role string) string {
	c := crypto.Claims{
		Sub:  accountID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	token, _ := t.SignedString([]byte(secret))
	return token
}

// NewRequest creates a new HTTP request for testing
func NewRequest(method, path string, body any) *http.Request {
	if body == nil {
		return httptest.NewRequest(method, path, nil)
	}
	bodyBytes, _ := json.Marshal(body)
	r := httptest.NewRequest(method, path, bytes.NewReader(bodyBytes))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// NewRequestWithAuth creates a new HTTP request with JWT auth for testing
func NewRequestWithAuth(method, path string, body any, token string) *http.Request {
	r := NewRequest(method, path, body)
	if token != "" {
		r.Header.Set("Authorization", "Bearer "+token)
	}
	return r
}

// RecordResponse is a decoded HTTP response envelope.
type RecordResponse struct {
	Code   int
	Header http.Header
	Body   map[string]any
}

// RecordHTTPResponse decodes the recorded response body as a JSON object.
func RecordHTTPResponse(w *httptest.ResponseRecorder) RecordResponse {
	result := w.Result()
	defer result.Body.Close()

	bodyBytes, _ := io.ReadAll(result.Body)

	var bodyMap map[string]any
	if len(bodyBytes) > 0 {
		_ = json.Unmarshal(bodyBytes, &bodyMap)
	}

	return RecordResponse{
		Code:   result.StatusCode,
		Header: result.Header,
		Body:   bodyMap,
	}
}

// ErrorCode returns error.code from an error envelope.
func (r RecordResponse) ErrorCode() string {
	e, _ := r.Body["error"].(map[string]any)
	code, _ := e["code"].(string)
	return code
}

// ErrorReason returns error.reason from an error envelope.
func (r RecordResponse) ErrorReason() string {
	e, _ := r.Body["error"].(map[string]any)
	reason, _ := e["reason"].(string)
	return reason
}

// Data returns the data member of a success envelope.
func (r RecordResponse) Data() map[string]any {
	d, _ := r.Body["data"].(map[string]any)
	return d
}

// Tx is an in-memory transactor for service tests. It runs fn directly and
// counts how many transactions were opened.
type Tx struct {
	Opened int
}

func (t *Tx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Opened++
	return fn(ctx)
}

// FixedClock returns a clock stopped at the given date (YYYY-MM-DD, noon UTC).
func FixedClock(date string) func() time.Time {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	at := d.Add(12 * time.Hour)
	return func() time.Time { return at }
}
