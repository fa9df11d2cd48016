package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrdesk/internal/auth"
)

const testSecret = "test-secret"

func issueToken(t *testing.T, admin bool) string {
	t.Helper()
	token, err := auth.GenerateToken(testSecret, auth.Claims{UserID: "emp-1", Name: "Sam", Admin: admin}, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAuthPopulatesUserContext(t *testing.T) {
	var got UserContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, false))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected user in context")
	}
	if got.UserID != "emp-1" || got.Admin {
		t.Fatalf("unexpected user context: %+v", got)
	}
}

func TestAuthIgnoresBadToken(t *testing.T) {
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("expected anonymous request")
	}
}

func TestRequireUser(t *testing.T) {
	protected := RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}

	chain := Auth(testSecret)(protected)
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, false))
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAdmin(t *testing.T) {
	protected := Auth(testSecret)(RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, false))
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, true))
	rec = httptest.NewRecorder()
	protected.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
