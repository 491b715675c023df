package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agenda-api/internal/auth"
	"agenda-api/internal/middleware"
	"agenda-api/internal/model"
)

const secret = "test-secret"

func callAuth(t *testing.T, header string, next http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("GET", "/agendamentos", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(secret)(next).ServeHTTP(rec, req)
	return rec
}

func rejected(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("body is not json: %v", err)
	}
	if body["error"] == "" {
		t.Error("missing error field")
	}
}

// missing credentials must never reach the handler, let alone crash it
func TestAuthMissingHeader(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { called = true })

	rec := callAuth(t, "", next)
	rejected(t, rec)
	if called {
		t.Error("handler ran without credentials")
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	for _, header := range []string{"Bearer", "just-a-token", "Basic abc123"} {
		t.Run(header, func(t *testing.T) {
			rec := callAuth(t, header, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler ran with malformed header")
			}))
			rejected(t, rec)
		})
	}
}

func TestAuthInvalidToken(t *testing.T) {
	rec := callAuth(t, "Bearer not.a.token", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran with invalid token")
	}))
	rejected(t, rec)
}

func TestAuthWrongSecret(t *testing.T) {
	tok, _ := auth.MakeToken("uid", model.RoleClient, "other-secret", 15*time.Minute)
	rec := callAuth(t, "Bearer "+tok, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler ran with forged token")
	}))
	rejected(t, rec)
}

func TestAuthValidToken(t *testing.T) {
	tok, err := auth.MakeToken("user-42", model.RoleProfessional, secret, 15*time.Minute)
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	var gotID string
	var gotRole int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Context().Value(middleware.UserIDKey).(string)
		gotRole = r.Context().Value(middleware.UserRoleKey).(int)
	})

	rec := callAuth(t, "Bearer "+tok, next)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if gotID != "user-42" {
		t.Errorf("uid in context: %s", gotID)
	}
	if gotRole != model.RoleProfessional {
		t.Errorf("role in context: %d", gotRole)
	}
}
