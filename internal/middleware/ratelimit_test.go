package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"agenda-api/internal/middleware"
)

func TestRateLimitExhaustion(t *testing.T) {
	rl := middleware.NewRateLimiter(1, 2)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	mw := middleware.RateLimit(rl)(next)

	send := func(addr string) int {
		req := httptest.NewRequest("POST", "/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		mw.ServeHTTP(rec, req)
		return rec.Code
	}

	// burst of 2, third request must be throttled
	if code := send("10.0.0.1:1111"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := send("10.0.0.1:2222"); code != http.StatusOK {
		t.Fatalf("second request: %d", code)
	}
	if code := send("10.0.0.1:3333"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", code)
	}

	// other clients are unaffected
	if code := send("10.0.0.2:1111"); code != http.StatusOK {
		t.Fatalf("other ip throttled: %d", code)
	}
}
