package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"agenda-api/internal/auth"
)

type ctxKey string

const (
	UserIDKey   ctxKey = "uid"
	UserRoleKey ctxKey = "tipo"
)

// Auth guards every route mounted behind it. A missing or malformed
// Authorization header is an ordinary 401, never a panic.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				unauthorized(w, "Token não fornecido.")
				return
			}

			// token from Authorization: Bearer <jwt>
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				unauthorized(w, "Token não fornecido.")
				return
			}

			claims, err := auth.ParseToken(parts[1], secret)
			if err != nil {
				unauthorized(w, "Token inválido.")
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UserRoleKey, claims.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
