package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"agenda-api/internal/middleware"
	"agenda-api/internal/store"
)

type Handler struct {
	store    *store.Store
	secret   string
	tokenTTL time.Duration
}

func New(st *store.Store, secret string, tokenTTL time.Duration) *Handler {
	return &Handler{store: st, secret: secret, tokenTTL: tokenTTL}
}

// Routes assembles the router; rl throttles only the credential endpoints.
func (h *Handler) Routes(rl *middleware.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID, chimw.Logger, chimw.Recoverer)

	r.Get("/healthz", h.Healthz)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(rl))
		r.Post("/cadastro", h.Cadastro)
		r.Post("/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(h.secret))
		r.Get("/agendamentos", h.ListAgendamentos)
		r.Post("/agendamentos", h.CreateAgendamento)
		r.Get("/profissionais", h.ListProfissionais)
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
