package handler

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"agenda-api/internal/auth"
	"agenda-api/internal/model"
	"agenda-api/internal/store"
)

func (h *Handler) Cadastro(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Tipo  int    `json:"tipo"`
		Nome  string `json:"nome"`
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}
	if req.Tipo != model.RoleClient && req.Tipo != model.RoleProfessional {
		writeError(w, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}
	if req.Nome == "" || req.Email == "" || req.Senha == "" {
		writeError(w, http.StatusBadRequest, "Todos os campos são obrigatórios.")
		return
	}

	hash, err := auth.HashPassword(req.Senha)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	u := &model.User{
		Role:         req.Tipo,
		Name:         req.Nome,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if err := h.store.CreateUser(r.Context(), u); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "Email já cadastrado.")
			return
		}
		log.Printf("cadastro: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Usuário cadastrado com sucesso!"})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
		Senha string `json:"senha"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusUnauthorized, "Email ou senha inválidos.")
		return
	}

	u, err := h.store.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Email ou senha inválidos.")
			return
		}
		log.Printf("login: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}
	if !auth.CheckPassword(u.PasswordHash, req.Senha) {
		writeError(w, http.StatusUnauthorized, "Email ou senha inválidos.")
		return
	}

	tok, err := auth.MakeToken(u.ID.Hex(), u.Role, h.secret, h.tokenTTL)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": tok})
}
