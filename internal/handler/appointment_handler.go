package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"agenda-api/internal/middleware"
	"agenda-api/internal/model"
	"agenda-api/internal/store"
)

const dateLayout = "2006-01-02"

func uid(ctx context.Context) primitive.ObjectID {
	id, _ := primitive.ObjectIDFromHex(ctx.Value(middleware.UserIDKey).(string))
	return id
}

// agendamentoView is an appointment with its counterpart expanded, the way
// the API always returned it: clients see the professional, professionals
// see the client.
type agendamentoView struct {
	model.Appointment
	Client       *model.User `json:"cliente,omitempty"`
	Professional *model.User `json:"profissional,omitempty"`
}

func (h *Handler) ListAgendamentos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// authoritative role comes from the record, not the token claim
	user, err := h.store.UserByID(ctx, uid(ctx))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "Token inválido.")
			return
		}
		log.Printf("agendamentos: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	var apts []model.Appointment
	if user.Role == model.RoleClient {
		apts, err = h.store.AppointmentsByClient(ctx, user.ID)
	} else {
		apts, err = h.store.AppointmentsByProfessional(ctx, user.ID)
	}
	if err != nil {
		log.Printf("agendamentos: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	ids := make([]primitive.ObjectID, 0, len(apts))
	for _, a := range apts {
		if user.Role == model.RoleClient {
			ids = append(ids, a.ProfessionalID)
		} else {
			ids = append(ids, a.ClientID)
		}
	}
	users, err := h.store.UsersByIDs(ctx, ids)
	if err != nil {
		log.Printf("agendamentos: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	out := make([]agendamentoView, 0, len(apts))
	for _, a := range apts {
		v := agendamentoView{Appointment: a}
		if user.Role == model.RoleClient {
			if u, ok := users[a.ProfessionalID]; ok {
				v.Professional = &u
			}
		} else {
			if u, ok := users[a.ClientID]; ok {
				v.Client = &u
			}
		}
		out = append(out, v)
	}

	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) CreateAgendamento(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req struct {
		ProfissionalID string `json:"profissionalId"`
		Data           string `json:"data"`
		Horario        string `json:"horario"`
		Servico        string `json:"servico"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Dados incompletos para o agendamento.")
		return
	}
	if req.ProfissionalID == "" || req.Data == "" || req.Horario == "" || req.Servico == "" {
		writeError(w, http.StatusBadRequest, "Dados incompletos para o agendamento.")
		return
	}

	date, err := time.Parse(dateLayout, req.Data)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Dados incompletos para o agendamento.")
		return
	}

	// an unparseable id cannot reference a professional
	profID, err := primitive.ObjectIDFromHex(req.ProfissionalID)
	if err != nil {
		writeError(w, http.StatusNotFound, "Profissional não encontrado.")
		return
	}
	prof, err := h.store.ProfessionalByID(ctx, profID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Profissional não encontrado.")
			return
		}
		log.Printf("agendamentos: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	a := &model.Appointment{
		ClientID:       uid(ctx),
		ProfessionalID: prof.ID,
		Date:           date,
		Time:           req.Horario,
		Service:        req.Servico,
	}
	if err := h.store.CreateAppointment(ctx, a); err != nil {
		log.Printf("agendamentos: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message":     "Agendamento criado com sucesso!",
		"agendamento": a,
	})
}

func (h *Handler) ListProfissionais(w http.ResponseWriter, r *http.Request) {
	pros, err := h.store.ListProfessionals(r.Context())
	if err != nil {
		log.Printf("profissionais: %v", err)
		writeError(w, http.StatusInternalServerError, "Erro interno.")
		return
	}

	type entry struct {
		ID   primitive.ObjectID `json:"id"`
		Nome string             `json:"nome"`
	}
	out := make([]entry, 0, len(pros))
	for _, p := range pros {
		out = append(out, entry{ID: p.ID, Nome: p.Name})
	}

	writeJSON(w, http.StatusOK, out)
}
