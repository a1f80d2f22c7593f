// Package server exposes the day-session HTTP API.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"harulog/internal/server/store"
)

// SessionStore is the persistence surface the handlers need.
type SessionStore interface {
	ListByDate(ctx context.Context, date string) ([]store.Record, error)
	Create(ctx context.Context, r store.Record) (store.Record, error)
	UpdateByID(ctx context.Context, id string, upd store.Update) (store.Record, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	ReplaceDay(ctx context.Context, date string, records []store.Record) ([]store.Record, error)
}

type Handler struct {
	store SessionStore
}

func NewHandler(s SessionStore) *Handler {
	return &Handler{store: s}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/api/day-sessions/{date}", h.ListDay)
	r.Post("/api/day-sessions", h.Create)
	r.Put("/api/day-sessions/{id}", h.Update)
	r.Delete("/api/day-sessions/{id}", h.Delete)
	r.Put("/api/day-sessions/bulk/{date}", h.BulkReplace)
}

func (h *Handler) ListDay(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	records, err := h.store.ListByDate(r.Context(), date)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load sessions")
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(date, records))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req sessionCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Date == "" || req.StartTime == "" || req.Status == "" {
		writeError(w, http.StatusBadRequest, "date, start_time and status are required")
		return
	}

	created, err := h.store.Create(r.Context(), toRecord(req))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create session")
		return
	}
	writeJSON(w, http.StatusCreated, toResponse(created))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req sessionUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	updated, ok, err := h.store.UpdateByID(r.Context(), id, store.Update{
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Action:      req.Action,
		Status:      req.Status,
		IsRest:      req.IsRest,
		IsNewAction: req.IsNewAction,
		SetNumber:   req.SetNumber,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to update session")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	writeJSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	ok, err := h.store.Delete(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete session")
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) BulkReplace(w http.ResponseWriter, r *http.Request) {
	date := chi.URLParam(r, "date")

	var req bulkUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	records := make([]store.Record, 0, len(req.Sessions))
	for _, s := range req.Sessions {
		if s.StartTime == "" || s.Status == "" {
			writeError(w, http.StatusBadRequest, "start_time and status are required")
			return
		}
		records = append(records, toRecord(s))
	}

	replaced, err := h.store.ReplaceDay(r.Context(), date, records)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to replace sessions")
		return
	}

	writeJSON(w, http.StatusOK, toDayResponse(date, replaced))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorResponse{Detail: detail})
}
