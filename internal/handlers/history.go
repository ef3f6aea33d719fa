package handlers

import (
	"log/slog"
	"net/http"

	"promptforge/internal/history"
	"promptforge/internal/middleware"
	"promptforge/internal/models"
)

// History groups the generation-log HTTP handlers.
type History struct {
	log *history.Log
}

// NewHistory creates a new History handler group.
func NewHistory(log *history.Log) *History {
	return &History{log: log}
}

// List returns the user's generation history, newest first, capped at
// the retention limit.
func (h *History) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	records, err := h.log.List(r.Context(), sess.UserID)
	if err != nil {
		slog.Error("list history failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if records == nil {
		records = []models.PromptRecord{}
	}

	writeJSON(w, http.StatusOK, map[string][]models.PromptRecord{"history": records})
}

// Clear wipes the user's entire generation history.
func (h *History) Clear(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	if err := h.log.Clear(r.Context(), sess.UserID); err != nil {
		slog.Error("clear history failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
