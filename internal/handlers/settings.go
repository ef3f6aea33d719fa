package handlers

import (
	"log/slog"
	"net/http"

	"promptforge/internal/catalog"
	"promptforge/internal/middleware"
	"promptforge/internal/models"
	"promptforge/internal/store"
)

// Settings groups the user-preference HTTP handlers.
type Settings struct {
	settingsStore *store.SettingsStore
}

// NewSettings creates a new Settings handler group.
func NewSettings(settingsStore *store.SettingsStore) *Settings {
	return &Settings{settingsStore: settingsStore}
}

type updateSettingsRequest struct {
	DefaultTheme  string `json:"default_theme"`
	DefaultAITool string `json:"default_ai_tool"`
}

// Get returns the user's preferences, falling back to defaults for
// accounts that never saved any.
func (s *Settings) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	settings, err := s.settingsStore.Get(sess.UserID)
	if err != nil {
		slog.Error("get settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// Update saves the user's preferences. The theme must be one of the
// catalog values; the AI tool is free-form but length-capped since the
// catalog list is advisory.
func (s *Settings) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req updateSettingsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if !catalog.ValidTheme(req.DefaultTheme) {
		writeError(w, http.StatusBadRequest, "Theme must be one of: dark, light, both.")
		return
	}
	if len(req.DefaultAITool) > maxToolNameLen {
		writeError(w, http.StatusBadRequest, "AI tool name is too long.")
		return
	}

	saved, err := s.settingsStore.Upsert(&models.UserSettings{
		UserID:        sess.UserID,
		DefaultTheme:  req.DefaultTheme,
		DefaultAITool: req.DefaultAITool,
	})
	if err != nil {
		slog.Error("save settings failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, saved)
}
