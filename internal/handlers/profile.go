package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"promptforge/internal/middleware"
	"promptforge/internal/session"
	"promptforge/internal/store"
)

// Profile groups the account-management HTTP handlers.
type Profile struct {
	sessions  *session.Store
	userStore *store.UserStore
}

// NewProfile creates a new Profile handler group.
func NewProfile(sessions *session.Store, userStore *store.UserStore) *Profile {
	return &Profile{sessions: sessions, userStore: userStore}
}

// Get returns the current account's profile.
func (p *Profile) Get(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	user, err := p.userStore.FindByID(sess.UserID)
	if err != nil {
		slog.Error("profile lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if user == nil {
		p.sessions.Destroy(r.Context(), w, r)
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"user": user})
}

type updateProfileRequest struct {
	DisplayName *string `json:"display_name"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

type deleteAccountRequest struct {
	Password string `json:"password"`
}

// Update changes the profile fields present in the request. Currently
// that is only the display name.
func (p *Profile) Update(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.DisplayName == nil {
		writeError(w, http.StatusBadRequest, "Nothing to update.")
		return
	}

	name := strings.TrimSpace(*req.DisplayName)
	if msg := validateDisplayName(name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	if err := p.userStore.UpdateDisplayName(sess.UserID, name); err != nil {
		slog.Error("update display name failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	// Keep the session copy in sync so Me and logs show the new name.
	sess.DisplayName = name
	if err := p.sessions.Update(r.Context(), r, sess); err != nil {
		slog.Warn("session refresh after rename failed", "error", err)
	}

	user, err := p.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("profile reload failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// ChangePassword replaces the account password after verifying the
// current one.
func (p *Profile) ChangePassword(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req changePasswordRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validatePassword(req.NewPassword); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	user, err := p.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("password change lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if !p.userStore.CheckPassword(user, req.CurrentPassword) {
		writeError(w, http.StatusUnauthorized, "Current password is incorrect.")
		return
	}

	if err := p.userStore.UpdatePassword(sess.UserID, req.NewPassword); err != nil {
		slog.Error("password update failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	slog.Info("password changed", "user_id", sess.UserID)
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the account and everything attached to it. Requires the
// password so a stolen session cannot destroy the account on its own.
func (p *Profile) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req deleteAccountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := p.userStore.FindByID(sess.UserID)
	if err != nil || user == nil {
		slog.Error("account delete lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if !p.userStore.CheckPassword(user, req.Password) {
		writeError(w, http.StatusUnauthorized, "Password is incorrect.")
		return
	}

	if err := p.userStore.Delete(sess.UserID); err != nil {
		slog.Error("account delete failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	p.sessions.Destroy(r.Context(), w, r)
	slog.Info("account deleted", "user_id", sess.UserID)
	w.WriteHeader(http.StatusNoContent)
}
