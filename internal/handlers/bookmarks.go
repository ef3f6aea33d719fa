// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptforge/internal/catalog"
	"promptforge/internal/middleware"
	"promptforge/internal/models"
	"promptforge/internal/store"
)

// Bookmarks groups the saved-prompt HTTP handlers. All routes require an
// authenticated session.
type Bookmarks struct {
	bookmarkStore *store.BookmarkStore
}

// NewBookmarks creates a new Bookmarks handler group.
func NewBookmarks(bookmarkStore *store.BookmarkStore) *Bookmarks {
	return &Bookmarks{bookmarkStore: bookmarkStore}
}

// bookmarkRequest is the payload for saving or toggling a bookmark.
type bookmarkRequest struct {
	Title            string   `json:"prompt_title"`
	Content          string   `json:"prompt_content"`
	DesignPatterns   []string `json:"design_patterns"`
	UILibraries      []string `json:"ui_libraries"`
	FontFamily       string   `json:"font_family"`
	AuthProvider     string   `json:"auth_provider"`
	DatabaseProvider string   `json:"database_provider"`
	Theme            string   `json:"theme"`
}

// toRecord converts the request payload into a PromptRecord, deriving the
// title from the content when none was sent and dropping duplicate
// selections.
func (b bookmarkRequest) toRecord() *models.PromptRecord {
	title := strings.TrimSpace(b.Title)
	if title == "" {
		title = models.DeriveTitle(b.Content)
	}
	return &models.PromptRecord{
		Title:            title,
		Content:          b.Content,
		DesignPatterns:   catalog.Normalize(b.DesignPatterns),
		UILibraries:      catalog.Normalize(b.UILibraries),
		FontFamily:       b.FontFamily,
		AuthProvider:     b.AuthProvider,
		DatabaseProvider: b.DatabaseProvider,
		Theme:            b.Theme,
	}
}

// List returns the user's bookmarks, newest first.
func (b *Bookmarks) List(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	records, err := b.bookmarkStore.ListByUser(sess.UserID)
	if err != nil {
		slog.Error("list bookmarks failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if records == nil {
		records = []models.PromptRecord{}
	}

	writeJSON(w, http.StatusOK, map[string][]models.PromptRecord{"bookmarks": records})
}

// Create saves a bookmark unconditionally. Saving the same content twice
// yields two rows; clients that want idempotency use Toggle.
func (b *Bookmarks) Create(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req bookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "Prompt content is required.")
		return
	}

	saved, err := b.bookmarkStore.Insert(sess.UserID, req.toRecord())
	if err != nil {
		slog.Error("insert bookmark failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusCreated, saved)
}

// toggleResponse reports the outcome of a toggle call.
type toggleResponse struct {
	Bookmarked bool                 `json:"bookmarked"`
	Bookmark   *models.PromptRecord `json:"bookmark,omitempty"`
}

// Toggle saves the prompt if no bookmark with exactly the same content
// exists, and removes the existing one otherwise. Identity is the full
// prompt text; a single changed byte makes a different bookmark.
func (b *Bookmarks) Toggle(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	var req bookmarkRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "Prompt content is required.")
		return
	}

	existing, err := b.bookmarkStore.FindByContent(sess.UserID, req.Content)
	if err != nil {
		slog.Error("toggle lookup failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	if existing != nil {
		if _, err := b.bookmarkStore.Delete(sess.UserID, existing.ID); err != nil {
			slog.Error("toggle delete failed", "error", err)
			writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
			return
		}
		writeJSON(w, http.StatusOK, toggleResponse{Bookmarked: false})
		return
	}

	saved, err := b.bookmarkStore.Insert(sess.UserID, req.toRecord())
	if err != nil {
		slog.Error("toggle insert failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}

	writeJSON(w, http.StatusOK, toggleResponse{Bookmarked: true, Bookmark: saved})
}

// Delete removes a bookmark by ID. Deleting someone else's bookmark, or
// a missing one, is a 404 either way.
func (b *Bookmarks) Delete(w http.ResponseWriter, r *http.Request) {
	sess := middleware.SessionFromCtx(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid bookmark ID.")
		return
	}

	deleted, err := b.bookmarkStore.Delete(sess.UserID, id)
	if err != nil {
		slog.Error("delete bookmark failed", "error", err)
		writeError(w, http.StatusInternalServerError, "An unexpected error occurred.")
		return
	}
	if !deleted {
		writeError(w, http.StatusNotFound, "Bookmark not found.")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
