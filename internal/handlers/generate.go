// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"promptforge/internal/generator"
	"promptforge/internal/history"
	"promptforge/internal/middleware"
	"promptforge/internal/models"
)

// PromptGenerator produces a coding prompt from a generation request.
// Satisfied by *generator.Service; tests substitute a stub.
type PromptGenerator interface {
	Generate(ctx context.Context, req generator.Request) (string, error)
}

// Generate handles prompt generation requests.
type Generate struct {
	generator PromptGenerator
	history   *history.Log
}

// NewGenerate creates the generation handler. history may be nil, in which
// case generations are not recorded.
func NewGenerate(gen PromptGenerator, hist *history.Log) *Generate {
	return &Generate{generator: gen, history: hist}
}

// generateResponse is the success envelope for POST /api/generate.
type generateResponse struct {
	Prompt string `json:"prompt"`
}

// Handle processes POST /api/generate. The request body mirrors the
// selection state of the builder UI; the response carries the generated
// prompt text. Authenticated requests also land in the user's history.
func (g *Generate) Handle(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	prompt, err := g.generator.Generate(r.Context(), req)
	if err != nil {
		var failure *generator.Failure
		if errors.As(err, &failure) {
			slog.Warn("prompt generation failed",
				"category", failure.Category,
				"status", failure.Status,
			)
			writeError(w, failure.Status, failure.Message)
			return
		}
		slog.Error("prompt generation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to generate prompt. Please try again.")
		return
	}

	// Record the generation for logged-in users. A history failure never
	// blocks delivery of the prompt itself.
	if sess := middleware.SessionFromCtx(r.Context()); sess != nil && g.history != nil {
		rec := &models.PromptRecord{
			ID:               uuid.New(),
			Title:            models.DeriveTitle(req.Idea),
			Content:          prompt,
			DesignPatterns:   req.DesignPatterns,
			UILibraries:      req.UILibraries,
			FontFamily:       req.FontFamily,
			AuthProvider:     req.AuthProvider,
			DatabaseProvider: req.DatabaseProvider,
			Theme:            req.Theme,
			CreatedAt:        time.Now(),
		}
		if err := g.history.Append(r.Context(), sess.UserID, rec); err != nil {
			slog.Warn("history append failed", "user_id", sess.UserID, "error", err)
		}
	}

	writeJSON(w, http.StatusOK, generateResponse{Prompt: prompt})
}
