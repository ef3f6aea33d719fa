// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"promptforge/internal/models"
)

// SettingsStore handles per-user preference rows.
type SettingsStore struct {
	db *sql.DB
}

// NewSettingsStore creates a new SettingsStore with the given database connection.
func NewSettingsStore(db *sql.DB) *SettingsStore {
	return &SettingsStore{db: db}
}

// Get retrieves the user's settings. A user without a saved row gets the
// defaults, so callers never see a missing-settings state.
func (s *SettingsStore) Get(userID uuid.UUID) (*models.UserSettings, error) {
	settings := &models.UserSettings{}
	err := s.db.QueryRow(`
		SELECT user_id, default_theme, default_ai_tool, updated_at
		FROM user_settings WHERE user_id = $1
	`, userID).Scan(
		&settings.UserID, &settings.DefaultTheme, &settings.DefaultAITool, &settings.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return models.DefaultSettings(userID), nil
	}
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

// Upsert saves the user's settings, creating the row on first save.
func (s *SettingsStore) Upsert(settings *models.UserSettings) (*models.UserSettings, error) {
	saved := &models.UserSettings{}
	err := s.db.QueryRow(`
		INSERT INTO user_settings (user_id, default_theme, default_ai_tool)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE
		SET default_theme = EXCLUDED.default_theme,
		    default_ai_tool = EXCLUDED.default_ai_tool,
		    updated_at = NOW()
		RETURNING user_id, default_theme, default_ai_tool, updated_at
	`, settings.UserID, settings.DefaultTheme, settings.DefaultAITool).Scan(
		&saved.UserID, &saved.DefaultTheme, &saved.DefaultAITool, &saved.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("upsert settings: %w", err)
	}
	return saved, nil
}
