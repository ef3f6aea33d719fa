// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// UserSettings holds per-user generator preferences. A missing row means
// the defaults below apply.
type UserSettings struct {
	UserID        uuid.UUID `json:"user_id"`
	DefaultTheme  string    `json:"default_theme"`
	DefaultAITool string    `json:"default_ai_tool"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DefaultSettings returns the settings applied to accounts that have never
// saved any.
func DefaultSettings(userID uuid.UUID) *UserSettings {
	return &UserSettings{
		UserID:        userID,
		DefaultTheme:  "dark",
		DefaultAITool: "Cursor",
	}
}
