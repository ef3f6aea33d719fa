// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// titleMaxRunes is how much of the idea text becomes the record title.
const titleMaxRunes = 100

// PromptRecord is a saved generation: the idea-derived title, the generated
// prompt text, and the selections that produced it. Content is immutable once
// created; records are only ever inserted and deleted.
//
// The same shape backs both bookmarks (Postgres rows) and history entries
// (Valkey list items), so a history item can be re-bookmarked verbatim.
type PromptRecord struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"prompt_title"`
	Content          string    `json:"prompt_content"`
	DesignPatterns   []string  `json:"design_patterns"`
	UILibraries      []string  `json:"ui_libraries"`
	FontFamily       string    `json:"font_family"`
	AuthProvider     string    `json:"auth_provider"`
	DatabaseProvider string    `json:"database_provider"`
	Theme            string    `json:"theme"`
	CreatedAt        time.Time `json:"created_at"`
}

// DeriveTitle produces a record title from the free-text idea: the first
// 100 runes, whitespace-trimmed. Counting runes rather than bytes keeps
// multi-byte ideas from being cut mid-character.
func DeriveTitle(idea string) string {
	runes := []rune(idea)
	if len(runes) > titleMaxRunes {
		runes = runes[:titleMaxRunes]
	}
	return string(runes)
}
