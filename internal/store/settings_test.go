// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"testing"

	"promptforge/internal/models"
)

func TestSettingsGetDefaults(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)
	user := bookmarkUser(t, db, "test-settings-default@store-test.local")

	settings, err := s.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if settings.DefaultTheme != "dark" {
		t.Errorf("default theme: got %q, want %q", settings.DefaultTheme, "dark")
	}
	if settings.DefaultAITool != "Cursor" {
		t.Errorf("default AI tool: got %q, want %q", settings.DefaultAITool, "Cursor")
	}
}

func TestSettingsUpsert(t *testing.T) {
	db := testDB(t)
	s := NewSettingsStore(db)
	user := bookmarkUser(t, db, "test-settings-upsert@store-test.local")

	// First save creates the row.
	saved, err := s.Upsert(&models.UserSettings{
		UserID:        user.ID,
		DefaultTheme:  "light",
		DefaultAITool: "Windsurf",
	})
	if err != nil {
		t.Fatalf("Upsert (insert): %v", err)
	}
	if saved.DefaultTheme != "light" || saved.DefaultAITool != "Windsurf" {
		t.Errorf("saved settings: %+v", saved)
	}

	// Second save updates in place.
	saved, err = s.Upsert(&models.UserSettings{
		UserID:        user.ID,
		DefaultTheme:  "both",
		DefaultAITool: "Claude CLI",
	})
	if err != nil {
		t.Fatalf("Upsert (update): %v", err)
	}
	if saved.DefaultTheme != "both" {
		t.Errorf("theme after update: got %q, want %q", saved.DefaultTheme, "both")
	}

	// Get reflects the stored row, not defaults.
	got, err := s.Get(user.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.DefaultAITool != "Claude CLI" {
		t.Errorf("tool after update: got %q, want %q", got.DefaultAITool, "Claude CLI")
	}
}
