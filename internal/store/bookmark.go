// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"promptforge/internal/models"
)

// BookmarkStore handles all bookmarked-prompt database operations.
// Every query is scoped to a user ID so bookmarks never leak across accounts.
type BookmarkStore struct {
	db *sql.DB
}

// NewBookmarkStore creates a new BookmarkStore with the given database connection.
func NewBookmarkStore(db *sql.DB) *BookmarkStore {
	return &BookmarkStore{db: db}
}

// ListByUser returns all of the user's bookmarks, newest first.
func (s *BookmarkStore) ListByUser(userID uuid.UUID) ([]models.PromptRecord, error) {
	rows, err := s.db.Query(`
		SELECT id, prompt_title, prompt_content, design_patterns, ui_libraries,
		       font_family, auth_provider, database_provider, theme, created_at
		FROM bookmarked_prompts
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookmarks: %w", err)
	}
	defer rows.Close()

	var records []models.PromptRecord
	for rows.Next() {
		rec, err := scanBookmark(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, rows.Err()
}

// FindByContent retrieves the user's bookmark whose prompt text matches
// exactly. Returns nil if not found. Toggle semantics depend on this:
// a bookmark is identified by its full content, not by title.
func (s *BookmarkStore) FindByContent(userID uuid.UUID, content string) (*models.PromptRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, prompt_title, prompt_content, design_patterns, ui_libraries,
		       font_family, auth_provider, database_provider, theme, created_at
		FROM bookmarked_prompts
		WHERE user_id = $1 AND prompt_content = $2
	`, userID, content)

	rec, err := scanBookmark(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// FindByID retrieves a single bookmark owned by the user. Returns nil if
// not found or owned by someone else.
func (s *BookmarkStore) FindByID(userID, id uuid.UUID) (*models.PromptRecord, error) {
	row := s.db.QueryRow(`
		SELECT id, prompt_title, prompt_content, design_patterns, ui_libraries,
		       font_family, auth_provider, database_provider, theme, created_at
		FROM bookmarked_prompts
		WHERE user_id = $1 AND id = $2
	`, userID, id)

	rec, err := scanBookmark(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// Insert saves a new bookmark for the user and returns it with the
// generated ID and timestamp.
func (s *BookmarkStore) Insert(userID uuid.UUID, rec *models.PromptRecord) (*models.PromptRecord, error) {
	patterns, err := json.Marshal(sliceOrEmpty(rec.DesignPatterns))
	if err != nil {
		return nil, fmt.Errorf("marshal design patterns: %w", err)
	}
	libraries, err := json.Marshal(sliceOrEmpty(rec.UILibraries))
	if err != nil {
		return nil, fmt.Errorf("marshal ui libraries: %w", err)
	}

	row := s.db.QueryRow(`
		INSERT INTO bookmarked_prompts (user_id, prompt_title, prompt_content,
		                                design_patterns, ui_libraries, font_family,
		                                auth_provider, database_provider, theme)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, prompt_title, prompt_content, design_patterns, ui_libraries,
		          font_family, auth_provider, database_provider, theme, created_at
	`, userID, rec.Title, rec.Content, patterns, libraries,
		rec.FontFamily, rec.AuthProvider, rec.DatabaseProvider, rec.Theme)

	saved, err := scanBookmark(row)
	if err != nil {
		return nil, fmt.Errorf("insert bookmark: %w", err)
	}
	return saved, nil
}

// Delete removes the user's bookmark by ID. Returns false if no row
// matched, meaning the bookmark did not exist or belongs to another user.
func (s *BookmarkStore) Delete(userID, id uuid.UUID) (bool, error) {
	result, err := s.db.Exec(`
		DELETE FROM bookmarked_prompts WHERE user_id = $1 AND id = $2
	`, userID, id)
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete bookmark: %w", err)
	}
	return n > 0, nil
}

// CountByUser returns how many bookmarks the user has.
func (s *BookmarkStore) CountByUser(userID uuid.UUID) (int, error) {
	var n int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM bookmarked_prompts WHERE user_id = $1
	`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count bookmarks: %w", err)
	}
	return n, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// scanBookmark reads one bookmark row, unmarshalling the JSONB array columns.
func scanBookmark(row scanner) (*models.PromptRecord, error) {
	var rec models.PromptRecord
	var patterns, libraries []byte

	err := row.Scan(
		&rec.ID, &rec.Title, &rec.Content, &patterns, &libraries,
		&rec.FontFamily, &rec.AuthProvider, &rec.DatabaseProvider,
		&rec.Theme, &rec.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scan bookmark: %w", err)
	}

	if err := json.Unmarshal(patterns, &rec.DesignPatterns); err != nil {
		return nil, fmt.Errorf("unmarshal design patterns: %w", err)
	}
	if err := json.Unmarshal(libraries, &rec.UILibraries); err != nil {
		return nil, fmt.Errorf("unmarshal ui libraries: %w", err)
	}

	return &rec, nil
}

// sliceOrEmpty ensures nil slices serialize as [] rather than null.
func sliceOrEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
