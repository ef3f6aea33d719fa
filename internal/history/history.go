// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package history keeps a per-user log of past generations in Valkey.
// The log is append-only with a fixed FIFO cap: every generation is pushed
// to the front and the oldest entries fall off past MaxEntries. Unlike
// bookmarks it is not user-curated and lives outside Postgres.
package history

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"promptforge/internal/models"
)

const (
	// MaxEntries is the FIFO cap on each user's history log.
	MaxEntries = 200

	// keyPrefix namespaces history keys in Valkey.
	keyPrefix = "history:"
)

// Log stores per-user prompt history in Valkey lists.
type Log struct {
	client *redis.Client
}

// NewLog creates a history log backed by the given Valkey client.
func NewLog(client *redis.Client) *Log {
	return &Log{client: client}
}

// Append pushes a record to the front of the user's history and trims the
// list to MaxEntries, evicting the oldest entries.
func (l *Log) Append(ctx context.Context, userID uuid.UUID, rec *models.PromptRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("history marshal: %w", err)
	}

	key := keyPrefix + userID.String()
	pipe := l.client.TxPipeline()
	pipe.LPush(ctx, key, payload)
	pipe.LTrim(ctx, key, 0, MaxEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("history append: %w", err)
	}

	return nil
}

// List returns the user's history newest-first. Entries that fail to
// unmarshal are skipped silently — a corrupted item reads as absent, never
// as an error surfaced to the user.
func (l *Log) List(ctx context.Context, userID uuid.UUID) ([]models.PromptRecord, error) {
	items, err := l.client.LRange(ctx, keyPrefix+userID.String(), 0, -1).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("history list: %w", err)
	}

	records := make([]models.PromptRecord, 0, len(items))
	for _, item := range items {
		var rec models.PromptRecord
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			slog.Warn("skipping malformed history entry", "user_id", userID, "error", err)
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

// Clear removes the user's entire history log.
func (l *Log) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := l.client.Del(ctx, keyPrefix+userID.String()).Err(); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	return nil
}

// Count returns the number of entries in the user's history.
func (l *Log) Count(ctx context.Context, userID uuid.UUID) (int64, error) {
	n, err := l.client.LLen(ctx, keyPrefix+userID.String()).Result()
	if err != nil {
		return 0, fmt.Errorf("history count: %w", err)
	}
	return n, nil
}
