// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Event levels
const (
	EventLevelInfo    = "info"
	EventLevelWarning = "warning"
	EventLevelError   = "error"
)

// Event categories
const (
	EventCategoryContent = "content"
	EventCategoryUpload  = "upload"
	EventCategoryCache   = "cache"
	EventCategoryStore   = "store"
	EventCategorySystem  = "system"
)

// Event is an operational log entry mirrored from WARN/ERROR slog records.
type Event struct {
	ID        int64     `json:"id"`
	Level     string    `json:"level"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	Metadata  string    `json:"metadata"` // JSON string
	CreatedAt time.Time `json:"createdAt"`
}

// Events provides access to the event log table.
type Events struct {
	db *sql.DB
}

// NewEvents creates an Events store bound to the given database.
func NewEvents(db *sql.DB) *Events {
	return &Events{db: db}
}

// Create appends an event to the log.
func (e *Events) Create(ctx context.Context, level, category, message, metadata string, at time.Time) error {
	_, err := e.db.ExecContext(ctx,
		"INSERT INTO events (level, category, message, metadata, created_at) VALUES (?, ?, ?, ?, ?)",
		level, category, message, metadata, at,
	)
	if err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

// Recent returns the most recent events, newest first.
func (e *Events) Recent(ctx context.Context, limit int) ([]Event, error) {
	rows, err := e.db.QueryContext(ctx,
		"SELECT id, level, category, message, metadata, created_at FROM events ORDER BY id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer func() { _ = rows.Close() }()

	events := make([]Event, 0, limit)
	for rows.Next() {
		var ev Event
		if err := rows.Scan(&ev.ID, &ev.Level, &ev.Category, &ev.Message, &ev.Metadata, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning event: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating events: %w", err)
	}
	return events, nil
}
