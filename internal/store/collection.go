// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Collection is a typed document collection backed by one SQLite table.
// Records are stored as JSON documents keyed by an application-assigned
// sequential id; the category column mirrors the document's filterable
// enum field so list filters stay a plain indexed equality scan.
type Collection[T any] struct {
	db    *sql.DB
	table string
}

// NewCollection creates a collection bound to the given table.
func NewCollection[T any](db *sql.DB, table string) *Collection[T] {
	return &Collection[T]{db: db, table: table}
}

// Table returns the backing table name.
func (c *Collection[T]) Table() string {
	return c.table
}

// List returns every document in the collection in id order.
func (c *Collection[T]) List(ctx context.Context) ([]T, error) {
	// Table names are compile-time constants from Collections; never user input.
	query := fmt.Sprintf("SELECT doc FROM %s ORDER BY id", c.table)
	return c.scanDocs(ctx, query)
}

// ListByCategory returns documents whose category column equals the
// given value exactly.
func (c *Collection[T]) ListByCategory(ctx context.Context, category string) ([]T, error) {
	query := fmt.Sprintf("SELECT doc FROM %s WHERE category = ? ORDER BY id", c.table)
	return c.scanDocs(ctx, query, category)
}

// NextID returns the next sequential id: max existing id + 1, or 1 for an
// empty collection. The read is not atomic with a subsequent Insert;
// concurrent creates of the same kind can race. The service assumes a
// single administrative writer.
func (c *Collection[T]) NextID(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COALESCE(MAX(id), 0) + 1 FROM %s", c.table)
	var id int64
	if err := c.db.QueryRowContext(ctx, query).Scan(&id); err != nil {
		return 0, fmt.Errorf("allocating id for %s: %w", c.table, err)
	}
	return id, nil
}

// Insert stores a document under the given id. The category argument
// mirrors the document's enum field; pass "" for kinds without one.
func (c *Collection[T]) Insert(ctx context.Context, id int64, category string, v T) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s document: %w", c.table, err)
	}

	query := fmt.Sprintf("INSERT INTO %s (id, category, doc) VALUES (?, ?, ?)", c.table)
	if _, err := c.db.ExecContext(ctx, query, id, category, string(doc)); err != nil {
		return fmt.Errorf("inserting into %s: %w", c.table, err)
	}
	return nil
}

// Count returns the number of documents in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", c.table)
	var n int64
	if err := c.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", c.table, err)
	}
	return n, nil
}

func (c *Collection[T]) scanDocs(ctx context.Context, query string, args ...any) ([]T, error) {
	rows, err := c.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", c.table, err)
	}
	defer func() { _ = rows.Close() }()

	docs := make([]T, 0)
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("scanning %s row: %w", c.table, err)
		}
		var v T
		if err := json.Unmarshal([]byte(raw), &v); err != nil {
			return nil, fmt.Errorf("decoding %s document: %w", c.table, err)
		}
		docs = append(docs, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating %s rows: %w", c.table, err)
	}
	return docs, nil
}
