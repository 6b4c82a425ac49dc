// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package cache

import (
	"context"
	"log/slog"

	"github.com/olegiv/portfolio-go/internal/model"
)

// ListCache caches serialized JSON list responses per content kind and
// category filter. Entries for a kind are invalidated when a record of
// that kind is created.
type ListCache struct {
	cache Cache
}

// NewListCache wraps a cache backend for list-response storage.
func NewListCache(c Cache) *ListCache {
	return &ListCache{cache: c}
}

// Get returns the cached JSON payload for a kind and filter, or false
// on a miss. Backend errors are treated as misses: the cache is an
// optimization, never a source of failures.
func (lc *ListCache) Get(ctx context.Context, kind model.Kind, filter string) ([]byte, bool) {
	payload, err := lc.cache.Get(ctx, listKey(kind, filter))
	if err != nil {
		if err != ErrCacheMiss {
			slog.Warn("list cache read failed", "category", "cache", "kind", kind, "error", err)
		}
		return nil, false
	}
	return payload, true
}

// Set stores the JSON payload for a kind and filter.
func (lc *ListCache) Set(ctx context.Context, kind model.Kind, filter string, payload []byte) {
	if err := lc.cache.Set(ctx, listKey(kind, filter), payload, 0); err != nil {
		slog.Warn("list cache write failed", "category", "cache", "kind", kind, "error", err)
	}
}

// Invalidate drops every cached list for a kind. Filtered variants are
// keyed per category, so the cheap correct move is clearing the lot.
func (lc *ListCache) Invalidate(ctx context.Context, kind model.Kind) {
	filters := []string{""}
	switch kind {
	case model.KindProject:
		filters = append(filters, model.ProjectFilterAll)
		filters = append(filters, model.ProjectCategories...)
	case model.KindDesign:
		filters = append(filters, model.DesignFilterAll)
		filters = append(filters, model.DesignCategories...)
	}

	for _, f := range filters {
		if err := lc.cache.Delete(ctx, listKey(kind, f)); err != nil && err != ErrCacheClosed {
			slog.Warn("list cache invalidation failed", "category", "cache", "kind", kind, "error", err)
		}
	}
}

// Close releases the underlying backend.
func (lc *ListCache) Close() error {
	return lc.cache.Close()
}

func listKey(kind model.Kind, filter string) string {
	return "lists:" + string(kind) + ":" + filter
}
