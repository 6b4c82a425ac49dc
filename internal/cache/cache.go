// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package cache provides the list-response cache for the portfolio
// content service: a memory backend by default, Redis when configured.
package cache

import (
	"context"
	"log/slog"
	"time"
)

// Cache defines the interface for cache backends. All implementations
// must be thread-safe. Values are []byte so the same interface serves
// both the in-memory and Redis backends.
type Cache interface {
	// Get retrieves a value. Returns ErrCacheMiss if absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the given TTL. A zero TTL uses the default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// Clear removes all entries.
	Clear(ctx context.Context) error

	// Close releases any resources held by the cache.
	Close() error
}

// Error represents an error type for cache operations.
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	// ErrCacheMiss indicates the key was not found or has expired.
	ErrCacheMiss Error = "cache miss"

	// ErrCacheClosed indicates the cache has been closed.
	ErrCacheClosed Error = "cache closed"
)

// Config selects and tunes the cache backend.
type Config struct {
	RedisURL        string        // Non-empty selects the Redis backend
	Prefix          string        // Key prefix (Redis)
	DefaultTTL      time.Duration // Default entry TTL
	MaxSize         int           // Max entries (memory backend)
	CleanupInterval time.Duration // Expired-entry sweep interval (memory backend)
}

// New creates a cache backend from the config. A Redis backend that
// fails to connect falls back to the memory backend with a warning, so
// a missing Redis never takes the site down.
func New(cfg Config) Cache {
	if cfg.RedisURL != "" {
		redisCache, err := NewRedisCache(RedisCacheOptions{
			URL:        cfg.RedisURL,
			Prefix:     cfg.Prefix,
			DefaultTTL: cfg.DefaultTTL,
		})
		if err == nil {
			slog.Info("cache backend initialized", "backend", "redis")
			return redisCache
		}
		slog.Warn("redis cache unavailable, falling back to memory", "error", err)
	}

	return NewMemoryCache(MemoryCacheOptions{
		DefaultTTL:      cfg.DefaultTTL,
		MaxSize:         cfg.MaxSize,
		CleanupInterval: cfg.CleanupInterval,
	})
}
