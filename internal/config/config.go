// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds the application configuration loaded from environment variables.
type Config struct {
	DBPath     string `env:"PORTFOLIO_DB_PATH" envDefault:"./data/portfolio.db"`
	ServerHost string `env:"PORTFOLIO_SERVER_HOST" envDefault:"localhost"`
	ServerPort int    `env:"PORTFOLIO_SERVER_PORT" envDefault:"5000"`
	Env        string `env:"PORTFOLIO_ENV" envDefault:"development"`
	LogLevel   string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
	UploadsDir string `env:"PORTFOLIO_UPLOADS_DIR" envDefault:"./uploads"`

	// CORS configuration: the single frontend origin allowed to call the
	// JSON endpoints. Empty disables the CORS headers entirely.
	CORSOrigin string `env:"PORTFOLIO_CORS_ORIGIN" envDefault:"http://localhost:8080"`

	// Cache configuration
	RedisURL     string `env:"PORTFOLIO_REDIS_URL"`                         // Optional Redis URL for the list cache
	CachePrefix  string `env:"PORTFOLIO_CACHE_PREFIX" envDefault:"folio:"`  // Redis key prefix
	CacheTTL     int    `env:"PORTFOLIO_CACHE_TTL" envDefault:"3600"`       // Default cache TTL in seconds
	CacheMaxSize int    `env:"PORTFOLIO_CACHE_MAX_SIZE" envDefault:"10000"` // Max memory cache entries

	// Seeding configuration
	DoSeed bool `env:"PORTFOLIO_DO_SEED" envDefault:"true"` // Seed empty collections at startup

	// Optional write gate. When both are set, POST endpoints and the admin
	// form require HTTP basic auth. Left unset, writes are open, matching
	// the trusted-network deployment the site was built for.
	AdminUser     string `env:"PORTFOLIO_ADMIN_USER"`
	AdminPassword string `env:"PORTFOLIO_ADMIN_PASSWORD"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// UseRedisCache returns true if Redis caching is configured.
func (c Config) UseRedisCache() bool {
	return c.RedisURL != ""
}

// WriteAuthEnabled returns true if the admin write gate is configured.
func (c Config) WriteAuthEnabled() bool {
	return c.AdminUser != "" && c.AdminPassword != ""
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// Half-configured credentials are a deployment mistake, not a feature.
	if (cfg.AdminUser == "") != (cfg.AdminPassword == "") {
		return nil, fmt.Errorf("PORTFOLIO_ADMIN_USER and PORTFOLIO_ADMIN_PASSWORD must be set together")
	}

	if cfg.ServerPort < 1 || cfg.ServerPort > 65535 {
		return nil, fmt.Errorf("PORTFOLIO_SERVER_PORT must be between 1 and 65535, got %d", cfg.ServerPort)
	}

	return cfg, nil
}
