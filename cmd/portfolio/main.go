// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/olegiv/portfolio-go/internal/cache"
	"github.com/olegiv/portfolio-go/internal/config"
	"github.com/olegiv/portfolio-go/internal/handler"
	"github.com/olegiv/portfolio-go/internal/logging"
	"github.com/olegiv/portfolio-go/internal/middleware"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/internal/store"
	"github.com/olegiv/portfolio-go/internal/version"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

// Write endpoints share one per-IP limiter: the admin is a single
// human, so a low rate with a small burst is plenty.
const (
	writeRateRPS   = 2
	writeRateBurst = 10
)

func main() {
	// Parse CLI flags
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "portfolio - personal portfolio content service\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_DB_PATH          SQLite database path (default: ./data/portfolio.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_SERVER_PORT      Server port (default: 5000)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ENV              Environment: development|production (default: development)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_UPLOADS_DIR      Image upload directory (default: ./uploads)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_CORS_ORIGIN      Allowed frontend origin (default: http://localhost:8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_REDIS_URL        Redis URL for the list cache (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_DO_SEED          Seed empty collections at startup (default: true)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ADMIN_USER       Basic auth user for write endpoints (optional)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  PORTFOLIO_ADMIN_PASSWORD   Basic auth password for write endpoints (optional)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("portfolio %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	versionInfo := &version.Info{
		Version:   appVersion,
		GitCommit: appGitCommit,
		BuildTime: appBuildTime,
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(newLogHandler(cfg, logLevel))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	slog.Info("initializing database", "path", cfg.DBPath)
	db, err := store.NewDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("initializing database: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing database connection", "error", err)
		}
	}(db)

	slog.Info("running database migrations")
	if err := store.Migrate(db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database ready")

	// Upgrade logger to also write WARN and ERROR logs to the event log
	logger = slog.New(logging.NewEventLogHandler(newLogHandler(cfg, logLevel), db))
	slog.SetDefault(logger)

	ctx := context.Background()
	if cfg.DoSeed {
		if err := store.Seed(ctx, db); err != nil {
			return fmt.Errorf("seeding database: %w", err)
		}
	}

	// List cache: Redis when configured, memory otherwise
	if cfg.UseRedisCache() {
		slog.Info("list cache backend", "backend", "redis", "prefix", cfg.CachePrefix)
	} else {
		slog.Info("list cache backend", "backend", "memory", "maxSize", cfg.CacheMaxSize)
	}
	listCache := cache.NewListCache(cache.New(cache.Config{
		RedisURL:        cfg.RedisURL,
		Prefix:          cfg.CachePrefix,
		DefaultTTL:      time.Duration(cfg.CacheTTL) * time.Second,
		MaxSize:         cfg.CacheMaxSize,
		CleanupInterval: 5 * time.Minute,
	}))
	defer func() {
		if err := listCache.Close(); err != nil {
			slog.Error("error closing cache", "error", err)
		}
	}()

	// Services
	collections := store.New(db)
	content := service.NewContentService(collections)
	uploads, err := service.NewUploadService(cfg.UploadsDir)
	if err != nil {
		return fmt.Errorf("initializing uploads: %w", err)
	}

	h, err := handler.New(db, content, uploads, listCache, versionInfo.Version)
	if err != nil {
		return fmt.Errorf("initializing handlers: %w", err)
	}

	// Write endpoint protection: per-IP rate limit, plus basic auth
	// when credentials are configured.
	writeLimiter := middleware.NewWriteRateLimiter(writeRateRPS, writeRateBurst)
	writeMiddleware := []func(http.Handler) http.Handler{writeLimiter.HTML}
	if cfg.WriteAuthEnabled() {
		writeMiddleware = append(writeMiddleware, middleware.BasicAuth(cfg.AdminUser, cfg.AdminPassword))
		slog.Info("admin write gate enabled", "user", cfg.AdminUser)
	} else {
		slog.Warn("write endpoints are unauthenticated; set PORTFOLIO_ADMIN_USER and PORTFOLIO_ADMIN_PASSWORD to gate them")
	}

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.CORS(cfg.CORSOrigin))

	r.Mount("/", h.Routes(cfg.UploadsDir, writeMiddleware...))

	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for image uploads on slow connections
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", versionInfo.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

// newLogHandler returns a text handler in development for readable local
// output, and a JSON handler otherwise so production logs stay machine
// parseable.
func newLogHandler(cfg *config.Config, level slog.Level) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	if cfg.IsDevelopment() {
		return slog.NewTextHandler(os.Stdout, opts)
	}
	return slog.NewJSONHandler(os.Stdout, opts)
}
