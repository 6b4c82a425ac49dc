// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler maps HTTP routes onto the content and upload services.
// List endpoints speak JSON; create endpoints answer with small HTML
// fragments aimed at the admin form.
package handler

import (
	"database/sql"
	"fmt"
	"html/template"

	"github.com/olegiv/portfolio-go/internal/cache"
	"github.com/olegiv/portfolio-go/internal/service"
	"github.com/olegiv/portfolio-go/web"
)

// Route paths served by the application.
const (
	RouteProjects        = "/projects"
	RouteDesigns         = "/designs"
	RouteBlogs           = "/blogs"
	RouteSkills          = "/skills"
	RouteLearnings       = "/learnings"
	RouteSkillCategories = "/skill-categories"
	RouteHighlights      = "/highlights"
	RouteAdmin           = "/real/admin"
	RouteUploads         = "/uploads"
	RouteHealth          = "/health"
)

// maxFormMemory bounds the in-memory portion of multipart parsing;
// larger parts spill to temp files.
const maxFormMemory = 8 << 20

// Handler carries the dependencies shared by all route handlers.
type Handler struct {
	content   *service.ContentService
	uploads   *service.UploadService
	lists     *cache.ListCache
	db        *sql.DB
	tmpl      *template.Template
	adminPage []byte
	version   string
}

// New creates a Handler, parsing the embedded fragment templates and
// loading the admin page once.
func New(db *sql.DB, content *service.ContentService, uploads *service.UploadService, lists *cache.ListCache, version string) (*Handler, error) {
	tmpl, err := template.ParseFS(web.FS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	adminPage, err := web.FS.ReadFile("static/admin.html")
	if err != nil {
		return nil, fmt.Errorf("read admin page: %w", err)
	}
	return &Handler{
		content:   content,
		uploads:   uploads,
		lists:     lists,
		db:        db,
		tmpl:      tmpl,
		adminPage: adminPage,
		version:   version,
	}, nil
}
