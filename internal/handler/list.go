// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/service"
)

// ListProjects serves GET /projects, optionally filtered by the
// category query parameter ("all" passes everything through).
func (h *Handler) ListProjects(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	listJSON(h, w, r, model.KindProject, category, "Error fetching projects", func(ctx context.Context) ([]model.Project, error) {
		return h.content.ListProjects(ctx, category)
	})
}

// ListDesigns serves GET /designs, optionally filtered by the category
// query parameter ("All" passes everything through).
func (h *Handler) ListDesigns(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	listJSON(h, w, r, model.KindDesign, category, "Error fetching designs", func(ctx context.Context) ([]model.Design, error) {
		return h.content.ListDesigns(ctx, category)
	})
}

// ListBlogs serves GET /blogs.
func (h *Handler) ListBlogs(w http.ResponseWriter, r *http.Request) {
	listJSON(h, w, r, model.KindBlog, "", "Error fetching blogs", h.content.ListBlogs)
}

// ListSkills serves GET /skills.
func (h *Handler) ListSkills(w http.ResponseWriter, r *http.Request) {
	listJSON(h, w, r, model.KindSkill, "", "Error fetching skills", h.content.ListSkills)
}

// ListLearnings serves GET /learnings.
func (h *Handler) ListLearnings(w http.ResponseWriter, r *http.Request) {
	listJSON(h, w, r, model.KindLearning, "", "Error fetching learnings", h.content.ListLearnings)
}

// ListSkillCategories serves GET /skill-categories.
func (h *Handler) ListSkillCategories(w http.ResponseWriter, r *http.Request) {
	listJSON(h, w, r, model.KindSkillCategory, "", "Error fetching skill categories", h.content.ListSkillCategories)
}

// ListHighlights serves GET /highlights.
func (h *Handler) ListHighlights(w http.ResponseWriter, r *http.Request) {
	listJSON(h, w, r, model.KindHighlight, "", "Error fetching highlights", h.content.ListHighlights)
}

// listJSON serves one list endpoint: it answers from the list cache
// when possible, otherwise fetches, caches and writes the JSON array.
// Validation failures yield 400, everything else 500 with a generic
// message so store internals never leak to clients.
func listJSON[T any](h *Handler, w http.ResponseWriter, r *http.Request, kind model.Kind, filter, failMsg string, fetch func(context.Context) ([]T, error)) {
	ctx := r.Context()

	if payload, ok := h.lists.Get(ctx, kind, filter); ok {
		writeJSONBytes(w, payload)
		return
	}

	records, err := fetch(ctx)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			writeJSONError(w, http.StatusBadRequest, "Invalid category")
			return
		}
		slog.Error("list failed", "kind", kind, "error", err)
		writeJSONError(w, http.StatusInternalServerError, failMsg)
		return
	}

	payload, err := json.Marshal(records)
	if err != nil {
		slog.Error("list encoding failed", "kind", kind, "error", err)
		writeJSONError(w, http.StatusInternalServerError, failMsg)
		return
	}

	h.lists.Set(ctx, kind, filter, payload)
	writeJSONBytes(w, payload)
}
