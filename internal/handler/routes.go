// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts every application route on a fresh router. The write
// middleware chain (rate limiting, optional basic auth) wraps only the
// admin page and the create endpoints; list endpoints and health checks
// stay open.
func (h *Handler) Routes(uploadsDir string, write ...func(http.Handler) http.Handler) *chi.Mux {
	r := chi.NewRouter()

	r.Get(RouteProjects, h.ListProjects)
	r.Get(RouteDesigns, h.ListDesigns)
	r.Get(RouteBlogs, h.ListBlogs)
	r.Get(RouteSkills, h.ListSkills)
	r.Get(RouteLearnings, h.ListLearnings)
	r.Get(RouteSkillCategories, h.ListSkillCategories)
	r.Get(RouteHighlights, h.ListHighlights)

	r.Get(RouteHealth, h.Health)
	r.Get(RouteHealth+"/live", h.Live)
	r.Get(RouteHealth+"/ready", h.Ready)

	r.Group(func(g chi.Router) {
		for _, mw := range write {
			g.Use(mw)
		}
		g.Get(RouteAdmin, h.AdminPage)
		g.Get(RouteHealth+"/events", h.Events)
		g.Post(RouteProjects, h.CreateProject)
		g.Post(RouteDesigns, h.CreateDesign)
		g.Post(RouteBlogs, h.CreateBlog)
		g.Post(RouteSkills, h.CreateSkill)
		g.Post(RouteLearnings, h.CreateLearning)
		g.Post(RouteSkillCategories, h.CreateSkillCategory)
		g.Post(RouteHighlights, h.CreateHighlight)
	})

	uploads := http.StripPrefix(RouteUploads+"/", http.FileServer(http.Dir(uploadsDir)))
	r.Get(RouteUploads+"/*", func(w http.ResponseWriter, req *http.Request) {
		uploads.ServeHTTP(w, req)
	})

	return r
}
