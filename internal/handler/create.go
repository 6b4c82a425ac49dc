// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/service"
)

// Required-field messages mirror what the admin form documents for each
// kind.
const (
	projectFieldsMsg       = "All required fields (title, description, technologies, category, image) must be provided."
	designFieldsMsg        = "All required fields (title, description, tags, category, image) must be provided."
	blogFieldsMsg          = "All required fields (title, excerpt, content, date, readTime, category, tags) must be provided."
	skillFieldsMsg         = "All required fields (name, category) must be provided."
	learningFieldsMsg      = "All required fields (title, description, category) must be provided."
	skillCategoryFieldsMsg = "All required fields (title, icon, color, skills) must be provided."
	highlightFieldsMsg     = "All required fields (title, description, icon) must be provided."
)

// CreateProject serves POST /projects: stores the uploaded image, then
// the record, and answers with an HTML fragment.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, projectFieldsMsg)
		return
	}

	if r.FormValue("title") == "" || r.FormValue("description") == "" ||
		r.FormValue("technologies") == "" || r.FormValue("category") == "" {
		h.renderCreateError(w, http.StatusBadRequest, projectFieldsMsg)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderCreateError(w, http.StatusBadRequest, projectFieldsMsg)
		return
	}
	defer file.Close()

	image, err := h.uploads.Save(file, header)
	if err != nil {
		h.uploadError(w, "project", err)
		return
	}

	p, err := h.content.CreateProject(r.Context(), service.CreateProjectInput{
		Title:        r.FormValue("title"),
		Description:  r.FormValue("description"),
		Technologies: r.FormValue("technologies"),
		Category:     r.FormValue("category"),
		DemoURL:      r.FormValue("demoUrl"),
		GithubURL:    r.FormValue("githubUrl"),
		Image:        image,
		Featured:     r.FormValue("featured") != "",
	})
	if err != nil {
		h.createError(w, "project", projectFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindProject)
	h.renderCreateSuccess(w, "Project", p.Title, RouteProjects, "Projects")
}

// CreateDesign serves POST /designs.
func (h *Handler) CreateDesign(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, designFieldsMsg)
		return
	}

	if r.FormValue("title") == "" || r.FormValue("description") == "" ||
		r.FormValue("tags") == "" || r.FormValue("category") == "" {
		h.renderCreateError(w, http.StatusBadRequest, designFieldsMsg)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		h.renderCreateError(w, http.StatusBadRequest, designFieldsMsg)
		return
	}
	defer file.Close()

	image, err := h.uploads.Save(file, header)
	if err != nil {
		h.uploadError(w, "design", err)
		return
	}

	d, err := h.content.CreateDesign(r.Context(), service.CreateDesignInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Category:    r.FormValue("category"),
		Tags:        r.FormValue("tags"),
		BehanceURL:  r.FormValue("behanceUrl"),
		Image:       image,
	})
	if err != nil {
		h.createError(w, "design", designFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindDesign)
	h.renderCreateSuccess(w, "Design", d.Title, RouteDesigns, "Designs")
}

// CreateBlog serves POST /blogs.
func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, blogFieldsMsg)
		return
	}

	b, err := h.content.CreateBlog(r.Context(), service.CreateBlogInput{
		Title:    r.FormValue("title"),
		Excerpt:  r.FormValue("excerpt"),
		Content:  r.FormValue("content"),
		Date:     r.FormValue("date"),
		ReadTime: r.FormValue("readTime"),
		Category: r.FormValue("category"),
		Tags:     r.FormValue("tags"),
	})
	if err != nil {
		h.createError(w, "blog", blogFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindBlog)
	h.renderCreateSuccess(w, "Blog post", b.Title, RouteBlogs, "Blogs")
}

// CreateSkill serves POST /skills.
func (h *Handler) CreateSkill(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, skillFieldsMsg)
		return
	}

	sk, err := h.content.CreateSkill(r.Context(), r.FormValue("name"), r.FormValue("category"))
	if err != nil {
		h.createError(w, "skill", skillFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindSkill)
	h.renderCreateSuccess(w, "Skill", sk.Name, RouteSkills, "Skills")
}

// CreateLearning serves POST /learnings.
func (h *Handler) CreateLearning(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, learningFieldsMsg)
		return
	}

	l, err := h.content.CreateLearning(r.Context(), r.FormValue("title"), r.FormValue("description"), r.FormValue("category"))
	if err != nil {
		h.createError(w, "learning", learningFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindLearning)
	h.renderCreateSuccess(w, "Learning focus", l.Title, RouteLearnings, "Learnings")
}

// CreateSkillCategory serves POST /skill-categories.
func (h *Handler) CreateSkillCategory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, skillCategoryFieldsMsg)
		return
	}

	sc, err := h.content.CreateSkillCategory(r.Context(), service.CreateSkillCategoryInput{
		Title:  r.FormValue("title"),
		Icon:   r.FormValue("icon"),
		Color:  r.FormValue("color"),
		Skills: r.FormValue("skills"),
	})
	if err != nil {
		h.createError(w, "skill category", skillCategoryFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindSkillCategory)
	h.renderCreateSuccess(w, "Skill category", sc.Title, RouteSkillCategories, "Skill Categories")
}

// CreateHighlight serves POST /highlights.
func (h *Handler) CreateHighlight(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderCreateError(w, http.StatusBadRequest, highlightFieldsMsg)
		return
	}

	hl, err := h.content.CreateHighlight(r.Context(), r.FormValue("title"), r.FormValue("description"), r.FormValue("icon"))
	if err != nil {
		h.createError(w, "highlight", highlightFieldsMsg, err)
		return
	}

	h.lists.Invalidate(r.Context(), model.KindHighlight)
	h.renderCreateSuccess(w, "Highlight", hl.Title, RouteHighlights, "Highlights")
}

// createError maps a service error onto the HTML error fragment:
// validation failures get 400 with a specific message, store failures
// 500 with a generic one.
func (h *Handler) createError(w http.ResponseWriter, label, fieldsMsg string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingField):
		h.renderCreateError(w, http.StatusBadRequest, fieldsMsg)
	case errors.Is(err, service.ErrInvalidCategory):
		h.renderCreateError(w, http.StatusBadRequest, "Invalid category.")
	case errors.Is(err, service.ErrInvalidEnum):
		if label == "highlight" {
			h.renderCreateError(w, http.StatusBadRequest, "Invalid icon.")
		} else {
			h.renderCreateError(w, http.StatusBadRequest, "Invalid icon or color.")
		}
	case errors.Is(err, service.ErrMalformedSkillList):
		h.renderCreateError(w, http.StatusBadRequest, "Invalid skills format. Use one Name,Level pair per line with level between 0 and 100.")
	default:
		slog.Error("create failed", "kind", label, "error", err)
		h.renderCreateError(w, http.StatusInternalServerError, "Error saving "+label+".")
	}
}

// uploadError maps an upload failure onto the HTML error fragment.
func (h *Handler) uploadError(w http.ResponseWriter, label string, err error) {
	if errors.Is(err, service.ErrUploadRejected) {
		h.renderCreateError(w, http.StatusBadRequest, "Image rejected: only JPEG or PNG files up to 5 MB are accepted.")
		return
	}
	slog.Error("upload failed", "kind", label, "error", err)
	h.renderCreateError(w, http.StatusInternalServerError, "Error saving "+label+".")
}
