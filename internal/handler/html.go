// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"log/slog"
	"net/http"
)

// createResult carries the template data for the create fragments.
type createResult struct {
	Label    string
	Title    string
	ListPath string
	Plural   string
	Message  string
}

// renderCreateSuccess writes the HTML fragment shown after a record was
// stored, with links back to the admin form and to the kind's list.
func (h *Handler) renderCreateSuccess(w http.ResponseWriter, label, title, listPath, plural string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := createResult{Label: label, Title: title, ListPath: listPath, Plural: plural}
	if err := h.tmpl.ExecuteTemplate(w, "create_success", data); err != nil {
		slog.Error("render success fragment", "error", err)
	}
}

// renderCreateError writes the HTML error fragment with a link back to
// the admin form.
func (h *Handler) renderCreateError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	if err := h.tmpl.ExecuteTemplate(w, "create_error", createResult{Message: message}); err != nil {
		slog.Error("render error fragment", "error", err)
	}
}

// AdminPage serves the embedded admin form.
func (h *Handler) AdminPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(h.adminPage)
}
