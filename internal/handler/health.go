// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"

	"github.com/olegiv/portfolio-go/internal/store"
)

// Health serves GET /health with basic service information.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": h.version,
	})
}

// Live serves GET /health/live: the process is up.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready serves GET /health/ready: the database answers a ping and the
// uploads directory is writable.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "database unavailable")
		return
	}

	marker := filepath.Join(h.uploads.Dir(), ".ready")
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		writeJSONError(w, http.StatusServiceUnavailable, "uploads directory not writable")
		return
	}
	_ = os.Remove(marker)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// Events serves GET /health/events with the most recent event log
// entries. The route sits behind the write middleware chain.
func (h *Handler) Events(w http.ResponseWriter, r *http.Request) {
	events, err := store.NewEvents(h.db).Recent(r.Context(), 50)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, "Error fetching events")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(events)
}
