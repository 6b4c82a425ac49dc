// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// DesignCategories is the allowlist for the Design category field.
var DesignCategories = []string{"Brand Identity", "UI/UX Design", "Web Design", "Mobile Design"}

// Design is a design gallery entry.
type Design struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	BehanceURL  *string  `json:"behanceUrl"`
	Image       string   `json:"image"`
}
