// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// HighlightIcons is the allowlist for the Highlight icon field.
var HighlightIcons = []string{"Shield", "Code", "Brain", "Palette"}

// Highlight is an about-section highlight card.
type Highlight struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}
