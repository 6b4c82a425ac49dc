// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// AccentCategories is the primary/secondary/accent palette shared by
// Skill, Learning, and the SkillCategory color field.
var AccentCategories = []string{"primary", "secondary", "accent"}

// Skill is a single named skill shown in the hero section.
type Skill struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Learning is a current-learning-focus entry.
type Learning struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}
