// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// ProjectCategories is the allowlist for the Project category field.
var ProjectCategories = []string{"security", "ai", "fullstack", "design"}

// Project is a portfolio project entry. The image field holds either an
// emoji placeholder (seed data) or a relative /uploads path.
type Project struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	DemoURL      *string  `json:"demoUrl"`
	GithubURL    *string  `json:"githubUrl"`
	Image        string   `json:"image"`
	Featured     bool     `json:"featured"`
}
