// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// BlogCategories is the allowlist for the Blog category field.
var BlogCategories = []string{"Security", "AI/ML", "CTF", "Tech Insights"}

// Blog is a blog post. Date is stored as the YYYY-MM-DD string the form
// submits; ReadTime is free text like "5 min read".
type Blog struct {
	ID       int64    `json:"id"`
	Title    string   `json:"title"`
	Excerpt  string   `json:"excerpt"`
	Content  string   `json:"content"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}
