// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

// Allowlists for the SkillCategory icon and color fields.
var (
	SkillCategoryIcons = []string{"Code", "Database", "Shield", "Palette", "Brain", "Terminal"}
)

// SkillLevel bounds for rated skills.
const (
	SkillLevelMin = 0
	SkillLevelMax = 100
)

// RatedSkill is a named skill with a 0-100 proficiency level, nested
// inside a SkillCategory.
type RatedSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillCategory groups rated skills under an icon and color.
type SkillCategory struct {
	ID     int64        `json:"id"`
	Title  string       `json:"title"`
	Icon   string       `json:"icon"`
	Color  string       `json:"color"`
	Skills []RatedSkill `json:"skills"`
}
