// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package model defines the seven portfolio content kinds, their enum
// tables, and the field transforms applied on create.
package model

import "slices"

// Kind identifies one of the portfolio content types.
type Kind string

// Content kinds
const (
	KindProject       Kind = "project"
	KindDesign        Kind = "design"
	KindBlog          Kind = "blog"
	KindSkill         Kind = "skill"
	KindLearning      Kind = "learning"
	KindSkillCategory Kind = "skill_category"
	KindHighlight     Kind = "highlight"
)

// Kinds lists every content kind, in a stable order.
var Kinds = []Kind{
	KindProject, KindDesign, KindBlog, KindSkill,
	KindLearning, KindSkillCategory, KindHighlight,
}

// Category filter sentinels meaning "no filter". The casing difference
// between the two is a quirk the frontend depends on.
const (
	ProjectFilterAll = "all"
	DesignFilterAll  = "All"
)

// IsOneOf reports whether value is in the given allowlist (exact,
// case-sensitive match).
func IsOneOf(value string, allowed []string) bool {
	return slices.Contains(allowed, value)
}
