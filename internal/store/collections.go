// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"database/sql"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Table names, one per content kind.
const (
	TableProjects        = "projects"
	TableDesigns         = "designs"
	TableBlogs           = "blogs"
	TableSkills          = "skills"
	TableLearnings       = "learnings"
	TableSkillCategories = "skill_categories"
	TableHighlights      = "highlights"
)

// Collections bundles the typed document collections for all content
// kinds plus the event log.
type Collections struct {
	Projects        *Collection[model.Project]
	Designs         *Collection[model.Design]
	Blogs           *Collection[model.Blog]
	Skills          *Collection[model.Skill]
	Learnings       *Collection[model.Learning]
	SkillCategories *Collection[model.SkillCategory]
	Highlights      *Collection[model.Highlight]
	Events          *Events
}

// New creates the collection set bound to the given database.
func New(db *sql.DB) *Collections {
	return &Collections{
		Projects:        NewCollection[model.Project](db, TableProjects),
		Designs:         NewCollection[model.Design](db, TableDesigns),
		Blogs:           NewCollection[model.Blog](db, TableBlogs),
		Skills:          NewCollection[model.Skill](db, TableSkills),
		Learnings:       NewCollection[model.Learning](db, TableLearnings),
		SkillCategories: NewCollection[model.SkillCategory](db, TableSkillCategories),
		Highlights:      NewCollection[model.Highlight](db, TableHighlights),
		Events:          NewEvents(db),
	}
}
