// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package service implements the business logic of the portfolio backend:
// listing and creating content records, and validating image uploads.
package service

import (
	"context"
	"fmt"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
)

// ContentService provides list and create operations for every content
// kind. Validation happens here; handlers only translate errors.
type ContentService struct {
	store *store.Collections
}

// NewContentService creates a ContentService backed by the given collections.
func NewContentService(s *store.Collections) *ContentService {
	return &ContentService{store: s}
}

// listFiltered lists a collection, optionally narrowed to one category.
// An empty filter or the kind's pass-through sentinel returns everything.
func listFiltered[T any](ctx context.Context, col *store.Collection[T], category, sentinel string, allowed []string) ([]T, error) {
	if category == "" || category == sentinel {
		return col.List(ctx)
	}
	if !model.IsOneOf(category, allowed) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}
	return col.ListByCategory(ctx, category)
}

// ListProjects returns projects, optionally filtered by category. The
// filter value "all" (lowercase) returns every project.
func (s *ContentService) ListProjects(ctx context.Context, category string) ([]model.Project, error) {
	return listFiltered(ctx, s.store.Projects, category, model.ProjectFilterAll, model.ProjectCategories)
}

// ListDesigns returns designs, optionally filtered by category. The
// filter value "All" (capitalized) returns every design.
func (s *ContentService) ListDesigns(ctx context.Context, category string) ([]model.Design, error) {
	return listFiltered(ctx, s.store.Designs, category, model.DesignFilterAll, model.DesignCategories)
}

// ListBlogs returns every blog post.
func (s *ContentService) ListBlogs(ctx context.Context) ([]model.Blog, error) {
	return s.store.Blogs.List(ctx)
}

// ListSkills returns every skill.
func (s *ContentService) ListSkills(ctx context.Context) ([]model.Skill, error) {
	return s.store.Skills.List(ctx)
}

// ListLearnings returns every learning entry.
func (s *ContentService) ListLearnings(ctx context.Context) ([]model.Learning, error) {
	return s.store.Learnings.List(ctx)
}

// ListSkillCategories returns every skill category.
func (s *ContentService) ListSkillCategories(ctx context.Context) ([]model.SkillCategory, error) {
	return s.store.SkillCategories.List(ctx)
}

// ListHighlights returns every highlight.
func (s *ContentService) ListHighlights(ctx context.Context) ([]model.Highlight, error) {
	return s.store.Highlights.List(ctx)
}

// CreateProjectInput carries the raw form values for a new project.
// Technologies is a comma-separated list; DemoURL and GithubURL may be
// empty and are stored as absent.
type CreateProjectInput struct {
	Title        string
	Description  string
	Technologies string
	Category     string
	DemoURL      string
	GithubURL    string
	Image        string
	Featured     bool
}

// CreateProject validates the input and stores a new project with the
// next sequential ID.
func (s *ContentService) CreateProject(ctx context.Context, in CreateProjectInput) (model.Project, error) {
	switch {
	case in.Title == "":
		return model.Project{}, missingField("title")
	case in.Description == "":
		return model.Project{}, missingField("description")
	case in.Technologies == "":
		return model.Project{}, missingField("technologies")
	case in.Category == "":
		return model.Project{}, missingField("category")
	case in.Image == "":
		return model.Project{}, missingField("image")
	}
	if !model.IsOneOf(in.Category, model.ProjectCategories) {
		return model.Project{}, fmt.Errorf("%w: %s", ErrInvalidCategory, in.Category)
	}

	id, err := s.store.Projects.NextID(ctx)
	if err != nil {
		return model.Project{}, fmt.Errorf("next project id: %w", err)
	}
	p := model.Project{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: model.SplitCSV(in.Technologies),
		Category:     in.Category,
		DemoURL:      optional(in.DemoURL),
		GithubURL:    optional(in.GithubURL),
		Image:        in.Image,
		Featured:     in.Featured,
	}
	if err := s.store.Projects.Insert(ctx, p.ID, p.Category, p); err != nil {
		return model.Project{}, fmt.Errorf("insert project: %w", err)
	}
	return p, nil
}

// CreateDesignInput carries the raw form values for a new design.
type CreateDesignInput struct {
	Title       string
	Description string
	Category    string
	Tags        string
	BehanceURL  string
	Image       string
}

// CreateDesign validates the input and stores a new design.
func (s *ContentService) CreateDesign(ctx context.Context, in CreateDesignInput) (model.Design, error) {
	switch {
	case in.Title == "":
		return model.Design{}, missingField("title")
	case in.Description == "":
		return model.Design{}, missingField("description")
	case in.Category == "":
		return model.Design{}, missingField("category")
	case in.Tags == "":
		return model.Design{}, missingField("tags")
	case in.Image == "":
		return model.Design{}, missingField("image")
	}
	if !model.IsOneOf(in.Category, model.DesignCategories) {
		return model.Design{}, fmt.Errorf("%w: %s", ErrInvalidCategory, in.Category)
	}

	id, err := s.store.Designs.NextID(ctx)
	if err != nil {
		return model.Design{}, fmt.Errorf("next design id: %w", err)
	}
	d := model.Design{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Tags:        model.SplitCSV(in.Tags),
		BehanceURL:  optional(in.BehanceURL),
		Image:       in.Image,
	}
	if err := s.store.Designs.Insert(ctx, d.ID, d.Category, d); err != nil {
		return model.Design{}, fmt.Errorf("insert design: %w", err)
	}
	return d, nil
}

// CreateBlogInput carries the raw form values for a new blog post.
type CreateBlogInput struct {
	Title    string
	Excerpt  string
	Content  string
	Date     string
	ReadTime string
	Category string
	Tags     string
}

// CreateBlog validates the input and stores a new blog post.
func (s *ContentService) CreateBlog(ctx context.Context, in CreateBlogInput) (model.Blog, error) {
	switch {
	case in.Title == "":
		return model.Blog{}, missingField("title")
	case in.Excerpt == "":
		return model.Blog{}, missingField("excerpt")
	case in.Content == "":
		return model.Blog{}, missingField("content")
	case in.Date == "":
		return model.Blog{}, missingField("date")
	case in.ReadTime == "":
		return model.Blog{}, missingField("readTime")
	case in.Category == "":
		return model.Blog{}, missingField("category")
	case in.Tags == "":
		return model.Blog{}, missingField("tags")
	}
	if !model.IsOneOf(in.Category, model.BlogCategories) {
		return model.Blog{}, fmt.Errorf("%w: %s", ErrInvalidCategory, in.Category)
	}

	id, err := s.store.Blogs.NextID(ctx)
	if err != nil {
		return model.Blog{}, fmt.Errorf("next blog id: %w", err)
	}
	b := model.Blog{
		ID:       id,
		Title:    in.Title,
		Excerpt:  in.Excerpt,
		Content:  in.Content,
		Date:     in.Date,
		ReadTime: in.ReadTime,
		Category: in.Category,
		Tags:     model.SplitCSV(in.Tags),
	}
	if err := s.store.Blogs.Insert(ctx, b.ID, b.Category, b); err != nil {
		return model.Blog{}, fmt.Errorf("insert blog: %w", err)
	}
	return b, nil
}

// CreateSkill validates the accent category and stores a new skill.
func (s *ContentService) CreateSkill(ctx context.Context, name, category string) (model.Skill, error) {
	switch {
	case name == "":
		return model.Skill{}, missingField("name")
	case category == "":
		return model.Skill{}, missingField("category")
	}
	if !model.IsOneOf(category, model.AccentCategories) {
		return model.Skill{}, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	id, err := s.store.Skills.NextID(ctx)
	if err != nil {
		return model.Skill{}, fmt.Errorf("next skill id: %w", err)
	}
	sk := model.Skill{ID: id, Name: name, Category: category}
	if err := s.store.Skills.Insert(ctx, sk.ID, sk.Category, sk); err != nil {
		return model.Skill{}, fmt.Errorf("insert skill: %w", err)
	}
	return sk, nil
}

// CreateLearning validates the accent category and stores a new learning
// entry.
func (s *ContentService) CreateLearning(ctx context.Context, title, description, category string) (model.Learning, error) {
	switch {
	case title == "":
		return model.Learning{}, missingField("title")
	case description == "":
		return model.Learning{}, missingField("description")
	case category == "":
		return model.Learning{}, missingField("category")
	}
	if !model.IsOneOf(category, model.AccentCategories) {
		return model.Learning{}, fmt.Errorf("%w: %s", ErrInvalidCategory, category)
	}

	id, err := s.store.Learnings.NextID(ctx)
	if err != nil {
		return model.Learning{}, fmt.Errorf("next learning id: %w", err)
	}
	l := model.Learning{ID: id, Title: title, Description: description, Category: category}
	if err := s.store.Learnings.Insert(ctx, l.ID, l.Category, l); err != nil {
		return model.Learning{}, fmt.Errorf("insert learning: %w", err)
	}
	return l, nil
}

// CreateSkillCategoryInput carries the raw form values for a new skill
// category. Skills is a newline-separated list of "Name,Level" pairs.
type CreateSkillCategoryInput struct {
	Title  string
	Icon   string
	Color  string
	Skills string
}

// CreateSkillCategory validates the icon, color and skill list, then
// stores a new skill category.
func (s *ContentService) CreateSkillCategory(ctx context.Context, in CreateSkillCategoryInput) (model.SkillCategory, error) {
	switch {
	case in.Title == "":
		return model.SkillCategory{}, missingField("title")
	case in.Icon == "":
		return model.SkillCategory{}, missingField("icon")
	case in.Color == "":
		return model.SkillCategory{}, missingField("color")
	case in.Skills == "":
		return model.SkillCategory{}, missingField("skills")
	}
	if !model.IsOneOf(in.Icon, model.SkillCategoryIcons) {
		return model.SkillCategory{}, fmt.Errorf("%w: icon %q", ErrInvalidEnum, in.Icon)
	}
	if !model.IsOneOf(in.Color, model.AccentCategories) {
		return model.SkillCategory{}, fmt.Errorf("%w: color %q", ErrInvalidEnum, in.Color)
	}
	skills, err := model.ParseRatedSkills(in.Skills)
	if err != nil {
		return model.SkillCategory{}, fmt.Errorf("%w: %v", ErrMalformedSkillList, err)
	}

	id, err := s.store.SkillCategories.NextID(ctx)
	if err != nil {
		return model.SkillCategory{}, fmt.Errorf("next skill category id: %w", err)
	}
	sc := model.SkillCategory{
		ID:     id,
		Title:  in.Title,
		Icon:   in.Icon,
		Color:  in.Color,
		Skills: skills,
	}
	if err := s.store.SkillCategories.Insert(ctx, sc.ID, "", sc); err != nil {
		return model.SkillCategory{}, fmt.Errorf("insert skill category: %w", err)
	}
	return sc, nil
}

// CreateHighlight validates the icon and stores a new highlight.
func (s *ContentService) CreateHighlight(ctx context.Context, title, description, icon string) (model.Highlight, error) {
	switch {
	case title == "":
		return model.Highlight{}, missingField("title")
	case description == "":
		return model.Highlight{}, missingField("description")
	case icon == "":
		return model.Highlight{}, missingField("icon")
	}
	if !model.IsOneOf(icon, model.HighlightIcons) {
		return model.Highlight{}, fmt.Errorf("%w: icon %q", ErrInvalidEnum, icon)
	}

	id, err := s.store.Highlights.NextID(ctx)
	if err != nil {
		return model.Highlight{}, fmt.Errorf("next highlight id: %w", err)
	}
	h := model.Highlight{ID: id, Title: title, Description: description, Icon: icon}
	if err := s.store.Highlights.Insert(ctx, h.ID, "", h); err != nil {
		return model.Highlight{}, fmt.Errorf("insert highlight: %w", err)
	}
	return h, nil
}

// optional maps an empty string to an absent field.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
