// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/store"
	_ "modernc.org/sqlite"
)

func newTestService(t *testing.T) *ContentService {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, store.Migrate(db))
	return NewContentService(store.New(db))
}

func TestCreateProjectAssignsSequentialIDs(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in := CreateProjectInput{
		Title:        "Scanner",
		Description:  "Port scanner",
		Technologies: "Go, chi",
		Category:     "security",
		Image:        "/uploads/a.png",
	}
	first, err := svc.CreateProject(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, []string{"Go", "chi"}, first.Technologies)
	assert.Nil(t, first.DemoURL)

	in.Title = "Dashboard"
	in.Category = "fullstack"
	in.DemoURL = "https://example.com"
	second, err := svc.CreateProject(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
	require.NotNil(t, second.DemoURL)
	assert.Equal(t, "https://example.com", *second.DemoURL)
}

func TestCreateProjectValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateProject(ctx, CreateProjectInput{
		Description:  "no title",
		Technologies: "Go",
		Category:     "security",
		Image:        "/uploads/a.png",
	})
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = svc.CreateProject(ctx, CreateProjectInput{
		Title:        "X",
		Description:  "bad category",
		Technologies: "Go",
		Category:     "Security", // wrong case
		Image:        "/uploads/a.png",
	})
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListProjectsFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	for _, cat := range []string{"security", "ai", "security"} {
		_, err := svc.CreateProject(ctx, CreateProjectInput{
			Title:        "P-" + cat,
			Description:  "d",
			Technologies: "Go",
			Category:     cat,
			Image:        "/uploads/a.png",
		})
		require.NoError(t, err)
	}

	all, err := svc.ListProjects(ctx, "all")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := svc.ListProjects(ctx, "")
	require.NoError(t, err)
	assert.Len(t, none, 3)

	sec, err := svc.ListProjects(ctx, "security")
	require.NoError(t, err)
	assert.Len(t, sec, 2)

	_, err = svc.ListProjects(ctx, "hardware")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	// The project sentinel is lowercase; "All" is a design-side value.
	_, err = svc.ListProjects(ctx, "All")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestListDesignsFilter(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateDesign(ctx, CreateDesignInput{
		Title:       "Logo",
		Description: "d",
		Category:    "Brand Identity",
		Tags:        "logo",
		Image:       "/uploads/a.png",
	})
	require.NoError(t, err)

	all, err := svc.ListDesigns(ctx, "All")
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.ListDesigns(ctx, "all")
	assert.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCreateSkill(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sk, err := svc.CreateSkill(ctx, "Rust", "primary")
	require.NoError(t, err)
	assert.Equal(t, model.Skill{ID: 1, Name: "Rust", Category: "primary"}, sk)

	_, err = svc.CreateSkill(ctx, "Zig", "tertiary")
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = svc.CreateSkill(ctx, "", "primary")
	assert.ErrorIs(t, err, ErrMissingField)
}

func TestCreateSkillCategory(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	sc, err := svc.CreateSkillCategory(ctx, CreateSkillCategoryInput{
		Title:  "Systems",
		Icon:   "Terminal",
		Color:  "accent",
		Skills: "C,80\nRust,70",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), sc.ID)
	require.Len(t, sc.Skills, 2)
	assert.Equal(t, model.RatedSkill{Name: "C", Level: 80}, sc.Skills[0])

	_, err = svc.CreateSkillCategory(ctx, CreateSkillCategoryInput{
		Title:  "Bad icon",
		Icon:   "Rocket",
		Color:  "accent",
		Skills: "C,80",
	})
	assert.ErrorIs(t, err, ErrInvalidEnum)

	_, err = svc.CreateSkillCategory(ctx, CreateSkillCategoryInput{
		Title:  "Bad level",
		Icon:   "Code",
		Color:  "accent",
		Skills: "C,150",
	})
	assert.ErrorIs(t, err, ErrMalformedSkillList)
}

func TestCreateHighlight(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	h, err := svc.CreateHighlight(ctx, "Security First", "Hardened by default", "Shield")
	require.NoError(t, err)
	assert.Equal(t, int64(1), h.ID)

	_, err = svc.CreateHighlight(ctx, "Bad", "icon", "Database")
	assert.ErrorIs(t, err, ErrInvalidEnum)
}

func TestCreateBlogRequiresAllFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	in := CreateBlogInput{
		Title:    "Post",
		Excerpt:  "e",
		Content:  "c",
		Date:     "2026-01-01",
		ReadTime: "5 min read",
		Category: "Security",
		Tags:     "web",
	}
	b, err := svc.CreateBlog(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, int64(1), b.ID)
	assert.Equal(t, []string{"web"}, b.Tags)

	in.ReadTime = ""
	_, err = svc.CreateBlog(ctx, in)
	assert.ErrorIs(t, err, ErrMissingField)
}
