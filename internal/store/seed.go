// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package store

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Seed populates any empty collection with its default content. A
// collection holding at least one record is left untouched, so running
// the seed repeatedly never duplicates data.
func Seed(ctx context.Context, db *sql.DB) error {
	c := New(db)

	if err := seedCollection(ctx, c.Projects, seedProjects, func(p model.Project) string { return p.Category }); err != nil {
		return fmt.Errorf("seeding projects: %w", err)
	}
	if err := seedCollection(ctx, c.Designs, seedDesigns, func(d model.Design) string { return d.Category }); err != nil {
		return fmt.Errorf("seeding designs: %w", err)
	}
	if err := seedCollection(ctx, c.Blogs, seedBlogs, func(b model.Blog) string { return b.Category }); err != nil {
		return fmt.Errorf("seeding blogs: %w", err)
	}
	if err := seedCollection(ctx, c.Skills, seedSkills, func(s model.Skill) string { return s.Category }); err != nil {
		return fmt.Errorf("seeding skills: %w", err)
	}
	if err := seedCollection(ctx, c.Learnings, seedLearnings, func(l model.Learning) string { return l.Category }); err != nil {
		return fmt.Errorf("seeding learnings: %w", err)
	}
	if err := seedCollection(ctx, c.SkillCategories, seedSkillCategories, func(model.SkillCategory) string { return "" }); err != nil {
		return fmt.Errorf("seeding skill categories: %w", err)
	}
	if err := seedCollection(ctx, c.Highlights, seedHighlights, func(model.Highlight) string { return "" }); err != nil {
		return fmt.Errorf("seeding highlights: %w", err)
	}

	return nil
}

// seedCollection inserts the default records for one kind if, and only
// if, the collection is empty. Record ids come pre-assigned in the seed
// data.
func seedCollection[T any](ctx context.Context, col *Collection[T], records []seedRecord[T], category func(T) string) error {
	count, err := col.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, rec := range records {
		if err := col.Insert(ctx, rec.id, category(rec.doc), rec.doc); err != nil {
			return err
		}
	}

	slog.Info("seeded collection", "collection", col.Table(), "records", len(records))
	return nil
}

// seedRecord pairs a document with its pre-assigned sequential id.
type seedRecord[T any] struct {
	id  int64
	doc T
}

func strPtr(s string) *string { return &s }

var seedProjects = []seedRecord[model.Project]{
	{1, model.Project{
		ID:           1,
		Title:        "SecureScholars",
		Description:  "Intelligent vulnerability assessment tool that uses machine learning to identify potential security threats in web applications.",
		Technologies: []string{"Python", "TensorFlow", "Flask", "PostgreSQL"},
		Category:     "security",
		DemoURL:      strPtr("https://demo.example.com"),
		GithubURL:    strPtr("https://github.com/chrisszlycoen/securescholars"),
		Image:        "🛡️",
		Featured:     true,
	}},
}

var seedDesigns = []seedRecord[model.Design]{
	{1, model.Design{
		ID:          1,
		Title:       "Tech Startup Branding",
		Category:    "Brand Identity",
		Description: "Complete brand identity for a fintech startup including logo, color palette, and brand guidelines.",
		Image:       "🎨",
		Tags:        []string{"Branding", "Logo Design", "Fintech"},
		BehanceURL:  strPtr("https://behance.net/gallery/1"),
	}},
	{2, model.Design{
		ID:          2,
		Title:       "E-commerce Mobile App UI",
		Category:    "UI/UX Design",
		Description: "Modern mobile app interface design with focus on user experience and conversion optimization.",
		Image:       "📱",
		Tags:        []string{"Mobile UI", "E-commerce", "UX"},
		BehanceURL:  strPtr("https://behance.net/gallery/2"),
	}},
}

var seedBlogs = []seedRecord[model.Blog]{
	{1, model.Blog{
		ID:       1,
		Title:    "My Journey into Ethical Hacking: From Code to Cybersecurity",
		Excerpt:  "How I transitioned from web development to cybersecurity...",
		Content:  "In this post, I share my journey from being a web developer...",
		Date:     "2024-01-15",
		ReadTime: "5 min read",
		Category: "Security",
		Tags:     []string{"Ethical Hacking", "Career", "Cybersecurity"},
	}},
}

var seedSkills = []seedRecord[model.Skill]{
	{1, model.Skill{ID: 1, Name: "Penetration Testing", Category: "primary"}},
	{2, model.Skill{ID: 2, Name: "Cloud Security", Category: "secondary"}},
	{3, model.Skill{ID: 3, Name: "Machine Learning", Category: "accent"}},
}

var seedLearnings = []seedRecord[model.Learning]{
	{1, model.Learning{
		ID:          1,
		Title:       "Security Certifications",
		Description: "Working towards CEH and OSCP certifications",
		Category:    "primary",
	}},
	{2, model.Learning{
		ID:          2,
		Title:       "Cloud Technologies",
		Description: "Deepening knowledge in AWS and Azure security",
		Category:    "secondary",
	}},
	{3, model.Learning{
		ID:          3,
		Title:       "Advanced AI",
		Description: "Exploring LangChain and custom AI model development",
		Category:    "accent",
	}},
}

var seedSkillCategories = []seedRecord[model.SkillCategory]{
	{1, model.SkillCategory{
		ID: 1, Title: "Programming Languages", Icon: "Code", Color: "primary",
		Skills: []model.RatedSkill{
			{Name: "Python", Level: 90},
			{Name: "JavaScript/TypeScript", Level: 85},
			{Name: "Java", Level: 75},
			{Name: "C++", Level: 70},
			{Name: "SQL", Level: 80},
			{Name: "Bash", Level: 85},
		},
	}},
	{2, model.SkillCategory{
		ID: 2, Title: "Frameworks & Libraries", Icon: "Database", Color: "secondary",
		Skills: []model.RatedSkill{
			{Name: "React/Next.js", Level: 85},
			{Name: "Node.js/Express", Level: 80},
			{Name: "Django/Flask", Level: 85},
			{Name: "TensorFlow/PyTorch", Level: 75},
			{Name: "MongoDB/PostgreSQL", Level: 80},
			{Name: "Docker/Kubernetes", Level: 70},
		},
	}},
	{3, model.SkillCategory{
		ID: 3, Title: "Security & Ethical Hacking", Icon: "Shield", Color: "accent",
		Skills: []model.RatedSkill{
			{Name: "Penetration Testing", Level: 75},
			{Name: "Kali Linux", Level: 85},
			{Name: "Metasploit", Level: 70},
			{Name: "Wireshark", Level: 80},
			{Name: "Burp Suite", Level: 75},
			{Name: "OWASP Top 10", Level: 85},
		},
	}},
	{4, model.SkillCategory{
		ID: 4, Title: "AI & Automation", Icon: "Brain", Color: "primary",
		Skills: []model.RatedSkill{
			{Name: "Machine Learning", Level: 80},
			{Name: "Natural Language Processing", Level: 75},
			{Name: "OpenAI API Integration", Level: 85},
			{Name: "Automation Scripts", Level: 90},
			{Name: "Voice Assistants", Level: 70},
			{Name: "Data Analysis", Level: 85},
		},
	}},
	{5, model.SkillCategory{
		ID: 5, Title: "Design & Creative", Icon: "Palette", Color: "secondary",
		Skills: []model.RatedSkill{
			{Name: "Adobe Photoshop", Level: 85},
			{Name: "Adobe Illustrator", Level: 80},
			{Name: "Figma", Level: 90},
			{Name: "UI/UX Design", Level: 85},
			{Name: "Brand Identity", Level: 80},
			{Name: "Web Design", Level: 90},
		},
	}},
	{6, model.SkillCategory{
		ID: 6, Title: "Tools & Operating Systems", Icon: "Terminal", Color: "accent",
		Skills: []model.RatedSkill{
			{Name: "Git/GitHub", Level: 90},
			{Name: "Linux (Ubuntu/Kali)", Level: 85},
			{Name: "VS Code", Level: 95},
			{Name: "AWS/Cloud Platforms", Level: 70},
			{Name: "Vim/Nano", Level: 80},
			{Name: "Virtual Machines", Level: 85},
		},
	}},
}

var seedHighlights = []seedRecord[model.Highlight]{
	{1, model.Highlight{
		ID:          1,
		Title:       "Ethical Hacking",
		Description: "Passionate about cybersecurity and protecting digital infrastructure",
		Icon:        "Shield",
	}},
	{2, model.Highlight{
		ID:          2,
		Title:       "Full-Stack Development",
		Description: "Building modern web applications with cutting-edge technologies",
		Icon:        "Code",
	}},
	{3, model.Highlight{
		ID:          3,
		Title:       "AI Integration",
		Description: "Leveraging AI for productivity, automation, and intelligent solutions",
		Icon:        "Brain",
	}},
	{4, model.Highlight{
		ID:          4,
		Title:       "Graphic Design",
		Description: "Creating visually stunning and user-friendly digital experiences",
		Icon:        "Palette",
	}},
}
