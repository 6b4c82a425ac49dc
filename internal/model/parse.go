// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package model

import (
	"fmt"
	"strconv"
	"strings"
)

// SplitCSV splits a comma-separated string into elements, trimming
// whitespace and dropping empty segments. Used for the technologies and
// tags form fields.
func SplitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ParseRatedSkills parses the newline-delimited "name,level" text from
// the skill-category form. Any malformed line fails the whole parse:
// the caller must not persist a partial skill list.
func ParseRatedSkills(s string) ([]RatedSkill, error) {
	lines := strings.Split(s, "\n")
	skills := make([]RatedSkill, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		name, levelStr, found := strings.Cut(line, ",")
		name = strings.TrimSpace(name)
		levelStr = strings.TrimSpace(levelStr)
		if !found || name == "" || levelStr == "" {
			return nil, fmt.Errorf("invalid skill format: %s", line)
		}

		level, err := strconv.Atoi(levelStr)
		if err != nil || level < SkillLevelMin || level > SkillLevelMax {
			return nil, fmt.Errorf("invalid skill format: %s", line)
		}

		skills = append(skills, RatedSkill{Name: name, Level: level})
	}
	if len(skills) == 0 {
		return nil, fmt.Errorf("no skills provided")
	}
	return skills, nil
}
