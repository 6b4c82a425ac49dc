package model

import (
	"testing"
)

func TestSplitCSV(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "trims whitespace",
			input: "React, Node.js,  MongoDB",
			want:  []string{"React", "Node.js", "MongoDB"},
		},
		{
			name:  "drops empty segments",
			input: "Go,, ,Rust,",
			want:  []string{"Go", "Rust"},
		},
		{
			name:  "single value",
			input: "Python",
			want:  []string{"Python"},
		},
		{
			name:  "empty input",
			input: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCSV(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitCSV(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("element %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseRatedSkills(t *testing.T) {
	skills, err := ParseRatedSkills("Python,90\nJavaScript, 85\r\nSQL,80")
	if err != nil {
		t.Fatalf("ParseRatedSkills failed: %v", err)
	}
	if len(skills) != 3 {
		t.Fatalf("got %d skills, want 3", len(skills))
	}
	if skills[0].Name != "Python" || skills[0].Level != 90 {
		t.Errorf("first skill = %+v, want Python/90", skills[0])
	}
	if skills[1].Name != "JavaScript" || skills[1].Level != 85 {
		t.Errorf("second skill = %+v, want JavaScript/85", skills[1])
	}
}

func TestParseRatedSkillsSkipsBlankLines(t *testing.T) {
	skills, err := ParseRatedSkills("Python,90\n\n  \nBash,85\n")
	if err != nil {
		t.Fatalf("ParseRatedSkills failed: %v", err)
	}
	if len(skills) != 2 {
		t.Fatalf("got %d skills, want 2", len(skills))
	}
}

func TestParseRatedSkillsRejectsMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"level out of range", "Python,90\nJavaScript,150"},
		{"negative level", "Python,-1"},
		{"non-numeric level", "Python,expert"},
		{"missing level", "Python"},
		{"missing name", ",90"},
		{"empty input", ""},
		{"only blank lines", "\n  \n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseRatedSkills(tt.input); err == nil {
				t.Errorf("ParseRatedSkills(%q) succeeded, want error", tt.input)
			}
		})
	}
}

func TestIsOneOf(t *testing.T) {
	if !IsOneOf("security", ProjectCategories) {
		t.Error("security should be a valid project category")
	}
	if IsOneOf("Security", ProjectCategories) {
		t.Error("category match must be case-sensitive")
	}
	if IsOneOf("", DesignCategories) {
		t.Error("empty string is never a valid category")
	}
}
