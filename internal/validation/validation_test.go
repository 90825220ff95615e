package validation

import (
	"testing"

	"dsanotes/internal/models"
)

func TestValidateNoteContent(t *testing.T) {
	tests := []struct {
		name    string
		content models.NoteContent
		valid   bool
	}{
		{"minimal valid note", models.NoteContent{Title: "Two Sum"}, true},
		{"missing title", models.NoteContent{Description: "no title"}, false},
		{"whitespace title", models.NoteContent{Title: "   "}, false},
		{"valid difficulty", models.NoteContent{Title: "t", Difficulty: models.DifficultyHard}, true},
		{"bogus difficulty", models.NoteContent{Title: "t", Difficulty: "Impossible"}, false},
		{
			"solution without code",
			models.NoteContent{Title: "t", Solutions: []models.Solution{{Title: "brute force"}}},
			false,
		},
		{
			"example without input",
			models.NoteContent{Title: "t", Examples: []models.Example{{Output: "42"}}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, valid := ValidateNoteContent(&tt.content)
			if valid != tt.valid {
				t.Errorf("ValidateNoteContent() = (%q, %v), want valid=%v", msg, valid, tt.valid)
			}
		})
	}
}

func TestValidateNoteContentDefaults(t *testing.T) {
	content := models.NoteContent{
		Title:     "Two Sum",
		Solutions: []models.Solution{{Code: "def two_sum(): pass"}},
	}
	if msg, ok := ValidateNoteContent(&content); !ok {
		t.Fatalf("expected valid, got %q", msg)
	}
	if content.Difficulty != models.DifficultyMedium {
		t.Errorf("difficulty default = %q, want %q", content.Difficulty, models.DifficultyMedium)
	}
	if content.Solutions[0].Language != "python" {
		t.Errorf("solution language default = %q, want python", content.Solutions[0].Language)
	}
}

func TestValidateLink(t *testing.T) {
	tests := []struct {
		name  string
		link  models.LinkItem
		valid bool
	}{
		{
			"valid leetcode link",
			models.LinkItem{Title: "Two Sum", URL: "https://leetcode.com/problems/two-sum/", Category: "Arrays", Platform: models.PlatformLeetCode},
			true,
		},
		{
			"platform defaults to Other",
			models.LinkItem{Title: "t", URL: "https://example.com", Category: "Misc"},
			true,
		},
		{
			"unknown platform",
			models.LinkItem{Title: "t", URL: "https://example.com", Category: "Misc", Platform: "HackerEarth"},
			false,
		},
		{"missing url", models.LinkItem{Title: "t", Category: "Misc"}, false},
		{"missing category", models.LinkItem{Title: "t", URL: "https://example.com"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, valid := ValidateLink(&tt.link)
			if valid != tt.valid {
				t.Errorf("ValidateLink() = (%q, %v), want valid=%v", msg, valid, tt.valid)
			}
		})
	}
}

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		valid bool
	}{
		{"valid https", "https://leetcode.com/problems/two-sum/", true},
		{"valid http", "http://example.com", true},
		{"javascript scheme", "javascript:alert(1)", false},
		{"data scheme", "data:text/html,<h1>hi</h1>", false},
		{"no host", "https://", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if valid, _ := ValidateURL(tt.url); valid != tt.valid {
				t.Errorf("ValidateURL(%q) = %v, want %v", tt.url, valid, tt.valid)
			}
		})
	}
}
