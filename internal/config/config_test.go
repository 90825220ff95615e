package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsAdminEmail(t *testing.T) {
	cfg := &Config{AdminEmails: []string{"admin@example.com", "Second@Example.com"}}

	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"exact match", "admin@example.com", true},
		{"case insensitive", "ADMIN@EXAMPLE.COM", true},
		{"second entry mixed case", "second@example.com", true},
		{"not on list", "visitor@example.com", false},
		{"empty email never matches", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cfg.IsAdminEmail(tt.email); got != tt.want {
				t.Errorf("IsAdminEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsAdminEmail_EmptyAllowList(t *testing.T) {
	cfg := &Config{}
	if cfg.IsAdminEmail("anyone@example.com") {
		t.Error("IsAdminEmail() with empty allow-list = true, want false")
	}
}

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single", "a@example.com", []string{"a@example.com"}},
		{"multiple with spaces", "a@example.com, b@example.com ,c@example.com", []string{"a@example.com", "b@example.com", "c@example.com"}},
		{"trailing comma", "a@example.com,", []string{"a@example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadSeedLinks(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed_links.yaml")

	content := `links:
  - title: Two Sum - LeetCode
    url: https://leetcode.com/problems/two-sum/
    category: Arrays & Hashing
    platform: LeetCode
    difficulty: Easy
  - title: Minimal Entry
    url: https://example.com/problem
    category: Misc
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	seed, err := LoadSeedLinks(path)
	if err != nil {
		t.Fatalf("LoadSeedLinks() error = %v", err)
	}
	if len(seed.Links) != 2 {
		t.Fatalf("LoadSeedLinks() returned %d links, want 2", len(seed.Links))
	}
	if seed.Links[0].Title != "Two Sum - LeetCode" {
		t.Errorf("LoadSeedLinks() title = %q, want %q", seed.Links[0].Title, "Two Sum - LeetCode")
	}
	if seed.Links[0].Difficulty != "Easy" {
		t.Errorf("LoadSeedLinks() difficulty = %q, want %q", seed.Links[0].Difficulty, "Easy")
	}
	if seed.Links[1].Platform != "" {
		t.Errorf("LoadSeedLinks() platform = %q, want empty", seed.Links[1].Platform)
	}
}

func TestLoadSeedLinks_MissingFile(t *testing.T) {
	seed, err := LoadSeedLinks(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadSeedLinks() missing file error = %v, want nil", err)
	}
	if len(seed.Links) != 0 {
		t.Errorf("LoadSeedLinks() missing file links = %v, want empty", seed.Links)
	}
}

func TestLoadSeedNotes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "seed_notes.yaml")

	content := `notes:
  - id: valid-triangle
    title: Valid Triangle
    description: Check if three sides form a valid triangle.
    difficulty: Easy
    category: Basics
    tags: [Conditionals, C]
    examples:
      - input: a=6, b=7, c=8
        output: "Yes"
    solutions:
      - title: Triangle Check Logic
        language: c
        code: "if (a+b > c && b+c > a && c+a > b)"
  - id: binary-representation
    title: Binary Representation & Data Types
    description: Signed vs unsigned ranges and 2's complement.
    tips:
      - "Range of signed n-bit integer: -2^(n-1) to 2^(n-1) - 1."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	seed, err := LoadSeedNotes(path)
	if err != nil {
		t.Fatalf("LoadSeedNotes() error = %v", err)
	}
	if len(seed.Notes) != 2 {
		t.Fatalf("LoadSeedNotes() returned %d notes, want 2", len(seed.Notes))
	}
	if seed.Notes[0].ID != "valid-triangle" {
		t.Errorf("LoadSeedNotes() id = %q, want %q", seed.Notes[0].ID, "valid-triangle")
	}
	if len(seed.Notes[0].Solutions) != 1 || seed.Notes[0].Solutions[0].Language != "c" {
		t.Errorf("LoadSeedNotes() solutions = %+v, want one c solution", seed.Notes[0].Solutions)
	}
	if len(seed.Notes[1].Solutions) != 0 {
		t.Errorf("LoadSeedNotes() theory note solutions = %+v, want none", seed.Notes[1].Solutions)
	}
}

func TestLoadSeedNotes_MissingFile(t *testing.T) {
	seed, err := LoadSeedNotes(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadSeedNotes() missing file error = %v, want nil", err)
	}
	if len(seed.Notes) != 0 {
		t.Errorf("LoadSeedNotes() missing file notes = %v, want empty", seed.Notes)
	}
}

func TestLoadSeedLinks_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.yaml")
	if err := os.WriteFile(path, []byte("links: [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write seed file: %v", err)
	}

	if _, err := LoadSeedLinks(path); err == nil {
		t.Error("LoadSeedLinks() invalid yaml error = nil, want error")
	}
}
