package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SeedLink is one curated link entry from the seed file.
type SeedLink struct {
	Title      string `yaml:"title"`
	URL        string `yaml:"url"`
	Category   string `yaml:"category"`
	Platform   string `yaml:"platform,omitempty"`
	Difficulty string `yaml:"difficulty,omitempty"`
}

// SeedFile is the structure of the optional seed_links.yaml file.
type SeedFile struct {
	Links []SeedLink `yaml:"links"`
}

// LoadSeedLinks parses the seed links file. A missing file is not an error,
// it just means there is nothing to seed.
func LoadSeedLinks(path string) (*SeedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SeedFile{}, nil
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed SeedFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}

// SeedSolution is one code solution attached to a seed note.
type SeedSolution struct {
	Title    string `yaml:"title,omitempty"`
	Language string `yaml:"language"`
	Code     string `yaml:"code"`
	IsPseudo bool   `yaml:"isPseudo,omitempty"`
}

// SeedExample is one worked input/output case on a seed note.
type SeedExample struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output,omitempty"`
	Explanation string `yaml:"explanation,omitempty"`
}

// SeedNote is one starter study note from the seed file. The id is fixed so
// repeated seeding recognises notes it already created.
type SeedNote struct {
	ID              string         `yaml:"id"`
	Title           string         `yaml:"title"`
	Description     string         `yaml:"description"`
	FullDescription string         `yaml:"fullDescription,omitempty"`
	Difficulty      string         `yaml:"difficulty,omitempty"`
	Category        string         `yaml:"category,omitempty"`
	Tags            []string       `yaml:"tags,omitempty"`
	Tips            []string       `yaml:"tips,omitempty"`
	Examples        []SeedExample  `yaml:"examples,omitempty"`
	Solutions       []SeedSolution `yaml:"solutions,omitempty"`
}

// SeedNotesFile is the structure of the optional seed_notes.yaml file.
type SeedNotesFile struct {
	Notes []SeedNote `yaml:"notes"`
}

// LoadSeedNotes parses the seed notes file. As with links, a missing file
// just means there is nothing to seed.
func LoadSeedNotes(path string) (*SeedNotesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &SeedNotesFile{}, nil
		}
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var seed SeedNotesFile
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}
	return &seed, nil
}
