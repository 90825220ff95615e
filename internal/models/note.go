package models

import "time"

// Difficulty levels shared by notes, suggestions, and links.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Complexity describes time/space characteristics, either for a whole note
// or for one specific solution.
type Complexity struct {
	Time     string `json:"time,omitempty"`
	Space    string `json:"space,omitempty"`
	Analysis string `json:"analysis,omitempty"`
}

// Example is one worked input/output case from the study notes.
type Example struct {
	Input       string `json:"input"`
	Output      string `json:"output,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// Solution is one code solution attached to a note. IsPseudo marks logic
// outlines that are not runnable code.
type Solution struct {
	Title      string      `json:"title,omitempty"`
	Language   string      `json:"language"`
	Code       string      `json:"code"`
	IsPseudo   bool        `json:"isPseudo,omitempty"`
	Complexity *Complexity `json:"complexity,omitempty"`
}

// NoteContent holds the fields a suggestion may carry into a note. Approving
// a suggestion copies exactly this struct and nothing else, so workflow
// metadata can never leak into published notes.
type NoteContent struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	FullDescription string      `json:"fullDescription,omitempty"`
	Difficulty      string      `json:"difficulty,omitempty"`
	Category        string      `json:"category,omitempty"`
	Date            *time.Time  `json:"date,omitempty"`
	Tags            []string    `json:"tags,omitempty"`
	Tips            []string    `json:"tips,omitempty"`
	Complexity      *Complexity `json:"complexity,omitempty"`
	Examples        []Example   `json:"examples,omitempty"`
	Solutions       []Solution  `json:"solutions,omitempty"`
}

// Note is a published study note.
type Note struct {
	ID string `json:"id"`
	NoteContent
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
