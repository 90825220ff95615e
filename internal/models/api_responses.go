package models

// ResolveResponse is returned after a suggestion is approved or rejected.
type ResolveResponse struct {
	SuggestionID string `json:"suggestionId"`
	Status       string `json:"status"`
	NoteID       string `json:"noteId,omitempty"`
}

// DeleteResponse confirms a deletion by echoing the removed id.
type DeleteResponse struct {
	DeletedID string `json:"deletedId"`
}

// ProgressResponse carries the completed note ids for the current user.
type ProgressResponse struct {
	Completed []string `json:"completed"`
}

// SeedResponse reports how many seed entries were inserted.
type SeedResponse struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

// MigrateDifficultyResponse reports the difficulty backfill outcome.
type MigrateDifficultyResponse struct {
	Updated int `json:"updated"`
}
