package models

import "time"

// Suggestion status values. A suggestion starts pending and moves exactly
// once to approved or rejected.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Resolution actions accepted by the resolve endpoint.
const (
	ActionApprove = "approve"
	ActionReject  = "reject"
)

// AnonymousSubmitter attributes submissions from callers with no identity.
const AnonymousSubmitter = "Anonymous"

// Suggestion is a note-shaped proposal waiting for admin review. It embeds
// the content that would become the note plus workflow metadata that never
// crosses into the notes table.
type Suggestion struct {
	SuggestionID string `json:"suggestionId"`
	OriginalID   string `json:"originalId,omitempty"`
	NoteID       string `json:"noteId,omitempty"`
	NoteContent
	Status      string     `json:"status"`
	SubmittedBy string     `json:"submittedBy"`
	SubmittedAt time.Time  `json:"submittedAt"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
}

// IsEdit reports whether the suggestion targets an existing note.
func (s *Suggestion) IsEdit() bool {
	return s.OriginalID != ""
}

// TargetNoteID returns the note id an approval would write to: the original
// note for edits, the embedded id for new proposals, or empty when the
// approval should mint a fresh id.
func (s *Suggestion) TargetNoteID() string {
	if s.OriginalID != "" {
		return s.OriginalID
	}
	return s.NoteID
}
