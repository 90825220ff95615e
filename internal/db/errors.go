package db

import "errors"

// Domain-level database error sentinels.
var (
	// Note errors
	ErrNoteNotFound    = errors.New("note not found")
	ErrDuplicateNoteID = errors.New("note id already exists")

	// Suggestion errors. A terminal suggestion is reported the same as a
	// missing one so a second resolve can never re-apply it.
	ErrSuggestionNotFound = errors.New("suggestion not found or already processed")

	// Link errors
	ErrLinkNotFound    = errors.New("link not found")
	ErrDuplicateLinkID = errors.New("link id already exists")
)
