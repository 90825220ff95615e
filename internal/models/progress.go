package models

import "time"

// UserProgress tracks which notes a user has marked complete. Records are
// created lazily on first read/write or sign-in; this table doubles as the
// user registry since there is no separate user entity.
type UserProgress struct {
	Email          string    `json:"email"`
	CompletedNotes []string  `json:"completedNotes"`
	LastActive     time.Time `json:"lastActive"`
}

// UserSummary is one row of the admin user listing, derived from whoever
// has a progress record.
type UserSummary struct {
	Email      string    `json:"email"`
	LastActive time.Time `json:"lastActive"`
}
