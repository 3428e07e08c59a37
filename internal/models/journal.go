package models

import "time"

// JournalEntry is one journal submission. Entry text is stored trimmed and
// is revalidated on every update; UpdatedAt is only present after an edit.
type JournalEntry struct {
	Entry     string     `json:"entry" firestore:"entry"`
	Timestamp time.Time  `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty" firestore:"updatedAt,omitempty"`
	UserID    string     `json:"userId" firestore:"userId"`
}
