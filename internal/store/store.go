package store

import (
	"context"

	"github.com/moodnest/moodnest-backend/internal/models"
)

// Store is the per-entity CRUD surface over the document database. Handlers
// depend on this interface so tests can substitute an in-memory fake.
//
// Every operation is one independent, non-transactional round-trip; in
// particular the mood dual-write (AddMoodLog then AddPublicMood) has no
// atomicity guarantee across the two collections.
type Store interface {
	// GetUserSettings returns the stored settings document, or
	// models.DefaultUserSettings() when none exists.
	GetUserSettings(ctx context.Context, userID string) (models.UserSettings, error)

	// MergeUserSettings applies a partial overwrite: fields not present in
	// the map are retained on the stored document.
	MergeUserSettings(ctx context.Context, userID string, fields map[string]interface{}) error

	// AddMoodLog appends to the user's private mood collection and returns
	// the server-assigned document ID.
	AddMoodLog(ctx context.Context, userID, mood string) (string, error)

	// AddPublicMood appends the tenant-wide copy of a mood log.
	AddPublicMood(ctx context.Context, userID, mood string) (string, error)

	// DeleteMoodLog deletes a mood log. Deleting a non-existent document is
	// not an error.
	DeleteMoodLog(ctx context.Context, userID, moodID string) error

	// AddJournalEntry stores a new journal entry (already trimmed and
	// validated by the caller) and returns the server-assigned document ID.
	AddJournalEntry(ctx context.Context, userID, entry string) (string, error)

	// UpdateJournalEntry overwrites the entry text and stamps updatedAt.
	// Updating a non-existent document is an error.
	UpdateJournalEntry(ctx context.Context, userID, journalID, entry string) error

	// DeleteJournalEntry deletes a journal entry. Deleting a non-existent
	// document is not an error.
	DeleteJournalEntry(ctx context.Context, userID, journalID string) error
}
