package handlers_test

import (
	"context"
	"errors"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/moodnest/moodnest-backend/internal/ai"
	"github.com/moodnest/moodnest-backend/internal/handlers"
	"github.com/moodnest/moodnest-backend/internal/models"
	"github.com/moodnest/moodnest-backend/internal/routes"
	"github.com/moodnest/moodnest-backend/internal/store"
)

// fakeStore is an in-memory Store. Settings documents are held as raw field
// maps so merge semantics (partial overwrite, unspecified fields retained)
// behave like the real collaborator's.
type fakeStore struct {
	settings    map[string]map[string]interface{}
	moodLogs    map[string]map[string]models.MoodLog
	publicMoods map[string]models.MoodLog
	journals    map[string]map[string]models.JournalEntry
	err         error // when set, every operation fails with it
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		settings:    map[string]map[string]interface{}{},
		moodLogs:    map[string]map[string]models.MoodLog{},
		publicMoods: map[string]models.MoodLog{},
		journals:    map[string]map[string]models.JournalEntry{},
	}
}

func (f *fakeStore) GetUserSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	if f.err != nil {
		return models.UserSettings{}, f.err
	}
	doc, ok := f.settings[userID]
	if !ok {
		return models.DefaultUserSettings(), nil
	}
	out := models.DefaultUserSettings()
	if v, ok := doc["hasAgreedToTerms"].(bool); ok {
		out.HasAgreedToTerms = v
	}
	if v, ok := doc["wellWishers"].([]string); ok {
		out.WellWishers = v
	}
	return out, nil
}

func (f *fakeStore) MergeUserSettings(ctx context.Context, userID string, fields map[string]interface{}) error {
	if f.err != nil {
		return f.err
	}
	doc := f.settings[userID]
	if doc == nil {
		doc = map[string]interface{}{}
	}
	for k, v := range fields {
		doc[k] = v
	}
	f.settings[userID] = doc
	return nil
}

func (f *fakeStore) AddMoodLog(ctx context.Context, userID, mood string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.moodLogs[userID] == nil {
		f.moodLogs[userID] = map[string]models.MoodLog{}
	}
	id := uuid.NewString()
	f.moodLogs[userID][id] = models.MoodLog{Mood: mood, Timestamp: time.Now(), UserID: userID}
	return id, nil
}

func (f *fakeStore) AddPublicMood(ctx context.Context, userID, mood string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	id := uuid.NewString()
	f.publicMoods[id] = models.MoodLog{Mood: mood, Timestamp: time.Now(), UserID: userID}
	return id, nil
}

func (f *fakeStore) DeleteMoodLog(ctx context.Context, userID, moodID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.moodLogs[userID], moodID)
	return nil
}

func (f *fakeStore) AddJournalEntry(ctx context.Context, userID, entry string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if f.journals[userID] == nil {
		f.journals[userID] = map[string]models.JournalEntry{}
	}
	id := uuid.NewString()
	f.journals[userID][id] = models.JournalEntry{Entry: entry, Timestamp: time.Now(), UserID: userID}
	return id, nil
}

func (f *fakeStore) UpdateJournalEntry(ctx context.Context, userID, journalID, entry string) error {
	if f.err != nil {
		return f.err
	}
	doc, ok := f.journals[userID][journalID]
	if !ok {
		return errors.New("no document to update")
	}
	now := time.Now()
	doc.Entry = entry
	doc.UpdatedAt = &now
	f.journals[userID][journalID] = doc
	return nil
}

func (f *fakeStore) DeleteJournalEntry(ctx context.Context, userID, journalID string) error {
	if f.err != nil {
		return f.err
	}
	delete(f.journals[userID], journalID)
	return nil
}

var _ store.Store = (*fakeStore)(nil)

// fakeGenerator records the last prompt and replies with a fixed string.
type fakeGenerator struct {
	reply      string
	err        error
	lastPrompt string
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

var _ ai.Generator = (*fakeGenerator)(nil)

// newTestRouter wires a handler with the given collaborators into a chi
// router so tests exercise the real route table and URL params.
func newTestRouter(st store.Store, gen ai.Generator) *chi.Mux {
	r := chi.NewRouter()
	routes.SetupRoutes(r, handlers.New(st, gen))
	return r
}
