package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/moodnest/moodnest-backend/internal/models"
)

// Collection layout, all rooted under the tenant (app ID) namespace:
//
//	artifacts/{appID}/users/{userID}/userSettings/settings
//	artifacts/{appID}/users/{userID}/moodLogs/{moodID}
//	artifacts/{appID}/users/{userID}/journalEntries/{journalID}
//	artifacts/{appID}/public/data/publicMoods/{moodID}
const (
	artifactsCollection      = "artifacts"
	usersCollection          = "users"
	userSettingsCollection   = "userSettings"
	settingsDocID            = "settings"
	moodLogsCollection       = "moodLogs"
	journalEntriesCollection = "journalEntries"
	publicDocID              = "public"
	publicDataDocID          = "data"
	publicMoodsCollection    = "publicMoods"
)

const opTimeout = 5 * time.Second

// FirestoreStore implements Store against Firestore, scoped to one tenant.
type FirestoreStore struct {
	client *firestore.Client
	appID  string
}

func NewFirestoreStore(client *firestore.Client, appID string) *FirestoreStore {
	return &FirestoreStore{client: client, appID: appID}
}

func (s *FirestoreStore) userDoc(userID string) *firestore.DocumentRef {
	return s.client.Collection(artifactsCollection).Doc(s.appID).Collection(usersCollection).Doc(userID)
}

func (s *FirestoreStore) settingsDoc(userID string) *firestore.DocumentRef {
	return s.userDoc(userID).Collection(userSettingsCollection).Doc(settingsDocID)
}

func (s *FirestoreStore) publicMoods() *firestore.CollectionRef {
	return s.client.Collection(artifactsCollection).Doc(s.appID).
		Collection(publicDocID).Doc(publicDataDocID).Collection(publicMoodsCollection)
}

func (s *FirestoreStore) GetUserSettings(ctx context.Context, userID string) (models.UserSettings, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	snap, err := s.settingsDoc(userID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.DefaultUserSettings(), nil
	}
	if err != nil {
		return models.UserSettings{}, err
	}

	var settings models.UserSettings
	if err := snap.DataTo(&settings); err != nil {
		return models.UserSettings{}, err
	}
	if settings.WellWishers == nil {
		settings.WellWishers = []string{}
	}
	return settings, nil
}

func (s *FirestoreStore) MergeUserSettings(ctx context.Context, userID string, fields map[string]interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.settingsDoc(userID).Set(ctx, fields, firestore.MergeAll)
	return err
}

func (s *FirestoreStore) AddMoodLog(ctx context.Context, userID, mood string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ref, _, err := s.userDoc(userID).Collection(moodLogsCollection).Add(ctx, models.MoodLog{
		Mood:   mood,
		UserID: userID,
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) AddPublicMood(ctx context.Context, userID, mood string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ref, _, err := s.publicMoods().Add(ctx, models.MoodLog{
		Mood:   mood,
		UserID: userID,
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) DeleteMoodLog(ctx context.Context, userID, moodID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	// Firestore deletes are delete-if-exists; no prior existence check.
	_, err := s.userDoc(userID).Collection(moodLogsCollection).Doc(moodID).Delete(ctx)
	return err
}

func (s *FirestoreStore) AddJournalEntry(ctx context.Context, userID, entry string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	ref, _, err := s.userDoc(userID).Collection(journalEntriesCollection).Add(ctx, models.JournalEntry{
		Entry:  entry,
		UserID: userID,
	})
	if err != nil {
		return "", err
	}
	return ref.ID, nil
}

func (s *FirestoreStore) UpdateJournalEntry(ctx context.Context, userID, journalID, entry string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.userDoc(userID).Collection(journalEntriesCollection).Doc(journalID).Update(ctx, []firestore.Update{
		{Path: "entry", Value: entry},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	return err
}

func (s *FirestoreStore) DeleteJournalEntry(ctx context.Context, userID, journalID string) error {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	_, err := s.userDoc(userID).Collection(journalEntriesCollection).Doc(journalID).Delete(ctx)
	return err
}
