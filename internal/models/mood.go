package models

import "time"

// MoodLog is one mood-submission event. The private copy lives under the
// user's moodLogs collection; an identical copy is written to the tenant-wide
// publicMoods collection. Append-only: never updated, only deleted.
type MoodLog struct {
	Mood      string    `json:"mood" firestore:"mood"`
	Timestamp time.Time `json:"timestamp" firestore:"timestamp,serverTimestamp"`
	UserID    string    `json:"userId" firestore:"userId"`
}
