package utils

import (
	"strings"
	"unicode/utf8"
)

const (
	MinJournalEntryLength = 10
	MaxJournalEntryLength = 2000
)

// ValidateJournalEntry trims the entry and checks its length bounds.
// Lengths are counted in characters (runes), not bytes, so multi-byte text
// is bounded the same way the frontend counts it. Applied identically on
// create and update.
func ValidateJournalEntry(entry string) (string, error) {
	trimmed := strings.TrimSpace(entry)

	if n := utf8.RuneCountInString(trimmed); n < MinJournalEntryLength || n > MaxJournalEntryLength {
		return "", &ValidationError{Field: "entry", Message: "Journal entry must be between 10 and 2000 characters."}
	}

	return trimmed, nil
}
