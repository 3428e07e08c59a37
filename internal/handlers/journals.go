package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodnest/moodnest-backend/pkg/utils"
)

type JournalEntryRequest struct {
	Entry string `json:"entry"`
}

// CreateJournal stores a new journal entry after trimming and bounds-checking
// the text.
func (h *Handler) CreateJournal(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")

	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}

	entry, err := utils.ValidateJournalEntry(req.Entry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.store.AddJournalEntry(r.Context(), userID, entry); err != nil {
		log.Printf("[CreateJournal] Error adding journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusCreated, "Journal entry saved successfully")
}

// UpdateJournal overwrites the entry text, revalidating the same length
// bounds as on create, and stamps updatedAt.
func (h *Handler) UpdateJournal(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")
	journalID := chi.URLParam(r, "journalId")

	var req JournalEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}

	entry, err := utils.ValidateJournalEntry(req.Entry)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.store.UpdateJournalEntry(r.Context(), userID, journalID, entry); err != nil {
		log.Printf("[UpdateJournal] Error updating journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Journal entry updated successfully")
}

// DeleteJournal deletes a journal entry. Idempotent: a non-existent ID still
// returns 200.
func (h *Handler) DeleteJournal(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")
	journalID := chi.URLParam(r, "journalId")

	if err := h.store.DeleteJournalEntry(r.Context(), userID, journalID); err != nil {
		log.Printf("[DeleteJournal] Error deleting journal entry: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Journal entry deleted successfully")
}
