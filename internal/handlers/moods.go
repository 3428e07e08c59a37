package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/moodnest/moodnest-backend/pkg/utils"
)

type AddMoodRequest struct {
	Mood string `json:"mood"`
}

// AddMood appends a mood log to the user's private collection and a copy to
// the tenant-wide public mood board. The two writes are sequential and
// best-effort: if the public write fails the private copy persists with no
// rollback.
func (h *Handler) AddMood(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")

	var req AddMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}
	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "Mood is required")
		return
	}

	if _, err := h.store.AddMoodLog(r.Context(), userID, req.Mood); err != nil {
		log.Printf("[AddMood] Error adding mood log: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	if _, err := h.store.AddPublicMood(r.Context(), userID, req.Mood); err != nil {
		log.Printf("[AddMood] Error adding public mood: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	// Well-wisher notification is intentionally inert: read the settings,
	// log the simulated notice, perform no side effect.
	settings, err := h.store.GetUserSettings(r.Context(), userID)
	if err != nil {
		log.Printf("[AddMood] Error reading settings for well-wisher check: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if settings.HasAgreedToTerms && len(settings.WellWishers) > 0 {
		log.Printf("[AddMood] Simulating prolonged depression check for user %s (mood score %d), potential notification to well-wishers: %v",
			userID, utils.MoodScore(req.Mood), settings.WellWishers)
	}

	writeMessage(w, http.StatusCreated, "Mood logged successfully")
}

// DeleteMood deletes a private mood log. Deleting an ID that does not exist
// still returns 200 (delete-if-exists semantics).
func (h *Handler) DeleteMood(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")
	moodID := chi.URLParam(r, "moodId")

	if err := h.store.DeleteMoodLog(r.Context(), userID, moodID); err != nil {
		log.Printf("[DeleteMood] Error deleting mood log: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Mood log deleted successfully")
}
