package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// UpdateSettingsRequest uses pointer fields so an absent field is
// distinguishable from a zero value: only fields present in the body are
// written, everything else is retained (merge semantics).
type UpdateSettingsRequest struct {
	HasAgreedToTerms *bool     `json:"hasAgreedToTerms"`
	WellWishers      *[]string `json:"wellWishers"`
}

// GetUserSettings returns the user's settings document, or the default
// (hasAgreedToTerms=false, wellWishers=[]) when none is stored.
func (h *Handler) GetUserSettings(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")

	settings, err := h.store.GetUserSettings(r.Context(), userID)
	if err != nil {
		log.Printf("[GetUserSettings] Error fetching user settings: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, settings)
}

// UpdateUserSettings merge-updates the settings document; unspecified fields
// are retained.
func (h *Handler) UpdateUserSettings(w http.ResponseWriter, r *http.Request) {
	if h.store == nil {
		writeError(w, http.StatusInternalServerError, errStorageUnavailable)
		return
	}
	userID := chi.URLParam(r, "userId")

	var req UpdateSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}

	fields := map[string]interface{}{}
	if req.HasAgreedToTerms != nil {
		fields["hasAgreedToTerms"] = *req.HasAgreedToTerms
	}
	if req.WellWishers != nil {
		fields["wellWishers"] = *req.WellWishers
	}
	if len(fields) == 0 {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}

	if err := h.store.MergeUserSettings(r.Context(), userID, fields); err != nil {
		log.Printf("[UpdateUserSettings] Error updating user settings: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeMessage(w, http.StatusOK, "Settings updated successfully")
}
