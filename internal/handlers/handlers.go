package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodnest/moodnest-backend/internal/ai"
	"github.com/moodnest/moodnest-backend/internal/store"
)

// Fixed collaborator-unavailable messages, surfaced as 500 per request.
const (
	errStorageUnavailable = "Firestore not initialized."
	errAIUnavailable      = "Gemini API not configured."
	errNoData             = "No data provided."
)

// Handler holds the collaborator clients. Either may be nil when its
// credential was missing or invalid at startup; the corresponding endpoints
// then return 500 without touching any input. No other state is shared
// between requests.
type Handler struct {
	store store.Store
	gen   ai.Generator
}

func New(st store.Store, gen ai.Generator) *Handler {
	return &Handler{store: st, gen: gen}
}

type errorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, messageResponse{Message: msg})
}
