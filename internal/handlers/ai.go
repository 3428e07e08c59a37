package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
)

type SummarizeJournalRequest struct {
	Text string `json:"text"`
}

type SummarizeJournalResponse struct {
	Summary string `json:"summary"`
}

type CopingSuggestionRequest struct {
	Mood string `json:"mood"`
}

type CopingSuggestionResponse struct {
	Suggestion string `json:"suggestion"`
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// SummarizeJournal forwards the journal text to the generation collaborator
// inside a fixed summarization prompt.
func (h *Handler) SummarizeJournal(w http.ResponseWriter, r *http.Request) {
	if h.gen == nil {
		writeError(w, http.StatusInternalServerError, errAIUnavailable)
		return
	}

	var req SummarizeJournalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "Journal text is required for summarization.")
		return
	}

	prompt := fmt.Sprintf("Summarize the following journal entry concisely: \"%s\"", req.Text)
	summary, err := h.gen.Generate(r.Context(), prompt)
	if err != nil {
		log.Printf("[SummarizeJournal] Error summarizing journal: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, SummarizeJournalResponse{Summary: summary})
}

// CopingSuggestion asks the generation collaborator for a short coping
// suggestion for the given mood.
func (h *Handler) CopingSuggestion(w http.ResponseWriter, r *http.Request) {
	if h.gen == nil {
		writeError(w, http.StatusInternalServerError, errAIUnavailable)
		return
	}

	var req CopingSuggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}
	if req.Mood == "" {
		writeError(w, http.StatusBadRequest, "Mood is required for coping suggestion.")
		return
	}

	prompt := fmt.Sprintf("Given that someone is feeling %s, provide a short, positive coping suggestion or a thoughtful insight (max 50 words).", req.Mood)
	suggestion, err := h.gen.Generate(r.Context(), prompt)
	if err != nil {
		log.Printf("[CopingSuggestion] Error getting coping suggestion: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, CopingSuggestionResponse{Suggestion: suggestion})
}

// Chat sends the user's latest message straight to the generation
// collaborator. Conversation history, if any, is the client's concern.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	if h.gen == nil {
		writeError(w, http.StatusInternalServerError, errAIUnavailable)
		return
	}

	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errNoData)
		return
	}
	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "Message is required for chat.")
		return
	}

	response, err := h.gen.Generate(r.Context(), req.Message)
	if err != nil {
		log.Printf("[Chat] Error during AI chat: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, ChatResponse{Response: response})
}
