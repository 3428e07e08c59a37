package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/moodnest/moodnest-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// Auth (stub - identity is verified client-side)
	r.Get("/api/auth/current_user", h.CurrentUser)

	// User settings routes
	r.Get("/api/user/settings/{userId}", h.GetUserSettings)
	r.Post("/api/user/settings/{userId}", h.UpdateUserSettings)

	// Mood logging routes
	r.Post("/api/moods/{userId}", h.AddMood)
	r.Delete("/api/moods/{userId}/{moodId}", h.DeleteMood)

	// Journaling routes
	r.Post("/api/journals/{userId}", h.CreateJournal)
	r.Put("/api/journals/{userId}/{journalId}", h.UpdateJournal)
	r.Delete("/api/journals/{userId}/{journalId}", h.DeleteJournal)

	// AI routes
	r.Post("/api/ai/summarize_journal", h.SummarizeJournal)
	r.Post("/api/ai/coping_suggestion", h.CopingSuggestion)
	r.Post("/api/ai/chat", h.Chat)
}
