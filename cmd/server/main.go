package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/moodnest/moodnest-backend/internal/ai"
	"github.com/moodnest/moodnest-backend/internal/config"
	"github.com/moodnest/moodnest-backend/internal/database"
	"github.com/moodnest/moodnest-backend/internal/handlers"
	"github.com/moodnest/moodnest-backend/internal/middleware"
	"github.com/moodnest/moodnest-backend/internal/routes"
	"github.com/moodnest/moodnest-backend/internal/store"
)

func main() {
	// Load env
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found")
	}
	// Load configuration
	cfg := config.Load()

	ctx := context.Background()

	// Connect to Firestore. A missing or bad credential degrades storage
	// endpoints to 500s instead of killing the process.
	var st store.Store
	if cfg.FirebaseCredentials != "" {
		client, err := database.Connect(ctx, cfg.FirebaseCredentials)
		if err != nil {
			log.Printf("⚠️  WARNING: Failed to initialize Firestore: %v", err)
			log.Println("   Settings, mood and journal endpoints will not be available")
		} else {
			defer client.Close()
			st = store.NewFirestoreStore(client, cfg.AppID)
			log.Println("✅ Firestore client initialized")
		}
	} else {
		log.Println("⚠️  WARNING: FIREBASE_SERVICE_ACCOUNT_KEY not set. Storage will not be available")
	}

	// Initialize the Gemini generation client
	var gen ai.Generator
	if cfg.GeminiAPIKey != "" {
		svc, err := ai.NewGeminiService(ctx, cfg.GeminiAPIKey)
		if err != nil {
			log.Printf("⚠️  WARNING: Failed to initialize Gemini: %v", err)
			log.Println("   AI endpoints will not be available")
		} else {
			defer svc.Close()
			gen = svc
			log.Println("✅ Gemini client initialized")
		}
	} else {
		log.Println("⚠️  WARNING: GEMINI_API_KEY not set. AI endpoints will not be available")
	}

	// Setup router
	r := chi.NewRouter()

	// Custom CORS: set headers and respond to OPTIONS with 200 so preflight never gets 403
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.RequestLogger)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Setup routes
	h := handlers.New(st, gen)
	routes.SetupRoutes(r, h)

	log.Printf("Running with app ID: %s", cfg.AppID)
	log.Printf("🚀 Moodnest backend running on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
