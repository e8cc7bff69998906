package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/ndi-assess/backend/internal/assessments"
	"github.com/ndi-assess/backend/internal/auth"
	"github.com/ndi-assess/backend/internal/catalog"
	"github.com/ndi-assess/backend/internal/dashboard"
	"github.com/ndi-assess/backend/internal/database"
	"github.com/ndi-assess/backend/internal/middleware"
	"github.com/ndi-assess/backend/internal/scoring"
	"github.com/rs/cors"
)

func main() {
	// Optional .env for local development
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Stores and services
	catalogStore := catalog.NewStore(db)
	if err := catalogStore.Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	assessmentStore := assessments.NewStore(db)
	scoringService := scoring.NewService(catalogStore, assessmentStore)
	assessmentService := assessments.NewService(assessmentStore, catalogStore, scoringService)

	// Handlers
	authHandler := auth.NewHandler(db)
	catalogHandler := catalog.NewHandler(catalogStore)
	assessmentHandler := assessments.NewHandler(assessmentService)
	scoringHandler := scoring.NewHandler(scoringService)
	dashboardHandler := dashboard.NewHandler(db, scoringService)

	// Setup router
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes
	api.HandleFunc("/auth/register", authHandler.Register).Methods("POST")
	api.HandleFunc("/auth/login", authHandler.Login).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/auth/me", authHandler.GetCurrentUser).Methods("GET")

	protected.HandleFunc("/domains", catalogHandler.ListDomains).Methods("GET")
	protected.HandleFunc("/domains/{code}", catalogHandler.GetDomain).Methods("GET")

	protected.HandleFunc("/assessments", assessmentHandler.Create).Methods("POST")
	protected.HandleFunc("/assessments", assessmentHandler.List).Methods("GET")
	protected.HandleFunc("/assessments/{id}", assessmentHandler.Get).Methods("GET")
	protected.HandleFunc("/assessments/{id}", assessmentHandler.Update).Methods("PUT")
	protected.HandleFunc("/assessments/{id}", assessmentHandler.Delete).Methods("DELETE")
	protected.HandleFunc("/assessments/{id}/responses", assessmentHandler.ListResponses).Methods("GET")
	protected.HandleFunc("/assessments/{id}/responses", assessmentHandler.SaveResponse).Methods("POST")
	protected.HandleFunc("/assessments/{id}/submit", assessmentHandler.Submit).Methods("POST")

	protected.HandleFunc("/assessments/{id}/scores/maturity", scoringHandler.GetMaturityScore).Methods("GET")
	protected.HandleFunc("/assessments/{id}/scores/compliance", scoringHandler.GetComplianceScore).Methods("GET")
	protected.HandleFunc("/assessments/{id}/scores/recalculate", scoringHandler.Recalculate).Methods("POST")
	protected.HandleFunc("/assessments/{id}/report", scoringHandler.GetReport).Methods("GET")

	protected.HandleFunc("/dashboard/stats", dashboardHandler.GetStats).Methods("GET")
	protected.HandleFunc("/dashboard/domain-summary", dashboardHandler.GetDomainSummary).Methods("GET")

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
