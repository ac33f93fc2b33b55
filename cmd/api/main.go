package main

import (
	"context"
	"log"

	"github.com/fitgenius/backend/config"
	"github.com/fitgenius/backend/internal/api"
	"github.com/fitgenius/backend/internal/database"
	"github.com/fitgenius/backend/internal/genai"
	"github.com/fitgenius/backend/internal/middleware"
	"github.com/fitgenius/backend/internal/server"
	"github.com/fitgenius/backend/internal/service"
	"github.com/fitgenius/backend/internal/store"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize persistence
	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	var s store.Store
	if db == nil {
		log.Printf("Using in-memory store; data is lost on restart")
		s = store.NewMemoryStore()
	} else {
		gs := store.NewGormStore(db)
		if err := gs.Migrate(context.Background()); err != nil {
			log.Fatalf("Failed to migrate database: %v", err)
		}
		s = gs
	}

	// Rate limiting is optional
	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		log.Printf("Rate limiting disabled: %v", err)
		redisClient = nil
	}
	limiter := middleware.NewGenerationRateLimiter(redisClient, cfg.RateLimitPerHour)

	// Initialize services
	gen := genai.NewClient(genai.Config{
		APIKey:  cfg.GeminiAPIKey,
		BaseURL: cfg.GenAIBaseURL,
		Model:   cfg.GeminiModel,
	})
	fast := service.ProviderConfig{Model: cfg.GeminiModel, Timeout: cfg.GenAITimeout}
	planner := service.ProviderConfig{Model: cfg.GeminiPlanModel, Timeout: cfg.GenAITimeout}

	tips := service.NewRecommendationService(gen, fast)
	svc := api.Services{
		BMI:      service.NewBMIService(s, tips),
		Profiles: service.NewProfileService(s),
		Chat:     service.NewChatService(s, gen, fast),
		Plans:    service.NewDietPlanService(s, gen, planner),
		Tips:     tips,
	}

	// Create and start server
	srv := server.New(cfg, svc, limiter)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}
