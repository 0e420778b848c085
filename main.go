package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"go-spillwatch/assistant"
	"go-spillwatch/config"
	"go-spillwatch/cronjobs"
	"go-spillwatch/routes"
	"go-spillwatch/scenario"
	"go-spillwatch/session"
)

func main() {
	// Load .env file, if present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.InitLogger(cfg.Log); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer zap.L().Sync()

	// Reference data is read-only for the process lifetime; an integrity
	// violation here is a programming error, so refuse to start.
	store := scenario.Default()
	if err := store.Validate(); err != nil {
		zap.L().Fatal("reference data integrity violation", zap.Error(err))
	}
	zap.L().Info("scenario loaded",
		zap.String("scene", store.Scenario().SceneID),
		zap.Int("zones", len(store.Zones())),
		zap.Int("spills", len(store.Spills())))

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		zap.L().Warn("OPENAI_API_KEY not set, assistant will answer with fallback text")
	}
	gateway := assistant.NewGateway(assistant.Options{
		APIKey:      apiKey,
		Model:       cfg.Assistant.Model,
		Temperature: float32(cfg.Assistant.Temperature),
		MaxTokens:   cfg.Assistant.MaxTokens,
		Timeout:     time.Duration(cfg.Assistant.TimeoutSecs) * time.Second,
	})

	manager := session.NewManager(store, gateway, time.Duration(cfg.Session.TTLMinutes)*time.Minute)

	// Scheduled maintenance (idle session reaper)
	cronjobs.InitCronJobs(manager, cfg.Session.ReapSchedule)

	r := routes.SetupRouter(store, manager)
	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}
