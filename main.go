package main

import (
	"github.com/PackPilot/packpilot-backend/config"
	"github.com/PackPilot/packpilot-backend/handlers"
	"github.com/PackPilot/packpilot-backend/internal/engine"
	"github.com/PackPilot/packpilot-backend/logger"
	"github.com/PackPilot/packpilot-backend/router"
	"github.com/PackPilot/packpilot-backend/services"
	"github.com/PackPilot/packpilot-backend/store"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	flags := config.GetFeatureFlags()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Checklist engine over the static configuration
	var engineOpts []engine.Option
	if flags.EnableWeatherAPI {
		weatherService := services.NewWeatherService(cfg.Weather)
		engineOpts = append(engineOpts, engine.WithWeather(weatherService, true))
		log.Info("Weather adjustments enabled")
	}
	eng := engine.NewEngine(cfg.Engine.TemplateDir, cfg.Engine.RulesFile, engineOpts...)

	// Services and handlers
	checklistStore := store.NewMemoryStore()
	checklistService := services.NewChecklistService(eng, checklistStore)
	healthService := services.NewHealthService(cfg.Engine, cfg.Server.Version)

	deps := router.Dependencies{
		Config:                cfg,
		ChecklistHandler:      handlers.NewChecklistHandler(checklistService),
		RecommendationHandler: handlers.NewRecommendationHandler(eng, flags.EnableRecommendations),
		HealthHandler:         handlers.NewHealthHandler(healthService),
		Logger:                log,
	}
	r := router.SetupRouter(deps)

	log.Infof("Starting server on port %s", cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
