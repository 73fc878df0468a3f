package main

import (
	"context"
	"fmt"
	"os"

	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/app"
	"github.com/healthtrack/healthtrack-backend/internal/db"
	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/handlers"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
	"github.com/healthtrack/healthtrack-backend/internal/server"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Config
	cfg, err := app.LoadConfig(log)
	if err != nil {
		log.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	// Database: Postgres in production, SQLite fallback for local runs.
	var gdb *gorm.DB
	if cfg.DBDriver == "sqlite" {
		sqliteService, err := db.NewSQLiteService(log)
		if err != nil {
			log.Error("SQLite init failed", "error", err)
			os.Exit(1)
		}
		if err := sqliteService.AutoMigrateAll(); err != nil {
			log.Error("SQLite auto migration failed", "error", err)
			os.Exit(1)
		}
		gdb = sqliteService.DB()
	} else {
		postgresService, err := db.NewPostgresService(log)
		if err != nil {
			log.Error("Postgres init failed", "error", err)
			os.Exit(1)
		}
		if err := postgresService.AutoMigrateAll(); err != nil {
			log.Error("Postgres auto migration failed", "error", err)
			os.Exit(1)
		}
		gdb = postgresService.DB()
	}

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(gdb, log)
	metricRepo := repos.NewHealthMetricRepo(gdb, log)
	catalogRepo := repos.NewCatalogRepo(gdb, log)
	preferenceRepo := repos.NewPreferenceRepo(gdb, log)
	planRepo := repos.NewPlanRepo(gdb, log)

	// Engine: load the catalog snapshot before serving.
	log.Info("Loading recommendation catalog from main...")
	recommender := engine.NewRecommender(catalogRepo, log)
	if err := recommender.Load(context.Background()); err != nil {
		log.Error("Catalog load failed", "error", err)
		os.Exit(1)
	}

	// Services
	log.Info("Setting up Services from main...")
	userService := services.NewUserService(userRepo, log)
	metricService := services.NewMetricService(userRepo, metricRepo, log)
	preferenceService := services.NewPreferenceService(preferenceRepo, log)
	recommendationService := services.NewRecommendationService(recommender, userRepo, metricRepo, preferenceRepo, log)
	planService := services.NewPlanService(recommender, userRepo, metricRepo, preferenceRepo, catalogRepo, planRepo, log)

	// Handlers
	log.Info("Setting up Handlers from main...")
	userHandler := handlers.NewUserHandler(log, userService)
	metricHandler := handlers.NewMetricHandler(log, metricService)
	preferenceHandler := handlers.NewPreferenceHandler(log, preferenceService)
	recommendationHandler := handlers.NewRecommendationHandler(log, recommendationService)
	planHandler := handlers.NewPlanHandler(log, planService)

	// Router
	router := server.NewRouter(server.RouterConfig{
		UserHandler:           userHandler,
		MetricHandler:         metricHandler,
		PreferenceHandler:     preferenceHandler,
		RecommendationHandler: recommendationHandler,
		PlanHandler:           planHandler,
	})

	log.Info("Starting server...", "port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
