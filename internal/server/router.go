package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/healthtrack/healthtrack-backend/internal/handlers"
)

type RouterConfig struct {
	UserHandler           *handlers.UserHandler
	MetricHandler         *handlers.MetricHandler
	PreferenceHandler     *handlers.PreferenceHandler
	RecommendationHandler *handlers.RecommendationHandler
	PlanHandler           *handlers.PlanHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/users", cfg.UserHandler.CreateUser)
		api.GET("/users/:user_id", cfg.UserHandler.GetUser)

		api.POST("/users/:user_id/metrics", cfg.MetricHandler.RecordMetric)
		api.GET("/users/:user_id/metrics/latest", cfg.MetricHandler.LatestMetric)

		api.POST("/users/:user_id/preferences/foods", cfg.PreferenceHandler.RecordFoodPreference)
		api.POST("/users/:user_id/preferences/exercises", cfg.PreferenceHandler.RecordExercisePreference)

		api.GET("/users/:user_id/recommendations/foods", cfg.RecommendationHandler.RecommendFoods)
		api.GET("/users/:user_id/recommendations/exercises", cfg.RecommendationHandler.RecommendExercises)
		api.GET("/users/:user_id/recommendations/options", cfg.RecommendationHandler.SelectionOptions)
		api.POST("/catalog/reload", cfg.RecommendationHandler.ReloadCatalog)

		api.POST("/users/:user_id/plans/weekly", cfg.PlanHandler.GenerateWeeklyPlan)
		api.POST("/users/:user_id/plans/custom", cfg.PlanHandler.GenerateCustomPlan)
		api.GET("/users/:user_id/plans/current", cfg.PlanHandler.CurrentPlan)
		api.POST("/users/:user_id/plans/track", cfg.PlanHandler.TrackItem)
		api.GET("/users/:user_id/plans/performance", cfg.PlanHandler.PastPerformance)
	}

	return router
}
