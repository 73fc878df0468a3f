package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

type RecommendationHandler struct {
	log    *logger.Logger
	recSvc services.RecommendationService
}

func NewRecommendationHandler(log *logger.Logger, recSvc services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{
		log:    log.With("handler", "RecommendationHandler"),
		recSvc: recSvc,
	}
}

func userIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_user_id", err)
		return uuid.Nil, false
	}
	return id, true
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrPlanNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GET /api/users/:user_id/recommendations/foods?meal=breakfast&min_cal=..&max_cal=..&top_k=..
func (h *RecommendationHandler) RecommendFoods(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	q := engine.FoodQuery{TopK: 5}
	if meal := c.Query("meal"); meal != "" {
		q.MealSlots = strings.Split(meal, ",")
	}
	if v, err := strconv.ParseFloat(c.Query("min_cal"), 64); err == nil {
		q.MinCal = v
	}
	if v, err := strconv.ParseFloat(c.Query("max_cal"), 64); err == nil {
		q.MaxCal = v
	}
	if v, err := strconv.Atoi(c.Query("top_k")); err == nil && v > 0 {
		q.TopK = v
	}

	foods, err := h.recSvc.RecommendFoods(c.Request.Context(), userID, q)
	if err != nil {
		RespondError(c, statusFor(err), "recommend_foods_failed", err)
		return
	}
	RespondOK(c, gin.H{"foods": foods})
}

// GET /api/users/:user_id/recommendations/exercises?top_k=..
func (h *RecommendationHandler) RecommendExercises(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	topK := 5
	if v, err := strconv.Atoi(c.Query("top_k")); err == nil && v > 0 {
		topK = v
	}

	exercises, err := h.recSvc.RecommendExercises(c.Request.Context(), userID, topK)
	if err != nil {
		RespondError(c, statusFor(err), "recommend_exercises_failed", err)
		return
	}
	RespondOK(c, gin.H{"exercises": exercises})
}

// GET /api/users/:user_id/recommendations/options
// The pick-list a client shows before building a custom plan.
func (h *RecommendationHandler) SelectionOptions(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	opts, err := h.recSvc.SelectionOptions(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, statusFor(err), "selection_options_failed", err)
		return
	}
	RespondOK(c, opts)
}

// POST /api/catalog/reload
func (h *RecommendationHandler) ReloadCatalog(c *gin.Context) {
	if err := h.recSvc.ReloadCatalog(c.Request.Context()); err != nil {
		RespondError(c, http.StatusInternalServerError, "catalog_reload_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": "reloaded"})
}
