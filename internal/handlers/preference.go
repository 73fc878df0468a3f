package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

type PreferenceHandler struct {
	log     *logger.Logger
	prefSvc services.PreferenceService
}

func NewPreferenceHandler(log *logger.Logger, prefSvc services.PreferenceService) *PreferenceHandler {
	return &PreferenceHandler{
		log:     log.With("handler", "PreferenceHandler"),
		prefSvc: prefSvc,
	}
}

type preferenceRequest struct {
	FoodID         uint   `json:"food_id"`
	ExerciseID     uint   `json:"exercise_id"`
	PreferenceType string `json:"preference_type"`
}

// POST /api/users/:user_id/preferences/foods
func (h *PreferenceHandler) RecordFoodPreference(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.prefSvc.RecordFoodPreference(c.Request.Context(), userID, req.FoodID, req.PreferenceType); err != nil {
		RespondError(c, http.StatusBadRequest, "record_preference_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": "recorded"})
}

// POST /api/users/:user_id/preferences/exercises
func (h *PreferenceHandler) RecordExercisePreference(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req preferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.prefSvc.RecordExercisePreference(c.Request.Context(), userID, req.ExerciseID, req.PreferenceType); err != nil {
		RespondError(c, http.StatusBadRequest, "record_preference_failed", err)
		return
	}
	RespondOK(c, gin.H{"status": "recorded"})
}
