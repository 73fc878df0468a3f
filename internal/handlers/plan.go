package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

type PlanHandler struct {
	log     *logger.Logger
	planSvc services.PlanService
}

func NewPlanHandler(log *logger.Logger, planSvc services.PlanService) *PlanHandler {
	return &PlanHandler{
		log:     log.With("handler", "PlanHandler"),
		planSvc: planSvc,
	}
}

type generatePlanRequest struct {
	StartDate *string `json:"start_date"`
}

func parseStartDate(raw *string) (*time.Time, bool) {
	if raw == nil || *raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, false
	}
	return &t, true
}

// POST /api/users/:user_id/plans/weekly
func (h *PlanHandler) GenerateWeeklyPlan(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req generatePlanRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			RespondError(c, http.StatusBadRequest, "invalid_body", err)
			return
		}
	}
	start, ok := parseStartDate(req.StartDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_start_date", nil)
		return
	}

	plan, err := h.planSvc.GenerateWeeklyPlan(c.Request.Context(), userID, start)
	if err != nil {
		RespondError(c, statusFor(err), "generate_plan_failed", err)
		return
	}
	RespondOK(c, plan)
}

type customPlanRequest struct {
	services.CustomSelection
	StartDate *string `json:"start_date"`
}

// POST /api/users/:user_id/plans/custom
// Builds a plan from the user's selection; empty selections auto-fill.
func (h *PlanHandler) GenerateCustomPlan(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req customPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	start, ok := parseStartDate(req.StartDate)
	if !ok {
		RespondError(c, http.StatusBadRequest, "invalid_start_date", nil)
		return
	}

	plan, err := h.planSvc.GenerateCustomPlan(c.Request.Context(), userID, req.CustomSelection, start)
	if err != nil {
		RespondError(c, statusFor(err), "generate_custom_plan_failed", err)
		return
	}
	RespondOK(c, plan)
}

// GET /api/users/:user_id/plans/current
func (h *PlanHandler) CurrentPlan(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	view, err := h.planSvc.CurrentPlan(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, statusFor(err), "current_plan_failed", err)
		return
	}
	RespondOK(c, view)
}

// POST /api/users/:user_id/plans/track
func (h *PlanHandler) TrackItem(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var input services.TrackItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	row, err := h.planSvc.TrackItem(c.Request.Context(), userID, input)
	if err != nil {
		RespondError(c, statusFor(err), "track_item_failed", err)
		return
	}
	RespondOK(c, row)
}

// GET /api/users/:user_id/plans/performance
// The difficulty factor the next plan would be generated with.
func (h *PlanHandler) PastPerformance(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	factor, err := h.planSvc.PastPerformance(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, statusFor(err), "performance_failed", err)
		return
	}
	RespondOK(c, gin.H{"difficulty_factor": factor})
}
