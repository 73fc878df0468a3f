package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/services"
)

type MetricHandler struct {
	log       *logger.Logger
	metricSvc services.MetricService
}

func NewMetricHandler(log *logger.Logger, metricSvc services.MetricService) *MetricHandler {
	return &MetricHandler{
		log:       log.With("handler", "MetricHandler"),
		metricSvc: metricSvc,
	}
}

// POST /api/users/:user_id/metrics
func (h *MetricHandler) RecordMetric(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var input services.MetricInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	metric, err := h.metricSvc.RecordMetric(c.Request.Context(), userID, input)
	if err != nil {
		RespondError(c, statusFor(err), "record_metric_failed", err)
		return
	}
	RespondOK(c, metric)
}

// GET /api/users/:user_id/metrics/latest
func (h *MetricHandler) LatestMetric(c *gin.Context) {
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	metric, err := h.metricSvc.LatestMetric(c.Request.Context(), userID)
	if err != nil {
		RespondError(c, statusFor(err), "latest_metric_failed", err)
		return
	}
	RespondOK(c, metric)
}
