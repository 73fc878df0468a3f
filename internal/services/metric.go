package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// MetricInput is one health measurement as submitted by the client. Goal and
// activity level arrive as strings and are mapped to the canonical enums
// exactly once, here.
type MetricInput struct {
	HeightCM        float64 `json:"height_cm"`
	WeightKG        float64 `json:"weight_kg"`
	ActivityLevel   string  `json:"activity_level"`
	Goal            string  `json:"goal"`
	HeartRate       int     `json:"heart_rate"`
	SleepHours      float64 `json:"sleep_hours"`
	HasHypertension bool    `json:"has_hypertension"`
	HasDiabetes     bool    `json:"has_diabetes"`
}

// MetricService ingests health measurements. BMI, TDEE and the daily
// intake/burn targets are derived here, once, and stored on the row; nothing
// downstream recomputes them.
type MetricService interface {
	RecordMetric(ctx context.Context, userID uuid.UUID, input MetricInput) (*types.HealthMetric, error)
	LatestMetric(ctx context.Context, userID uuid.UUID) (*types.HealthMetric, error)
}

type metricService struct {
	users   repos.UserRepo
	metrics repos.HealthMetricRepo
	log     *logger.Logger
}

func NewMetricService(users repos.UserRepo, metrics repos.HealthMetricRepo, baseLog *logger.Logger) MetricService {
	return &metricService{
		users:   users,
		metrics: metrics,
		log:     baseLog.With("service", "MetricService"),
	}
}

func (ms *metricService) RecordMetric(ctx context.Context, userID uuid.UUID, input MetricInput) (*types.HealthMetric, error) {
	user, err := ms.users.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	goal := types.ParseGoal(input.Goal)
	activity := types.ParseActivityLevel(input.ActivityLevel)
	age := engine.AgeFromDOB(user.DateOfBirth, time.Now())

	tdee, intake, burn := engine.DailyTargets(input.WeightKG, input.HeightCM, age, user.Gender, activity, goal)

	metric := &types.HealthMetric{
		UserID:          userID,
		HeightCM:        input.HeightCM,
		WeightKG:        input.WeightKG,
		BMI:             engine.BMIValue(input.WeightKG, input.HeightCM),
		TDEE:            tdee,
		HeartRate:       input.HeartRate,
		ActivityLevel:   activity,
		SleepHours:      input.SleepHours,
		Goal:            goal,
		HasHypertension: input.HasHypertension,
		HasDiabetes:     input.HasDiabetes,
		DailyCalories:   intake,
		DailyBurn:       burn,
	}
	if _, err := ms.metrics.Create(ctx, nil, []*types.HealthMetric{metric}); err != nil {
		return nil, fmt.Errorf("store health metric: %w", err)
	}
	ms.log.Info("Health metric recorded", "user_id", userID, "bmi", metric.BMI, "tdee", tdee)
	return metric, nil
}

func (ms *metricService) LatestMetric(ctx context.Context, userID uuid.UUID) (*types.HealthMetric, error) {
	metric, err := ms.metrics.LatestByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load health metric: %w", err)
	}
	if metric == nil {
		return nil, ErrUserNotFound
	}
	return metric, nil
}
