package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
)

// RecommendationService answers the read-only recommendation calls: ranked
// food and exercise lists plus the selection pick-list for custom plans.
type RecommendationService interface {
	ReloadCatalog(ctx context.Context) error
	SelectionOptions(ctx context.Context, userID uuid.UUID) (engine.SelectionOptions, error)
	RecommendFoods(ctx context.Context, userID uuid.UUID, q engine.FoodQuery) ([]engine.ScoredFood, error)
	RecommendExercises(ctx context.Context, userID uuid.UUID, topK int) ([]engine.ScoredExercise, error)
}

type recommendationService struct {
	rec     *engine.Recommender
	users   repos.UserRepo
	metrics repos.HealthMetricRepo
	prefs   repos.PreferenceRepo
	log     *logger.Logger
}

func NewRecommendationService(
	rec *engine.Recommender,
	users repos.UserRepo,
	metrics repos.HealthMetricRepo,
	prefs repos.PreferenceRepo,
	baseLog *logger.Logger,
) RecommendationService {
	return &recommendationService{
		rec:     rec,
		users:   users,
		metrics: metrics,
		prefs:   prefs,
		log:     baseLog.With("service", "RecommendationService"),
	}
}

// profileFor assembles the engine profile for a user: identity row plus the
// newest health metric, with defaulting done once here at the boundary.
func profileFor(ctx context.Context, users repos.UserRepo, metrics repos.HealthMetricRepo, userID uuid.UUID) (engine.Profile, error) {
	user, err := users.GetByID(ctx, nil, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return engine.Profile{}, ErrUserNotFound
		}
		return engine.Profile{}, fmt.Errorf("load user: %w", err)
	}
	metric, err := metrics.LatestByUser(ctx, nil, userID)
	if err != nil {
		return engine.Profile{}, fmt.Errorf("load health metric: %w", err)
	}
	return engine.NewProfile(user, metric, time.Now()), nil
}

func (rs *recommendationService) ReloadCatalog(ctx context.Context) error {
	return rs.rec.Load(ctx)
}

func (rs *recommendationService) SelectionOptions(ctx context.Context, userID uuid.UUID) (engine.SelectionOptions, error) {
	p, err := profileFor(ctx, rs.users, rs.metrics, userID)
	if err != nil {
		return engine.SelectionOptions{}, err
	}
	foodPrefs, err := rs.prefs.FoodPrefMap(ctx, nil, userID)
	if err != nil {
		return engine.SelectionOptions{}, fmt.Errorf("load food preferences: %w", err)
	}
	exPrefs, err := rs.prefs.ExercisePrefMap(ctx, nil, userID)
	if err != nil {
		return engine.SelectionOptions{}, fmt.Errorf("load exercise preferences: %w", err)
	}
	return rs.rec.Options(p, foodPrefs, exPrefs), nil
}

func (rs *recommendationService) RecommendFoods(ctx context.Context, userID uuid.UUID, q engine.FoodQuery) ([]engine.ScoredFood, error) {
	p, err := profileFor(ctx, rs.users, rs.metrics, userID)
	if err != nil {
		return nil, err
	}
	foodPrefs, err := rs.prefs.FoodPrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load food preferences: %w", err)
	}
	return rs.rec.RecommendFoods(p, foodPrefs, q), nil
}

func (rs *recommendationService) RecommendExercises(ctx context.Context, userID uuid.UUID, topK int) ([]engine.ScoredExercise, error) {
	p, err := profileFor(ctx, rs.users, rs.metrics, userID)
	if err != nil {
		return nil, err
	}
	exPrefs, err := rs.prefs.ExercisePrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load exercise preferences: %w", err)
	}
	return rs.rec.RecommendExercises(p, exPrefs, topK), nil
}
