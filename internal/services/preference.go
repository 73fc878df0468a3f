package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// PreferenceService records like/dislike feedback. Rows are append-only;
// reads resolve the latest entry per item.
type PreferenceService interface {
	RecordFoodPreference(ctx context.Context, userID uuid.UUID, foodID uint, prefType string) error
	RecordExercisePreference(ctx context.Context, userID uuid.UUID, exerciseID uint, prefType string) error
}

type preferenceService struct {
	prefs repos.PreferenceRepo
	log   *logger.Logger
}

func NewPreferenceService(prefs repos.PreferenceRepo, baseLog *logger.Logger) PreferenceService {
	return &preferenceService{
		prefs: prefs,
		log:   baseLog.With("service", "PreferenceService"),
	}
}

func validPreference(prefType string) bool {
	return prefType == types.PreferenceLike || prefType == types.PreferenceDislike
}

func (ps *preferenceService) RecordFoodPreference(ctx context.Context, userID uuid.UUID, foodID uint, prefType string) error {
	if !validPreference(prefType) {
		return fmt.Errorf("invalid preference type %q", prefType)
	}
	return ps.prefs.AddFoodPreference(ctx, nil, &types.UserFoodPreference{
		UserID:         userID,
		FoodID:         foodID,
		PreferenceType: prefType,
	})
}

func (ps *preferenceService) RecordExercisePreference(ctx context.Context, userID uuid.UUID, exerciseID uint, prefType string) error {
	if !validPreference(prefType) {
		return fmt.Errorf("invalid preference type %q", prefType)
	}
	return ps.prefs.AddExercisePreference(ctx, nil, &types.UserExercisePreference{
		UserID:         userID,
		ExerciseID:     exerciseID,
		PreferenceType: prefType,
	})
}
