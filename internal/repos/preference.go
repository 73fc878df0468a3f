package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// PreferenceRepo stores like/dislike rows and reads them back as the
// deduplicated maps the engine consumes. Writes append; reads resolve
// duplicates last-write-wins.
type PreferenceRepo interface {
	AddFoodPreference(ctx context.Context, tx *gorm.DB, pref *types.UserFoodPreference) error
	AddExercisePreference(ctx context.Context, tx *gorm.DB, pref *types.UserExercisePreference) error
	FoodPrefMap(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (engine.PrefMap, error)
	ExercisePrefMap(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (engine.PrefMap, error)
}

type preferenceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPreferenceRepo(db *gorm.DB, baseLog *logger.Logger) PreferenceRepo {
	return &preferenceRepo{db: db, log: baseLog.With("repo", "PreferenceRepo")}
}

func (pr *preferenceRepo) AddFoodPreference(ctx context.Context, tx *gorm.DB, pref *types.UserFoodPreference) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Create(pref).Error
}

func (pr *preferenceRepo) AddExercisePreference(ctx context.Context, tx *gorm.DB, pref *types.UserExercisePreference) error {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	return transaction.WithContext(ctx).Create(pref).Error
}

func (pr *preferenceRepo) FoodPrefMap(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (engine.PrefMap, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var rows []types.UserFoodPreference
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(engine.PrefMap, len(rows))
	for _, row := range rows {
		out[row.FoodID] = row.PreferenceType
	}
	return out, nil
}

func (pr *preferenceRepo) ExercisePrefMap(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (engine.PrefMap, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var rows []types.UserExercisePreference
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(engine.PrefMap, len(rows))
	for _, row := range rows {
		out[row.ExerciseID] = row.PreferenceType
	}
	return out, nil
}
