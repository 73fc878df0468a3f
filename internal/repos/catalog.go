package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// CatalogRepo reads the exercise and food catalogs. ActiveExercises and
// ActiveFoods back the engine's snapshot load and must return rows in a
// stable order so the encoded matrices stay index-aligned across calls.
type CatalogRepo interface {
	ActiveExercises(ctx context.Context) ([]types.Exercise, error)
	ActiveFoods(ctx context.Context) ([]types.Food, error)
	FoodsByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]types.Food, error)
	ExercisesByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]types.Exercise, error)
}

type catalogRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCatalogRepo(db *gorm.DB, baseLog *logger.Logger) CatalogRepo {
	return &catalogRepo{db: db, log: baseLog.With("repo", "CatalogRepo")}
}

func (cr *catalogRepo) ActiveExercises(ctx context.Context) ([]types.Exercise, error) {
	var results []types.Exercise
	if err := cr.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *catalogRepo) ActiveFoods(ctx context.Context) ([]types.Food, error) {
	var results []types.Food
	if err := cr.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *catalogRepo) FoodsByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]types.Food, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []types.Food
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *catalogRepo) ExercisesByIDs(ctx context.Context, tx *gorm.DB, ids []uint) ([]types.Exercise, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}
	var results []types.Exercise
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
