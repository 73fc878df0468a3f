package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// PlanRepo stores weekly plan documents and their per-item completion
// tracking rows.
type PlanRepo interface {
	Create(ctx context.Context, tx *gorm.DB, plan *types.WeeklyPlan) (*types.WeeklyPlan, error)
	LatestByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.WeeklyPlan, error)
	UpsertTracking(ctx context.Context, tx *gorm.DB, row *types.PlanTracking) (*types.PlanTracking, error)
	TrackingByPlan(ctx context.Context, tx *gorm.DB, planID uint) ([]types.PlanTracking, error)
	ExerciseCompletion(ctx context.Context, tx *gorm.DB, planID uint) (completed, total int, err error)
}

type planRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewPlanRepo(db *gorm.DB, baseLog *logger.Logger) PlanRepo {
	return &planRepo{db: db, log: baseLog.With("repo", "PlanRepo")}
}

func (pr *planRepo) Create(ctx context.Context, tx *gorm.DB, plan *types.WeeklyPlan) (*types.WeeklyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	if err := transaction.WithContext(ctx).Create(plan).Error; err != nil {
		return nil, err
	}
	return plan, nil
}

// LatestByUser returns the most recently created plan for the user, nil when
// none exists.
func (pr *planRepo) LatestByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.WeeklyPlan, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var result types.WeeklyPlan
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// UpsertTracking updates an existing tracking row or creates it. Custom items
// are matched by their synthetic instance id; catalog items by the
// (plan, date, item type, item id) composite key.
func (pr *planRepo) UpsertTracking(ctx context.Context, tx *gorm.DB, row *types.PlanTracking) (*types.PlanTracking, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	query := transaction.WithContext(ctx).Model(&types.PlanTracking{})
	if row.InstanceID != "" {
		query = query.Where("weekly_plan_id = ? AND instance_id = ?", row.WeeklyPlanID, row.InstanceID)
	} else {
		query = query.Where(
			"weekly_plan_id = ? AND date = ? AND item_type = ? AND item_id = ?",
			row.WeeklyPlanID, dateOnly(row.Date), row.ItemType, row.ItemID,
		)
	}

	var existing types.PlanTracking
	err := query.First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if err := transaction.WithContext(ctx).Create(row).Error; err != nil {
			return nil, err
		}
		return row, nil
	}
	if err != nil {
		return nil, err
	}

	existing.IsCompleted = row.IsCompleted
	if err := transaction.WithContext(ctx).Save(&existing).Error; err != nil {
		return nil, err
	}
	return &existing, nil
}

func (pr *planRepo) TrackingByPlan(ctx context.Context, tx *gorm.DB, planID uint) ([]types.PlanTracking, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}
	var results []types.PlanTracking
	if err := transaction.WithContext(ctx).
		Where("weekly_plan_id = ?", planID).
		Order("date ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// ExerciseCompletion counts completed and total tracked exercise rows for a
// plan. Food rows are excluded: only workout completion drives the adaptive
// difficulty factor.
func (pr *planRepo) ExerciseCompletion(ctx context.Context, tx *gorm.DB, planID uint) (int, int, error) {
	transaction := tx
	if transaction == nil {
		transaction = pr.db
	}

	var total, completed int64
	if err := transaction.WithContext(ctx).Model(&types.PlanTracking{}).
		Where("weekly_plan_id = ? AND item_type = ?", planID, types.ItemTypeExercise).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := transaction.WithContext(ctx).Model(&types.PlanTracking{}).
		Where("weekly_plan_id = ? AND item_type = ? AND is_completed = ?", planID, types.ItemTypeExercise, true).
		Count(&completed).Error; err != nil {
		return 0, 0, err
	}
	return int(completed), int(total), nil
}

func dateOnly(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return &d
}
