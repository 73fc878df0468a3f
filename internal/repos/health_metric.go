package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

type HealthMetricRepo interface {
	Create(ctx context.Context, tx *gorm.DB, metrics []*types.HealthMetric) ([]*types.HealthMetric, error)
	LatestByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.HealthMetric, error)
}

type healthMetricRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewHealthMetricRepo(db *gorm.DB, baseLog *logger.Logger) HealthMetricRepo {
	return &healthMetricRepo{db: db, log: baseLog.With("repo", "HealthMetricRepo")}
}

func (hr *healthMetricRepo) Create(ctx context.Context, tx *gorm.DB, metrics []*types.HealthMetric) ([]*types.HealthMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	if len(metrics) == 0 {
		return []*types.HealthMetric{}, nil
	}
	if err := transaction.WithContext(ctx).Create(&metrics).Error; err != nil {
		return nil, err
	}
	return metrics, nil
}

// LatestByUser returns the newest metric row for the user, nil when the user
// has never recorded one.
func (hr *healthMetricRepo) LatestByUser(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.HealthMetric, error) {
	transaction := tx
	if transaction == nil {
		transaction = hr.db
	}
	var result types.HealthMetric
	err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC, id DESC").
		First(&result).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &result, nil
}
