package db

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
	"github.com/healthtrack/healthtrack-backend/internal/utils"
)

// SQLiteService is the dev and test fallback used when no Postgres host is
// configured. Schema matches the Postgres service; uuid columns are stored as
// text.
type SQLiteService struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLiteService(log *logger.Logger) (*SQLiteService, error) {
	serviceLog := log.With("service", "SQLiteService")

	path := utils.GetEnv("SQLITE_PATH", "healthtrack.db", log)
	log.Info("Opening SQLite database...", "path", path)
	gdb, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Error("Failed to open SQLite database", "error", err)
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return &SQLiteService{db: gdb, log: serviceLog}, nil
}

func (s *SQLiteService) AutoMigrateAll() error {
	s.log.Info("Auto migrating sqlite tables...")
	err := s.db.AutoMigrate(
		&types.User{},
		&types.HealthMetric{},
		&types.Food{},
		&types.Exercise{},
		&types.UserFoodPreference{},
		&types.UserExercisePreference{},
		&types.WeeklyPlan{},
		&types.PlanTracking{},
	)
	if err != nil {
		s.log.Error("Auto migration failed for sqlite tables", "error", err)
		return err
	}
	return nil
}

func (s *SQLiteService) DB() *gorm.DB {
	return s.db
}
