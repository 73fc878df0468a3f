package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// Profile is the read-only health profile a recommendation call runs
// against. It is assembled once at the service boundary from the user row
// and their newest health metric; all defaulting happens there, never in
// the scoring or scheduling code.
type Profile struct {
	UserID           uuid.UUID
	Age              int
	Gender           string
	HeightCM         float64
	WeightKG         float64
	BMI              float64
	ActivityLevel    int
	Goal             types.Goal
	HasHypertension  bool
	HasDiabetes      bool
	RestingHeartRate int
	SleepHours       float64
	DailyCalories    int
	DailyBurn        int
}

// PrefMap maps a catalog item id to types.PreferenceLike or
// types.PreferenceDislike (last write wins, deduplicated by the caller).
type PrefMap map[uint]string

// NewProfile builds a Profile from stored rows, applying the documented
// defaults for absent measurements.
func NewProfile(user *types.User, metric *types.HealthMetric, now time.Time) Profile {
	p := Profile{
		Age:              30,
		Gender:           "female",
		BMI:              22,
		ActivityLevel:    types.ActivityLight,
		Goal:             types.GoalMaintain,
		RestingHeartRate: 75,
		SleepHours:       7,
	}
	if user != nil {
		p.UserID = user.ID
		if user.Gender != "" {
			p.Gender = user.Gender
		}
		p.Age = AgeFromDOB(user.DateOfBirth, now)
	}
	if metric == nil {
		return p
	}
	p.HeightCM = metric.HeightCM
	p.WeightKG = metric.WeightKG
	if metric.BMI > 0 {
		p.BMI = metric.BMI
	}
	if metric.ActivityLevel > 0 {
		p.ActivityLevel = metric.ActivityLevel
	}
	if metric.Goal > 0 {
		p.Goal = metric.Goal
	}
	p.HasHypertension = metric.HasHypertension
	p.HasDiabetes = metric.HasDiabetes
	if metric.HeartRate > 0 {
		p.RestingHeartRate = metric.HeartRate
	}
	if metric.SleepHours > 0 {
		p.SleepHours = metric.SleepHours
	}
	p.DailyCalories = metric.DailyCalories
	p.DailyBurn = metric.DailyBurn
	return p
}
