package types

import (
	"time"

	"github.com/google/uuid"
)

// HealthMetric is one snapshot of a user's health profile. The newest row
// per user is the profile the recommendation engine reads. BMI, TDEE and the
// daily calorie/burn targets are computed once when the row is written, not
// re-derived downstream.
type HealthMetric struct {
	ID                     uint      `gorm:"primaryKey" json:"id"`
	UserID                 uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User                   *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	HeightCM               float64   `gorm:"column:height_cm" json:"height_cm"`
	WeightKG               float64   `gorm:"column:weight_kg" json:"weight_kg"`
	BMI                    float64   `gorm:"column:bmi" json:"bmi"`
	TDEE                   int       `gorm:"column:tdee" json:"tdee"`
	BloodPressureSystolic  int       `gorm:"column:blood_pressure_systolic" json:"blood_pressure_systolic"`
	BloodPressureDiastolic int       `gorm:"column:blood_pressure_diastolic" json:"blood_pressure_diastolic"`
	HeartRate              int       `gorm:"column:heart_rate" json:"heart_rate"`
	ActivityLevel          int       `gorm:"column:activity_level" json:"activity_level"`
	SleepHours             float64   `gorm:"column:sleep_hours" json:"sleep_hours"`
	Goal                   Goal      `gorm:"column:goal" json:"goal"`
	HasHypertension        bool      `gorm:"column:has_hypertension;default:false" json:"has_hypertension"`
	HasDiabetes            bool      `gorm:"column:has_diabetes;default:false" json:"has_diabetes"`
	DailyCalories          int       `gorm:"column:daily_calories" json:"daily_calories"`
	DailyBurn              int       `gorm:"column:daily_burn" json:"daily_burn"`
	UpdatedAt              time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (HealthMetric) TableName() string { return "health_metric" }
