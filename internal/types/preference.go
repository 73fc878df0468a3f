package types

import (
	"time"

	"github.com/google/uuid"
)

type UserFoodPreference struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	FoodID         uint      `gorm:"not null;index" json:"food_id"`
	Food           *Food     `gorm:"constraint:OnDelete:CASCADE;foreignKey:FoodID;references:ID" json:"food,omitempty"`
	PreferenceType string    `gorm:"column:preference_type" json:"preference_type"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserFoodPreference) TableName() string { return "user_food_preference" }

type UserExercisePreference struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	User           *User     `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	ExerciseID     uint      `gorm:"not null;index" json:"exercise_id"`
	Exercise       *Exercise `gorm:"constraint:OnDelete:CASCADE;foreignKey:ExerciseID;references:ID" json:"exercise,omitempty"`
	PreferenceType string    `gorm:"column:preference_type" json:"preference_type"`
	CreatedAt      time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (UserExercisePreference) TableName() string { return "user_exercise_preference" }
