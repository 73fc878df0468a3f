package engine

import (
	"strings"
	"time"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// AgeFromDOB derives age in whole years, defaulting to 30 when the date of
// birth is unknown.
func AgeFromDOB(dob *time.Time, now time.Time) int {
	if dob == nil {
		return 30
	}
	age := now.Year() - dob.Year()
	if now.Before(dob.AddDate(age, 0, 0)) {
		age--
	}
	if age < 0 || age > 130 {
		return 30
	}
	return age
}

// BMIValue computes weight(kg)/height(m)^2, 0 when inputs are missing.
func BMIValue(weightKG, heightCM float64) float64 {
	if weightKG <= 0 || heightCM <= 0 {
		return 0
	}
	m := heightCM / 100
	return weightKG / (m * m)
}

// ExerciseNeeds maps BMI and goal to the ideal item for exercise
// recommendation: a desired 30-minute calorie burn and a preferred type.
func ExerciseNeeds(bmi float64, goal types.Goal) (desiredBurn float64, preferredType string) {
	if bmi <= 0 {
		bmi = 22
	}
	switch {
	case bmi < 18.5:
		desiredBurn = 150
	case bmi < 25:
		desiredBurn = 250
	case bmi < 30:
		desiredBurn = 350
	default:
		desiredBurn = 500
	}
	switch goal {
	case types.GoalLoseWeight:
		preferredType = "cardio"
	case types.GoalGainMuscle:
		preferredType = "strength"
	default:
		preferredType = "yoga"
	}
	return desiredBurn, preferredType
}

// FoodNeeds maps a goal to the ideal item for food recommendation: a target
// calorie count per dish and a preferred category.
func FoodNeeds(goal types.Goal) (targetCalories float64, preferredType string) {
	switch goal {
	case types.GoalLoseWeight:
		return 400, "low_carb"
	case types.GoalGainMuscle:
		return 700, "high_protein"
	default:
		return 600, "balanced"
	}
}

func isMale(gender string) bool {
	switch strings.ToLower(strings.TrimSpace(gender)) {
	case "male", "m", "nam":
		return true
	}
	return false
}

// bmr computes the Mifflin-St Jeor basal metabolic rate.
func bmr(weightKG, heightCM float64, age int, gender string) float64 {
	v := 10*weightKG + 6.25*heightCM - 5*float64(age)
	if isMale(gender) {
		return v + 5
	}
	return v - 161
}

func activityMultiplier(level int) float64 {
	switch level {
	case types.ActivityLight:
		return 1.375
	case types.ActivityModerate:
		return 1.55
	case types.ActivityActive:
		return 1.725
	default:
		return 1.2
	}
}

// DailyCalorieTarget computes the daily intake target used by the meal
// scheduler when no stored target exists: TDEE adjusted for the goal, with a
// gendered safety floor (never below 1500 kcal for men, 1200 for women).
func DailyCalorieTarget(heightCM, weightKG float64, age int, gender string, activityLevel int, goal types.Goal) int {
	if weightKG <= 0 {
		weightKG = 60
	}
	if heightCM <= 0 {
		heightCM = 165
	}
	if age <= 0 {
		age = 30
	}
	tdee := bmr(weightKG, heightCM, age, gender) * activityMultiplier(activityLevel)

	var target float64
	switch goal {
	case types.GoalLoseWeight:
		target = tdee - 500
	case types.GoalGainMuscle:
		target = tdee + 400
	default:
		target = tdee
	}

	minSafe := 1200.0
	if isMale(gender) {
		minSafe = 1500
	}
	if target < minSafe {
		target = minSafe
	}
	return int(target)
}

// DailyTargets computes TDEE plus the intake/burn pair stored on a health
// metric row. Weight loss takes a 20% deficit clamped to [300,800] and never
// pushes net intake below 90% of BMR, split 60% diet / 40% exercise; muscle
// gain takes a 15% surplus clamped to [250,500] with an activity-tiered burn
// target; maintenance keeps net at TDEE with a lighter tiered burn.
func DailyTargets(weightKG, heightCM float64, age int, gender string, activityLevel int, goal types.Goal) (tdee, intake, burn int) {
	if weightKG <= 0 || heightCM <= 0 {
		return 0, 0, 0
	}
	base := bmr(weightKG, heightCM, age, gender)
	tdeeF := base * activityMultiplier(activityLevel)

	clamp := func(v, lo, hi float64) float64 {
		if v < lo {
			return lo
		}
		if v > hi {
			return hi
		}
		return v
	}

	var intakeF, burnF float64
	switch goal {
	case types.GoalLoseWeight:
		deficit := clamp(tdeeF*0.2, 300, 800)
		net := tdeeF - deficit
		if minNet := base * 0.9; net < minNet {
			net = minNet
			deficit = tdeeF - net
		}
		burnF = deficit * 0.4
		if burnF < 200 {
			burnF = 200
		}
		intakeF = net + burnF
	case types.GoalGainMuscle:
		surplus := clamp(tdeeF*0.15, 250, 500)
		net := tdeeF + surplus
		switch {
		case activityLevel <= types.ActivitySedentary:
			burnF = 250
		case activityLevel == types.ActivityLight:
			burnF = 300
		case activityLevel == types.ActivityModerate:
			burnF = 350
		default:
			burnF = 400
		}
		intakeF = net + burnF
	default:
		switch {
		case activityLevel <= types.ActivitySedentary:
			burnF = 200
		case activityLevel == types.ActivityLight:
			burnF = 250
		case activityLevel == types.ActivityModerate:
			burnF = 300
		default:
			burnF = 350
		}
		intakeF = tdeeF + burnF
	}
	return int(tdeeF + 0.5), int(intakeF + 0.5), int(burnF + 0.5)
}
