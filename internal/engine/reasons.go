package engine

import (
	"strings"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// Reason strings come from a fixed rule table so the same inputs always
// yield the same text.

func exerciseReason(similarity float64, ex types.Exercise, goal types.Goal, pref string) string {
	var reasons []string
	if pref == types.PreferenceLike {
		reasons = append(reasons, "You liked this")
	}
	if similarity > 0.90 {
		reasons = append(reasons, "Great match for your profile")
	} else if similarity > 0.75 {
		reasons = append(reasons, "Fits your health metrics")
	}
	if goal == types.GoalLoseWeight && ex.Type == "cardio" {
		reasons = append(reasons, "Burns fat for weight loss")
	} else if goal == types.GoalGainMuscle && ex.Type == "strength" {
		reasons = append(reasons, "Builds muscle")
	}
	if ex.Intensity == types.IntensityLight {
		reasons = append(reasons, "Low impact")
	} else if ex.Intensity == types.IntensityMax {
		reasons = append(reasons, "High intensity")
	}
	if len(reasons) == 0 || (len(reasons) == 1 && pref == types.PreferenceLike) {
		reasons = append(reasons, "Recommended for you")
	}
	return strings.Join(reasons, " • ")
}

func foodReason(similarity float64, f types.Food, goal types.Goal, pref string) string {
	var reasons []string
	if pref == types.PreferenceLike {
		reasons = append(reasons, "You liked this")
	}
	if similarity > 0.90 {
		reasons = append(reasons, "Great match for your profile")
	} else if similarity > 0.75 {
		reasons = append(reasons, "Fits your health metrics")
	}
	if goal == types.GoalLoseWeight && f.Calories < 500 {
		reasons = append(reasons, "Low calorie")
	} else if goal == types.GoalGainMuscle && f.ProteinG > 20 {
		reasons = append(reasons, "High protein")
	}
	if len(reasons) == 0 || (len(reasons) == 1 && pref == types.PreferenceLike) {
		reasons = append(reasons, "Recommended for you")
	}
	return strings.Join(reasons, " • ")
}
