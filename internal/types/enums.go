package types

// Goal is the canonical goal encoding used everywhere in this codebase.
// External inputs (API payloads, imports) are mapped to this enum once at
// the ingestion boundary and never re-interpreted downstream.
type Goal int

const (
	GoalLoseWeight Goal = 1
	GoalGainMuscle Goal = 2
	GoalMaintain   Goal = 3
)

// ParseGoal maps the API-facing goal strings to the canonical enum.
// Unknown values default to maintain.
func ParseGoal(s string) Goal {
	switch s {
	case "lose_weight":
		return GoalLoseWeight
	case "gain_muscle":
		return GoalGainMuscle
	default:
		return GoalMaintain
	}
}

// Activity levels run 1 (sedentary) through 4 (active).
const (
	ActivitySedentary = 1
	ActivityLight     = 2
	ActivityModerate  = 3
	ActivityActive    = 4
)

// ParseActivityLevel maps API-facing activity strings to 1..4.
func ParseActivityLevel(s string) int {
	switch s {
	case "sedentary":
		return ActivitySedentary
	case "light":
		return ActivityLight
	case "moderate":
		return ActivityModerate
	case "active":
		return ActivityActive
	default:
		return ActivitySedentary
	}
}

// Exercise intensity runs 1 (light) through 3 (max).
const (
	IntensityLight = 1
	IntensityMid   = 2
	IntensityMax   = 3
)

// Plan tracking item types.
const (
	ItemTypeExercise = "exercise"
	ItemTypeFood     = "food"
)

// Preference values. Multiple rows per (user, item) are deduplicated
// last-write-wins at read time.
const (
	PreferenceLike    = "like"
	PreferenceDislike = "dislike"
)
