package engine

import "github.com/healthtrack/healthtrack-backend/internal/types"

// Safety rules remove catalog rows contraindicated for a profile. Filters
// operate on explicit catalog-row index slices so a filtered subset always
// carries its alignment with the encoded matrix.

func exerciseSafe(p Profile, ex types.Exercise) bool {
	if p.HasHypertension && (ex.Intensity == types.IntensityMax || ex.ContraHypertension) {
		return false
	}
	if p.Age > 60 && ex.Intensity == types.IntensityMax {
		return false
	}
	if p.RestingHeartRate > 100 && ex.Intensity == types.IntensityMax {
		return false
	}
	if p.SleepHours < 5 && ex.Intensity == types.IntensityMax {
		return false
	}
	if p.HasDiabetes && ex.ContraDiabetes {
		return false
	}
	return true
}

func foodSafe(p Profile, f types.Food) bool {
	if p.HasDiabetes && f.ContraDiabetes {
		return false
	}
	if p.HasHypertension && f.ContraHypertension {
		return false
	}
	if p.Goal == types.GoalLoseWeight && f.Calories > 800 {
		return false
	}
	return true
}

// safeExerciseIndices keeps the catalog-row indices in idx whose exercises
// pass every safety rule.
func safeExerciseIndices(p Profile, exercises []types.Exercise, idx []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if exerciseSafe(p, exercises[i]) {
			out = append(out, i)
		}
	}
	return out
}

// safeFoodIndices keeps the catalog-row indices in idx whose foods pass
// every safety rule.
func safeFoodIndices(p Profile, foods []types.Food, idx []int) []int {
	out := make([]int, 0, len(idx))
	for _, i := range idx {
		if foodSafe(p, foods[i]) {
			out = append(out, i)
		}
	}
	return out
}
