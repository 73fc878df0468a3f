package engine

// Difficulty factor bounds applied anywhere a factor scales workout
// parameters.
const (
	minDifficulty = 0.8
	maxDifficulty = 1.2
)

// DifficultyFactor maps the exercise completion rate of the most recent plan
// to a multiplier for the next one. No tracked exercises means no evidence,
// so the factor stays neutral.
func DifficultyFactor(completed, total int) float64 {
	if total <= 0 {
		return 1.0
	}
	rate := float64(completed) / float64(total)
	switch {
	case rate >= 0.8:
		return 1.1
	case rate <= 0.4:
		return 0.8
	}
	return 1.0
}

func clampDifficulty(factor float64) float64 {
	if factor < minDifficulty {
		return minDifficulty
	}
	if factor > maxDifficulty {
		return maxDifficulty
	}
	return factor
}
