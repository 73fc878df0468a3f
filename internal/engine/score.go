package engine

import "github.com/healthtrack/healthtrack-backend/internal/types"

// Preference scoring deltas. The hybrid exercise-by-type path rewards likes
// more and punishes dislikes hard enough to push them out of any top-K.
const (
	likeBonus            = 0.20
	dislikePenalty       = 0.50
	hybridLikeBonus      = 0.30
	hybridDislikePenalty = 1.00
	levelMismatchPenalty = 0.15
)

// adjustScore applies the default like/dislike deltas to a base similarity.
func adjustScore(base float64, pref string) float64 {
	switch pref {
	case types.PreferenceLike:
		return base + likeBonus
	case types.PreferenceDislike:
		return base - dislikePenalty
	}
	return base
}

// hybridScore applies the stronger like/dislike deltas plus a penalty
// proportional to the gap between the item's intensity and the user's
// target level.
func hybridScore(base float64, pref string, intensity, targetLevel int) float64 {
	score := base
	switch pref {
	case types.PreferenceLike:
		score += hybridLikeBonus
	case types.PreferenceDislike:
		score -= hybridDislikePenalty
	}
	diff := intensity - targetLevel
	if diff < 0 {
		diff = -diff
	}
	return score - float64(diff)*levelMismatchPenalty
}
