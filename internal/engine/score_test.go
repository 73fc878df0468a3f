package engine

import (
	"math"
	"testing"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

func TestAdjustScore_OrderingAndDeltas(t *testing.T) {
	base := 0.6
	liked := adjustScore(base, types.PreferenceLike)
	neutral := adjustScore(base, "")
	disliked := adjustScore(base, types.PreferenceDislike)

	if !(liked > neutral && neutral > disliked) {
		t.Fatalf("ordering broken: like=%v neutral=%v dislike=%v", liked, neutral, disliked)
	}
	if math.Abs(liked-base-likeBonus) > 1e-12 {
		t.Fatalf("like delta = %v, want %v", liked-base, likeBonus)
	}
	if math.Abs(base-disliked-dislikePenalty) > 1e-12 {
		t.Fatalf("dislike delta = %v, want %v", base-disliked, dislikePenalty)
	}
}

func TestHybridScore_StrongerDeltas(t *testing.T) {
	base := 0.6
	liked := hybridScore(base, types.PreferenceLike, 2, 2)
	disliked := hybridScore(base, types.PreferenceDislike, 2, 2)

	if math.Abs(liked-base-hybridLikeBonus) > 1e-12 {
		t.Fatalf("hybrid like delta = %v, want %v", liked-base, hybridLikeBonus)
	}
	if math.Abs(base-disliked-hybridDislikePenalty) > 1e-12 {
		t.Fatalf("hybrid dislike delta = %v, want %v", base-disliked, hybridDislikePenalty)
	}
}

func TestHybridScore_LevelMismatchPenalty(t *testing.T) {
	base := 0.6
	exact := hybridScore(base, "", 2, 2)
	offByTwo := hybridScore(base, "", 3, 1)

	if exact != base {
		t.Fatalf("exact level score = %v, want %v", exact, base)
	}
	want := base - 2*levelMismatchPenalty
	if math.Abs(offByTwo-want) > 1e-12 {
		t.Fatalf("off-by-two score = %v, want %v", offByTwo, want)
	}
}
