package engine

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// CatalogSource supplies the active catalog rows the engine encodes at load
// time. Implemented by the gorm catalog repo; tests supply fixtures.
type CatalogSource interface {
	ActiveExercises(ctx context.Context) ([]types.Exercise, error)
	ActiveFoods(ctx context.Context) ([]types.Food, error)
}

// snapshot is one fully-built catalog: rows, fitted encoders and the
// index-aligned encoded matrices. Built off to the side and published with
// one atomic swap so readers never observe a half-loaded catalog.
type snapshot struct {
	exercises   []types.Exercise
	foods       []types.Food
	exEncoder   *FeatureEncoder
	foodEncoder *FeatureEncoder
	exMatrix    [][]float64
	foodMatrix  [][]float64
}

// Recommender owns the catalog snapshot and answers every recommendation
// and plan-generation call. Reads are safe to run concurrently; Load may be
// called again at any time to pick up catalog changes.
type Recommender struct {
	src  CatalogSource
	log  *logger.Logger
	snap atomic.Pointer[snapshot]
}

func NewRecommender(src CatalogSource, log *logger.Logger) *Recommender {
	return &Recommender{src: src, log: log.With("component", "recommender")}
}

var (
	exerciseFeatureSpec = FeatureSpec{
		Numeric:     []string{"intensity", "calories_burn_30min"},
		Categorical: []string{"type", "target_goal"},
	}
	foodFeatureSpec = FeatureSpec{
		Numeric:     []string{"calories"},
		Categorical: []string{"type", "target_goal"},
	}
)

func exerciseFeatures(ex types.Exercise) FeatureRow {
	return FeatureRow{
		Numeric: map[string]float64{
			"intensity":           float64(ex.Intensity),
			"calories_burn_30min": float64(ex.CaloriesBurn30Min),
		},
		Categorical: map[string]string{
			"type":        ex.Type,
			"target_goal": strconv.Itoa(int(ex.TargetGoal)),
		},
	}
}

func foodFeatures(f types.Food) FeatureRow {
	return FeatureRow{
		Numeric: map[string]float64{
			"calories": float64(f.Calories),
		},
		Categorical: map[string]string{
			"type":        f.Type,
			"target_goal": strconv.Itoa(int(f.TargetGoal)),
		},
	}
}

// Load fetches both catalogs, fits encoders and swaps in the new snapshot.
// An empty catalog is not an error: its encoder stays nil and the matching
// recommendation calls return empty results.
func (r *Recommender) Load(ctx context.Context) error {
	next := &snapshot{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		exercises, err := r.src.ActiveExercises(gctx)
		if err != nil {
			return err
		}
		next.exercises = exercises
		return nil
	})
	g.Go(func() error {
		foods, err := r.src.ActiveFoods(gctx)
		if err != nil {
			return err
		}
		next.foods = foods
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if len(next.exercises) > 0 {
		rows := make([]FeatureRow, len(next.exercises))
		for i, ex := range next.exercises {
			rows[i] = exerciseFeatures(ex)
		}
		next.exEncoder = FitEncoder(exerciseFeatureSpec, rows)
		next.exMatrix = next.exEncoder.TransformAll(rows)
	}
	if len(next.foods) > 0 {
		rows := make([]FeatureRow, len(next.foods))
		for i, f := range next.foods {
			rows[i] = foodFeatures(f)
		}
		next.foodEncoder = FitEncoder(foodFeatureSpec, rows)
		next.foodMatrix = next.foodEncoder.TransformAll(rows)
	}

	r.snap.Store(next)
	r.log.Info("Catalog loaded", "exercises", len(next.exercises), "foods", len(next.foods))
	return nil
}

func (r *Recommender) snapshot() *snapshot { return r.snap.Load() }

// ScoredExercise is one ranked exercise candidate.
type ScoredExercise struct {
	Exercise   types.Exercise `json:"exercise"`
	Similarity float64        `json:"similarity"`
	Score      float64        `json:"score"`
	Reason     string         `json:"reason"`
}

// ScoredFood is one ranked food candidate.
type ScoredFood struct {
	Food       types.Food `json:"food"`
	Similarity float64    `json:"similarity"`
	Score      float64    `json:"score"`
	Reason     string     `json:"reason"`
}

// FoodQuery narrows a food recommendation. Zero or negative calorie bounds
// are treated as unset; empty MealSlots matches every slot.
type FoodQuery struct {
	MealSlots []string
	MinCal    float64
	MaxCal    float64
	TopK      int
}

func mealSlotMatch(suitableFor string, slots []string) bool {
	if len(slots) == 0 {
		return true
	}
	suitable := strings.ToLower(suitableFor)
	for _, slot := range slots {
		if strings.Contains(suitable, strings.ToLower(slot)) {
			return true
		}
	}
	return false
}

// sortIndicesByScore orders idx by descending score, stable so ties keep
// catalog order.
func sortIndicesByScore(idx []int, scores []float64) {
	sort.SliceStable(idx, func(a, b int) bool {
		return scores[idx[a]] > scores[idx[b]]
	})
}

// RecommendFoods ranks catalog foods for the profile. The similarity target
// is the midpoint of the calorie range when one is given, otherwise the
// goal-derived per-dish target.
func (r *Recommender) RecommendFoods(p Profile, prefs PrefMap, q FoodQuery) []ScoredFood {
	snap := r.snapshot()
	if snap == nil || snap.foodEncoder == nil {
		return nil
	}

	targetCal, preferredType := FoodNeeds(p.Goal)
	if q.MinCal > 0 && q.MaxCal > 0 {
		targetCal = (q.MinCal + q.MaxCal) / 2
	}
	ideal := snap.foodEncoder.Transform(FeatureRow{
		Numeric: map[string]float64{"calories": targetCal},
		Categorical: map[string]string{
			"type":        preferredType,
			"target_goal": strconv.Itoa(int(p.Goal)),
		},
	})
	sims := similarityScores(ideal, snap.foodMatrix)

	scores := make([]float64, len(snap.foods))
	for i, f := range snap.foods {
		scores[i] = adjustScore(sims[i], prefs[f.ID])
	}

	// Hard filters first: meal slot, calorie range, then safety rules.
	idx := make([]int, 0, len(snap.foods))
	for i, f := range snap.foods {
		if !mealSlotMatch(f.SuitableFor, q.MealSlots) {
			continue
		}
		if q.MinCal > 0 && float64(f.Calories) < q.MinCal {
			continue
		}
		if q.MaxCal > 0 && float64(f.Calories) > q.MaxCal {
			continue
		}
		idx = append(idx, i)
	}
	safe := safeFoodIndices(p, snap.foods, idx)
	if len(safe) == 0 {
		// Safety emptied the pool: fall back to the pre-filter candidates
		// truncated to the requested count rather than returning nothing.
		safe = idx
	}

	sortIndicesByScore(safe, scores)
	if q.TopK > 0 && len(safe) > q.TopK {
		safe = safe[:q.TopK]
	}

	out := make([]ScoredFood, 0, len(safe))
	for _, i := range safe {
		f := snap.foods[i]
		out = append(out, ScoredFood{
			Food:       f,
			Similarity: sims[i],
			Score:      scores[i],
			Reason:     foodReason(sims[i], f, p.Goal, prefs[f.ID]),
		})
	}
	return out
}

// RecommendExercises ranks catalog exercises against the profile's ideal
// exercise (BMI-derived burn, goal-preferred type, activity level).
func (r *Recommender) RecommendExercises(p Profile, prefs PrefMap, topK int) []ScoredExercise {
	snap := r.snapshot()
	if snap == nil || snap.exEncoder == nil {
		return nil
	}

	desiredBurn, preferredType := ExerciseNeeds(p.BMI, p.Goal)
	ideal := snap.exEncoder.Transform(FeatureRow{
		Numeric: map[string]float64{
			"intensity":           float64(p.ActivityLevel),
			"calories_burn_30min": desiredBurn,
		},
		Categorical: map[string]string{
			"type":        preferredType,
			"target_goal": strconv.Itoa(int(p.Goal)),
		},
	})
	sims := similarityScores(ideal, snap.exMatrix)

	scores := make([]float64, len(snap.exercises))
	idx := make([]int, len(snap.exercises))
	for i, ex := range snap.exercises {
		scores[i] = adjustScore(sims[i], prefs[ex.ID])
		idx[i] = i
	}
	sortIndicesByScore(idx, scores)

	safe := safeExerciseIndices(p, snap.exercises, idx)
	if len(safe) == 0 {
		safe = idx
	}
	if topK > 0 && len(safe) > topK {
		safe = safe[:topK]
	}

	out := make([]ScoredExercise, 0, len(safe))
	for _, i := range safe {
		ex := snap.exercises[i]
		out = append(out, ScoredExercise{
			Exercise:   ex,
			Similarity: sims[i],
			Score:      scores[i],
			Reason:     exerciseReason(sims[i], ex, p.Goal, prefs[ex.ID]),
		})
	}
	return out
}

// recommendExercisesByType is the hybrid scorer behind the weekly pattern
// scheduler: hard type filter, safety rules with truncated fallback, cosine
// similarity over the surviving matrix rows, then preference and
// level-mismatch adjustments.
func (r *Recommender) recommendExercisesByType(p Profile, prefs PrefMap, exType string, topK, overrideLevel int) []ScoredExercise {
	snap := r.snapshot()
	if snap == nil || snap.exEncoder == nil {
		return nil
	}

	target := strings.ToLower(exType)
	idx := make([]int, 0, len(snap.exercises))
	for i, ex := range snap.exercises {
		if strings.ToLower(ex.Type) == target {
			idx = append(idx, i)
		}
	}
	if len(idx) == 0 {
		return nil
	}

	safe := safeExerciseIndices(p, snap.exercises, idx)
	if len(safe) == 0 {
		safe = idx
		if topK > 0 && len(safe) > topK {
			safe = safe[:topK]
		}
	}

	desiredBurn, _ := ExerciseNeeds(p.BMI, p.Goal)
	ideal := snap.exEncoder.Transform(FeatureRow{
		Numeric: map[string]float64{
			"intensity":           float64(p.ActivityLevel),
			"calories_burn_30min": desiredBurn,
		},
		Categorical: map[string]string{
			"type":        target,
			"target_goal": strconv.Itoa(int(p.Goal)),
		},
	})

	targetLevel := p.ActivityLevel
	if overrideLevel > 0 {
		targetLevel = overrideLevel
	}

	sims := make(map[int]float64, len(safe))
	scores := make(map[int]float64, len(safe))
	for _, i := range safe {
		ex := snap.exercises[i]
		sim := cosine(ideal, snap.exMatrix[i])
		sims[i] = sim
		scores[i] = hybridScore(sim, prefs[ex.ID], ex.Intensity, targetLevel)
	}
	ordered := append([]int(nil), safe...)
	sort.SliceStable(ordered, func(a, b int) bool {
		return scores[ordered[a]] > scores[ordered[b]]
	})
	if topK > 0 && len(ordered) > topK {
		ordered = ordered[:topK]
	}

	out := make([]ScoredExercise, 0, len(ordered))
	for _, i := range ordered {
		ex := snap.exercises[i]
		out = append(out, ScoredExercise{
			Exercise:   ex,
			Similarity: sims[i],
			Score:      scores[i],
			Reason:     exerciseReason(sims[i], ex, p.Goal, prefs[ex.ID]),
		})
	}
	return out
}

// SelectionOptions is the pick-list shown before building a custom plan.
type SelectionOptions struct {
	BreakfastOptions []ScoredFood     `json:"breakfast_options"`
	MainDishOptions  []ScoredFood     `json:"main_dish_options"`
	ExerciseOptions  []ScoredExercise `json:"exercise_options"`
}

// Options returns the best breakfast, main-dish and exercise candidates for
// the profile.
func (r *Recommender) Options(p Profile, foodPrefs, exPrefs PrefMap) SelectionOptions {
	return SelectionOptions{
		BreakfastOptions: r.RecommendFoods(p, foodPrefs, FoodQuery{MealSlots: []string{"breakfast"}, TopK: 10}),
		MainDishOptions:  r.RecommendFoods(p, foodPrefs, FoodQuery{MealSlots: []string{"lunch", "dinner"}, TopK: 20}),
		ExerciseOptions:  r.RecommendExercises(p, exPrefs, 10),
	}
}
