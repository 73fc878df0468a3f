package engine

import (
	"context"
	"testing"

	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

type fakeCatalog struct {
	exercises []types.Exercise
	foods     []types.Food
}

func (f *fakeCatalog) ActiveExercises(ctx context.Context) ([]types.Exercise, error) {
	return f.exercises, nil
}

func (f *fakeCatalog) ActiveFoods(ctx context.Context) ([]types.Food, error) {
	return f.foods, nil
}

func testExercises() []types.Exercise {
	return []types.Exercise{
		{ID: 1, Name: "Running", Type: "cardio", Intensity: types.IntensityMid, CaloriesBurn30Min: 300, TargetGoal: types.GoalLoseWeight, IsActive: true},
		{ID: 2, Name: "Walking", Type: "cardio", Intensity: types.IntensityLight, CaloriesBurn30Min: 120, TargetGoal: types.GoalMaintain, IsActive: true},
		{ID: 3, Name: "HIIT", Type: "cardio", Intensity: types.IntensityMax, CaloriesBurn30Min: 450, TargetGoal: types.GoalLoseWeight, IsActive: true},
		{ID: 4, Name: "Deadlift", Type: "strength", Intensity: types.IntensityMax, CaloriesBurn30Min: 250, TargetGoal: types.GoalGainMuscle, IsActive: true},
		{ID: 5, Name: "Push-up", Type: "strength", Intensity: types.IntensityMid, CaloriesBurn30Min: 180, TargetGoal: types.GoalGainMuscle, IsActive: true},
		{ID: 6, Name: "Yoga Flow", Type: "yoga", Intensity: types.IntensityLight, CaloriesBurn30Min: 90, TargetGoal: types.GoalMaintain, IsActive: true},
		{ID: 7, Name: "Rowing", Type: "cardio", Intensity: types.IntensityMid, CaloriesBurn30Min: 280, TargetGoal: types.GoalLoseWeight, ContraHypertension: true, IsActive: true},
	}
}

func testFoods() []types.Food {
	return []types.Food{
		{ID: 1, Name: "Oatmeal", Calories: 380, ProteinG: 12, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "breakfast", IsActive: true},
		{ID: 2, Name: "Egg Toast", Calories: 420, ProteinG: 22, Type: "high_protein", TargetGoal: types.GoalGainMuscle, SuitableFor: "breakfast", IsActive: true},
		{ID: 3, Name: "Yogurt Bowl", Calories: 400, ProteinG: 15, Type: "low_carb", TargetGoal: types.GoalLoseWeight, SuitableFor: "breakfast", IsActive: true},
		{ID: 4, Name: "Smoothie", Calories: 450, ProteinG: 8, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "breakfast", IsActive: true},
		{ID: 5, Name: "Grilled Chicken", Calories: 450, ProteinG: 40, Type: "high_protein", TargetGoal: types.GoalGainMuscle, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 6, Name: "Salmon Salad", Calories: 380, ProteinG: 30, Type: "low_carb", TargetGoal: types.GoalLoseWeight, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 7, Name: "Beef Bowl", Calories: 650, ProteinG: 35, Type: "high_protein", TargetGoal: types.GoalGainMuscle, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 8, Name: "Veggie Stir Fry", Calories: 320, ProteinG: 10, Type: "low_carb", TargetGoal: types.GoalLoseWeight, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 9, Name: "Pasta Carbonara", Calories: 780, ProteinG: 25, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "lunch,dinner", ContraHypertension: true, IsActive: true},
		{ID: 10, Name: "Tofu Curry", Calories: 520, ProteinG: 18, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 11, Name: "Rice Plate", Calories: 700, ProteinG: 20, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "lunch,dinner", IsActive: true},
		{ID: 12, Name: "Noodle Soup", Calories: 550, ProteinG: 15, Type: "balanced", TargetGoal: types.GoalMaintain, SuitableFor: "lunch,dinner", IsActive: true},
	}
}

func newTestRecommender(t *testing.T, exercises []types.Exercise, foods []types.Food) *Recommender {
	t.Helper()
	r := NewRecommender(&fakeCatalog{exercises: exercises, foods: foods}, logger.NewNop())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return r
}

func testProfile() Profile {
	return Profile{
		Age:              30,
		Gender:           "female",
		HeightCM:         165,
		WeightKG:         60,
		BMI:              22,
		ActivityLevel:    types.ActivityLight,
		Goal:             types.GoalMaintain,
		RestingHeartRate: 75,
		SleepHours:       7,
	}
}

func TestLoad_EmptyCatalogIsNotAnError(t *testing.T) {
	r := NewRecommender(&fakeCatalog{}, logger.NewNop())
	if err := r.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := r.RecommendExercises(testProfile(), nil, 5); got != nil {
		t.Fatalf("expected nil recommendations for empty catalog, got %d", len(got))
	}
	if got := r.RecommendFoods(testProfile(), nil, FoodQuery{TopK: 5}); got != nil {
		t.Fatalf("expected nil food recommendations for empty catalog, got %d", len(got))
	}
}

func TestRecommendExercises_DislikeSinksBelowNeutral(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	p := testProfile()
	p.Goal = types.GoalLoseWeight

	neutral := r.RecommendExercises(p, nil, 0)
	disliked := r.RecommendExercises(p, PrefMap{neutral[0].Exercise.ID: types.PreferenceDislike}, 0)

	if disliked[0].Exercise.ID == neutral[0].Exercise.ID {
		t.Fatalf("disliked exercise %d still ranked first", neutral[0].Exercise.ID)
	}
}

func TestRecommendExercises_HypertensionExcludesMaxIntensity(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	p := testProfile()
	p.HasHypertension = true

	for _, s := range r.RecommendExercises(p, nil, 0) {
		if s.Exercise.Intensity == types.IntensityMax {
			t.Fatalf("max intensity exercise %d recommended to hypertensive user", s.Exercise.ID)
		}
		if s.Exercise.ContraHypertension {
			t.Fatalf("contraindicated exercise %d recommended to hypertensive user", s.Exercise.ID)
		}
	}
}

func TestRecommendFoods_CalorieRangeIsHard(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())

	for _, s := range r.RecommendFoods(testProfile(), nil, FoodQuery{MinCal: 200, MaxCal: 500, TopK: 20}) {
		if s.Food.Calories < 200 || s.Food.Calories > 500 {
			t.Fatalf("food %d with %d kcal outside requested range", s.Food.ID, s.Food.Calories)
		}
	}
}

func TestRecommendFoods_SafetyFallbackReturnsTruncatedPrefilter(t *testing.T) {
	// Every breakfast contraindicated: the safety filter empties the pool and
	// the pre-filter candidates come back instead of nothing.
	foods := []types.Food{
		{ID: 1, Name: "A", Calories: 400, Type: "balanced", SuitableFor: "breakfast", ContraDiabetes: true, IsActive: true},
		{ID: 2, Name: "B", Calories: 420, Type: "balanced", SuitableFor: "breakfast", ContraDiabetes: true, IsActive: true},
		{ID: 3, Name: "C", Calories: 380, Type: "balanced", SuitableFor: "breakfast", ContraDiabetes: true, IsActive: true},
	}
	r := newTestRecommender(t, testExercises(), foods)
	p := testProfile()
	p.HasDiabetes = true

	got := r.RecommendFoods(p, nil, FoodQuery{MealSlots: []string{"breakfast"}, TopK: 2})
	if len(got) != 2 {
		t.Fatalf("expected 2 fallback candidates, got %d", len(got))
	}
}

func TestRecommendExercisesByType_OnlyRequestedType(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())

	got := r.recommendExercisesByType(testProfile(), nil, "Strength", 3, 0)
	if len(got) == 0 {
		t.Fatalf("expected strength candidates")
	}
	for _, s := range got {
		if s.Exercise.Type != "strength" {
			t.Fatalf("got type %q, want strength", s.Exercise.Type)
		}
	}
}

func TestRecommendExercisesByType_UnknownTypeReturnsNil(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	if got := r.recommendExercisesByType(testProfile(), nil, "swimming", 3, 0); got != nil {
		t.Fatalf("expected nil for unknown type, got %d", len(got))
	}
}

func TestOptions_PoolSizes(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())

	opts := r.Options(testProfile(), nil, nil)
	if len(opts.BreakfastOptions) == 0 || len(opts.BreakfastOptions) > 10 {
		t.Fatalf("breakfast options: %d", len(opts.BreakfastOptions))
	}
	if len(opts.MainDishOptions) == 0 || len(opts.MainDishOptions) > 20 {
		t.Fatalf("main dish options: %d", len(opts.MainDishOptions))
	}
	if len(opts.ExerciseOptions) == 0 || len(opts.ExerciseOptions) > 10 {
		t.Fatalf("exercise options: %d", len(opts.ExerciseOptions))
	}
	for _, f := range opts.BreakfastOptions {
		if f.Reason == "" {
			t.Fatalf("food %d has no reason", f.Food.ID)
		}
	}
}
