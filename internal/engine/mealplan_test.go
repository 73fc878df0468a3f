package engine

import (
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

func TestGenerateWeeklyMealPlan_EveryDayCompleteOrError(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	rng := rand.New(rand.NewSource(1))

	plan := r.GenerateWeeklyMealPlan(testProfile(), nil, 2000, rng)
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for _, day := range Weekdays {
		res, ok := plan[day]
		if !ok {
			t.Fatalf("day %s missing from plan", day)
		}
		if res.Err != nil {
			continue
		}
		m := res.Meals
		if m == nil {
			t.Fatalf("day %s has neither meals nor error", day)
		}
		if m.Breakfast.Name == "" || m.Lunch.Name == "" || m.Dinner.Name == "" {
			t.Fatalf("day %s has a partial triple: %+v", day, m)
		}
		if got := m.Breakfast.Calories + m.Lunch.Calories + m.Dinner.Calories; got != m.TotalCalories {
			t.Fatalf("day %s total %d does not match items %d", day, m.TotalCalories, got)
		}
	}
}

func TestGenerateWeeklyMealPlan_HypertensiveWeightLossScenario(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	p := testProfile()
	p.BMI = 32
	p.Goal = types.GoalLoseWeight
	p.HasHypertension = true

	contra := make(map[string]bool)
	for _, f := range testFoods() {
		if f.ContraHypertension {
			contra[f.Name] = true
		}
	}

	plan := r.GenerateWeeklyMealPlan(p, nil, 1800, rand.New(rand.NewSource(7)))
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for _, day := range Weekdays {
		m := plan[day].Meals
		if m == nil {
			t.Fatalf("day %s failed: %v", day, plan[day].Err)
		}
		if m.Breakfast.Calories < 360 || m.Breakfast.Calories > 630 {
			t.Fatalf("day %s breakfast %d kcal outside 20-35%% of 1800", day, m.Breakfast.Calories)
		}
		for _, item := range []MealItem{m.Breakfast, m.Lunch, m.Dinner} {
			if contra[item.Name] {
				t.Fatalf("day %s scheduled contraindicated dish %q", day, item.Name)
			}
		}
	}
}

func TestGenerateWeeklyMealPlan_EmptyCatalogYieldsErrorMarkers(t *testing.T) {
	r := newTestRecommender(t, testExercises(), nil)

	plan := r.GenerateWeeklyMealPlan(testProfile(), nil, 2000, rand.New(rand.NewSource(1)))
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for _, day := range Weekdays {
		if plan[day].Err == nil {
			t.Fatalf("day %s succeeded with an empty catalog", day)
		}
	}
}

func TestDayResult_ErrorMarkerJSON(t *testing.T) {
	b, err := json.Marshal(DayResult{Err: ErrNoSuitableMeal})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"error"`) {
		t.Fatalf("error day marshaled without marker: %s", b)
	}

	ok, err := json.Marshal(DayResult{Meals: &DayMeals{TotalCalories: 1800}})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(ok), `"error"`) {
		t.Fatalf("complete day marshaled with error marker: %s", ok)
	}
}

func TestSmartFind_PrefersUnusedWithinDeviation(t *testing.T) {
	pool := []mealOption{
		{Ref: CatalogRef(1), Name: "close used", Calories: 500},
		{Ref: CatalogRef(2), Name: "far unused", Calories: 620},
	}
	used := map[ItemRef]bool{CatalogRef(1): true}

	got := smartFind(pool, used, 500)
	if got == nil || got.Ref != CatalogRef(2) {
		t.Fatalf("expected the unused option within deviation, got %+v", got)
	}
}

func TestSmartFind_RepeatsWhenMateriallyBetter(t *testing.T) {
	pool := []mealOption{
		{Ref: CatalogRef(1), Name: "exact used", Calories: 500},
		{Ref: CatalogRef(2), Name: "way off unused", Calories: 900},
	}
	used := map[ItemRef]bool{CatalogRef(1): true}

	got := smartFind(pool, used, 500)
	if got == nil || got.Ref != CatalogRef(1) {
		t.Fatalf("expected the materially better used option, got %+v", got)
	}
}

func TestSmartFind_EmptyPoolReturnsNil(t *testing.T) {
	if got := smartFind(nil, map[ItemRef]bool{}, 500); got != nil {
		t.Fatalf("expected nil for empty pool, got %+v", got)
	}
}

func TestGenerateCustomMealPlan_EmptySelectionAutofills(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())

	plan := r.GenerateCustomMealPlan(testProfile(), nil, nil, nil, 2000, rand.New(rand.NewSource(3)))
	if len(plan) != 7 {
		t.Fatalf("plan has %d days, want 7", len(plan))
	}
	for _, day := range Weekdays {
		if plan[day].Meals == nil {
			t.Fatalf("day %s failed after autofill: %v", day, plan[day].Err)
		}
	}
}

func TestGenerateCustomMealPlan_CustomItemsGetOpaqueIDs(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	custom := []CustomItem{
		{Name: "Grandma's porridge", Calories: 420, Slot: "breakfast"},
		{Name: "Family stew", Calories: 560, Slot: "lunch"},
	}

	plan := r.GenerateCustomMealPlan(testProfile(), nil, nil, custom, 2000, rand.New(rand.NewSource(5)))

	foundCustom := false
	for _, day := range Weekdays {
		m := plan[day].Meals
		if m == nil {
			t.Fatalf("day %s failed: %v", day, plan[day].Err)
		}
		for _, item := range []MealItem{m.Breakfast, m.Lunch, m.Dinner} {
			if item.Ref.IsCustom() {
				foundCustom = true
				if !strings.HasPrefix(item.Ref.String(), "custom_") {
					t.Fatalf("custom id %q lacks prefix", item.Ref.String())
				}
			}
		}
	}
	if !foundCustom {
		t.Fatalf("no custom item was ever scheduled")
	}
}

func TestGenerateCustomMealPlan_PickedBreakfastScheduledFirst(t *testing.T) {
	r := newTestRecommender(t, testExercises(), testFoods())
	picked := []types.Food{
		{ID: 2, Name: "Egg Toast", Calories: 420, SuitableFor: "breakfast"},
	}

	plan := r.GenerateCustomMealPlan(testProfile(), nil, picked, nil, 2000, rand.New(rand.NewSource(2)))
	m := plan["Monday"].Meals
	if m == nil {
		t.Fatalf("Monday failed: %v", plan["Monday"].Err)
	}
	if m.Breakfast.Name != "Egg Toast" {
		t.Fatalf("Monday breakfast %q, want the user-picked dish", m.Breakfast.Name)
	}
}
