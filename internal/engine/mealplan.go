package engine

import (
	"encoding/json"
	"errors"
	"math"
	"math/rand"
	"strings"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// Weekdays in plan order. Generated plans always key days Monday first.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// lunchDinnerRatio is the share of post-breakfast calories assigned to
// lunch. Both weekly variants use the same constant.
const lunchDinnerRatio = 0.57

// Smart-find thresholds: an unused candidate within acceptableDeviation of
// the target always wins; beyond that, a previously-used candidate takes
// over only when it beats the unused one by more than repeatAdvantage.
const (
	acceptableDeviation = 150
	repeatAdvantage     = 50
)

// Custom-plan pool minimums and pairing search.
const (
	minBreakfastPool = 3
	minMainPool      = 5
	pairAttempts     = 10
	pickedPairBonus  = 50
)

var ErrNoSuitableMeal = errors.New("no suitable meal found")

// MealItem is one assigned dish.
type MealItem struct {
	Ref      ItemRef `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"cal"`
}

// DayMeals is a complete breakfast/lunch/dinner assignment for one day.
type DayMeals struct {
	TotalCalories  int      `json:"total_calories"`
	TargetCalories int      `json:"target_calories"`
	Diff           int      `json:"diff"`
	Breakfast      MealItem `json:"breakfast"`
	Lunch          MealItem `json:"lunch"`
	Dinner         MealItem `json:"dinner"`
}

// DayResult is either a complete day or an explicit error marker; a day is
// never a partial triple. A failed day never aborts the rest of the week.
type DayResult struct {
	Meals *DayMeals
	Err   error
}

func (d DayResult) MarshalJSON() ([]byte, error) {
	if d.Err != nil {
		return json.Marshal(map[string]string{"error": d.Err.Error()})
	}
	return json.Marshal(d.Meals)
}

// WeeklyMealPlan maps weekday name to that day's result.
type WeeklyMealPlan map[string]DayResult

// mealOption is one schedulable dish; Picked marks items the user selected
// explicitly (as opposed to auto-filled candidates).
type mealOption struct {
	Ref      ItemRef
	Name     string
	Calories int
	Picked   bool
}

func foodOptions(foods []ScoredFood, picked bool) []mealOption {
	out := make([]mealOption, 0, len(foods))
	for _, f := range foods {
		out = append(out, mealOption{
			Ref:      CatalogRef(f.Food.ID),
			Name:     f.Food.Name,
			Calories: f.Food.Calories,
			Picked:   picked,
		})
	}
	return out
}

func (m mealOption) item() MealItem {
	return MealItem{Ref: m.Ref, Name: m.Name, Calories: m.Calories}
}

// smartFind prefers the not-yet-used candidate closest to the target, but
// allows a repeat when the best unused candidate misses the target badly and
// a used one matches materially better. Greedy on purpose: it trades a
// bounded calorie error for week-to-week variety.
func smartFind(pool []mealOption, used map[ItemRef]bool, target float64) *mealOption {
	var bestUnused, bestAny *mealOption
	for i := range pool {
		m := &pool[i]
		if bestAny == nil || deviation(m, target) < deviation(bestAny, target) {
			bestAny = m
		}
		if used[m.Ref] {
			continue
		}
		if bestUnused == nil || deviation(m, target) < deviation(bestUnused, target) {
			bestUnused = m
		}
	}
	if bestUnused == nil {
		return bestAny
	}
	if bestAny == nil {
		return nil
	}
	diffUnused := deviation(bestUnused, target)
	if diffUnused <= acceptableDeviation {
		return bestUnused
	}
	if deviation(bestAny, target) < diffUnused-repeatAdvantage {
		return bestAny
	}
	return bestUnused
}

func deviation(m *mealOption, target float64) float64 {
	return math.Abs(float64(m.Calories) - target)
}

// GenerateWeeklyMealPlan assigns breakfast, lunch and dinner for seven days
// against the daily calorie target. Breakfast candidates cover 20-35% of the
// target; main meals are drawn from a merged, shuffled pool of light
// (200-500 kcal) and high-energy (501-1200 kcal) dishes so the remaining
// budget can always be approached from both sides.
func (r *Recommender) GenerateWeeklyMealPlan(p Profile, prefs PrefMap, targetCalories int, rng *rand.Rand) WeeklyMealPlan {
	target := float64(targetCalories)

	breakfastPool := foodOptions(r.RecommendFoods(p, prefs, FoodQuery{
		MealSlots: []string{"breakfast"},
		MinCal:    target * 0.20,
		MaxCal:    target * 0.35,
		TopK:      20,
	}), false)

	dietPool := r.RecommendFoods(p, prefs, FoodQuery{
		MealSlots: []string{"lunch", "dinner"},
		MinCal:    200, MaxCal: 500, TopK: 30,
	})
	energyPool := r.RecommendFoods(p, prefs, FoodQuery{
		MealSlots: []string{"lunch", "dinner"},
		MinCal:    501, MaxCal: 1200, TopK: 30,
	})
	mainPool := append(foodOptions(dietPool, false), foodOptions(energyPool, false)...)
	rng.Shuffle(len(mainPool), func(i, j int) { mainPool[i], mainPool[j] = mainPool[j], mainPool[i] })

	plan := make(WeeklyMealPlan, len(Weekdays))
	used := make(map[ItemRef]bool)

	for _, day := range Weekdays {
		plan[day] = r.scheduleMealDay(breakfastPool, mainPool, used, target, rng)
	}
	return plan
}

func (r *Recommender) scheduleMealDay(breakfastPool, mainPool []mealOption, used map[ItemRef]bool, target float64, rng *rand.Rand) DayResult {
	unusedBreakfasts := make([]mealOption, 0, len(breakfastPool))
	for _, m := range breakfastPool {
		if !used[m.Ref] {
			unusedBreakfasts = append(unusedBreakfasts, m)
		}
	}
	// Breakfast pool exhausted: allow repeats again.
	if len(unusedBreakfasts) == 0 {
		unusedBreakfasts = breakfastPool
	}
	if len(unusedBreakfasts) == 0 {
		return DayResult{Err: ErrNoSuitableMeal}
	}
	breakfast := unusedBreakfasts[rng.Intn(len(unusedBreakfasts))]
	used[breakfast.Ref] = true

	remaining := target - float64(breakfast.Calories)

	lunch := smartFind(mainPool, used, remaining*lunchDinnerRatio)
	if lunch == nil {
		return DayResult{Err: ErrNoSuitableMeal}
	}
	used[lunch.Ref] = true

	dinnerTarget := target - float64(breakfast.Calories) - float64(lunch.Calories)
	// Never force a dinner outside sane bounds.
	if dinnerTarget < 200 {
		dinnerTarget = 200
	}
	if dinnerTarget > 900 {
		dinnerTarget = 900
	}
	dinner := smartFind(mainPool, used, dinnerTarget)
	if dinner == nil {
		return DayResult{Err: ErrNoSuitableMeal}
	}
	used[dinner.Ref] = true

	total := breakfast.Calories + lunch.Calories + dinner.Calories
	return DayResult{Meals: &DayMeals{
		TotalCalories:  total,
		TargetCalories: int(target),
		Diff:           total - int(target),
		Breakfast:      breakfast.item(),
		Lunch:          lunch.item(),
		Dinner:         dinner.item(),
	}}
}

// CustomItem is a free-text dish the user typed in; it never exists in the
// catalog and is tracked through a generated opaque id.
type CustomItem struct {
	Name     string `json:"name"`
	Calories int    `json:"cal"`
	Slot     string `json:"type"`
}

// GenerateCustomMealPlan schedules a week from user-selected dishes,
// auto-filling via the recommender when the selection is below the pool
// minimums (3 breakfasts, 5 mains). User-picked dishes outrank auto-filled
// ones: breakfasts rotate picked-first, and each day's lunch/dinner pair is
// chosen from random pairings scored by calorie fit minus a per-picked-item
// bonus.
func (r *Recommender) GenerateCustomMealPlan(p Profile, prefs PrefMap, selectedFoods []types.Food, customItems []CustomItem, targetCalories int, rng *rand.Rand) WeeklyMealPlan {
	target := float64(targetCalories)

	var breakfastPool, mainPool []mealOption
	for _, f := range selectedFoods {
		opt := mealOption{Ref: CatalogRef(f.ID), Name: f.Name, Calories: f.Calories, Picked: true}
		if strings.Contains(strings.ToLower(f.SuitableFor), "breakfast") {
			breakfastPool = append(breakfastPool, opt)
		} else {
			mainPool = append(mainPool, opt)
		}
	}
	for _, c := range customItems {
		opt := mealOption{Ref: NewCustomRef(), Name: c.Name, Calories: c.Calories, Picked: true}
		if strings.Contains(strings.ToLower(c.Slot), "breakfast") {
			breakfastPool = append(breakfastPool, opt)
		} else {
			mainPool = append(mainPool, opt)
		}
	}

	if len(breakfastPool) < minBreakfastPool {
		needed := minBreakfastPool - len(breakfastPool)
		more := r.RecommendFoods(p, prefs, FoodQuery{MealSlots: []string{"breakfast"}, TopK: needed * 2})
		breakfastPool = append(breakfastPool, foodOptions(more, false)...)
	}
	if len(mainPool) < minMainPool {
		needed := minMainPool - len(mainPool)
		more := r.RecommendFoods(p, prefs, FoodQuery{MealSlots: []string{"lunch", "dinner"}, TopK: needed * 2})
		mainPool = append(mainPool, foodOptions(more, false)...)
	}

	rng.Shuffle(len(breakfastPool), func(i, j int) { breakfastPool[i], breakfastPool[j] = breakfastPool[j], breakfastPool[i] })
	rng.Shuffle(len(mainPool), func(i, j int) { mainPool[i], mainPool[j] = mainPool[j], mainPool[i] })

	plan := make(WeeklyMealPlan, len(Weekdays))
	for _, day := range Weekdays {
		if len(breakfastPool) == 0 || len(mainPool) < 2 {
			plan[day] = DayResult{Err: ErrNoSuitableMeal}
			continue
		}

		// Picked dishes first; rotate today's breakfast to the back so
		// tomorrow varies.
		bi := 0
		for i, m := range breakfastPool {
			if m.Picked {
				bi = i
				break
			}
		}
		breakfast := breakfastPool[bi]
		breakfastPool = append(append(breakfastPool[:bi], breakfastPool[bi+1:]...), breakfast)

		remaining := target - float64(breakfast.Calories)

		var bestPair [2]mealOption
		bestScore := math.Inf(1)
		found := false
		for attempt := 0; attempt < pairAttempts; attempt++ {
			m1 := mainPool[rng.Intn(len(mainPool))]
			m2 := mainPool[rng.Intn(len(mainPool))]
			if m1.Ref == m2.Ref {
				continue
			}
			diff := math.Abs(float64(m1.Calories+m2.Calories) - remaining)
			bonus := 0.0
			if m1.Picked {
				bonus += pickedPairBonus
			}
			if m2.Picked {
				bonus += pickedPairBonus
			}
			// Ties keep the earliest pair evaluated.
			if score := diff - bonus; score < bestScore {
				bestScore = score
				bestPair = [2]mealOption{m1, m2}
				found = true
			}
		}
		if !found {
			bestPair = [2]mealOption{mainPool[0], mainPool[1]}
		}

		lunch, dinner := bestPair[0], bestPair[1]
		total := breakfast.Calories + lunch.Calories + dinner.Calories
		plan[day] = DayResult{Meals: &DayMeals{
			TotalCalories:  total,
			TargetCalories: int(target),
			Diff:           total - int(target),
			Breakfast:      breakfast.item(),
			Lunch:          lunch.item(),
			Dinner:         dinner.item(),
		}}
	}
	return plan
}
