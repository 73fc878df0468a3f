package engine

import (
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

const (
	patternTopK     = 3
	minExercisePool = 5

	// Greedy fill stops once the remaining daily burn budget drops below
	// minGreedyBudget; contributions at or below noiseThreshold are dropped.
	minGreedyBudget = 20.0
	noiseThreshold  = 10
	fullDurationMin = 30
)

// ExerciseItem is one scheduled exercise with its computed parameters.
type ExerciseItem struct {
	Ref      ItemRef `json:"id"`
	Name     string  `json:"name"`
	Detail   string  `json:"sets"`
	Calories int     `json:"cal"`
}

// ExerciseDay is one day of the weekly workout schedule.
type ExerciseDay struct {
	Date      string         `json:"date"`
	Type      string         `json:"type"`
	Exercises []ExerciseItem `json:"exercises"`
}

// WeeklyExercisePlan maps weekday name to that day's workout.
type WeeklyExercisePlan map[string]ExerciseDay

// goalPattern picks the 7-slot day-type pattern for a goal. Muscle gain and
// weight loss train all seven days; maintenance keeps one rest day.
func goalPattern(goal types.Goal) [7]string {
	switch goal {
	case types.GoalGainMuscle:
		return [7]string{"Strength", "Strength", "Cardio", "Strength", "Strength", "Cardio", "Yoga"}
	case types.GoalLoseWeight:
		return [7]string{"Cardio", "Strength", "Cardio", "Cardio", "Strength", "Cardio", "Yoga"}
	default:
		return [7]string{"Cardio", "Strength", "Cardio", "Strength", "Cardio", "Yoga", "Rest"}
	}
}

// safeExerciseParams derives the duration or sets/reps line and the adjusted
// calorie burn for one exercise. The difficulty factor is clamped to
// [0.8, 1.2] before any scaling so one outlier week cannot produce an unsafe
// jump.
func safeExerciseParams(exType string, burn30Min int, factor float64, goal types.Goal) (detail string, adjustedCal int) {
	safe := clampDifficulty(factor)
	adjustedCal = int(float64(burn30Min) * safe)

	switch strings.ToLower(exType) {
	case "cardio":
		base := 20
		if goal == types.GoalGainMuscle {
			base = 15
		}
		minutes := int(float64(base) * safe)
		if minutes < 10 {
			minutes = 10
		}
		if minutes > 45 {
			minutes = 45
		}
		if minutes >= 40 {
			detail = fmt.Sprintf("%d min (max)", minutes)
		} else {
			detail = fmt.Sprintf("%d min", minutes)
		}
	case "strength":
		sets, reps := 3, 12
		switch goal {
		case types.GoalLoseWeight:
			reps = int(12 * safe)
			if reps < 10 {
				reps = 10
			}
			if reps > 15 {
				reps = 15
			}
		case types.GoalGainMuscle:
			if safe > 1.05 {
				sets, reps = 4, 10
			} else {
				reps = int(12 * safe)
				if reps < 8 {
					reps = 8
				}
				if reps > 12 {
					reps = 12
				}
			}
		}
		detail = fmt.Sprintf("%d sets x %d reps", sets, reps)
	default:
		minutes := 20
		if safe < 1 {
			minutes = 15
		}
		detail = fmt.Sprintf("%d min", minutes)
	}
	return detail, adjustedCal
}

// GenerateWeeklyExercisePlan builds the pattern-mode schedule: a goal-derived
// day-type pattern, the top hybrid-scored exercises of each day's type, and
// difficulty-scaled safe parameters per exercise. Rest days carry an empty
// exercise list.
func (r *Recommender) GenerateWeeklyExercisePlan(p Profile, prefs PrefMap, factor float64, startDate time.Time) WeeklyExercisePlan {
	pattern := goalPattern(p.Goal)
	plan := make(WeeklyExercisePlan, len(Weekdays))

	for i, day := range Weekdays {
		date := startDate.AddDate(0, 0, i).Format("2006-01-02")
		dayType := pattern[i]
		if dayType == "Rest" {
			plan[day] = ExerciseDay{Date: date, Type: dayType, Exercises: []ExerciseItem{}}
			continue
		}

		ranked := r.recommendExercisesByType(p, prefs, dayType, patternTopK, 0)
		items := make([]ExerciseItem, 0, len(ranked))
		for _, s := range ranked {
			detail, cal := safeExerciseParams(s.Exercise.Type, s.Exercise.CaloriesBurn30Min, factor, p.Goal)
			items = append(items, ExerciseItem{
				Ref:      CatalogRef(s.Exercise.ID),
				Name:     s.Exercise.Name,
				Detail:   detail,
				Calories: cal,
			})
		}
		plan[day] = ExerciseDay{Date: date, Type: dayType, Exercises: items}
	}
	return plan
}

// GenerateFreePoolExercisePlan builds the calorie-target schedule from a
// user-selected pool. The pool is auto-filled to at least 5 exercises using
// the goal-preferred type, then each day is filled greedily from a fresh
// shuffle: full 30-minute sessions while they fit the scaled budget,
// proportionally shortened sessions otherwise. A day's total burn never
// exceeds the target.
func (r *Recommender) GenerateFreePoolExercisePlan(p Profile, prefs PrefMap, selected []types.Exercise, targetBurn int, factor float64, startDate time.Time, rng *rand.Rand) WeeklyExercisePlan {
	safe := clampDifficulty(factor)

	pool := append([]types.Exercise(nil), selected...)
	if len(pool) < minExercisePool {
		needed := minExercisePool - len(pool)
		_, preferredType := ExerciseNeeds(p.BMI, p.Goal)
		have := make(map[uint]bool, len(pool))
		for _, ex := range pool {
			have[ex.ID] = true
		}
		for _, s := range r.recommendExercisesByType(p, prefs, preferredType, needed*2, 0) {
			if !have[s.Exercise.ID] {
				pool = append(pool, s.Exercise)
				have[s.Exercise.ID] = true
			}
		}
	}

	plan := make(WeeklyExercisePlan, len(Weekdays))
	for i, day := range Weekdays {
		date := startDate.AddDate(0, 0, i).Format("2006-01-02")

		shuffled := append([]types.Exercise(nil), pool...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		items := make([]ExerciseItem, 0, len(shuffled))
		remaining := float64(targetBurn)
		for _, ex := range shuffled {
			if remaining < minGreedyBudget {
				break
			}
			burn := float64(ex.CaloriesBurn30Min)
			if burn <= 0 {
				continue
			}

			duration := fullDurationMin
			contribution := math.Min(burn, remaining)
			if burn > remaining*safe {
				// Too big for a full session: shorten it to fit what is
				// left of the budget.
				duration = int(remaining / burn * fullDurationMin)
				if duration < 5 {
					duration = 5
				}
				if duration > 60 {
					duration = 60
				}
				contribution = math.Min(burn*float64(duration)/fullDurationMin, remaining)
			}
			if int(contribution) <= noiseThreshold {
				continue
			}

			items = append(items, ExerciseItem{
				Ref:      CatalogRef(ex.ID),
				Name:     ex.Name,
				Detail:   fmt.Sprintf("%d min", duration),
				Calories: int(contribution),
			})
			remaining -= contribution
		}
		plan[day] = ExerciseDay{Date: date, Type: "Workout", Exercises: items}
	}
	return plan
}
