package engine

import (
	"testing"

	"github.com/healthtrack/healthtrack-backend/internal/types"
)

func TestExerciseSafe_Rules(t *testing.T) {
	maxIntensity := types.Exercise{ID: 1, Intensity: types.IntensityMax}
	midIntensity := types.Exercise{ID: 2, Intensity: types.IntensityMid}
	contraDiabetes := types.Exercise{ID: 3, Intensity: types.IntensityLight, ContraDiabetes: true}

	cases := []struct {
		name string
		p    Profile
		ex   types.Exercise
		want bool
	}{
		{"healthy user, max intensity", testProfile(), maxIntensity, true},
		{"hypertension blocks max intensity", Profile{Age: 30, RestingHeartRate: 75, SleepHours: 7, HasHypertension: true}, maxIntensity, false},
		{"hypertension allows mid intensity", Profile{Age: 30, RestingHeartRate: 75, SleepHours: 7, HasHypertension: true}, midIntensity, true},
		{"over 60 blocks max intensity", Profile{Age: 61, RestingHeartRate: 75, SleepHours: 7}, maxIntensity, false},
		{"high heart rate blocks max intensity", Profile{Age: 30, RestingHeartRate: 110, SleepHours: 7}, maxIntensity, false},
		{"short sleep blocks max intensity", Profile{Age: 30, RestingHeartRate: 75, SleepHours: 4}, maxIntensity, false},
		{"diabetes blocks contraindicated", Profile{Age: 30, RestingHeartRate: 75, SleepHours: 7, HasDiabetes: true}, contraDiabetes, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := exerciseSafe(tc.p, tc.ex); got != tc.want {
				t.Fatalf("exerciseSafe = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFoodSafe_Rules(t *testing.T) {
	heavy := types.Food{ID: 1, Calories: 900}
	light := types.Food{ID: 2, Calories: 400}
	salty := types.Food{ID: 3, Calories: 400, ContraHypertension: true}
	sugary := types.Food{ID: 4, Calories: 400, ContraDiabetes: true}

	loseWeight := testProfile()
	loseWeight.Goal = types.GoalLoseWeight

	if foodSafe(loseWeight, heavy) {
		t.Fatalf("900 kcal dish passed for a weight-loss goal")
	}
	if !foodSafe(loseWeight, light) {
		t.Fatalf("400 kcal dish blocked for a weight-loss goal")
	}
	if !foodSafe(testProfile(), heavy) {
		t.Fatalf("900 kcal dish blocked for a maintenance goal")
	}

	hypertensive := testProfile()
	hypertensive.HasHypertension = true
	if foodSafe(hypertensive, salty) {
		t.Fatalf("contraindicated dish passed for hypertensive user")
	}

	diabetic := testProfile()
	diabetic.HasDiabetes = true
	if foodSafe(diabetic, sugary) {
		t.Fatalf("contraindicated dish passed for diabetic user")
	}
}

func TestSafeIndices_PreserveCatalogOrder(t *testing.T) {
	foods := []types.Food{
		{ID: 1, Calories: 400},
		{ID: 2, Calories: 400, ContraDiabetes: true},
		{ID: 3, Calories: 400},
	}
	p := testProfile()
	p.HasDiabetes = true

	got := safeFoodIndices(p, foods, []int{0, 1, 2})
	if len(got) != 2 || got[0] != 0 || got[1] != 2 {
		t.Fatalf("safeFoodIndices = %v, want [0 2]", got)
	}
}
