package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/healthtrack/healthtrack-backend/internal/engine"
	"github.com/healthtrack/healthtrack-backend/internal/logger"
	"github.com/healthtrack/healthtrack-backend/internal/repos"
	"github.com/healthtrack/healthtrack-backend/internal/types"
)

// PlanDocument is the JSON document stored in weekly_plan.plan_data.
type PlanDocument struct {
	TargetCalories   int                       `json:"target_calories"`
	TargetBurn       int                       `json:"target_burn,omitempty"`
	DifficultyFactor float64                   `json:"difficulty_factor"`
	MealPlan         engine.WeeklyMealPlan     `json:"meal_plan"`
	WorkoutPlan      engine.WeeklyExercisePlan `json:"workout_plan"`
}

// CustomSelection is the user's pick-list for a custom plan. Empty slices are
// valid; the schedulers auto-fill below their pool minimums.
type CustomSelection struct {
	FoodIDs     []uint              `json:"selected_food_ids"`
	ExerciseIDs []uint              `json:"selected_ex_ids"`
	CustomItems []engine.CustomItem `json:"custom_items"`
}

// TrackItemInput identifies one plan item to mark complete or incomplete.
// Catalog items carry ItemID; custom items carry InstanceID instead.
type TrackItemInput struct {
	PlanID      uint       `json:"plan_id"`
	Date        *time.Time `json:"date"`
	ItemType    string     `json:"item_type"`
	ItemID      uint       `json:"item_id"`
	InstanceID  string     `json:"instance_id"`
	IsCompleted bool       `json:"is_completed"`
}

// CurrentPlanView is the latest stored plan with its tracking rows merged in
// for display.
type CurrentPlanView struct {
	Plan     *types.WeeklyPlan    `json:"plan"`
	Document PlanDocument         `json:"document"`
	Tracking []types.PlanTracking `json:"tracking"`
}

// PlanService generates, stores and tracks weekly plans.
type PlanService interface {
	GenerateWeeklyPlan(ctx context.Context, userID uuid.UUID, startDate *time.Time) (*types.WeeklyPlan, error)
	GenerateCustomPlan(ctx context.Context, userID uuid.UUID, sel CustomSelection, startDate *time.Time) (*types.WeeklyPlan, error)
	CurrentPlan(ctx context.Context, userID uuid.UUID) (*CurrentPlanView, error)
	TrackItem(ctx context.Context, userID uuid.UUID, input TrackItemInput) (*types.PlanTracking, error)
	PastPerformance(ctx context.Context, userID uuid.UUID) (float64, error)
}

type planService struct {
	rec     *engine.Recommender
	users   repos.UserRepo
	metrics repos.HealthMetricRepo
	prefs   repos.PreferenceRepo
	catalog repos.CatalogRepo
	plans   repos.PlanRepo
	newRand func() *rand.Rand
	log     *logger.Logger
}

func NewPlanService(
	rec *engine.Recommender,
	users repos.UserRepo,
	metrics repos.HealthMetricRepo,
	prefs repos.PreferenceRepo,
	catalog repos.CatalogRepo,
	plans repos.PlanRepo,
	baseLog *logger.Logger,
) PlanService {
	return &planService{
		rec:     rec,
		users:   users,
		metrics: metrics,
		prefs:   prefs,
		catalog: catalog,
		plans:   plans,
		newRand: func() *rand.Rand { return rand.New(rand.NewSource(time.Now().UnixNano())) },
		log:     baseLog.With("service", "PlanService"),
	}
}

// mondayOf returns the Monday of the week containing t, at midnight.
func mondayOf(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	d := t.AddDate(0, 0, -offset)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

// PastPerformance maps the latest plan's exercise completion rate to the
// difficulty factor for the next plan. Neutral 1.0 when no plan exists.
func (ps *planService) PastPerformance(ctx context.Context, userID uuid.UUID) (float64, error) {
	latest, err := ps.plans.LatestByUser(ctx, nil, userID)
	if err != nil {
		return 0, fmt.Errorf("load latest plan: %w", err)
	}
	if latest == nil {
		return 1.0, nil
	}
	completed, total, err := ps.plans.ExerciseCompletion(ctx, nil, latest.ID)
	if err != nil {
		return 0, fmt.Errorf("load plan tracking: %w", err)
	}
	return engine.DifficultyFactor(completed, total), nil
}

func (ps *planService) targetsFor(p engine.Profile) (intake, burn int) {
	intake = p.DailyCalories
	if intake <= 0 {
		intake = engine.DailyCalorieTarget(p.HeightCM, p.WeightKG, p.Age, p.Gender, p.ActivityLevel, p.Goal)
	}
	burn = p.DailyBurn
	if burn <= 0 {
		_, _, burn = engine.DailyTargets(p.WeightKG, p.HeightCM, p.Age, p.Gender, p.ActivityLevel, p.Goal)
	}
	if burn <= 0 {
		burn = 300
	}
	return intake, burn
}

func (ps *planService) persist(ctx context.Context, userID uuid.UUID, start time.Time, doc PlanDocument) (*types.WeeklyPlan, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode plan document: %w", err)
	}
	end := start.AddDate(0, 0, 6)
	plan := &types.WeeklyPlan{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
		PlanData:  datatypes.JSON(raw),
	}
	stored, err := ps.plans.Create(ctx, nil, plan)
	if err != nil {
		return nil, fmt.Errorf("store plan: %w", err)
	}
	ps.log.Info("Plan stored", "plan_id", stored.ID, "user_id", userID, "start", start.Format("2006-01-02"))
	return stored, nil
}

func (ps *planService) GenerateWeeklyPlan(ctx context.Context, userID uuid.UUID, startDate *time.Time) (*types.WeeklyPlan, error) {
	p, err := profileFor(ctx, ps.users, ps.metrics, userID)
	if err != nil {
		return nil, err
	}
	foodPrefs, err := ps.prefs.FoodPrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load food preferences: %w", err)
	}
	exPrefs, err := ps.prefs.ExercisePrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load exercise preferences: %w", err)
	}
	factor, err := ps.PastPerformance(ctx, userID)
	if err != nil {
		return nil, err
	}

	start := mondayOf(time.Now().AddDate(0, 0, 1))
	if startDate != nil {
		start = mondayOf(*startDate)
	}
	intake, _ := ps.targetsFor(p)

	doc := PlanDocument{
		TargetCalories:   intake,
		DifficultyFactor: factor,
		MealPlan:         ps.rec.GenerateWeeklyMealPlan(p, foodPrefs, intake, ps.newRand()),
		WorkoutPlan:      ps.rec.GenerateWeeklyExercisePlan(p, exPrefs, factor, start),
	}
	return ps.persist(ctx, userID, start, doc)
}

func (ps *planService) GenerateCustomPlan(ctx context.Context, userID uuid.UUID, sel CustomSelection, startDate *time.Time) (*types.WeeklyPlan, error) {
	p, err := profileFor(ctx, ps.users, ps.metrics, userID)
	if err != nil {
		return nil, err
	}
	foodPrefs, err := ps.prefs.FoodPrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load food preferences: %w", err)
	}
	exPrefs, err := ps.prefs.ExercisePrefMap(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load exercise preferences: %w", err)
	}
	factor, err := ps.PastPerformance(ctx, userID)
	if err != nil {
		return nil, err
	}

	foods, err := ps.catalog.FoodsByIDs(ctx, nil, sel.FoodIDs)
	if err != nil {
		return nil, fmt.Errorf("load selected foods: %w", err)
	}
	exercises, err := ps.catalog.ExercisesByIDs(ctx, nil, sel.ExerciseIDs)
	if err != nil {
		return nil, fmt.Errorf("load selected exercises: %w", err)
	}

	start := mondayOf(time.Now().AddDate(0, 0, 1))
	if startDate != nil {
		start = mondayOf(*startDate)
	}
	intake, burn := ps.targetsFor(p)

	doc := PlanDocument{
		TargetCalories:   intake,
		TargetBurn:       burn,
		DifficultyFactor: factor,
		MealPlan:         ps.rec.GenerateCustomMealPlan(p, foodPrefs, foods, sel.CustomItems, intake, ps.newRand()),
		WorkoutPlan:      ps.rec.GenerateFreePoolExercisePlan(p, exPrefs, exercises, burn, factor, start, ps.newRand()),
	}
	return ps.persist(ctx, userID, start, doc)
}

func (ps *planService) CurrentPlan(ctx context.Context, userID uuid.UUID) (*CurrentPlanView, error) {
	plan, err := ps.plans.LatestByUser(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("load latest plan: %w", err)
	}
	if plan == nil {
		return nil, ErrPlanNotFound
	}
	var doc PlanDocument
	if len(plan.PlanData) > 0 {
		if err := json.Unmarshal(plan.PlanData, &doc); err != nil {
			return nil, fmt.Errorf("decode plan document: %w", err)
		}
	}
	tracking, err := ps.plans.TrackingByPlan(ctx, nil, plan.ID)
	if err != nil {
		return nil, fmt.Errorf("load plan tracking: %w", err)
	}
	return &CurrentPlanView{Plan: plan, Document: doc, Tracking: tracking}, nil
}

func (ps *planService) TrackItem(ctx context.Context, userID uuid.UUID, input TrackItemInput) (*types.PlanTracking, error) {
	row := &types.PlanTracking{
		UserID:       userID,
		WeeklyPlanID: input.PlanID,
		Date:         input.Date,
		ItemType:     input.ItemType,
		ItemID:       input.ItemID,
		InstanceID:   input.InstanceID,
		IsCompleted:  input.IsCompleted,
	}
	stored, err := ps.plans.UpsertTracking(ctx, nil, row)
	if err != nil {
		return nil, fmt.Errorf("upsert tracking: %w", err)
	}
	return stored, nil
}
