package momentum

import (
	"context"
	"time"
)

// #region categories

// Category names one of the six breakdown components.
type Category string

const (
	CategoryNutrition Category = "nutrition"
	CategoryWorkout   Category = "workout"
	CategorySleep     Category = "sleep"
	CategoryTasks     Category = "tasks"
	CategoryFinance   Category = "finance"
	CategorySteps     Category = "steps"
)

// CategoryOrder is the canonical iteration order. Weakest-link ties resolve
// to the first category in this order.
var CategoryOrder = []Category{
	CategoryNutrition, CategoryWorkout, CategorySleep,
	CategoryTasks, CategoryFinance, CategorySteps,
}

// #endregion

// #region weights

// Weights holds the per-category caps. The default partition sums to 100.
type Weights struct {
	Nutrition int `json:"nutrition"`
	Workout   int `json:"workout"`
	Sleep     int `json:"sleep"`
	Tasks     int `json:"tasks"`
	Finance   int `json:"finance"`
	Steps     int `json:"steps"`
}

// DefaultWeights returns the standard 30/20/15/15/10/10 partition.
func DefaultWeights() Weights {
	return Weights{Nutrition: 30, Workout: 20, Sleep: 15, Tasks: 15, Finance: 10, Steps: 10}
}

// Sum returns the total of all category weights.
func (w Weights) Sum() int {
	return w.Nutrition + w.Workout + w.Sleep + w.Tasks + w.Finance + w.Steps
}

// #endregion

// #region breakdown

// Breakdown holds the six integer sub-scores of one momentum computation.
type Breakdown struct {
	Nutrition int `json:"nutrition"`
	Workout   int `json:"workout"`
	Sleep     int `json:"sleep"`
	Tasks     int `json:"tasks"`
	Finance   int `json:"finance"`
	Steps     int `json:"steps"`
}

// Total sums the sub-scores. Bounded by Weights.Sum by construction.
func (b Breakdown) Total() int {
	return b.Nutrition + b.Workout + b.Sleep + b.Tasks + b.Finance + b.Steps
}

// Value returns the sub-score for a category.
func (b Breakdown) Value(c Category) int {
	switch c {
	case CategoryNutrition:
		return b.Nutrition
	case CategoryWorkout:
		return b.Workout
	case CategorySleep:
		return b.Sleep
	case CategoryTasks:
		return b.Tasks
	case CategoryFinance:
		return b.Finance
	case CategorySteps:
		return b.Steps
	}
	return 0
}

// #endregion

// #region snapshot

// Snapshot is the persisted result of one momentum computation for a date.
// One logical snapshot exists per date; recomputation overwrites it.
type Snapshot struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"` // YYYY-MM-DD
	Score      int       `json:"score"`
	Breakdown  Breakdown `json:"breakdown"`
	ComputedAt time.Time `json:"computed_at"`
}

// #endregion

// #region settings

// Settings carries the user goals and weights the engine scores against.
// The engine treats it as immutable per invocation.
type Settings struct {
	CalorieTarget   float64 `json:"calorie_target"`
	ProteinTarget   float64 `json:"protein_target"`
	SleepGoalHours  float64 `json:"sleep_goal_hours"`
	StepGoal        int     `json:"step_goal"`
	HydrationGoalML int     `json:"hydration_goal_ml"`
	Weights         Weights `json:"weights"`
}

// DefaultSettings returns sane starting goals for a new database.
func DefaultSettings() Settings {
	return Settings{
		CalorieTarget:   2200,
		ProteinTarget:   120,
		SleepGoalHours:  8,
		StepGoal:        10000,
		HydrationGoalML: 2500,
		Weights:         DefaultWeights(),
	}
}

// #endregion

// #region collaborators

// NutritionTotals are the summed macros of one day's nutrition logs.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
}

// SleepEntry is one day's sleep log.
type SleepEntry struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
}

// TaskCompletion is the completed/total task count for one day.
type TaskCompletion struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// DailyReader is the read side of the data-access collaborator. Absent rows
// are reported via zero values or found=false, never as errors; errors mean
// the store itself failed.
type DailyReader interface {
	NutritionTotals(ctx context.Context, date string) (NutritionTotals, error)
	SleepEntry(ctx context.Context, date string) (SleepEntry, bool, error)
	WorkoutCompleted(ctx context.Context, date string) (bool, error)
	TaskCompletion(ctx context.Context, date string) (TaskCompletion, error)
	StepCount(ctx context.Context, date string) (int, error)
	Settings(ctx context.Context) (Settings, error)
}

// SnapshotWriter is the write side: an upsert keyed by date.
type SnapshotWriter interface {
	SaveSnapshot(ctx context.Context, snap Snapshot) error
}

// #endregion
