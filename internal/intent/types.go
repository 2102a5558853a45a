package intent

// #region domain

// Domain is the category of action a parsed utterance maps to.
type Domain string

const (
	DomainNutritionAdd   Domain = "nutrition_add"
	DomainHydrationAdd   Domain = "hydration_add"
	DomainSleepLog       Domain = "sleep_log"
	DomainStepsUpdate    Domain = "steps_update"
	DomainTaskCreate     Domain = "task_create"
	DomainFinanceExpense Domain = "finance_expense"
	DomainFinanceGoalAdd Domain = "finance_goal_add"
	DomainUnknown        Domain = "unknown"
)

// #endregion

// #region intent

// Intent is the result of classifying one utterance. Exactly one payload
// pointer is non-nil for recognized domains; all are nil for DomainUnknown.
type Intent struct {
	Domain               Domain  `json:"domain"`
	Confidence           float64 `json:"confidence"`
	RawTranscript        string  `json:"raw_transcript"`
	RequiresConfirmation bool    `json:"requires_confirmation"`

	Hydration *HydrationData `json:"hydration,omitempty"`
	Sleep     *SleepData     `json:"sleep,omitempty"`
	Steps     *StepsData     `json:"steps,omitempty"`
	Task      *TaskData      `json:"task,omitempty"`
	Expense   *ExpenseData   `json:"expense,omitempty"`
	GoalAdd   *GoalAddData   `json:"goal_add,omitempty"`
	Nutrition *NutritionData `json:"nutrition,omitempty"`
}

// #endregion

// #region payloads

// HydrationData is the payload for hydration_add.
type HydrationData struct {
	AmountML float64 `json:"amount_ml"`
}

// SleepData is the payload for sleep_log. Quality defaults to 3 (midpoint of 1-5).
type SleepData struct {
	Hours   float64 `json:"hours"`
	Quality int     `json:"quality"`
}

// StepsData is the payload for steps_update.
type StepsData struct {
	Count int `json:"count"`
}

// TaskData is the payload for task_create. Priority defaults to 2 (mid).
type TaskData struct {
	Title    string `json:"title"`
	Priority int    `json:"priority"`
}

// ExpenseData is the payload for finance_expense.
type ExpenseData struct {
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
}

// GoalAddData is the payload for finance_goal_add. GoalQuery is a fuzzy
// lookup key resolved against stored goal names by the router.
type GoalAddData struct {
	Amount    float64 `json:"amount"`
	GoalQuery string  `json:"goal_query"`
}

// NutritionData is the payload for nutrition_add: the field-wise sum of the
// macros of every matched food, each multiplied by its detected quantity.
type NutritionData struct {
	Label    string        `json:"label"`
	Calories float64       `json:"calories"`
	Protein  float64       `json:"protein"`
	Carbs    float64       `json:"carbs"`
	Fat      float64       `json:"fat"`
	Fiber    float64       `json:"fiber"`
	Items    []FoodPortion `json:"items"`
}

// FoodPortion records one matched food and its multiplier.
type FoodPortion struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
}

// #endregion
