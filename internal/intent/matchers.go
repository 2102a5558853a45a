package intent

import (
	"fmt"
	"regexp"
	"strings"
)

// #region keywords

var hydrationTriggers = []string{
	"water", "drink", "drank", "ml", "liter", "litre",
	"glass", "bottle", "cup",
}

// Container nouns with their per-unit volume in ml.
var hydrationUnits = []struct {
	noun string
	ml   float64
}{
	{"glass", 250},
	{"bottle", 500},
	{"cup", 240},
}

var sleepTriggers = []string{
	"sleep", "slept", "bed", "woke", "hours of sleep", "hours last night",
}

var stepTriggers = []string{"step", "steps", "walked", "walk"}

// Task triggers are checked in order; the first one found is stripped from
// the utterance to form the title.
var taskTriggers = []string{
	"add task", "remind me", "task:", "todo:", "to do", "need to", "have to",
}

var consumptionTriggers = []string{
	"ate", "eat", "had", "have", "eating", "consumed",
	"drank", "drink", "breakfast", "lunch", "dinner", "snack",
}

// #endregion

// #region patterns

var (
	mlPattern      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*ml\b`)
	literPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:liters?|litres?)\b`)
	// The dollar sign is part of the pattern: "spent 30 minutes on homework"
	// is not a financial action.
	goalAddPattern = regexp.MustCompile(`add\s+\$(\d+(?:\.\d+)?)\s+to\s+(\S.*)`)
	expensePattern = regexp.MustCompile(`(?:spent|spend|paid|pay)\s+\$(\d+(?:\.\d+)?)(?:\s+on\b)?\s*(.*)`)
)

// #endregion

// #region hydration

func matchHydration(lower, raw string) *Intent {
	if !containsAny(lower, hydrationTriggers) {
		return nil
	}

	amount := 250.0 // fallback when a trigger fired but nothing extractable

	switch {
	case mlPattern.MatchString(lower):
		m := mlPattern.FindStringSubmatch(lower)
		amount = mustFloat(m[1])
	case literPattern.MatchString(lower):
		m := literPattern.FindStringSubmatch(lower)
		amount = mustFloat(m[1]) * 1000
	default:
		for _, u := range hydrationUnits {
			pos := strings.Index(lower, u.noun)
			if pos < 0 {
				continue
			}
			amount = quantityBefore(lower[:pos]) * u.ml
			break
		}
	}

	return &Intent{
		Domain:     DomainHydrationAdd,
		Confidence: 0.9,
		Hydration:  &HydrationData{AmountML: amount},
	}
}

// #endregion

// #region sleep

func matchSleep(lower, raw string) *Intent {
	if !containsAny(lower, sleepTriggers) {
		return nil
	}
	hours, ok := firstNumber(lower)
	if !ok {
		return nil // no extractable duration, let the cascade continue
	}
	return &Intent{
		Domain:     DomainSleepLog,
		Confidence: 0.85,
		Sleep:      &SleepData{Hours: hours, Quality: 3},
	}
}

// #endregion

// #region steps

func matchSteps(lower, raw string) *Intent {
	if !containsAny(lower, stepTriggers) {
		return nil
	}
	n, ok := firstNumber(lower)
	if !ok {
		return nil
	}
	return &Intent{
		Domain:     DomainStepsUpdate,
		Confidence: 0.9,
		Steps:      &StepsData{Count: int(n)},
	}
}

// #endregion

// #region task

func matchTask(lower, raw string) *Intent {
	for _, trigger := range taskTriggers {
		// The trigger offset must come from raw itself. Lowering can change
		// byte lengths (İ, Ⱥ), so an index into lower cannot slice raw.
		idx := foldIndex(raw, trigger)
		if idx < 0 {
			continue
		}
		title := strings.TrimSpace(raw[idx+len(trigger):])
		if title == "" {
			return nil
		}
		return &Intent{
			Domain:     DomainTaskCreate,
			Confidence: 0.85,
			Task:       &TaskData{Title: title, Priority: 2},
		}
	}
	return nil
}

// #endregion

// #region finance

func matchFinance(lower, raw string) *Intent {
	// Goal contribution first: "add $50 to vacation fund"
	if m := goalAddPattern.FindStringSubmatch(lower); m != nil {
		return &Intent{
			Domain:               DomainFinanceGoalAdd,
			Confidence:           0.9,
			RequiresConfirmation: true,
			GoalAdd: &GoalAddData{
				Amount:    mustFloat(m[1]),
				GoalQuery: strings.TrimSpace(m[2]),
			},
		}
	}

	if m := expensePattern.FindStringSubmatch(lower); m != nil {
		return &Intent{
			Domain:               DomainFinanceExpense,
			Confidence:           0.9,
			RequiresConfirmation: true,
			Expense: &ExpenseData{
				Amount:      mustFloat(m[1]),
				Description: strings.TrimSpace(m[2]),
				Category:    "Other",
			},
		}
	}

	return nil
}

// #endregion

// #region nutrition

func matchNutrition(lower, raw string) *Intent {
	// Cheap gate: skip the food scan when neither a consumption verb nor any
	// food name could possibly be present.
	if !containsAny(lower, consumptionTriggers) && !anyFoodMentioned(lower) {
		return nil
	}

	var data NutritionData
	var labels []string

	for _, f := range foodTable {
		pos := strings.Index(lower, f.Name)
		if pos < 0 {
			continue
		}
		// Quantity is read only from the text before this food's mention.
		qty := quantityBefore(lower[:pos])

		data.Calories += f.Calories * qty
		data.Protein += f.Protein * qty
		data.Carbs += f.Carbs * qty
		data.Fat += f.Fat * qty
		data.Fiber += f.Fiber * qty
		data.Items = append(data.Items, FoodPortion{Name: f.Name, Quantity: qty})

		if qty == 1 {
			labels = append(labels, f.Name)
		} else {
			labels = append(labels, fmt.Sprintf("%gx %s", qty, f.Name))
		}
	}

	// A consumption verb alone is not enough; at least one known food is
	// required or the utterance falls through to unknown.
	if len(data.Items) == 0 {
		return nil
	}

	data.Label = strings.Join(labels, ", ")
	return &Intent{
		Domain:               DomainNutritionAdd,
		Confidence:           0.85,
		RequiresConfirmation: true,
		Nutrition:            &data,
	}
}

func anyFoodMentioned(lower string) bool {
	for _, f := range foodTable {
		if strings.Contains(lower, f.Name) {
			return true
		}
	}
	return false
}

// #endregion

// #region helpers

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

func mustFloat(s string) float64 {
	v, _ := tokenValue(s)
	return v
}

// foldIndex locates a lowercase ASCII needle in s case-insensitively and
// returns a byte offset valid for s. -1 when absent.
func foldIndex(s, needle string) int {
	for i := 0; i+len(needle) <= len(s); i++ {
		if strings.EqualFold(s[i:i+len(needle)], needle) {
			return i
		}
	}
	return -1
}

// #endregion
