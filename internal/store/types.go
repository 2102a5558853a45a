package store

import "time"

// #region log-records

// NutritionEntry is one logged meal or snack.
type NutritionEntry struct {
	ID        string
	Date      string
	Label     string
	Calories  float64
	Protein   float64
	Carbs     float64
	Fat       float64
	Fiber     float64
	CreatedAt time.Time
}

// Task is one dated todo item.
type Task struct {
	ID        string
	Date      string
	Title     string
	Priority  int
	Done      bool
	CreatedAt time.Time
}

// Transaction is one logged expense.
type Transaction struct {
	ID          string
	Date        string
	Amount      float64
	Description string
	Category    string
	CreatedAt   time.Time
}

// Goal is a named savings goal with a running total.
type Goal struct {
	ID        string
	Name      string
	Target    float64
	Saved     float64
	CreatedAt time.Time
}

// #endregion

// #region audit

// AuditEntry records one parsed utterance and what the router did with it.
// The raw transcript is retained for later review and re-edit.
type AuditEntry struct {
	Transcript string
	Domain     string
	Confidence float64
	Decision   string // "applied" | "rejected" | "unrecognized"
	Reason     string
	CreatedAt  time.Time
}

// #endregion
