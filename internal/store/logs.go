package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"momentum/internal/momentum"
)

// #region nutrition

// AddNutrition inserts one nutrition log row. The ID is assigned here.
func (s *Store) AddNutrition(ctx context.Context, e NutritionEntry) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO nutrition_logs (id, date, label, calories, protein, carbs, fat, fiber, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, e.Date, e.Label, e.Calories, e.Protein, e.Carbs, e.Fat, e.Fiber, now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert nutrition log: %w", err)
	}
	return id, nil
}

// NutritionTotals sums the day's nutrition logs. An empty day is all zeros,
// not an error.
func (s *Store) NutritionTotals(ctx context.Context, date string) (momentum.NutritionTotals, error) {
	var t momentum.NutritionTotals
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0),
		        COALESCE(SUM(carbs), 0), COALESCE(SUM(fat), 0), COALESCE(SUM(fiber), 0)
		 FROM nutrition_logs WHERE date = ?`, date,
	).Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat, &t.Fiber)
	if err != nil {
		return momentum.NutritionTotals{}, fmt.Errorf("nutrition totals %s: %w", date, err)
	}
	return t, nil
}

// #endregion

// #region hydration

// AddHydration inserts one hydration log row.
func (s *Store) AddHydration(ctx context.Context, date string, amountML float64) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO hydration_logs (id, date, amount_ml, created_at) VALUES (?, ?, ?, ?)`,
		id, date, amountML, now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert hydration log: %w", err)
	}
	return id, nil
}

// HydrationTotal sums the day's hydration logs in ml.
func (s *Store) HydrationTotal(ctx context.Context, date string) (float64, error) {
	var total float64
	err := s.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount_ml), 0) FROM hydration_logs WHERE date = ?`, date,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("hydration total %s: %w", date, err)
	}
	return total, nil
}

// #endregion

// #region sleep

// UpsertSleep records the night's sleep for a date, replacing any prior entry.
func (s *Store) UpsertSleep(ctx context.Context, date string, hours float64, quality int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sleep_logs (date, hours, quality, created_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET hours = excluded.hours, quality = excluded.quality,
		 created_at = excluded.created_at`,
		date, hours, quality, now(),
	)
	if err != nil {
		return fmt.Errorf("upsert sleep %s: %w", date, err)
	}
	return nil
}

// SleepEntry reads the day's sleep log. found=false means no entry exists,
// which is not an error.
func (s *Store) SleepEntry(ctx context.Context, date string) (momentum.SleepEntry, bool, error) {
	var e momentum.SleepEntry
	err := s.db.QueryRowContext(ctx,
		`SELECT hours, quality FROM sleep_logs WHERE date = ?`, date,
	).Scan(&e.Hours, &e.Quality)
	if errors.Is(err, sql.ErrNoRows) {
		return momentum.SleepEntry{}, false, nil
	}
	if err != nil {
		return momentum.SleepEntry{}, false, fmt.Errorf("sleep entry %s: %w", date, err)
	}
	return e, true, nil
}

// #endregion

// #region steps

// UpsertSteps sets the day's step count, replacing any prior value.
func (s *Store) UpsertSteps(ctx context.Context, date string, count int) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO step_logs (date, count, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET count = excluded.count, created_at = excluded.created_at`,
		date, count, now(),
	)
	if err != nil {
		return fmt.Errorf("upsert steps %s: %w", date, err)
	}
	return nil
}

// StepCount reads the day's step count. A missing row is 0, not an error.
func (s *Store) StepCount(ctx context.Context, date string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT count FROM step_logs WHERE date = ?`, date,
	).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("step count %s: %w", date, err)
	}
	return count, nil
}

// #endregion

// #region workouts

// AddWorkout inserts a workout session row.
func (s *Store) AddWorkout(ctx context.Context, date, kind string, completed bool) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO workout_logs (id, date, kind, completed, created_at) VALUES (?, ?, ?, ?, ?)`,
		id, date, kind, boolToInt(completed), now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert workout: %w", err)
	}
	return id, nil
}

// WorkoutCompleted reports whether any workout for the date is completed.
func (s *Store) WorkoutCompleted(ctx context.Context, date string) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM workout_logs WHERE date = ? AND completed = 1`, date,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("workout completed %s: %w", date, err)
	}
	return n > 0, nil
}

// #endregion

// #region tasks

// AddTask inserts a task for the date.
func (s *Store) AddTask(ctx context.Context, date, title string, priority int) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (id, date, title, priority, done, created_at) VALUES (?, ?, ?, ?, 0, ?)`,
		id, date, title, priority, now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert task: %w", err)
	}
	return id, nil
}

// CompleteTask marks a task done.
func (s *Store) CompleteTask(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `UPDATE tasks SET done = 1 WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("complete task %s: %w", id, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("task %s not found", id)
	}
	return nil
}

// TaskCompletion counts the day's tasks. A day without tasks is {0, 0}.
func (s *Store) TaskCompletion(ctx context.Context, date string) (momentum.TaskCompletion, error) {
	var tc momentum.TaskCompletion
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(done), 0) FROM tasks WHERE date = ?`, date,
	).Scan(&tc.Total, &tc.Completed)
	if err != nil {
		return momentum.TaskCompletion{}, fmt.Errorf("task completion %s: %w", date, err)
	}
	return tc, nil
}

// #endregion

// #region transactions

// AddTransaction inserts an expense row.
func (s *Store) AddTransaction(ctx context.Context, t Transaction) (string, error) {
	id := uuid.New().String()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO finance_transactions (id, date, amount, description, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		id, t.Date, t.Amount, t.Description, t.Category, now(),
	)
	if err != nil {
		return "", fmt.Errorf("insert transaction: %w", err)
	}
	return id, nil
}

// #endregion

// #region helpers

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion
