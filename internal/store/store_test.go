package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"momentum/internal/momentum"
)

func tempDB(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	s, err := New(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestNutritionTotals(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	// Empty day sums to zero, not an error.
	totals, err := s.NutritionTotals(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("NutritionTotals: %v", err)
	}
	if totals.Calories != 0 || totals.Protein != 0 {
		t.Fatalf("expected zero totals, got %+v", totals)
	}

	for _, e := range []NutritionEntry{
		{Date: "2026-08-01", Label: "2x egg", Calories: 140, Protein: 12, Carbs: 1, Fat: 10},
		{Date: "2026-08-01", Label: "banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4},
		{Date: "2026-08-02", Label: "other day", Calories: 500, Protein: 20},
	} {
		if _, err := s.AddNutrition(ctx, e); err != nil {
			t.Fatalf("AddNutrition: %v", err)
		}
	}

	totals, err = s.NutritionTotals(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("NutritionTotals: %v", err)
	}
	if totals.Calories != 245 {
		t.Fatalf("expected 245 calories, got %f", totals.Calories)
	}
	if totals.Protein != 13.3 {
		t.Fatalf("expected 13.3 protein, got %f", totals.Protein)
	}
}

func TestHydrationTotal(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	if _, err := s.AddHydration(ctx, "2026-08-01", 500); err != nil {
		t.Fatalf("AddHydration: %v", err)
	}
	if _, err := s.AddHydration(ctx, "2026-08-01", 250); err != nil {
		t.Fatalf("AddHydration: %v", err)
	}

	total, err := s.HydrationTotal(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("HydrationTotal: %v", err)
	}
	if total != 750 {
		t.Fatalf("expected 750ml, got %f", total)
	}
}

func TestSleepUpsert(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	_, found, err := s.SleepEntry(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("SleepEntry: %v", err)
	}
	if found {
		t.Fatal("expected no sleep entry on fresh db")
	}

	if err := s.UpsertSleep(ctx, "2026-08-01", 6.5, 3); err != nil {
		t.Fatalf("UpsertSleep: %v", err)
	}
	// Second write for the same date replaces the first.
	if err := s.UpsertSleep(ctx, "2026-08-01", 7.5, 4); err != nil {
		t.Fatalf("UpsertSleep: %v", err)
	}

	e, found, err := s.SleepEntry(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("SleepEntry: %v", err)
	}
	if !found {
		t.Fatal("expected sleep entry")
	}
	if e.Hours != 7.5 || e.Quality != 4 {
		t.Fatalf("expected 7.5h quality 4, got %+v", e)
	}
}

func TestStepUpsert(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	count, err := s.StepCount(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("StepCount: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected 0 steps on fresh db, got %d", count)
	}

	if err := s.UpsertSteps(ctx, "2026-08-01", 4000); err != nil {
		t.Fatalf("UpsertSteps: %v", err)
	}
	if err := s.UpsertSteps(ctx, "2026-08-01", 10000); err != nil {
		t.Fatalf("UpsertSteps: %v", err)
	}

	count, err = s.StepCount(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("StepCount: %v", err)
	}
	if count != 10000 {
		t.Fatalf("expected replaced count 10000, got %d", count)
	}
}

func TestWorkoutCompleted(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	done, err := s.WorkoutCompleted(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("WorkoutCompleted: %v", err)
	}
	if done {
		t.Fatal("expected no workout on fresh db")
	}

	if _, err := s.AddWorkout(ctx, "2026-08-01", "run", false); err != nil {
		t.Fatalf("AddWorkout: %v", err)
	}
	done, err = s.WorkoutCompleted(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("WorkoutCompleted: %v", err)
	}
	if done {
		t.Fatal("incomplete workout should not count")
	}

	if _, err := s.AddWorkout(ctx, "2026-08-01", "lift", true); err != nil {
		t.Fatalf("AddWorkout: %v", err)
	}
	done, err = s.WorkoutCompleted(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("WorkoutCompleted: %v", err)
	}
	if !done {
		t.Fatal("expected completed workout to count")
	}
}

func TestTaskCompletion(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	tc, err := s.TaskCompletion(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("TaskCompletion: %v", err)
	}
	if tc.Total != 0 || tc.Completed != 0 {
		t.Fatalf("expected empty completion, got %+v", tc)
	}

	id1, err := s.AddTask(ctx, "2026-08-01", "buy milk", 2)
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.AddTask(ctx, "2026-08-01", "file taxes", 2); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if err := s.CompleteTask(ctx, id1); err != nil {
		t.Fatalf("CompleteTask: %v", err)
	}

	tc, err = s.TaskCompletion(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("TaskCompletion: %v", err)
	}
	if tc.Total != 2 || tc.Completed != 1 {
		t.Fatalf("expected 1/2, got %+v", tc)
	}

	if err := s.CompleteTask(ctx, "no-such-id"); err == nil {
		t.Fatal("expected error completing unknown task")
	}
}

func TestGoalLifecycle(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	id, err := s.CreateGoal(ctx, "vacation", 1000)
	if err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if err := s.ContributeToGoal(ctx, id, 50); err != nil {
		t.Fatalf("ContributeToGoal: %v", err)
	}
	if err := s.ContributeToGoal(ctx, id, 25); err != nil {
		t.Fatalf("ContributeToGoal: %v", err)
	}

	goals, err := s.ListGoals(ctx)
	if err != nil {
		t.Fatalf("ListGoals: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goals))
	}
	if goals[0].Saved != 75 {
		t.Fatalf("expected 75 saved, got %f", goals[0].Saved)
	}

	if err := s.ContributeToGoal(ctx, "no-such-id", 10); err == nil {
		t.Fatal("expected error for unknown goal")
	}
}

func TestFindGoalFuzzy(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	if _, err := s.CreateGoal(ctx, "vacation", 1000); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}
	if _, err := s.CreateGoal(ctx, "new laptop", 1500); err != nil {
		t.Fatalf("CreateGoal: %v", err)
	}

	tests := []struct {
		query string
		want  string
		found bool
	}{
		{"my vacation fund", "vacation", true},
		{"the laptop fund", "new laptop", true},
		{"vacation", "vacation", true},
		{"emergency fund", "", false}, // no token overlap with any goal
		{"", "", false},
	}
	for _, tt := range tests {
		g, found, err := s.FindGoal(ctx, tt.query)
		if err != nil {
			t.Fatalf("FindGoal(%q): %v", tt.query, err)
		}
		if found != tt.found {
			t.Fatalf("FindGoal(%q): found=%v, want %v", tt.query, found, tt.found)
		}
		if found && g.Name != tt.want {
			t.Fatalf("FindGoal(%q): got %q, want %q", tt.query, g.Name, tt.want)
		}
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	// Fresh db falls back to defaults.
	settings, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if settings.StepGoal != 10000 {
		t.Fatalf("expected default step goal, got %d", settings.StepGoal)
	}

	settings.StepGoal = 12000
	settings.CalorieTarget = 2000
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}
	// Upsert replaces, never duplicates.
	settings.StepGoal = 8000
	if err := s.SaveSettings(ctx, settings); err != nil {
		t.Fatalf("SaveSettings: %v", err)
	}

	got, err := s.Settings(ctx)
	if err != nil {
		t.Fatalf("Settings: %v", err)
	}
	if got.StepGoal != 8000 || got.CalorieTarget != 2000 {
		t.Fatalf("unexpected settings after save: %+v", got)
	}
}

func TestSnapshotUpsert(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	_, found, err := s.GetSnapshot(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if found {
		t.Fatal("expected no snapshot on fresh db")
	}

	snap := momentum.Snapshot{
		ID:    "snap-1",
		Date:  "2026-08-01",
		Score: 72,
		Breakdown: momentum.Breakdown{
			Nutrition: 20, Workout: 20, Sleep: 12, Tasks: 0, Finance: 10, Steps: 10,
		},
		ComputedAt: time.Now().UTC(),
	}
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	snap.ID = "snap-2"
	snap.Score = 85
	if err := s.SaveSnapshot(ctx, snap); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	got, found, err := s.GetSnapshot(ctx, "2026-08-01")
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if !found {
		t.Fatal("expected snapshot")
	}
	if got.ID != "snap-2" || got.Score != 85 {
		t.Fatalf("expected replaced snapshot, got %+v", got)
	}
	if got.Breakdown.Workout != 20 {
		t.Fatalf("breakdown did not survive round trip: %+v", got.Breakdown)
	}
}

func TestListSnapshotsNewestFirst(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	for i, date := range []string{"2026-08-01", "2026-08-03", "2026-08-02"} {
		snap := momentum.Snapshot{
			ID: "s", Date: date, Score: 50 + i, ComputedAt: time.Now().UTC(),
		}
		if err := s.SaveSnapshot(ctx, snap); err != nil {
			t.Fatalf("SaveSnapshot: %v", err)
		}
	}

	snaps, err := s.ListSnapshots(ctx, 2)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(snaps) != 2 {
		t.Fatalf("expected 2 snapshots, got %d", len(snaps))
	}
	if snaps[0].Date != "2026-08-03" || snaps[1].Date != "2026-08-02" {
		t.Fatalf("expected newest first, got %s then %s", snaps[0].Date, snaps[1].Date)
	}
}

func TestIntentAudit(t *testing.T) {
	s := tempDB(t)
	ctx := context.Background()

	entries := []AuditEntry{
		{Transcript: "drank 500ml", Domain: "hydration_add", Confidence: 0.9, Decision: "applied"},
		{Transcript: "spent $15 on lunch", Domain: "finance_expense", Confidence: 0.9, Decision: "rejected", Reason: "not confirmed"},
		{Transcript: "asdf", Domain: "unknown", Confidence: 0, Decision: "unrecognized"},
	}
	for _, e := range entries {
		if err := s.RecordIntent(ctx, e); err != nil {
			t.Fatalf("RecordIntent: %v", err)
		}
	}

	got, err := s.RecentIntents(ctx, 2)
	if err != nil {
		t.Fatalf("RecentIntents: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(got))
	}
	if got[0].Transcript != "asdf" {
		t.Fatalf("expected newest first, got %q", got[0].Transcript)
	}
	if got[1].Decision != "rejected" || got[1].Reason != "not confirmed" {
		t.Fatalf("unexpected second entry: %+v", got[1])
	}
}
