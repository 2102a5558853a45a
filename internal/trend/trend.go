// Package trend derives read-only rolling-window summaries from stored
// momentum snapshots. It never writes.
package trend

import (
	"context"
	"fmt"
	"math"

	"momentum/internal/momentum"
)

// DefaultStreakThreshold is the score a day must reach to extend the streak.
const DefaultStreakThreshold = 70

// #region types

// SnapshotLister is the read access the reporter needs.
type SnapshotLister interface {
	ListSnapshots(ctx context.Context, limit int) ([]momentum.Snapshot, error)
}

// DayScore pairs a date with its total score.
type DayScore struct {
	Date  string `json:"date"`
	Score int    `json:"score"`
}

// Summary is one rolling-window report. Averages are over days that have a
// snapshot; days never computed do not drag the average down.
type Summary struct {
	Days             int                `json:"days"`
	AverageScore     float64            `json:"average_score"`
	CategoryAverages map[string]float64 `json:"category_averages"`
	BestDay          DayScore           `json:"best_day"`
	WorstDay         DayScore           `json:"worst_day"`
	Streak           int                `json:"streak"`
	WeakestCategory  momentum.Category  `json:"weakest_category"`
}

// Reporter computes summaries from a snapshot store.
type Reporter struct {
	lister    SnapshotLister
	threshold int
}

// NewReporter builds a Reporter with the default streak threshold.
func NewReporter(lister SnapshotLister) *Reporter {
	return &Reporter{lister: lister, threshold: DefaultStreakThreshold}
}

// #endregion

// #region weekly

// Weekly summarizes the last seven recorded days.
func (r *Reporter) Weekly(ctx context.Context) (Summary, error) {
	snaps, err := r.lister.ListSnapshots(ctx, 7)
	if err != nil {
		return Summary{}, fmt.Errorf("load snapshots: %w", err)
	}
	return summarize(snaps, r.threshold), nil
}

// summarize folds newest-first snapshots into a Summary. An empty window
// yields a zero Summary with Days=0.
func summarize(snaps []momentum.Snapshot, threshold int) Summary {
	if len(snaps) == 0 {
		return Summary{CategoryAverages: map[string]float64{}}
	}

	sum := Summary{
		Days:             len(snaps),
		CategoryAverages: make(map[string]float64, len(momentum.CategoryOrder)),
		BestDay:          DayScore{Date: snaps[0].Date, Score: snaps[0].Score},
		WorstDay:         DayScore{Date: snaps[0].Date, Score: snaps[0].Score},
	}

	total := 0
	catTotals := make(map[momentum.Category]int, len(momentum.CategoryOrder))
	streakBroken := false

	for _, snap := range snaps {
		total += snap.Score
		for _, c := range momentum.CategoryOrder {
			catTotals[c] += snap.Breakdown.Value(c)
		}
		if snap.Score > sum.BestDay.Score {
			sum.BestDay = DayScore{Date: snap.Date, Score: snap.Score}
		}
		if snap.Score < sum.WorstDay.Score {
			sum.WorstDay = DayScore{Date: snap.Date, Score: snap.Score}
		}
		// Streak counts consecutive qualifying days from the newest backward.
		if !streakBroken && snap.Score >= threshold {
			sum.Streak++
		} else {
			streakBroken = true
		}
	}

	n := float64(len(snaps))
	sum.AverageScore = round1(float64(total) / n)
	for _, c := range momentum.CategoryOrder {
		sum.CategoryAverages[string(c)] = round1(float64(catTotals[c]) / n)
	}
	// Weakest category over the window, judged the same way as a single day:
	// integer-average breakdown against the fixed reference caps.
	avg := momentum.Breakdown{
		Nutrition: int(math.Round(float64(catTotals[momentum.CategoryNutrition]) / n)),
		Workout:   int(math.Round(float64(catTotals[momentum.CategoryWorkout]) / n)),
		Sleep:     int(math.Round(float64(catTotals[momentum.CategorySleep]) / n)),
		Tasks:     int(math.Round(float64(catTotals[momentum.CategoryTasks]) / n)),
		Finance:   int(math.Round(float64(catTotals[momentum.CategoryFinance]) / n)),
		Steps:     int(math.Round(float64(catTotals[momentum.CategorySteps]) / n)),
	}
	sum.WeakestCategory = momentum.WeakestLink(avg)

	return sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// #endregion
