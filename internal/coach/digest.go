package coach

import (
	"fmt"
	"strings"

	"momentum/internal/momentum"
	"momentum/internal/trend"
)

// #region format

// FormatDigest renders a day's snapshot and the rolling trend as plain text.
// This is both the local fallback output and the prompt body sent upstream.
func FormatDigest(snap momentum.Snapshot, weakest momentum.Category, sum trend.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[Daily Momentum %s]\n", snap.Date)
	fmt.Fprintf(&b, "Score: %d/100\n", snap.Score)
	for _, c := range momentum.CategoryOrder {
		fmt.Fprintf(&b, "  %-10s %d\n", c, snap.Breakdown.Value(c))
	}
	fmt.Fprintf(&b, "Weakest link: %s\n", weakest)

	if sum.Days > 0 {
		fmt.Fprintf(&b, "\n[Last %d days]\n", sum.Days)
		fmt.Fprintf(&b, "Average: %.1f\n", sum.AverageScore)
		fmt.Fprintf(&b, "Best: %s (%d)  Worst: %s (%d)\n",
			sum.BestDay.Date, sum.BestDay.Score, sum.WorstDay.Date, sum.WorstDay.Score)
		if sum.Streak > 0 {
			fmt.Fprintf(&b, "Streak: %d day(s) at or above target\n", sum.Streak)
		}
	}

	return b.String()
}

// #endregion
