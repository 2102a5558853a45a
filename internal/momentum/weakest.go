package momentum

// #region reference-caps

// referenceCaps are the design-default maxima used for the weakest-link
// view. Deliberately fixed rather than the user's configured weights so the
// focus indicator stays comparable when weights are customized.
var referenceCaps = map[Category]int{
	CategoryNutrition: 30,
	CategoryWorkout:   20,
	CategorySleep:     15,
	CategoryTasks:     15,
	CategoryFinance:   10,
	CategorySteps:     10,
}

// #endregion

// #region weakest-link

// WeakestLink returns the category with the lowest achieved fraction of its
// reference cap. Ties resolve to the first category in canonical order.
func WeakestLink(b Breakdown) Category {
	weakest := CategoryOrder[0]
	weakestFrac := 2.0 // above any achievable fraction

	for _, c := range CategoryOrder {
		frac := float64(b.Value(c)) / float64(referenceCaps[c])
		if frac < weakestFrac {
			weakest = c
			weakestFrac = frac
		}
	}
	return weakest
}

// #endregion
