package intent

// #region food-table

// FoodMacros holds per-serving macro estimates for one reference food.
type FoodMacros struct {
	Name     string
	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
	Fiber    float64
}

// foodTable is the static per-serving reference used by the nutrition
// matcher. Order matters: entries are matched in slice order, so no entry may
// be a substring of a later one ("egg" matches "eggs" and "scrambled eggs").
var foodTable = []FoodMacros{
	{Name: "egg", Calories: 70, Protein: 6, Carbs: 0.5, Fat: 5, Fiber: 0},
	{Name: "banana", Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4, Fiber: 3.1},
	{Name: "apple", Calories: 95, Protein: 0.5, Carbs: 25, Fat: 0.3, Fiber: 4.4},
	{Name: "orange", Calories: 62, Protein: 1.2, Carbs: 15, Fat: 0.2, Fiber: 3.1},
	{Name: "avocado", Calories: 240, Protein: 3, Carbs: 13, Fat: 22, Fiber: 10},
	{Name: "oatmeal", Calories: 150, Protein: 5, Carbs: 27, Fat: 3, Fiber: 4},
	{Name: "toast", Calories: 75, Protein: 3, Carbs: 13, Fat: 1, Fiber: 1.1},
	{Name: "bagel", Calories: 280, Protein: 11, Carbs: 55, Fat: 1.5, Fiber: 2.4},
	{Name: "pancake", Calories: 90, Protein: 2.5, Carbs: 15, Fat: 2.5, Fiber: 0.5},
	{Name: "yogurt", Calories: 100, Protein: 10, Carbs: 6, Fat: 4, Fiber: 0},
	{Name: "granola", Calories: 200, Protein: 5, Carbs: 32, Fat: 7, Fiber: 3},
	{Name: "cereal", Calories: 150, Protein: 3, Carbs: 33, Fat: 1.5, Fiber: 2},
	{Name: "milk", Calories: 103, Protein: 8, Carbs: 12, Fat: 2.4, Fiber: 0},
	{Name: "coffee", Calories: 5, Protein: 0.3, Carbs: 0, Fat: 0, Fiber: 0},
	{Name: "protein shake", Calories: 160, Protein: 30, Carbs: 5, Fat: 2.5, Fiber: 1},
	{Name: "smoothie", Calories: 210, Protein: 4, Carbs: 45, Fat: 2, Fiber: 4},
	{Name: "chicken", Calories: 165, Protein: 31, Carbs: 0, Fat: 3.6, Fiber: 0},
	{Name: "salmon", Calories: 208, Protein: 22, Carbs: 0, Fat: 13, Fiber: 0},
	{Name: "tuna", Calories: 130, Protein: 28, Carbs: 0, Fat: 1.3, Fiber: 0},
	{Name: "shrimp", Calories: 85, Protein: 20, Carbs: 0, Fat: 0.5, Fiber: 0},
	{Name: "steak", Calories: 270, Protein: 26, Carbs: 0, Fat: 18, Fiber: 0},
	{Name: "bacon", Calories: 43, Protein: 3, Carbs: 0.1, Fat: 3.3, Fiber: 0},
	{Name: "sausage", Calories: 190, Protein: 11, Carbs: 1.5, Fat: 16, Fiber: 0},
	{Name: "tofu", Calories: 95, Protein: 10, Carbs: 2.3, Fat: 6, Fiber: 1},
	{Name: "rice", Calories: 205, Protein: 4.3, Carbs: 45, Fat: 0.4, Fiber: 0.6},
	{Name: "pasta", Calories: 220, Protein: 8, Carbs: 43, Fat: 1.3, Fiber: 2.5},
	{Name: "potato", Calories: 160, Protein: 4.3, Carbs: 37, Fat: 0.2, Fiber: 3.8},
	{Name: "fries", Calories: 365, Protein: 4, Carbs: 48, Fat: 17, Fiber: 4},
	{Name: "bread", Calories: 80, Protein: 3, Carbs: 14, Fat: 1, Fiber: 1.2},
	{Name: "sandwich", Calories: 350, Protein: 15, Carbs: 40, Fat: 14, Fiber: 3},
	{Name: "burrito", Calories: 450, Protein: 18, Carbs: 55, Fat: 17, Fiber: 7},
	{Name: "taco", Calories: 170, Protein: 8, Carbs: 13, Fat: 10, Fiber: 3},
	{Name: "pizza", Calories: 285, Protein: 12, Carbs: 36, Fat: 10, Fiber: 2.5},
	{Name: "burger", Calories: 540, Protein: 25, Carbs: 40, Fat: 27, Fiber: 2},
	{Name: "salad", Calories: 120, Protein: 3, Carbs: 10, Fat: 8, Fiber: 3},
	{Name: "soup", Calories: 130, Protein: 6, Carbs: 16, Fat: 4, Fiber: 2},
	{Name: "beans", Calories: 220, Protein: 14, Carbs: 40, Fat: 0.9, Fiber: 13},
	{Name: "hummus", Calories: 70, Protein: 2, Carbs: 6, Fat: 5, Fiber: 1.5},
	{Name: "broccoli", Calories: 55, Protein: 3.7, Carbs: 11, Fat: 0.6, Fiber: 5},
	{Name: "almonds", Calories: 164, Protein: 6, Carbs: 6, Fat: 14, Fiber: 3.5},
	{Name: "peanut butter", Calories: 190, Protein: 8, Carbs: 7, Fat: 16, Fiber: 2},
	{Name: "cheese", Calories: 110, Protein: 7, Carbs: 0.4, Fat: 9, Fiber: 0},
	{Name: "chocolate", Calories: 150, Protein: 2, Carbs: 17, Fat: 9, Fiber: 2},
	{Name: "cookie", Calories: 150, Protein: 1.5, Carbs: 20, Fat: 7, Fiber: 0.5},
	{Name: "chips", Calories: 150, Protein: 2, Carbs: 15, Fat: 10, Fiber: 1},
}

// #endregion
