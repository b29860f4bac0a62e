package fitness

import "fitness_tracker/internal/domain"

// CaloriesBurned is the energy spent doing an exercise for the given minutes.
func CaloriesBurned(ratePerMinute float64, minutes int) float64 {
	return ratePerMinute * float64(minutes)
}

// CaloriesConsumed is the energy of quantity servings of a meal.
func CaloriesConsumed(caloriesPerServing, quantity float64) float64 {
	return caloriesPerServing * quantity
}

// DayTotals summarises one user's logs for a single day.
type DayTotals struct {
	Burned   float64 `json:"calories_burned"`
	Consumed float64 `json:"calories_consumed"`
	Net      float64 `json:"net_calories"` // Consumed minus burned, may be negative
}

// Totals sums the stored calorie values of the given logs. The values were
// fixed when each row was inserted and are not recomputed here.
func Totals(exercises []domain.ExerciseLog, meals []domain.MealLog) DayTotals {
	var t DayTotals
	for _, l := range exercises {
		t.Burned += l.CaloriesBurned
	}
	for _, l := range meals {
		t.Consumed += l.Calories
	}
	t.Net = NetCalories(t.Consumed, t.Burned)
	return t
}

// NetCalories is consumed minus burned.
func NetCalories(consumed, burned float64) float64 {
	return consumed - burned
}
