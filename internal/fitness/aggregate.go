package fitness

import (
	"math"

	"fitflow/internal/models"
)

// WorkoutSummary holds totals for a set of workouts.
type WorkoutSummary struct {
	TotalWorkouts       int `json:"totalWorkouts"`
	TotalDuration       int `json:"totalDuration"`
	TotalCaloriesBurned int `json:"totalCaloriesBurned"`
	AvgDuration         int `json:"avgDuration"`
}

// WorkoutChartPoint is one per-day bucket of workout activity.
type WorkoutChartPoint struct {
	Date     string `json:"date"`
	Count    int    `json:"count"`
	Duration int    `json:"duration"`
	Calories int    `json:"calories"`
}

// WorkoutStatsResult pairs the summary with the chart series.
type WorkoutStatsResult struct {
	Summary   WorkoutSummary      `json:"summary"`
	ChartData []WorkoutChartPoint `json:"chartData"`
}

// AggregateWorkouts reduces workouts (assumed sorted by date ascending)
// to summary totals and per-UTC-day chart buckets. An empty input
// yields a zero summary and an empty, non-nil series.
func AggregateWorkouts(workouts []models.Workout) WorkoutStatsResult {
	res := WorkoutStatsResult{ChartData: []WorkoutChartPoint{}}

	byDay := map[string]*WorkoutChartPoint{}
	var order []string

	for _, w := range workouts {
		res.Summary.TotalWorkouts++
		res.Summary.TotalDuration += w.Duration
		res.Summary.TotalCaloriesBurned += w.CaloriesBurned

		key := DayKey(w.Date)
		point, ok := byDay[key]
		if !ok {
			point = &WorkoutChartPoint{Date: DayLabel(w.Date)}
			byDay[key] = point
			order = append(order, key)
		}
		point.Count++
		point.Duration += w.Duration
		point.Calories += w.CaloriesBurned
	}

	if res.Summary.TotalWorkouts > 0 {
		res.Summary.AvgDuration = roundDiv(res.Summary.TotalDuration, res.Summary.TotalWorkouts)
	}

	for _, key := range order {
		res.ChartData = append(res.ChartData, *byDay[key])
	}
	return res
}

// NutritionSummary holds totals for a set of meals.
type NutritionSummary struct {
	TotalMeals    int     `json:"totalMeals"`
	TotalCalories int     `json:"totalCalories"`
	AvgCalories   int     `json:"avgCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
}

// NutritionChartPoint is one per-day bucket of nutrition intake.
type NutritionChartPoint struct {
	Date     string  `json:"date"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Meals    int     `json:"meals"`
}

// NutritionStatsResult pairs the summary with the chart series.
type NutritionStatsResult struct {
	Summary   NutritionSummary      `json:"summary"`
	ChartData []NutritionChartPoint `json:"chartData"`
}

// AggregateMeals reduces meals (assumed sorted by date ascending) to
// summary totals and per-UTC-day chart buckets.
func AggregateMeals(meals []models.Meal) NutritionStatsResult {
	res := NutritionStatsResult{ChartData: []NutritionChartPoint{}}

	byDay := map[string]*NutritionChartPoint{}
	var order []string

	for _, m := range meals {
		res.Summary.TotalMeals++
		res.Summary.TotalCalories += m.Calories
		res.Summary.TotalProtein += m.Protein
		res.Summary.TotalCarbs += m.Carbs
		res.Summary.TotalFats += m.Fats

		key := DayKey(m.Date)
		point, ok := byDay[key]
		if !ok {
			point = &NutritionChartPoint{Date: DayLabel(m.Date)}
			byDay[key] = point
			order = append(order, key)
		}
		point.Calories += m.Calories
		point.Protein += m.Protein
		point.Carbs += m.Carbs
		point.Fats += m.Fats
		point.Meals++
	}

	if res.Summary.TotalMeals > 0 {
		res.Summary.AvgCalories = roundDiv(res.Summary.TotalCalories, res.Summary.TotalMeals)
	}

	for _, key := range order {
		res.ChartData = append(res.ChartData, *byDay[key])
	}
	return res
}

// roundDiv divides total by count rounding to the nearest integer.
func roundDiv(total, count int) int {
	return int(math.Round(float64(total) / float64(count)))
}
