package fitness

import (
	"math"

	"fitflow/internal/models"
)

// Validation bounds for calculator inputs. Values outside these ranges
// are rejected before any computation happens.
const (
	MinAge    = 15
	MaxAge    = 100
	MinWeight = 30.0
	MaxWeight = 300.0
	MinHeight = 100.0
	MaxHeight = 250.0
)

// Calorie adjustments applied on top of TDEE per objective.
const (
	massGainSurplus = 600
	fatLossDeficit  = 450
)

// activityMultipliers maps activity level to its TDEE multiplier.
var activityMultipliers = map[string]float64{
	models.ActivitySedentary: 1.2,
	models.ActivityLight:     1.375,
	models.ActivityModerate:  1.55,
	models.ActivityVery:      1.725,
	models.ActivityExtreme:   1.9,
}

// ValidActivityLevel reports whether level has a known multiplier.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

// BMR computes basal metabolic rate with the Mifflin-St Jeor equation,
// rounded to the nearest kcal. Weight is kg, height cm, age years.
func BMR(weight, height float64, age int, gender string) int {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if gender == models.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}
	return int(math.Round(bmr))
}

// TDEE scales BMR by the activity multiplier, rounded to the nearest
// kcal. Unknown levels must be rejected by the caller beforehand.
func TDEE(bmr int, activityLevel string) int {
	return int(math.Round(float64(bmr) * activityMultipliers[activityLevel]))
}

// AdjustForObjective applies the flat surplus/deficit after TDEE
// rounding: +600 for mass gain, -450 for fat loss, unchanged otherwise.
func AdjustForObjective(tdee int, objective models.CalorieObjective) int {
	switch objective {
	case models.ObjectiveGainMass:
		return tdee + massGainSurplus
	case models.ObjectiveLoseFat:
		return tdee - fatLossDeficit
	default:
		return tdee
	}
}

// BMI returns the body mass index for height in cm and weight in kg,
// rounded to one decimal. Returns 0 when either metric is missing.
func BMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 || weightKg <= 0 {
		return 0
	}
	m := heightCm / 100
	return math.Round(weightKg/(m*m)*10) / 10
}

// BMICategory maps a BMI value to the standard WHO label. An empty
// string is returned for a zero (unknown) BMI.
func BMICategory(bmi float64) string {
	switch {
	case bmi <= 0:
		return ""
	case bmi < 18.5:
		return "underweight"
	case bmi < 25:
		return "normal"
	case bmi < 30:
		return "overweight"
	default:
		return "obese"
	}
}
