package utils

import (
	"math"
	"strings"

	"github.com/bharathz8/Nutri-Go/models"
)

var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// CalculateBMI expects height in centimeters and weight in kilograms.
// Rounded to 2 decimal places.
func CalculateBMI(heightCm, weightKg float64) float64 {
	h := heightCm / 100.0 // to meters
	bmi := weightKg / (h * h)
	return math.Round(bmi*100) / 100
}

func BMICategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25.0:
		return "Normal Weight"
	case bmi < 30.0:
		return "Overweight"
	default:
		return "Obese"
	}
}

// DailyCalorieTarget computes a daily calorie goal from the
// Mifflin-St Jeor BMR, an activity multiplier, and a ±500 adjustment
// for the lose/gain goals. Unknown activity levels count as moderate.
// The result can go negative for extreme inputs; callers take it as-is.
func DailyCalorieTarget(p *models.UserProfile) int {
	var bmr float64
	if strings.EqualFold(p.Gender, "male") {
		bmr = 10*p.Weight + 6.25*p.Height - 5*float64(p.Age) + 5
	} else {
		bmr = 10*p.Weight + 6.25*p.Height - 5*float64(p.Age) - 161
	}

	mult, ok := activityMultipliers[p.ActivityLevel]
	if !ok {
		mult = 1.55
	}

	calories := int(bmr * mult)

	switch p.Goal {
	case "lose":
		calories -= 500
	case "gain":
		calories += 500
	}

	return calories
}
