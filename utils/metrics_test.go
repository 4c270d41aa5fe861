package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bharathz8/Nutri-Go/models"
)

func TestCalculateBMI(t *testing.T) {
	assert.Equal(t, 24.49, CalculateBMI(170, 70))
	assert.Equal(t, 22.86, CalculateBMI(175, 70))
}

func TestBMICategory(t *testing.T) {
	assert.Equal(t, "Underweight", BMICategory(17))
	assert.Equal(t, "Normal Weight", BMICategory(18.5)) // lower bound inclusive
	assert.Equal(t, "Normal Weight", BMICategory(24.49))
	assert.Equal(t, "Overweight", BMICategory(25))
	assert.Equal(t, "Obese", BMICategory(30))
}

func baseProfile() *models.UserProfile {
	return &models.UserProfile{
		UserID:        "u1",
		Height:        175,
		Weight:        70,
		Age:           25,
		Gender:        "male",
		ActivityLevel: "moderate",
		Goal:          "maintain",
	}
}

func TestDailyCalorieTarget(t *testing.T) {
	p := baseProfile()
	// BMR = 10*70 + 6.25*175 - 5*25 + 5 = 1673.75; *1.55 = 2594 (truncated)
	assert.Equal(t, 2594, DailyCalorieTarget(p))

	p.Goal = "lose"
	assert.Equal(t, 2094, DailyCalorieTarget(p))

	p.Goal = "gain"
	assert.Equal(t, 3094, DailyCalorieTarget(p))
}

func TestDailyCalorieTargetNonMale(t *testing.T) {
	p := baseProfile()
	p.Gender = "female"
	// BMR = 1673.75 - 166 = 1507.75; *1.55 = 2337
	assert.Equal(t, 2337, DailyCalorieTarget(p))

	// Everything that is not "male" uses the same constant.
	p.Gender = "other"
	assert.Equal(t, 2337, DailyCalorieTarget(p))
}

func TestDailyCalorieTargetGenderCaseInsensitive(t *testing.T) {
	p := baseProfile()
	p.Gender = "MALE"
	assert.Equal(t, 2594, DailyCalorieTarget(p))
}

func TestDailyCalorieTargetUnknownActivityDefaultsToModerate(t *testing.T) {
	p := baseProfile()
	p.ActivityLevel = "couch"
	assert.Equal(t, 2594, DailyCalorieTarget(p))
}

func TestDailyCalorieTargetCanGoNegative(t *testing.T) {
	p := &models.UserProfile{
		Height:        50,
		Weight:        3,
		Age:           1,
		Gender:        "female",
		ActivityLevel: "sedentary",
		Goal:          "lose",
	}
	assert.Less(t, DailyCalorieTarget(p), 0)
}
