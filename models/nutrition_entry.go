package models

import "time"

// NutritionEntry is one logged consumption event. Every numeric field
// holds the per-serving extracted value already multiplied by the
// request's quantity; scaling happens exactly once, at creation.
// Entries are append-only and never modified afterwards.
type NutritionEntry struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	UserID   string  `gorm:"index" json:"user_id"`
	Date     string  `gorm:"index" json:"date"` // YYYY-MM-DD, server local time
	MealType string  `gorm:"default:snack" json:"meal_type"`
	Quantity float64 `gorm:"default:1" json:"quantity"`

	ProductName string `json:"product_name"`
	ServingSize string `json:"serving_size"`

	Calories           float64 `json:"calories"`
	Protein            float64 `json:"protein"`
	TotalCarbohydrates float64 `json:"total_carbohydrates"`
	TotalFat           float64 `json:"total_fat"`
	SaturatedFat       float64 `json:"saturated_fat"`
	TransFat           float64 `json:"trans_fat"`
	DietaryFiber       float64 `json:"dietary_fiber"`
	TotalSugars        float64 `json:"total_sugars"`
	AddedSugars        float64 `json:"added_sugars"`
	Cholesterol        float64 `json:"cholesterol"`
	Sodium             float64 `json:"sodium"`

	Vitamins        map[string]float64 `gorm:"serializer:json" json:"vitamins"`
	Minerals        map[string]float64 `gorm:"serializer:json" json:"minerals"`
	IngredientsList []string           `gorm:"serializer:json" json:"ingredients_list"`

	// The unscaled record as extracted, kept for audit/debugging.
	RawNutritionData NutritionRecord `gorm:"serializer:json" json:"raw_nutrition_data"`

	CreatedAt time.Time `json:"-"`
}
