package models

// NutritionRecord is the per-serving nutrition facts extracted from a
// label image, before any quantity scaling. The field set mirrors the
// JSON schema the vision model is asked to return.
type NutritionRecord struct {
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
	VitaminA           float64 `json:"vitamin_a"`
	VitaminC           float64 `json:"vitamin_c"`
	VitaminD           float64 `json:"vitamin_d"`
	Calcium            float64 `json:"calcium"`
	Iron               float64 `json:"iron"`
	Potassium          float64 `json:"potassium"`

	IngredientsList []string `json:"ingredients_list"`
}

// DefaultNutritionRecord is the record substituted whenever extraction
// fails: every nutrient zero, placeholder name and serving.
func DefaultNutritionRecord() NutritionRecord {
	return NutritionRecord{
		ProductName:     "Unknown Product",
		ServingSize:     "1 serving",
		IngredientsList: []string{},
	}
}

// RecordFromMap builds a NutritionRecord from a loosely parsed JSON
// object, back-filling every absent or mistyped field with its default
// so a partial model reply never produces an incomplete record.
func RecordFromMap(m map[string]interface{}) NutritionRecord {
	rec := DefaultNutritionRecord()
	if m == nil {
		return rec
	}

	if v, ok := m["product_name"].(string); ok && v != "" {
		rec.ProductName = v
	}
	if v, ok := m["serving_size"].(string); ok && v != "" {
		rec.ServingSize = v
	}

	rec.Calories = numField(m, "calories")
	rec.Protein = numField(m, "protein")
	rec.TotalCarbohydrates = numField(m, "total_carbohydrates")
	rec.TotalFat = numField(m, "total_fat")
	rec.SaturatedFat = numField(m, "saturated_fat")
	rec.TransFat = numField(m, "trans_fat")
	rec.DietaryFiber = numField(m, "dietary_fiber")
	rec.TotalSugars = numField(m, "total_sugars")
	rec.AddedSugars = numField(m, "added_sugars")
	rec.Cholesterol = numField(m, "cholesterol")
	rec.Sodium = numField(m, "sodium")
	rec.VitaminA = numField(m, "vitamin_a")
	rec.VitaminC = numField(m, "vitamin_c")
	rec.VitaminD = numField(m, "vitamin_d")
	rec.Calcium = numField(m, "calcium")
	rec.Iron = numField(m, "iron")
	rec.Potassium = numField(m, "potassium")

	if raw, ok := m["ingredients_list"].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				rec.IngredientsList = append(rec.IngredientsList, s)
			}
		}
	}

	return rec
}

func numField(m map[string]interface{}, key string) float64 {
	if v, ok := m[key].(float64); ok {
		return v
	}
	return 0
}
