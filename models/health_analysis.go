package models

// IngredientInfo is a plain-language explanation of one ingredient as
// produced by the analysis model.
type IngredientInfo struct {
	SimpleName   string `json:"simple_name"`
	Explanation  string `json:"explanation"`
	HealthImpact string `json:"health_impact"`
}

// HealthAnalysis is the structured assessment produced by the analysis
// model for a freshly stored entry against the user's profile and
// recent history.
type HealthAnalysis struct {
	HealthWarnings         []string                  `json:"health_warnings"`
	NutritionalAssessment  string                    `json:"nutritional_assessment"`
	IngredientExplanations map[string]IngredientInfo `json:"ingredient_explanations"`
	Recommendations        []string                  `json:"recommendations"`
	DailyIntakeAnalysis    string                    `json:"daily_intake_analysis"`
}

// DefaultAnalysis is returned for anonymous requests and whenever the
// analysis call fails.
func DefaultAnalysis() HealthAnalysis {
	return HealthAnalysis{
		HealthWarnings:         []string{},
		NutritionalAssessment:  "Unable to analyze nutrition data at this time",
		IngredientExplanations: map[string]IngredientInfo{},
		Recommendations:        []string{"Maintain a balanced diet", "Stay hydrated"},
		DailyIntakeAnalysis:    "Please consult with a healthcare professional",
	}
}
